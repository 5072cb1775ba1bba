package overlays

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/config"
	"github.com/arcum42/sagemodels/internal/domain"
	"github.com/arcum42/sagemodels/internal/i18n"
	"github.com/arcum42/sagemodels/internal/theme"
)

// ConfigChangedMsg signals that config has been updated.
type ConfigChangedMsg struct {
	Config config.Config
	Err    error // save failure; Config is still applied
}

type settingsField struct {
	label   string
	key     string
	options []string
	value   string
}

type SettingsOverlay struct {
	cfg     config.Config
	cfgPath string
	fields  []settingsField
	cursor  int
	dirty   bool
}

func NewSettingsOverlay(cfg config.Config, cfgPath string) *SettingsOverlay {
	s := &SettingsOverlay{
		cfg:     cfg,
		cfgPath: cfgPath,
	}
	s.buildFields()
	return s
}

// Config returns the settings as currently edited.
func (s *SettingsOverlay) Config() config.Config { return s.cfg }

func (s *SettingsOverlay) buildFields() {
	s.fields = []settingsField{
		{label: i18n.T("setting_sort"), key: "sort", options: domain.SortModes(), value: s.cfg.SortKey().String()},
		{label: i18n.T("setting_language"), key: "language", options: []string{"en"}, value: s.cfg.General.Language},
		{label: i18n.T("setting_watch"), key: "watch", options: []string{i18n.T("off"), i18n.T("on")}, value: onOff(s.cfg.Watch.Enabled)},
		{label: i18n.T("setting_interval"), key: "interval", options: []string{"5", "10", "15", "30", "60"}, value: strconv.Itoa(s.cfg.Watch.Interval)},
	}
}

func onOff(b bool) string {
	if b {
		return i18n.T("on")
	}
	return i18n.T("off")
}

// Update handles a key. It reports whether the overlay closed; on close
// with changes it saves the file and returns a ConfigChangedMsg cmd.
func (s *SettingsOverlay) Update(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if s.cursor < len(s.fields)-1 {
			s.cursor++
		}
	case "k", "up":
		if s.cursor > 0 {
			s.cursor--
		}
	case "enter", " ", "l", "right":
		s.cycleOption(1)
	case "h", "left":
		s.cycleOption(-1)
	case "esc", "o":
		if !s.dirty {
			return true, nil
		}
		cfg, path := s.cfg, s.cfgPath
		return true, func() tea.Msg {
			err := config.Save(cfg, path)
			return ConfigChangedMsg{Config: cfg, Err: err}
		}
	}
	return false, nil
}

func (s *SettingsOverlay) cycleOption(dir int) {
	f := &s.fields[s.cursor]
	idx := -1
	for i, o := range f.options {
		if o == f.value {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = 0
	}
	idx = (idx + dir + len(f.options)) % len(f.options)
	f.value = f.options[idx]
	s.dirty = true
	s.applyToConfig(f.key, f.value)
}

func (s *SettingsOverlay) applyToConfig(key, value string) {
	switch key {
	case "sort":
		s.cfg.General.Sort = value
	case "language":
		s.cfg.General.Language = value
	case "watch":
		s.cfg.Watch.Enabled = value == i18n.T("on")
	case "interval":
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			s.cfg.Watch.Interval = n
		}
	}
}

func (s *SettingsOverlay) Render(width, height int) string {
	bg := theme.ColorCardBg
	title := theme.GradientText(i18n.T("settings"), string(theme.ColorSkyBlue), string(theme.ColorMauve))

	var rows []string
	for i, f := range s.fields {
		labelStyle := lipgloss.NewStyle().Foreground(theme.ColorBodyText).Background(bg)
		valueStyle := lipgloss.NewStyle().Foreground(theme.ColorSkyBlue).Background(bg)
		arrow := "  "
		if i == s.cursor {
			labelStyle = lipgloss.NewStyle().Foreground(theme.ColorGold).Bold(true).Background(bg)
			valueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true).Background(bg)
			arrow = lipgloss.NewStyle().Foreground(theme.ColorGold).Background(bg).Render("> ")
		}

		rows = append(rows, fmt.Sprintf("  %s%s%s",
			arrow,
			labelStyle.Render(fmt.Sprintf("%-16s", f.label)),
			valueStyle.Render(" "+f.value),
		))
	}

	content := title + "\n\n" + strings.Join(rows, "\n") + "\n\n" +
		lipgloss.NewStyle().Foreground(theme.ColorMutedText).Background(bg).Render(i18n.T("settings_help"))

	boxWidth := 50
	if width < boxWidth+4 {
		boxWidth = width - 4
	}
	return theme.CardStyle.Width(boxWidth).Render(content)
}
