package theme

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
	ColorMint     = lipgloss.Color("#a6dcb6")
)

// Background tones (dark theme)
var (
	ColorBaseBg     = lipgloss.Color("#1a1b2e")
	ColorCardBg     = lipgloss.Color("#232438")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
	ColorOverlayBg  = lipgloss.Color("#111122")
)

// SizeGradient colors file sizes from small to large.
var SizeGradient = []string{
	"#86bada",
	"#9f99d1",
	"#dbaad7",
	"#f6bcb0",
	"#ffe3b3",
}

var typePalette = []lipgloss.Color{
	ColorSkyBlue,
	ColorLavender,
	ColorMauve,
	ColorPeach,
	ColorGold,
	ColorMint,
}

// TypeColor returns a stable color for a model category.
func TypeColor(modelType string) lipgloss.Color {
	if modelType == "" {
		return ColorMutedText
	}
	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(modelType)))
	return typePalette[h.Sum32()%uint32(len(typePalette))]
}

// LerpColor interpolates between two hex colors.
func LerpColor(from, to string, t float64) string {
	r1, g1, b1 := HexToRGB(from)
	r2, g2, b2 := HexToRGB(to)

	r := uint8(float64(r1) + t*(float64(r2)-float64(r1)))
	g := uint8(float64(g1) + t*(float64(g2)-float64(g1)))
	b := uint8(float64(b1) + t*(float64(b2)-float64(b1)))

	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

func HexToRGB(hex string) (uint8, uint8, uint8) {
	if len(hex) > 0 && hex[0] == '#' {
		hex = hex[1:]
	}
	var r, g, b uint8
	fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	return r, g, b
}

// GradientText applies a gradient color across a string.
func GradientText(text, fromHex, toHex string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(text) * 20) // ANSI escape overhead
	style := lipgloss.NewStyle()
	for i, r := range runes {
		t := float64(i) / float64(max(len(runes)-1, 1))
		color := LerpColor(fromHex, toHex, t)
		sb.WriteString(style.Foreground(lipgloss.Color(color)).Render(string(r)))
	}
	return sb.String()
}

// MultiStopGradient interpolates through multiple color stops.
func MultiStopGradient(t float64, stops []string) string {
	if len(stops) < 2 {
		return stops[0]
	}
	if t <= 0 {
		return stops[0]
	}
	if t >= 1 {
		return stops[len(stops)-1]
	}

	segments := len(stops) - 1
	segment := int(t * float64(segments))
	if segment >= segments {
		segment = segments - 1
	}
	localT := t*float64(segments) - float64(segment)

	return LerpColor(stops[segment], stops[segment+1], localT)
}

// Common styles
var (
	CardStyle = lipgloss.NewStyle().
			Background(ColorCardBg).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorMauve)

	GutterStyle = lipgloss.NewStyle().
			Foreground(ColorLavender)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Bold(true)
)
