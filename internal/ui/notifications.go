package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/arcum42/sagemodels/internal/theme"
)

const notificationTTL = 4 * time.Second

type Notification struct {
	Message   string
	IsError   bool
	CreatedAt time.Time
}

type NotificationManager struct {
	active *Notification
	now    func() time.Time
}

func NewNotificationManager() *NotificationManager {
	return &NotificationManager{now: time.Now}
}

// SetMessage shows a transient informational notification.
func (nm *NotificationManager) SetMessage(msg string) {
	nm.active = &Notification{Message: msg, CreatedAt: nm.now()}
}

// SetError shows a transient error notification.
func (nm *NotificationManager) SetError(msg string) {
	nm.active = &Notification{Message: msg, IsError: true, CreatedAt: nm.now()}
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil || nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		return nil
	}
	return nm.active
}

// Expire clears expired notifications. Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if nm.active != nil && nm.now().Sub(nm.active.CreatedAt) > notificationTTL {
		nm.active = nil
	}
}

func (nm *NotificationManager) RenderBanner(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}

	color := theme.ColorMauve
	if n.IsError {
		color = theme.ColorPeach
	}
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(color)
	return style.Render(n.Message)
}
