package views

import tea "github.com/charmbracelet/bubbletea"

// KeyHandledCmd is returned by view Update methods when a key was consumed
// and must not reach the app-level handlers. bubbletea discards the nil
// message it produces.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }
