package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type toast struct {
	id    int
	text  string
	isErr bool
}

type toastExpiredMsg struct{ id int }

// pushToast shows text until the configured TTL elapses
func (m *Model) pushToast(text string, isErr bool) tea.Cmd {
	m.nextToast++
	id := m.nextToast
	m.toasts = append(m.toasts, toast{id: id, text: text, isErr: isErr})
	return tea.Tick(m.toastTTL(), func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// withToast is pushToast for Update handlers returning the model
func (m Model) withToast(text string, isErr bool) (tea.Model, tea.Cmd) {
	cmd := m.pushToast(text, isErr)
	return m, cmd
}

func (m *Model) dropToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i:i], m.toasts[i+1:]...)
			return
		}
	}
}
