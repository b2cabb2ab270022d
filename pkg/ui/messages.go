package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"podash/pkg/models"
	"podash/pkg/store"
)

// actionMsg carries the outcome of a store request back into Update
type actionMsg struct {
	action store.Action
}

// notificationMsg is a frame received on the notification socket
type notificationMsg string

// run performs a request against the store off the UI goroutine
func (m Model) run(a store.AsyncAction) tea.Cmd {
	st, ctx := m.store, m.ctx
	return func() tea.Msg {
		return actionMsg{action: st.Run(ctx, a)}
	}
}

func (m Model) fetchTasks() tea.Cmd {
	return m.run(store.FetchTasksAssignedToUser(m.client, m.userID()))
}

func (m Model) fetchOrder(orderID string) tea.Cmd {
	return m.run(store.FetchOrder(m.client, orderID))
}

func (m Model) toggleTask(t models.Task) tea.Cmd {
	return m.run(store.UpdateUserTaskStatus(m.client, t.ID, t.UserStatus.Toggled()))
}

func waitForNotification(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		text, ok := <-ch
		if !ok {
			return nil
		}
		return notificationMsg(text)
	}
}
