package ui

import (
	"github.com/charmbracelet/bubbles/table"

	"podash/pkg/models"
	"podash/pkg/tasklist"
)

// refreshTasks rebuilds the table from the store's task list in display order
func (m *Model) refreshTasks() {
	if m.store == nil {
		return
	}
	m.display = tasklist.DisplayList(m.store.State().Task.UserTasks)

	rows := make([]table.Row, 0, len(m.display))
	for _, t := range m.display {
		rows = append(rows, taskRow(t))
	}
	m.table.SetRows(rows)

	if n := len(rows); n > 0 && m.table.Cursor() >= n {
		m.table.SetCursor(n - 1)
	}
}

func taskRow(t models.Task) table.Row {
	urgent := ""
	if t.Urgent {
		urgent = "!"
	}
	status := string(t.UserStatus)
	if status == "" {
		status = string(models.TaskPending)
	}
	assignedBy := ""
	if t.AssignedBy != nil {
		assignedBy = t.AssignedBy.Username
	}
	return table.Row{t.Title, t.TaskType, urgent, status, t.PONumber(), assignedBy, dueDate(t)}
}

func dueDate(t models.Task) string {
	if t.TaskDeadline == nil || t.TaskDeadline.IsZero() {
		return "N/A"
	}
	return t.TaskDeadline.Format("02/01/2006")
}

// selectedTask returns the task under the cursor, if any
func (m Model) selectedTask() (models.Task, bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.display) {
		return models.Task{}, false
	}
	return m.display[idx], true
}
