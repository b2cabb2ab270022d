package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"podash/pkg/orderform"
	"podash/pkg/store"
	"podash/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetWidth(msg.Width - 4)
		if h := msg.Height - 10; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case actionMsg:
		return m.handleAction(msg.action)

	case notificationMsg:
		utils.Log("notification: %s", string(msg))
		toastCmd := m.pushToast(string(msg), false)
		return m, tea.Batch(toastCmd, m.fetchTasks(), waitForNotification(m.notifications))

	case toastExpiredMsg:
		m.dropToast(msg.id)
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case TasksMode:
			return m.updateTasks(msg)
		case OrderMode:
			return m.updateOrder(msg)
		case AddProductMode:
			return m.updateAddProduct(msg)
		case DeleteConfirmMode:
			return m.updateDeleteConfirm(msg)
		case OpenOrderMode:
			return m.updateOpenOrder(msg)
		case HelpViewMode:
			if key.Matches(msg, m.keyMap.Cancel) || key.Matches(msg, m.keyMap.ShowHelp) {
				m.mode = m.prevMode
			}
			return m, nil
		}
	}
	return m, nil
}

// handleAction applies the side effects of a finished request. The store has
// already been updated by the time it arrives.
func (m Model) handleAction(a store.Action) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if text, ok := store.Rejected(a); ok {
		cmds = append(cmds, m.pushToast(text, true))
	}

	switch a := a.(type) {
	case store.FetchTasksFulfilled, store.FetchTasksRejected:
		m.refreshTasks()

	case store.UpdateUserStatusFulfilled:
		m.refreshTasks()
		cmds = append(cmds, m.pushToast(fmt.Sprintf("Task marked as %s", a.Task.UserStatus), false))

	case store.FetchOrderFulfilled:
		if m.mode == TasksMode || m.mode == OpenOrderMode {
			m.openDraft(a.Order)
		}

	case store.FetchOrderRejected:
		if m.mode == OpenOrderMode {
			cmds = append(cmds, m.orderInput.Focus())
		}

	case store.UpdateOrderFulfilled:
		cmds = append(cmds, m.pushToast("Order updated successfully", false))
		m.store.Dispatch(store.ClearOrder{})
		m.closeDraft()
		cmds = append(cmds, m.fetchTasks())

	case store.DeleteProductFulfilled:
		if m.draft != nil && m.draft.OrderID == a.OrderID && m.draft.RemoveProduct(a.ProductID) {
			m.afterProductRemoved()
			cmds = append(cmds, m.pushToast("Product deleted", false))
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.QuitApp):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.ShowHelp):
		m.prevMode = m.mode
		m.mode = HelpViewMode
		return m, nil

	case key.Matches(msg, m.keyMap.Refresh):
		return m, m.fetchTasks()

	case key.Matches(msg, m.keyMap.ToggleStatus):
		if t, ok := m.selectedTask(); ok {
			return m, m.toggleTask(t)
		}
		return m, nil

	case key.Matches(msg, m.keyMap.OpenTaskOrder):
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if t.PO == nil || t.PO.ID == "" {
			return m.withToast("This task has no purchase order", true)
		}
		return m, m.fetchOrder(t.PO.ID)

	case key.Matches(msg, m.keyMap.OpenOrder):
		m.mode = OpenOrderMode
		m.orderInput.Reset()
		cmd := m.orderInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keyMap.YankTaskID):
		t, ok := m.selectedTask()
		if !ok {
			return m, nil
		}
		if err := m.copyText(t.ID); err != nil {
			utils.Log("clipboard: %v", err)
			return m.withToast("Could not copy to clipboard", true)
		}
		return m.withToast("Copied task id "+t.ID, false)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateOrder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		m.store.Dispatch(store.ClearOrder{})
		m.closeDraft()
		return m, nil

	case key.Matches(msg, m.keyMap.ShowHelp):
		m.prevMode = m.mode
		m.mode = HelpViewMode
		return m, nil

	case key.Matches(msg, m.keyMap.NextField):
		m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevField):
		m.setFocus(m.focus - 1)
		return m, nil

	case key.Matches(msg, m.keyMap.CycleStatus):
		m.draft.Status = m.draft.Status.Next()
		return m, nil

	case key.Matches(msg, m.keyMap.NextProduct):
		m.selectProduct(m.product + 1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevProduct):
		m.selectProduct(m.product - 1)
		return m, nil

	case key.Matches(msg, m.keyMap.AddProduct):
		m.mode = AddProductMode
		m.resetAddInputs()
		return m, textinput.Blink

	case key.Matches(msg, m.keyMap.DeleteProduct):
		if len(m.draft.Products) == 0 {
			return m, nil
		}
		p := m.draft.Products[m.product]
		if err := orderform.CanDeleteProduct(p).Error(); err != nil {
			return m.withToast(err.Error(), true)
		}
		m.pendingDelete = &p
		m.mode = DeleteConfirmMode
		return m, nil

	case key.Matches(msg, m.keyMap.SaveOrder):
		if err := orderform.CanSubmit(m.draft.OrderID).Error(); err != nil {
			return m.withToast(err.Error(), true)
		}
		return m, m.run(store.UpdateOrder(m.client, m.draft.OrderID, m.draft.Payload()))
	}

	cmd := m.updateFocusedInput(msg)
	return m, cmd
}

func (m Model) updateAddProduct(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		m.mode = OrderMode
		return m, nil

	case key.Matches(msg, m.keyMap.NextField):
		m.focusAddInput(m.addFocus + 1)
		return m, nil

	case key.Matches(msg, m.keyMap.PrevField):
		m.focusAddInput(m.addFocus - 1)
		return m, nil

	case msg.Type == tea.KeyEnter:
		if err := m.draft.AddProduct(m.productFromInputs()); err != nil {
			return m.withToast(err.Error(), true)
		}
		m.selectProduct(len(m.draft.Products) - 1)
		m.mode = OrderMode
		return m.withToast("Product added", false)
	}

	var cmd tea.Cmd
	m.addInputs[m.addFocus], cmd = m.addInputs[m.addFocus].Update(msg)
	return m, cmd
}

func (m Model) updateDeleteConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		p := m.pendingDelete
		m.pendingDelete = nil
		m.mode = OrderMode
		if p == nil {
			return m, nil
		}
		// the draft keeps the product until the server accepts the delete
		return m, m.run(store.DeleteProductFromOrder(m.client, m.draft.OrderID, p.ID))

	case "n", "N", "esc":
		m.pendingDelete = nil
		m.mode = OrderMode
	}
	return m, nil
}

func (m Model) updateOpenOrder(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.Cancel):
		m.orderInput.Blur()
		m.mode = TasksMode
		return m, nil

	case msg.Type == tea.KeyEnter:
		id := m.orderInput.Value()
		if id == "" {
			return m.withToast(orderform.CanSubmit(id).Reason, true)
		}
		m.orderInput.Blur()
		return m, m.fetchOrder(id)
	}

	var cmd tea.Cmd
	m.orderInput, cmd = m.orderInput.Update(msg)
	return m, cmd
}
