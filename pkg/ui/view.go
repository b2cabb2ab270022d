package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"podash/pkg/badge"
	"podash/pkg/orderform"
	"podash/pkg/tasklist"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	switch m.mode {
	case TasksMode:
		sb.WriteString(m.titleBar(" PODASH - My Tasks ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderTasks())

	case OrderMode:
		sb.WriteString(m.titleBar(" Edit Order ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderOrderForm())

	case AddProductMode:
		sb.WriteString(m.titleBar(" Add Product ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		for i, f := range orderform.ProductFields {
			sb.WriteString(m.renderInput(productLabels[f], m.addInputs[i].View(), i == m.addFocus))
		}
		sb.WriteString("\n")
		sb.WriteString(m.hint("enter: add  tab: next field  esc: back"))

	case DeleteConfirmMode:
		sb.WriteString(m.titleBar(" Delete Product ", m.styles.ErrorColor))
		sb.WriteString("\n\n")
		if m.pendingDelete != nil {
			sb.WriteString("Are you sure you want to delete this product?\n\n")
			sb.WriteString(fmt.Sprintf("Product: %s\n", m.pendingDelete.Name))
			sb.WriteString(fmt.Sprintf("Price: %.2f  Quantity: %d\n", m.pendingDelete.Price, m.pendingDelete.Quantity))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case OpenOrderMode:
		sb.WriteString(m.titleBar(" Open Order ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString("Enter the id of the order to edit:")
		sb.WriteString("\n\n")
		sb.WriteString(m.orderInput.View())
		if m.store.State().Order.Loading {
			sb.WriteString(" " + m.spinner.View())
		}

	case HelpViewMode:
		sb.WriteString(m.renderHelp())
	}

	sb.WriteString("\n")
	sb.WriteString(m.renderToasts())
	return sb.String()
}

func (m Model) titleBar(text, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(text)
}

func (m Model) hint(text string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.BorderColor)).Render(text)
}

func (m Model) renderTasks() string {
	var sb strings.Builder
	state := m.store.State().Task
	counts := tasklist.Summarize(state.UserTasks)

	counter := func(label string, n int, color string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.styles.BorderColor)).
			Foreground(lipgloss.Color(color)).
			Padding(0, 2).
			Render(fmt.Sprintf("%s\n%d", label, n))
	}
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		counter("Total Tasks", counts.Total, m.styles.NormalTextColor),
		counter("Pending", counts.Pending, m.styles.PendingColor),
		counter("Completed", counts.Completed, m.styles.CompletedColor),
	))
	sb.WriteString("\n\n")

	switch {
	case state.Loading && len(state.UserTasks) == 0:
		sb.WriteString(m.spinner.View() + " Loading tasks...")
	case len(m.display) == 0:
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.NormalTextColor)).Render("No tasks assigned."))
	default:
		sb.WriteString(m.table.View())
		if state.Loading {
			sb.WriteString("\n" + m.spinner.View() + " Refreshing...")
		}
	}
	sb.WriteString("\n")

	if t, ok := m.selectedTask(); ok && t.Description != "" {
		sb.WriteString(lipgloss.NewStyle().Italic(true).Render(t.Description))
		sb.WriteString("\n")
	}
	sb.WriteString(m.hint(fmt.Sprintf("%s: commands", m.keyMap.ShowHelp.Help().Key)))
	return sb.String()
}

func (m Model) renderInput(label, input string, focused bool) string {
	labelStyle := lipgloss.NewStyle().Width(18).Foreground(lipgloss.Color(m.styles.NormalTextColor))
	if focused {
		labelStyle = labelStyle.Foreground(lipgloss.Color(m.styles.AccentColor)).Bold(true)
	}
	return labelStyle.Render(label) + " " + input + "\n"
}

func (m Model) renderBadge(source string) string {
	b := badge.Lookup(source)
	color, ok := m.styles.BadgeColors[b.Class]
	if !ok {
		color = m.styles.BadgeColors[badge.DefaultClass]
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(color)).
		Padding(0, 1).
		Render(b.Label)
}

func (m Model) renderOrderForm() string {
	var sb strings.Builder
	if m.draft == nil {
		return ""
	}

	if order := m.store.State().Order.Current; order != nil && order.OrderVia != "" {
		sb.WriteString("Source: " + m.renderBadge(order.OrderVia) + "  ")
	}
	sb.WriteString(fmt.Sprintf("Status: %s", lipgloss.NewStyle().Bold(true).Render(string(m.draft.Status))))
	sb.WriteString("\n\n")

	for i, f := range orderform.Fields {
		sb.WriteString(m.renderInput(fieldLabels[f], m.fieldInputs[i].View(), i == m.focus))
	}
	sb.WriteString("\n")

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Products"))
	sb.WriteString("\n")
	if len(m.draft.Products) == 0 {
		sb.WriteString("No products.\n")
	}
	var total float64
	for i, p := range m.draft.Products {
		cursor := "  "
		if i == m.product {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-24s %10.2f x %-5d = %12.2f  %s", cursor, p.Name, p.Price, p.Quantity, p.Total(), p.Remark)
		if i == m.product {
			line = lipgloss.NewStyle().Foreground(lipgloss.Color(m.styles.AccentColor)).Render(line)
		}
		sb.WriteString(line + "\n")
		total += p.Total()
	}
	sb.WriteString(fmt.Sprintf("Total: %.2f\n", total))

	if len(m.draft.Products) > 0 {
		sb.WriteString("\n")
		offset := len(m.fieldInputs)
		for i, f := range orderform.ProductFields {
			sb.WriteString(m.renderInput(productLabels[f], m.productInputs[i].View(), offset+i == m.focus))
		}
	}

	if m.store.State().Order.Loading {
		sb.WriteString("\n" + m.spinner.View() + " Saving...")
	}
	sb.WriteString("\n")
	sb.WriteString(m.hint(fmt.Sprintf("%s: save  %s: status  %s: add product  %s: delete product  %s: back",
		m.keyMap.SaveOrder.Help().Key, m.keyMap.CycleStatus.Help().Key, m.keyMap.AddProduct.Help().Key,
		m.keyMap.DeleteProduct.Help().Key, m.keyMap.Cancel.Help().Key)))
	return sb.String()
}

func (m Model) renderToasts() string {
	var sb strings.Builder
	for _, t := range m.toasts {
		color := m.styles.SuccessColor
		if t.isErr {
			color = m.styles.ErrorColor
		}
		sb.WriteString(lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(color)).
			Foreground(lipgloss.Color(color)).
			Padding(0, 1).
			Render(t.text))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
	sb.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))

	addCommand := func(binding key.Binding) {
		sb.WriteString(fmt.Sprintf("%s: %s\n",
			descStyle.Render(binding.Help().Desc),
			keyStyle.Render(binding.Help().Key)))
	}

	addCommand(m.keyMap.QuitApp)
	addCommand(m.keyMap.ShowHelp)
	addCommand(m.keyMap.ToggleStatus)
	addCommand(m.keyMap.Refresh)
	addCommand(m.keyMap.OpenTaskOrder)
	addCommand(m.keyMap.OpenOrder)
	addCommand(m.keyMap.YankTaskID)

	sb.WriteString("\n")
	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Order Form"))
	sb.WriteString("\n\n")

	addCommand(m.keyMap.NextField)
	addCommand(m.keyMap.PrevField)
	addCommand(m.keyMap.SaveOrder)
	addCommand(m.keyMap.CycleStatus)
	addCommand(m.keyMap.AddProduct)
	addCommand(m.keyMap.DeleteProduct)
	addCommand(m.keyMap.NextProduct)
	addCommand(m.keyMap.PrevProduct)
	addCommand(m.keyMap.Cancel)

	sb.WriteString("\n")
	sb.WriteString(m.hint("Press ESC to return"))
	return sb.String()
}
