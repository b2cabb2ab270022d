package ui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"podash/pkg/models"
	"podash/pkg/orderform"
	"podash/pkg/utils"
)

// openDraft starts editing order and fills the form inputs
func (m *Model) openDraft(order models.Order) {
	m.draft = orderform.NewDraft(order)
	m.product = 0
	for i, f := range orderform.Fields {
		value, _ := m.draft.Field(f)
		if f == "orderDate" || f == "estimatedDispatchDate" {
			value = models.DateOnly(value)
		}
		m.fieldInputs[i].SetValue(value)
	}
	m.loadProductInputs()
	m.setFocus(0)
	m.mode = OrderMode
}

func (m *Model) closeDraft() {
	m.draft = nil
	m.pendingDelete = nil
	m.mode = TasksMode
}

// focusCount is the number of focusable inputs in the order form
func (m Model) focusCount() int {
	n := len(m.fieldInputs)
	if m.draft != nil && len(m.draft.Products) > 0 {
		n += len(m.productInputs)
	}
	return n
}

func (m *Model) setFocus(i int) {
	n := m.focusCount()
	if n == 0 {
		return
	}
	m.focus = (i%n + n) % n

	for j := range m.fieldInputs {
		m.fieldInputs[j].Blur()
	}
	for j := range m.productInputs {
		m.productInputs[j].Blur()
	}
	if m.focus < len(m.fieldInputs) {
		m.fieldInputs[m.focus].Focus()
	} else {
		m.productInputs[m.focus-len(m.fieldInputs)].Focus()
	}
}

func (m *Model) loadProductInputs() {
	for i, f := range orderform.ProductFields {
		m.productInputs[i].SetValue(m.draft.ProductField(m.product, f))
	}
}

func (m *Model) selectProduct(i int) {
	n := len(m.draft.Products)
	if n == 0 {
		return
	}
	m.product = (i%n + n) % n
	m.loadProductInputs()
}

// updateFocusedInput feeds msg to the focused input and copies the new
// value into the draft
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.focus < len(m.fieldInputs) {
		m.fieldInputs[m.focus], cmd = m.fieldInputs[m.focus].Update(msg)
		field := orderform.Fields[m.focus]
		if err := m.draft.SetField(field, m.fieldInputs[m.focus].Value()); err != nil {
			utils.Log("set field %s: %v", field, err)
		}
		return cmd
	}

	i := m.focus - len(m.fieldInputs)
	m.productInputs[i], cmd = m.productInputs[i].Update(msg)
	field := orderform.ProductFields[i]
	if err := m.draft.SetProductField(m.product, field, m.productInputs[i].Value()); err != nil {
		utils.Log("set product field %s: %v", field, err)
	}
	return cmd
}

// afterProductRemoved keeps the product cursor and focus inside the list
func (m *Model) afterProductRemoved() {
	n := len(m.draft.Products)
	if m.product >= n {
		m.product = n - 1
	}
	if m.product < 0 {
		m.product = 0
	}
	m.loadProductInputs()
	if m.focus >= m.focusCount() {
		m.setFocus(len(m.fieldInputs) - 1)
	}
}

func (m *Model) resetAddInputs() {
	for i := range m.addInputs {
		m.addInputs[i].Reset()
		m.addInputs[i].Blur()
	}
	m.addFocus = 0
	m.addInputs[0].Focus()
}

func (m *Model) focusAddInput(i int) {
	n := len(m.addInputs)
	m.addInputs[m.addFocus].Blur()
	m.addFocus = (i%n + n) % n
	m.addInputs[m.addFocus].Focus()
}

// productFromInputs reads the add-product sub-form. Unparseable numbers
// become 0 so validation rejects them.
func (m Model) productFromInputs() models.Product {
	values := make(map[string]string, len(m.addInputs))
	for i, f := range orderform.ProductFields {
		values[f] = strings.TrimSpace(m.addInputs[i].Value())
	}
	price, _ := strconv.ParseFloat(values["price"], 64)
	quantity, _ := strconv.Atoi(values["quantity"])
	return models.Product{
		Name:     values["name"],
		Price:    price,
		Quantity: quantity,
		Remark:   values["remark"],
	}
}
