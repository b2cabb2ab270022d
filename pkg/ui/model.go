package ui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"podash/pkg/config"
	"podash/pkg/keymaps"
	"podash/pkg/models"
	"podash/pkg/orderform"
	"podash/pkg/store"
)

// InputMode represents the current input mode
type InputMode int

const (
	TasksMode InputMode = iota
	OrderMode
	AddProductMode
	DeleteConfirmMode
	OpenOrderMode
	HelpViewMode // Mode for displaying help
)

const defaultToastTTL = 3 * time.Second

// Model represents the application state
type Model struct {
	ctx           context.Context
	store         *store.Store
	client        store.API
	notifications <-chan string
	copyText      func(string) error

	width, height int

	// Configuration
	config config.Config
	styles config.Styles
	keyMap keymaps.KeyMap

	mode     InputMode
	prevMode InputMode

	// Tasks view
	table   table.Model
	display []models.Task
	spinner spinner.Model

	// Order form state
	draft         *orderform.Draft
	fieldInputs   []textinput.Model
	productInputs []textinput.Model
	focus         int
	product       int
	addInputs     []textinput.Model
	addFocus      int
	pendingDelete *models.Product
	orderInput    textinput.Model

	toasts    []toast
	nextToast int
}

// Options carries what the model needs from the rest of the program
type Options struct {
	Store  *store.Store
	Client store.API
	// Notifications delivers socket messages; nil disables them
	Notifications <-chan string
	// Copy writes to the clipboard; defaults to the system clipboard
	Copy func(string) error
}

// NewModel creates a new UI model with the provided configuration
func NewModel(ctx context.Context, opts Options, cfg config.Config, styles config.Styles) Model {
	columns := []table.Column{
		{Title: "Task", Width: 32},
		{Title: "Type", Width: 12},
		{Title: "!", Width: 1},
		{Title: "Status", Width: 10},
		{Title: "PO", Width: 12},
		{Title: "Assigned By", Width: 14},
		{Title: "Due", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(styles.BorderColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color(styles.SelectedTextColor)).
		Background(lipgloss.Color(styles.SelectedBgColor)).
		Bold(true)
	t.SetStyles(s)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(styles.AccentColor))

	orderInput := textinput.New()
	orderInput.Placeholder = "Order id"
	orderInput.Width = 40

	copyText := opts.Copy
	if copyText == nil {
		copyText = clipboard.WriteAll
	}
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:           ctx,
		store:         opts.Store,
		client:        opts.Client,
		notifications: opts.Notifications,
		copyText:      copyText,
		config:        cfg,
		styles:        styles,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		mode:          TasksMode,
		table:         t,
		spinner:       sp,
		fieldInputs:   newInputs(orderform.Fields, fieldLabels),
		productInputs: newInputs(orderform.ProductFields, productLabels),
		addInputs:     newInputs(orderform.ProductFields, productLabels),
		orderInput:    orderInput,
	}
	m.refreshTasks()

	return m
}

// Init starts the spinner, loads the tasks and listens for notifications
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.fetchTasks(),
		waitForNotification(m.notifications),
	)
}

func (m Model) toastTTL() time.Duration {
	if m.config.ToastTTL > 0 {
		return m.config.ToastTTL
	}
	return defaultToastTTL
}

func (m Model) userID() string {
	return m.store.State().Auth.UserID
}

func newInputs(fields []string, labels map[string]string) []textinput.Model {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Placeholder = labels[f]
		in.Width = 40
		in.Prompt = ""
		inputs[i] = in
	}
	return inputs
}

var fieldLabels = map[string]string{
	"orderNumber":             "Order Number",
	"orderDate":               "Order Date",
	"estimatedDispatchDate":   "Est. Dispatch",
	"clientName":              "Client",
	"companyName":             "Company",
	"address":                 "Address",
	"zipCode":                 "Zip Code",
	"contact":                 "Contact",
	"gstNumber":               "GST Number",
	"generatedBy.username":    "Generated By",
	"generatedBy.employeeId":  "Generated By ID",
	"orderThrough.username":   "Order Through",
	"orderThrough.employeeId": "Order Through ID",
}

var productLabels = map[string]string{
	"name":     "Product",
	"price":    "Price",
	"quantity": "Quantity",
	"remark":   "Remark",
}
