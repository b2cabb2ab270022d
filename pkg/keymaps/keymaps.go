package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":      {"ctrl+b", "show/hide commands"},
	"QuitApp":       {"q", "quit"},
	"ToggleStatus":  {"space", "toggle my status"},
	"Refresh":       {"r", "reload tasks"},
	"OpenTaskOrder": {"enter", "edit the task's purchase order"},
	"OpenOrder":     {"o", "open order by id"},
	"YankTaskID":    {"y", "copy task id"},
	"NextField":     {"tab", "next field"},
	"PrevField":     {"shift+tab", "previous field"},
	"SaveOrder":     {"ctrl+s", "save order"},
	"CycleStatus":   {"ctrl+t", "cycle order status"},
	"AddProduct":    {"ctrl+a", "add product"},
	"DeleteProduct": {"ctrl+d", "delete product"},
	"NextProduct":   {"ctrl+n", "next product"},
	"PrevProduct":   {"ctrl+p", "previous product"},
	"Cancel":        {"esc", "back"},
}

type KeyMap struct {
	ShowHelp      key.Binding
	QuitApp       key.Binding
	ToggleStatus  key.Binding
	Refresh       key.Binding
	OpenTaskOrder key.Binding
	OpenOrder     key.Binding
	YankTaskID    key.Binding
	NextField     key.Binding
	PrevField     key.Binding
	SaveOrder     key.Binding
	CycleStatus   key.Binding
	AddProduct    key.Binding
	DeleteProduct key.Binding
	NextProduct   key.Binding
	PrevProduct   key.Binding
	Cancel        key.Binding
}

// BuildKeyMap applies config overrides on top of the defaults. Override keys
// are matched case-insensitively since config loading lowercases them.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	overrides := make(map[string]string, len(configOverrides))
	for action, keyStr := range configOverrides {
		overrides[strings.ToLower(action)] = keyStr
	}

	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := overrides[strings.ToLower(action)]; exists && override != "" {
			keyStr = override
		}
		binding := parseKeyBinding(keyStr, def.DefaultKey, def.Help)

		switch action {
		case "ShowHelp":
			km.ShowHelp = binding
		case "QuitApp":
			km.QuitApp = binding
		case "ToggleStatus":
			km.ToggleStatus = binding
		case "Refresh":
			km.Refresh = binding
		case "OpenTaskOrder":
			km.OpenTaskOrder = binding
		case "OpenOrder":
			km.OpenOrder = binding
		case "YankTaskID":
			km.YankTaskID = binding
		case "NextField":
			km.NextField = binding
		case "PrevField":
			km.PrevField = binding
		case "SaveOrder":
			km.SaveOrder = binding
		case "CycleStatus":
			km.CycleStatus = binding
		case "AddProduct":
			km.AddProduct = binding
		case "DeleteProduct":
			km.DeleteProduct = binding
		case "NextProduct":
			km.NextProduct = binding
		case "PrevProduct":
			km.PrevProduct = binding
		case "Cancel":
			km.Cancel = binding
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas
	keys := strings.Split(keyStr, ",")
	for i, k := range keys {
		keys[i] = strings.TrimSpace(k)
	}
	// Some terminals report the space bar as " "
	for _, k := range keys {
		if k == "space" {
			keys = append(keys, " ")
			break
		}
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
