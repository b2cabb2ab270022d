package keymaps

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"
)

func TestBuildKeyMapDefaults(t *testing.T) {
	km := BuildKeyMap(nil)

	if got := km.QuitApp.Help().Key; got != "q" {
		t.Errorf("Expected quit key q, got %s", got)
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, km.Refresh) {
		t.Errorf("Expected r to trigger refresh")
	}
	if !key.Matches(tea.KeyMsg{Type: tea.KeyCtrlS}, km.SaveOrder) {
		t.Errorf("Expected ctrl+s to save")
	}
}

func TestBuildKeyMapOverrides(t *testing.T) {
	km := BuildKeyMap(map[string]string{
		"refresh":   "f5, R",
		"QuitApp":   "",
		"Unrelated": "x",
	})

	if got := km.Refresh.Keys(); len(got) != 2 || got[0] != "f5" || got[1] != "R" {
		t.Errorf("Expected [f5 R], got %v", got)
	}
	if got := km.QuitApp.Help().Key; got != "q" {
		t.Errorf("Expected empty override to keep default, got %s", got)
	}
}

func TestSpaceBindingAcceptsLiteralSpace(t *testing.T) {
	km := BuildKeyMap(nil)
	keys := km.ToggleStatus.Keys()
	if len(keys) != 2 || keys[0] != "space" || keys[1] != " " {
		t.Errorf("Expected [space \" \"], got %q", keys)
	}
}

func TestGetDefaultKeyMappings(t *testing.T) {
	mappings := GetDefaultKeyMappings()
	if len(mappings) != len(KeyDefinitions) {
		t.Errorf("Expected %d mappings, got %d", len(KeyDefinitions), len(mappings))
	}
	if mappings["DeleteProduct"] != "ctrl+d" {
		t.Errorf("Expected ctrl+d, got %s", mappings["DeleteProduct"])
	}
}
