package model

import "testing"

func TestNote_Validate(t *testing.T) {
	note := Note{Title: "Groceries", Content: "milk"}
	if err := note.Validate(); err != nil {
		t.Errorf("Expected valid note, got: %v", err)
	}

	note = Note{Title: "", Content: "milk"}
	if err := note.Validate(); err == nil {
		t.Error("Expected error for empty title")
	}

	note = Note{Title: "   ", Content: "milk"}
	if err := note.Validate(); err == nil {
		t.Error("Expected error for whitespace-only title")
	}
}
