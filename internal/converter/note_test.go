package converter

import (
	"testing"
	"time"

	"notes-client/internal/model"
)

func TestRecordToModel(t *testing.T) {
	record := NoteRecord{
		ID:        "a",
		Title:     "Groceries",
		Content:   "milk",
		UpdatedAt: "2024-06-01T12:00:00Z",
	}

	note := RecordToModel(record)

	if note.ID != "a" || note.Title != "Groceries" || note.Content != "milk" {
		t.Errorf("Expected fields to be copied, got %+v", note)
	}

	want := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if !note.UpdatedAt.Equal(want) {
		t.Errorf("Expected UpdatedAt %v, got %v", want, note.UpdatedAt)
	}
}

func TestRecordToModel_MissingTimestamp(t *testing.T) {
	note := RecordToModel(NoteRecord{ID: "a", Title: "Groceries"})
	if !note.UpdatedAt.IsZero() {
		t.Errorf("Expected zero time for missing timestamp, got %v", note.UpdatedAt)
	}

	note = RecordToModel(NoteRecord{ID: "a", UpdatedAt: "not-a-timestamp"})
	if !note.UpdatedAt.IsZero() {
		t.Errorf("Expected zero time for invalid timestamp, got %v", note.UpdatedAt)
	}
}

func TestModelToRecord(t *testing.T) {
	note := model.Note{
		ID:        "a",
		Title:     "Groceries",
		Content:   "milk",
		UpdatedAt: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	record := ModelToRecord(note)
	if record.UpdatedAt != "2024-06-01T12:00:00Z" {
		t.Errorf("Expected RFC3339 timestamp, got %q", record.UpdatedAt)
	}

	// Нулевое время не сериализуется
	record = ModelToRecord(model.Note{ID: "a", Title: "Groceries"})
	if record.UpdatedAt != "" {
		t.Errorf("Expected empty timestamp for zero time, got %q", record.UpdatedAt)
	}
}
