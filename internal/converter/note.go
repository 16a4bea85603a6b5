package converter

import (
	"time"

	"notes-client/internal/model"
)

// NoteRecord представляет заметку в JSON формате REST коллекции.
// Временная метка передается строкой в формате RFC3339 (UTC) —
// формат сортируемый, лексикографический порядок совпадает с хронологическим.
type NoteRecord struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// RecordToModel конвертирует JSON запись в domain модель.
// Отсутствующая или невалидная временная метка дает нулевое время.
func RecordToModel(record NoteRecord) model.Note {
	var updatedAt time.Time
	if record.UpdatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, record.UpdatedAt); err == nil {
			updatedAt = parsed
		}
	}

	return model.Note{
		ID:        record.ID,
		Title:     record.Title,
		Content:   record.Content,
		UpdatedAt: updatedAt,
	}
}

// ModelToRecord конвертирует domain модель Note в JSON запись
func ModelToRecord(note model.Note) NoteRecord {
	var updatedAt string
	if !note.UpdatedAt.IsZero() {
		updatedAt = note.UpdatedAt.UTC().Format(time.RFC3339)
	}

	return NoteRecord{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UpdatedAt: updatedAt,
	}
}

// RecordsToModels конвертирует слайс JSON записей в слайс domain моделей
func RecordsToModels(records []NoteRecord) []model.Note {
	if records == nil {
		return nil
	}

	notes := make([]model.Note, len(records))
	for i, record := range records {
		notes[i] = RecordToModel(record)
	}

	return notes
}
