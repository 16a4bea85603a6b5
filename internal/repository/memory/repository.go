package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"notes-client/internal/model"
	"notes-client/internal/repository"

	"github.com/google/uuid"
)

// ErrNoteNotFound возвращается, когда заметка не найдена
var ErrNoteNotFound = errors.New("note not found")

var _ repository.NoteRepository = (*repo)(nil)

type repo struct {
	mu    sync.RWMutex
	notes map[string]model.Note
}

// NewRepository создает новый экземпляр in-memory репозитория на основе map.
// Используется в тестах контроллера и в демонстрационном режиме без
// удаленного хранилища.
func NewRepository() repository.NoteRepository {
	return &repo{
		notes: make(map[string]model.Note),
	}
}

// List возвращает список всех заметок
func (r *repo) List(ctx context.Context) ([]model.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := make([]model.Note, 0, len(r.notes))
	for _, note := range r.notes {
		notes = append(notes, note)
	}

	return notes, nil
}

// Create создает новую заметку с сгенерированным UUID и возвращает её
func (r *repo) Create(ctx context.Context, title, content string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	note := model.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   content,
		UpdatedAt: time.Now(),
	}

	r.notes[note.ID] = note

	return note, nil
}

// Update обновляет существующую заметку и возвращает обновленную заметку
func (r *repo) Update(ctx context.Context, id, title, content string) (model.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Проверяем существование заметки
	note, exists := r.notes[id]
	if !exists {
		return model.Note{}, ErrNoteNotFound
	}

	note.Title = title
	note.Content = content
	note.UpdatedAt = time.Now()

	r.notes[id] = note

	return note, nil
}

// Delete удаляет заметку по ID
func (r *repo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Проверяем существование заметки
	if _, exists := r.notes[id]; !exists {
		return ErrNoteNotFound
	}

	delete(r.notes, id)

	return nil
}
