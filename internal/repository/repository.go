package repository

import (
	"context"

	"notes-client/internal/model"
)

// NoteRepository интерфейс для работы с заметками в удаленном хранилище.
// Все операции возвращают ошибку: неуспешный HTTP статус и транспортная
// ошибка различимы от пустой коллекции (пустой список без ошибки).
type NoteRepository interface {
	// List возвращает список всех заметок
	List(ctx context.Context) ([]model.Note, error)

	// Create создает новую заметку с указанными title и content
	// и возвращает созданную заметку с присвоенным ID
	Create(ctx context.Context, title, content string) (model.Note, error)

	// Update обновляет title и content заметки с указанным ID
	// и возвращает обновленную заметку
	Update(ctx context.Context, id, title, content string) (model.Note, error)

	// Delete удаляет заметку по ID
	Delete(ctx context.Context, id string) error
}
