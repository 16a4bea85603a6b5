package controller

import (
	"context"
	"strings"
	"sync"

	"notes-client/internal/model"
	"notes-client/internal/repository"
)

// Фиксированные сообщения об ошибках, видимые пользователю
const (
	ErrMsgLoad       = "Failed to load notes"
	ErrMsgSave       = "Failed to save notes"
	ErrMsgDelete     = "Failed to delete notes"
	ErrMsgEmptyTitle = "Title cannot be empty"
)

// Controller (view-model) упорядочивает вызовы репозитория и предоставляет
// слою представления состояние: список заметок, признак загрузки, сообщение
// об ошибке и сессию редактора. Состояние защищено мьютексом, наружу выдаются
// только снимки. Зависимости передаются явно через конструктор.
type Controller struct {
	mu             sync.Mutex
	noteRepository repository.NoteRepository
	events         *Events
	state          State
}

// New создает новый экземпляр контроллера
func New(noteRepository repository.NoteRepository, events *Events) *Controller {
	return &Controller{
		noteRepository: noteRepository,
		events:         events,
	}
}

// Snapshot возвращает копию текущего состояния
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// LoadNotes загружает коллекцию заметок из репозитория и заменяет локальный
// список отсортированным результатом. Любая ошибка (неуспешный статус либо
// транспортная) дает одно и то же сообщение о неудачной загрузке.
// Признак загрузки сбрасывается в обоих исходах.
func (c *Controller) LoadNotes(ctx context.Context) {
	c.begin()
	c.reload(ctx, false)
}

// OpenEditor открывает редактор для указанной заметки.
// nil означает режим создания: буферы засеваются пустыми строками,
// иначе — полями заметки на момент открытия.
func (c *Controller) OpenEditor(note *model.Note) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if note != nil {
		copied := *note
		c.state.Editing = &copied
		c.state.TitleBuf = note.Title
		c.state.ContentBuf = note.Content
	} else {
		c.state.Editing = nil
		c.state.TitleBuf = ""
		c.state.ContentBuf = ""
	}
	c.state.EditorOpen = true

	c.publishLocked()
}

// CloseEditor закрывает редактор, отбрасывая содержимое буферов
func (c *Controller) CloseEditor() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeEditorLocked()
	c.publishLocked()
}

// SetBuffers записывает текущее содержимое буферов редактора
func (c *Controller) SetBuffers(title, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.TitleBuf = title
	c.state.ContentBuf = content
	c.publishLocked()
}

// SaveNote сохраняет содержимое буферов редактора: создает новую заметку
// (режим создания) либо обновляет редактируемую. Пустой после обрезки
// заголовок — ошибка валидации, запрос не выполняется. При успехе список
// перечитывается и редактор закрывается; при неудаче редактор остается открыт.
func (c *Controller) SaveNote(ctx context.Context) {
	c.mu.Lock()
	title := strings.TrimSpace(c.state.TitleBuf)
	content := strings.TrimSpace(c.state.ContentBuf)
	if title == "" {
		c.state.Err = ErrMsgEmptyTitle
		c.publishLocked()
		c.mu.Unlock()
		return
	}
	editing := c.state.Editing
	c.state.Loading = true
	c.state.Err = ""
	c.publishLocked()
	c.mu.Unlock()

	var err error
	if editing == nil {
		_, err = c.noteRepository.Create(ctx, title, content)
	} else {
		_, err = c.noteRepository.Update(ctx, editing.ID, title, content)
	}
	if err != nil {
		c.fail(ErrMsgSave)
		return
	}

	c.reload(ctx, true)
}

// DeleteCurrentNote удаляет редактируемую заметку. Если редактор открыт в
// режиме создания либо закрыт, ничего не происходит и запрос не выполняется.
// При успехе список перечитывается и редактор закрывается.
func (c *Controller) DeleteCurrentNote(ctx context.Context) {
	c.mu.Lock()
	editing := c.state.Editing
	c.mu.Unlock()
	if editing == nil {
		return
	}

	c.begin()
	if err := c.noteRepository.Delete(ctx, editing.ID); err != nil {
		c.fail(ErrMsgDelete)
		return
	}

	c.reload(ctx, true)
}

// DismissError очищает слот сообщения об ошибке
func (c *Controller) DismissError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Err = ""
	c.publishLocked()
}

// begin помечает начало запроса: поднимает признак загрузки и очищает
// предыдущую ошибку
func (c *Controller) begin() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = true
	c.state.Err = ""
	c.publishLocked()
}

// fail завершает запрос неудачей: сбрасывает признак загрузки и выставляет
// сообщение об ошибке. Сессию редактора не трогает.
func (c *Controller) fail(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Loading = false
	c.state.Err = msg
	c.publishLocked()
}

// reload перечитывает коллекцию и заменяет локальный список.
// closeEditor дополнительно закрывает редактор (успешный save/delete).
// Признак загрузки сбрасывается в обоих исходах.
func (c *Controller) reload(ctx context.Context, closeEditor bool) {
	notes, err := c.noteRepository.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.publishLocked()

	c.state.Loading = false
	if closeEditor {
		// Мутация уже удалась, редактор закрывается независимо от
		// исхода перечитывания
		c.closeEditorLocked()
	}
	if err != nil {
		c.state.Err = ErrMsgLoad
		return
	}
	sortNotes(notes)
	c.state.Notes = notes
}

func (c *Controller) closeEditorLocked() {
	c.state.Editing = nil
	c.state.TitleBuf = ""
	c.state.ContentBuf = ""
	c.state.EditorOpen = false
}

// snapshotLocked делает глубокую копию состояния. Вызывается под мьютексом.
func (c *Controller) snapshotLocked() State {
	snap := c.state
	snap.Notes = append([]model.Note(nil), c.state.Notes...)
	if c.state.Editing != nil {
		copied := *c.state.Editing
		snap.Editing = &copied
	}
	return snap
}

// publishLocked публикует снимок состояния подписчикам. Вызывается под мьютексом.
func (c *Controller) publishLocked() {
	if c.events != nil {
		c.events.Publish(c.snapshotLocked())
	}
}
