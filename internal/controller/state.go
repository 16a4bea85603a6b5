package controller

import (
	"sort"

	"notes-client/internal/model"
)

// State снимок состояния контроллера, видимого слою представления.
// Снимок иммутабелен: слайс заметок и редактируемая заметка копируются
// при каждой публикации.
type State struct {
	Notes      []model.Note // Список заметок, отсортирован по UpdatedAt по убыванию
	Loading    bool         // Признак выполняющегося запроса
	Err        string       // Сообщение об ошибке (один слот, пустая строка = нет ошибки)
	EditorOpen bool         // Открыт ли редактор
	Editing    *model.Note  // Редактируемая заметка, nil = режим создания
	TitleBuf   string       // Буфер заголовка редактора
	ContentBuf string       // Буфер содержания редактора
}

// sortNotes сортирует заметки по временной метке по убыванию (свежие первыми)
func sortNotes(notes []model.Note) {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}
