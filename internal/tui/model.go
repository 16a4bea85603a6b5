package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"notes-client/internal/controller"
	"notes-client/internal/model"
)

type uiState int

const (
	stateList uiState = iota
	stateEdit
)

type listItem struct {
	note model.Note
}

func (i listItem) FilterValue() string { return i.note.Title }

func (i listItem) Title() string { return i.note.Title }

func (i listItem) Description() string {
	if i.note.UpdatedAt.IsZero() {
		return "Updated: unknown"
	}
	return "Updated: " + i.note.UpdatedAt.Format("2006-01-02 15:04")
}

// snapshotMsg доставляет снимок состояния контроллера в цикл обновления
type snapshotMsg controller.State

// opDoneMsg сигнализирует о завершении фоновой операции контроллера
type opDoneMsg struct{}

// Model представляет состояние терминального интерфейса.
// Рендеринг идет исключительно из снимков контроллера; действия пользователя
// диспатчатся контроллеру как tea.Cmd и возвращаются в цикл сообщением.
type Model struct {
	ctrl *controller.Controller
	sub  chan controller.State
	snap controller.State

	state        uiState
	list         list.Model
	titleInput   textinput.Model
	contentInput textarea.Model

	width  int
	height int
}

// New создает модель интерфейса поверх контроллера и его канала снимков
func New(ctrl *controller.Controller, sub chan controller.State) Model {
	ti := textinput.New()
	ti.Placeholder = "title"
	ti.CharLimit = 120
	ti.Width = 40

	ta := textarea.New()
	ta.Placeholder = "content..."

	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Notes"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return Model{
		ctrl:         ctrl,
		sub:          sub,
		state:        stateList,
		list:         l,
		titleInput:   ti,
		contentInput: ta,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.dispatch(m.ctrl.LoadNotes), m.waitForSnapshot())
}

// waitForSnapshot ждет следующий снимок состояния от контроллера
func (m Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.sub
		if !ok {
			return tea.QuitMsg{}
		}
		return snapshotMsg(snap)
	}
}

// dispatch выполняет операцию контроллера вне цикла рендеринга.
// Результат возвращается в интерфейс через канал снимков.
func (m Model) dispatch(op func(context.Context)) tea.Cmd {
	return func() tea.Msg {
		op(context.Background())
		return opDoneMsg{}
	}
}

// saveCmd синхронизирует буферы редактора с контроллером и сохраняет
func (m Model) saveCmd() tea.Cmd {
	title := m.titleInput.Value()
	content := m.contentInput.Value()
	return m.dispatch(func(ctx context.Context) {
		m.ctrl.SetBuffers(title, content)
		m.ctrl.SaveNote(ctx)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(msg.Width - 4)
		m.list.SetHeight(msg.Height - 6)
		m.titleInput.Width = msg.Width - 10
		m.contentInput.SetWidth(msg.Width - 6)
		m.contentInput.SetHeight(msg.Height - 10)
		return m, nil

	case snapshotMsg:
		return m.applySnapshot(controller.State(msg))

	case opDoneMsg:
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateList:
			return m.updateList(msg)
		case stateEdit:
			return m.updateEdit(msg)
		}
	}

	return m, nil
}

// applySnapshot переводит интерфейс в состояние, описанное снимком
func (m Model) applySnapshot(snap controller.State) (tea.Model, tea.Cmd) {
	editorJustOpened := snap.EditorOpen && !m.snap.EditorOpen
	m.snap = snap

	items := make([]list.Item, len(snap.Notes))
	for i, note := range snap.Notes {
		items[i] = listItem{note: note}
	}
	m.list.SetItems(items)

	if snap.EditorOpen {
		m.state = stateEdit
		if editorJustOpened {
			// Засеваем поля ввода из буферов сессии редактора
			m.titleInput.SetValue(snap.TitleBuf)
			m.contentInput.SetValue(snap.ContentBuf)
			m.titleInput.Focus()
			m.contentInput.Blur()
		}
	} else {
		m.state = stateList
	}

	return m, m.waitForSnapshot()
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		return m, m.dispatch(m.ctrl.LoadNotes)
	case "n":
		m.ctrl.OpenEditor(nil)
		return m, nil
	case "esc":
		if m.snap.Err != "" {
			m.ctrl.DismissError()
		}
		return m, nil
	case "enter":
		if item, ok := m.list.SelectedItem().(listItem); ok {
			note := item.note
			m.ctrl.OpenEditor(&note)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		if m.snap.Err != "" {
			m.ctrl.DismissError()
			return m, nil
		}
		m.ctrl.CloseEditor()
		return m, nil
	case "ctrl+s":
		return m, m.saveCmd()
	case "ctrl+d":
		return m, m.dispatch(m.ctrl.DeleteCurrentNote)
	case "tab":
		if m.titleInput.Focused() {
			m.titleInput.Blur()
			m.contentInput.Focus()
		} else {
			m.contentInput.Blur()
			m.titleInput.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.titleInput.Focused() {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}
