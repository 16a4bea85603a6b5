package tui

import "strings"

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("notes"))
	if m.snap.Loading {
		s.WriteString("  " + loadingStyle.Render("loading..."))
	}
	s.WriteString("\n\n")

	switch m.state {
	case stateList:
		s.WriteString(m.list.View())
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("n:new  enter:edit  r:reload  q:quit"))

	case stateEdit:
		if m.snap.Editing != nil {
			s.WriteString(helpStyle.Render("editing " + m.snap.Editing.ID))
		} else {
			s.WriteString(helpStyle.Render("new note"))
		}
		s.WriteString("\n\n")
		s.WriteString(m.titleInput.View())
		s.WriteString("\n\n")
		s.WriteString(m.contentInput.View())
		s.WriteString("\n\n")
		if m.snap.Editing != nil {
			s.WriteString(helpStyle.Render("ctrl+s:save  ctrl+d:delete  tab:switch field  esc:close"))
		} else {
			s.WriteString(helpStyle.Render("ctrl+s:save  tab:switch field  esc:close"))
		}
	}

	if m.snap.Err != "" {
		s.WriteString("\n")
		s.WriteString(errorStyle.Render(m.snap.Err))
		s.WriteString("\n")
		s.WriteString(helpStyle.Render("esc: dismiss"))
	}

	return s.String()
}
