package main

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// pagerModel scrolls a block of pre-rendered text (help or version output)
// inside the terminal window. It replaces a bare fmt.Println so that help
// text longer than the screen doesn't scroll past before it can be read.
type pagerModel struct {
	lines  []string
	offset int
	height int
}

func newPager(text string) *pagerModel {
	return &pagerModel{lines: strings.Split(text, "\n"), height: 24}
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "down", "j":
			m.scroll(1)
		case "up", "k":
			m.scroll(-1)
		case "pgdown", " ":
			m.scroll(m.height - 1)
		case "pgup":
			m.scroll(-(m.height - 1))
		case "g":
			m.offset = 0
		case "G":
			m.offset = m.maxOffset()
		}
	}

	return m, nil
}

func (m *pagerModel) View() string {
	end := m.offset + m.height
	if end > len(m.lines) {
		end = len(m.lines)
	}

	return strings.Join(m.lines[m.offset:end], "\n")
}

func (m *pagerModel) scroll(n int) {
	m.offset += n

	if m.offset < 0 {
		m.offset = 0
	}

	if max := m.maxOffset(); m.offset > max {
		m.offset = max
	}
}

func (m *pagerModel) maxOffset() int {
	if len(m.lines) <= m.height {
		return 0
	}

	return len(m.lines) - m.height
}
