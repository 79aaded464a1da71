// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// pickSnapshot lets the user choose the backup to analyse against its
// predecessor. Returns the 1-based index, or 0 if the user quit without
// choosing. The oldest backup cannot be picked since it has no predecessor.
func pickSnapshot(roots []string) (int, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return 0, fmt.Errorf("--pick needs an interactive terminal")
	}

	p := tea.NewProgram(pickerModel{items: roots, cursor: len(roots) - 1})
	m, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("failed to run picker: %w", err)
	}
	return m.(pickerModel).picked, nil
}

type pickerModel struct {
	items  []string
	cursor int
	picked int
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c":
			m.picked = 0
			return m, tea.Quit
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			// Index 0 is the oldest backup; nothing precedes it.
			if m.cursor > 0 {
				m.picked = m.cursor + 1
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := "Select the backup to diff with its predecessor:\n\n"
	for i, root := range m.items {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		s += fmt.Sprintf("%s %3d %s\n", cursor, i+1, root)
	}
	return s + "\nENTER: go, Q/ESCAPE: quit\n"
}
