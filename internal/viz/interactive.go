package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	errMsg = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Launcher builds a live model for the named scene.
type Launcher func(name string) (Model, error)

const (
	stateMenu = iota
	stateSim
)

// Picker lists scenes and hands the chosen one to a live Model.
type Picker struct {
	state  int
	cursor int
	scenes []string
	info   map[string]string
	launch Launcher
	err    error
	live   Model
}

func NewPicker(scenes []string, info map[string]string, launch Launcher) Picker {
	return Picker{scenes: scenes, info: info, launch: launch}
}

func (p Picker) Init() tea.Cmd { return nil }

func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if p.state == stateSim {
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			p.state = stateMenu
			return p, nil
		}
		next, cmd := p.live.Update(msg)
		p.live = next.(Model)
		return p, cmd
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch key.String() {
	case "q", "ctrl+c":
		return p, tea.Quit
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.scenes)-1 {
			p.cursor++
		}
	case "enter", " ":
		if len(p.scenes) == 0 {
			return p, nil
		}
		live, err := p.launch(p.scenes[p.cursor])
		if err != nil {
			p.err = err
			return p, nil
		}
		p.err = nil
		p.live, p.state = live, stateSim
		return p, live.Init()
	}
	return p, nil
}

func (p Picker) View() string {
	if p.state == stateSim {
		return p.live.View() + "\n" + dim.Render("esc: back to scenes")
	}

	var b strings.Builder
	b.WriteString(headerStyle().Render("GRAVSIM") + "\n")
	for i, name := range p.scenes {
		line := fmt.Sprintf("%-10s %s", name, dim.Render(p.info[name]))
		if i == p.cursor {
			b.WriteString(lipgloss.NewStyle().Foreground(CurrentTheme.Accent).Render("> ") + white.Render(line) + "\n")
		} else {
			b.WriteString("  " + line + "\n")
		}
	}
	if p.err != nil {
		b.WriteString("\n" + errMsg.Render(p.err.Error()) + "\n")
	}
	b.WriteString("\n" + KeyHint.Render("↑↓ select  enter run  q quit"))
	return b.String()
}

// RunPicker starts the scene menu and blocks until it exits.
func RunPicker(p Picker) error {
	_, err := tea.NewProgram(p, tea.WithAltScreen()).Run()
	return err
}
