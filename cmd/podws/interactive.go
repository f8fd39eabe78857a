package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/SplashZ/CocoaPods/internal/manifest"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if m.validate != nil {
				if err := m.validate(m.textInput.Value()); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- confirmModel: bubbletea model for yes/no confirmation ---

type confirmModel struct {
	title   string
	value   bool
	done    bool
	aborted bool
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "y", "Y":
			m.value = true
			m.done = true
			return m, tea.Quit
		case "n", "N":
			m.value = false
			m.done = true
			return m, tea.Quit
		case "left", "right", "tab", "h", "l":
			m.value = !m.value
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}
	yes, no := " Yes ", " No "
	if m.value {
		yes = selectedStyle.Render(yes)
	} else {
		no = selectedStyle.Render(no)
	}
	return fmt.Sprintf("%s %s / %s\n", titleStyle.Render(m.title), yes, no)
}

// --- prompt helpers ---

func promptInput(title, initial string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.SetValue(initial)
	ti.Focus()

	result, err := tea.NewProgram(inputModel{textInput: ti, title: title, validate: validate}).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return strings.TrimSpace(rm.textInput.Value()), nil
}

func promptConfirm(title string) (bool, error) {
	result, err := tea.NewProgram(confirmModel{title: title}).Run()
	if err != nil {
		return false, err
	}
	rm := result.(confirmModel)
	if rm.aborted {
		return false, fmt.Errorf("user aborted")
	}
	return rm.value, nil
}

// interactiveManifest asks for the user project, aggregate target name,
// dependencies and an optional workspace path.
func interactiveManifest(candidates []string) (*manifest.Manifest, error) {
	initial := "App.xcodeproj"
	if len(candidates) > 0 {
		initial = candidates[0]
		fmt.Printf("  Found projects: %s\n", strings.Join(candidates, ", "))
	}
	project, err := promptInput("User project", initial, validateProject)
	if err != nil {
		return nil, err
	}

	target, err := promptInput("Aggregate target name", defaultTargetName(project), validateTargetName)
	if err != nil {
		return nil, err
	}

	deps, err := promptInput("Dependencies (comma separated, empty for none)", "", nil)
	if err != nil {
		return nil, err
	}

	var ws string
	declare, err := promptConfirm("Declare a workspace path?")
	if err != nil {
		return nil, err
	}
	if declare {
		ws, err = promptInput("Workspace path", strings.TrimSuffix(filepath.Base(project), ".xcodeproj"), validateTargetName)
		if err != nil {
			return nil, err
		}
	}

	return buildManifest(project, target, ws, splitList(deps)), nil
}

func validateProject(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("user project is required")
	}
	if filepath.Ext(s) != ".xcodeproj" {
		return fmt.Errorf("user project must end in .xcodeproj")
	}
	if filepath.IsAbs(s) {
		return fmt.Errorf("user project must be relative to the Podfile directory")
	}
	return nil
}

func validateTargetName(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("a name is required")
	}
	return nil
}

// defaultTargetName mirrors CocoaPods naming: Pods-<project name>.
func defaultTargetName(project string) string {
	return "Pods-" + strings.TrimSuffix(filepath.Base(project), filepath.Ext(project))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// buildManifest assembles a single-target manifest.
func buildManifest(project, target, ws string, deps []string) *manifest.Manifest {
	name := strings.TrimSuffix(filepath.Base(project), filepath.Ext(project))
	return &manifest.Manifest{
		Version:   1,
		Workspace: ws,
		Targets: []manifest.Target{{
			Name:         target,
			Definition:   name,
			Dependencies: deps,
			UserProject:  filepath.ToSlash(project),
			UserTargets:  []manifest.UserTarget{{Name: name}},
		}},
	}
}
