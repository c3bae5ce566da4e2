package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wordspace/internal/domain"
)

// ScenePort is the TUI-facing subset of the scene service.
type ScenePort interface {
	AddWord(raw string) (domain.SceneView, error)
	Select(raw string) (domain.SceneView, error)
	ClearSelection() domain.SceneView
	View() domain.SceneView
}

// Model is the Bubble Tea model for the visualizer.
type Model struct {
	service ScenePort
	input   textinput.Model
	scene   domain.SceneView
	status  string
	width   int
	height  int
	ready   bool
	busy    bool
}

// sceneMsg carries the scene state produced by a background command.
type sceneMsg struct {
	view   domain.SceneView
	status string
}

// New creates a new TUI model over an already-seeded scene service.
func New(service ScenePort) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a word and press Enter"
	ti.Focus()
	ti.CharLimit = 64
	scene := service.View()
	return Model{
		service: service,
		input:   ti,
		scene:   scene,
		status:  fmt.Sprintf("%d words loaded. Enter a new word to place it, an existing one to highlight it.", len(scene.Words)),
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case sceneMsg:
		m.busy = false
		m.scene = msg.view
		m.status = msg.status
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		switch msg.String() {
		case "enter":
			raw := strings.TrimSpace(m.input.Value())
			if raw != "" && !m.busy {
				m.busy = true
				m.status = fmt.Sprintf("Working on %q...", raw)
				m.input.SetValue("")
				return m, submitWordCmd(m.service, m.scene, raw)
			}
		case "esc":
			view := m.service.ClearSelection()
			m.scene = view
			m.status = "Selection cleared."
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submitWordCmd adds raw as a new word, or toggles its selection when
// it already exists. Embedding and layout calls run off the UI loop.
func submitWordCmd(service ScenePort, scene domain.SceneView, raw string) tea.Cmd {
	exists := false
	for _, w := range scene.Words {
		if strings.EqualFold(w.Word, raw) {
			exists = true
			break
		}
	}
	return func() tea.Msg {
		if exists {
			view, err := service.Select(raw)
			if err != nil {
				return sceneMsg{view: view, status: "Error: " + err.Error()}
			}
			if view.ActiveWord == "" {
				return sceneMsg{view: view, status: fmt.Sprintf("%q deselected.", raw)}
			}
			return sceneMsg{view: view, status: fmt.Sprintf("Highlighting the %d nearest neighbors of %q.", len(view.Highlighted), view.ActiveWord)}
		}
		view, err := service.AddWord(raw)
		if err != nil {
			return sceneMsg{view: view, status: "Error: " + err.Error()}
		}
		return sceneMsg{view: view, status: fmt.Sprintf("Added %q (%d words, encoder %s).", view.ActiveWord, len(view.Words), view.Provider)}
	}
}

// View renders the scene plot, the input box and the status line.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := headerStyle.Render("wordspace") + "  " +
		dimStyle.Render(fmt.Sprintf("%d words · encoder %s", len(m.scene.Words), m.scene.Provider))

	_, ch := canvasStyle.GetFrameSize()
	_, qh := queryBoxStyle.GetFrameSize()
	reserved := 1 + 1 + ch + qh + 1 // header + spacer + frames + status
	plotHeight := m.height - reserved
	if plotHeight < 5 {
		plotHeight = 5
	}
	plotWidth := m.width - 4
	if plotWidth < 20 {
		plotWidth = 20
	}
	canvas := canvasStyle.Render(renderScene(m.scene, plotWidth, plotHeight))
	input := queryBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + canvas + "\n" + input + "\n" + status
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	canvasStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	neighborStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)

	// depth ramp: far words render darker, near words brighter
	depthStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	}
)

// renderScene draws the projected words on a width x height cell grid.
// X/Y map to columns/rows and Z picks the depth color.
func renderScene(scene domain.SceneView, width, height int) string {
	if len(scene.Words) < 2 {
		return centerLine("Add at least two words to lay out the scene.", width, height)
	}
	if !scene.LayoutReady {
		return centerLine("Waiting for the layout service...", width, height)
	}

	minX, maxX := scene.Words[0].Coordinate.X, scene.Words[0].Coordinate.X
	minY, maxY := scene.Words[0].Coordinate.Y, scene.Words[0].Coordinate.Y
	minZ, maxZ := scene.Words[0].Coordinate.Z, scene.Words[0].Coordinate.Z
	for _, w := range scene.Words[1:] {
		minX, maxX = minMax(minX, maxX, w.Coordinate.X)
		minY, maxY = minMax(minY, maxY, w.Coordinate.Y)
		minZ, maxZ = minMax(minZ, maxZ, w.Coordinate.Z)
	}

	highlighted := make(map[int]bool, len(scene.Highlighted))
	for _, idx := range scene.Highlighted {
		highlighted[idx] = true
	}

	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}
	for idx, w := range scene.Words {
		col := scaleTo(w.Coordinate.X, minX, maxX, width-1)
		row := scaleTo(w.Coordinate.Y, minY, maxY, height-1)
		style := depthStyle(w.Coordinate.Z, minZ, maxZ)
		label := w.Word
		switch {
		case w.Word == scene.ActiveWord:
			style = activeStyle
			label = "◆" + label
		case highlighted[idx]:
			style = neighborStyle
			label = "·" + label
		}
		placeLabel(grid[row], col, label, style)
	}

	rows := make([]string, height)
	for r := range grid {
		rows[r] = strings.TrimRight(strings.Join(grid[r], ""), " ")
	}
	return strings.Join(rows, "\n")
}

func placeLabel(row []string, col int, label string, style lipgloss.Style) {
	runes := []rune(label)
	if col+len(runes) > len(row) {
		col = len(row) - len(runes)
	}
	if col < 0 {
		col = 0
	}
	for i, r := range runes {
		if col+i >= len(row) {
			break
		}
		row[col+i] = style.Render(string(r))
	}
}

func depthStyle(z, minZ, maxZ float64) lipgloss.Style {
	return depthStyles[scaleTo(z, minZ, maxZ, len(depthStyles)-1)]
}

func scaleTo(v, min, max float64, upper int) int {
	if max == min {
		return upper / 2
	}
	pos := int((v - min) / (max - min) * float64(upper))
	if pos < 0 {
		pos = 0
	}
	if pos > upper {
		pos = upper
	}
	return pos
}

func minMax(lo, hi, v float64) (float64, float64) {
	if v < lo {
		lo = v
	}
	if v > hi {
		hi = v
	}
	return lo, hi
}

func centerLine(text string, width, height int) string {
	pad := (width - len(text)) / 2
	if pad < 0 {
		pad = 0
	}
	lines := make([]string, height)
	lines[height/2] = strings.Repeat(" ", pad) + dimStyle.Render(text)
	return strings.Join(lines, "\n")
}
