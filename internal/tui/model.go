// Package tui implements the interactive terminal shell: pick a material and
// a section, enter dimensions and a force, and read the computed response.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexiusacademia/gosas/internal/material"
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type step int

const (
	stepMaterial step = iota
	stepSection
	stepDimensions
	stepForce
	stepResult
)

// Options seeds the shell with its initial selections
type Options struct {
	Material   material.ID
	Shape      section.Shape
	Dimensions section.Dimensions // overrides the shape defaults
	Force      float64            // N
	MaxStrain  float64
	Points     int
}

// Model is the bubbletea model of the shell
type Model struct {
	opts Options

	step      step
	materials []material.Material
	shapes    []section.Shape
	matCursor int
	secCursor int

	params []section.Param
	inputs []textinput.Model
	focus  int
	force  textinput.Model

	result *stress.Result
	curve  stress.Curve
	err    error

	styles Styles
	width  int
}

// New creates the shell model
func New(opts Options) Model {
	if opts.MaxStrain <= 0 {
		opts.MaxStrain = stress.DefaultMaxStrain
	}
	if opts.Points < 2 {
		opts.Points = stress.DefaultPoints
	}
	if opts.Force <= 0 {
		opts.Force = stress.ForceLimit.Default
	}

	m := Model{
		opts:      opts,
		materials: material.All(),
		shapes:    section.Shapes(),
		styles:    DefaultStyles(),
		width:     80,
	}
	for i, mat := range m.materials {
		if mat.ID == opts.Material {
			m.matCursor = i
		}
	}
	for i, s := range m.shapes {
		if s == opts.Shape {
			m.secCursor = i
		}
	}

	m.force = newInput("Applied Force (N)", opts.Force)
	return m
}

func newInput(placeholder string, value float64) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 16
	ti.Width = 16
	ti.SetValue(strconv.FormatFloat(value, 'g', -1, 64))
	return ti
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Material returns the highlighted material
func (m Model) Material() material.Material {
	return m.materials[m.matCursor]
}

// Shape returns the highlighted section shape
func (m Model) Shape() section.Shape {
	return m.shapes[m.secCursor]
}

// Result returns the last computed result, nil before the first computation
func (m Model) Result() *stress.Result {
	return m.result
}

// Err returns the error shown on the current step, if any
func (m Model) Err() error {
	return m.err
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.step {
		case stepMaterial:
			cmd := m.updateList(msg, &m.matCursor, len(m.materials))
			return m, cmd
		case stepSection:
			cmd := m.updateList(msg, &m.secCursor, len(m.shapes))
			return m, cmd
		case stepDimensions:
			return m.updateDimensions(msg)
		case stepForce:
			return m.updateForce(msg)
		case stepResult:
			return m.updateResult(msg)
		}
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg, cursor *int, n int) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if *cursor > 0 {
			*cursor--
		}
	case "down", "j":
		if *cursor < n-1 {
			*cursor++
		}
	case "esc":
		if m.step > stepMaterial {
			m.step--
		}
	case "enter":
		m.err = nil
		if m.step == stepSection {
			m.prepareDimensions()
		}
		m.step++
	}
	return nil
}

// prepareDimensions builds one input per parameter of the chosen shape,
// pre-filled with the configured value or the shape default
func (m *Model) prepareDimensions() {
	shape := m.Shape()
	dims := section.Defaults(shape)
	for p, v := range m.opts.Dimensions {
		if _, ok := dims[p]; ok {
			dims[p] = v
		}
	}

	m.params = section.RequiredDimensions(shape)
	m.inputs = make([]textinput.Model, len(m.params))
	for i, p := range m.params {
		m.inputs[i] = newInput(shape.Label(p), dims[p])
	}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m Model) updateDimensions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.err = nil
		m.step = stepSection
		return m, nil
	case "tab", "down":
		m.setFocus((m.focus + 1) % len(m.inputs))
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
		return m, nil
	case "enter":
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		if _, err := m.instance(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		m.inputs[m.focus].Blur()
		m.force.Focus()
		m.step = stepForce
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m Model) instance() (section.Instance, error) {
	dims := make(section.Dimensions, len(m.params))
	for i, p := range m.params {
		v, err := parseValue(m.inputs[i].Value())
		if err != nil {
			return section.Instance{}, fmt.Errorf("%s: %w", m.Shape().Label(p), err)
		}
		dims[p] = v
	}
	return section.NewInstance(m.Shape(), dims)
}

func (m Model) updateForce(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.err = nil
		m.force.Blur()
		m.inputs[m.focus].Focus()
		m.step = stepDimensions
		return m, nil
	case "enter":
		m.compute()
		return m, nil
	}

	var cmd tea.Cmd
	m.force, cmd = m.force.Update(msg)
	return m, cmd
}

func (m *Model) compute() {
	force, err := parseValue(m.force.Value())
	if err != nil {
		m.err = fmt.Errorf("force: %w", err)
		return
	}
	inst, err := m.instance()
	if err != nil {
		m.err = err
		return
	}
	res, err := stress.Analyze(stress.Input{Material: m.Material(), Section: inst, Force: force})
	if err != nil {
		m.err = err
		return
	}
	curve, err := res.Curve(m.opts.MaxStrain, m.opts.Points)
	if err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.result = res
	m.curve = curve
	m.force.Blur()
	m.step = stepResult
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.force.Focus()
		m.step = stepForce
	case "r":
		m.step = stepMaterial
	}
	return m, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	return v, nil
}

// Run starts the shell on the terminal and blocks until the user quits
func Run(opts Options) error {
	_, err := tea.NewProgram(New(opts), tea.WithAltScreen()).Run()
	return err
}
