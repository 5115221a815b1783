package tui

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosas/internal/diagram"
	"github.com/alexiusacademia/gosas/internal/report"
	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the shell's lipgloss styles
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
}

// DefaultStyles returns the shell's color scheme
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#101F38")).Background(lipgloss.Color("#b3cde0")).Padding(0, 1),
		Header:   lipgloss.NewStyle().Bold(true).Underline(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196F3")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("#8a8f98")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935")),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFC107")),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Label:    lipgloss.NewStyle().Width(18),
	}
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render("Structural Stress & Strain Analyzer"))
	sb.WriteString("\n\n")

	switch m.step {
	case stepMaterial:
		sb.WriteString(m.viewMaterials())
	case stepSection:
		sb.WriteString(m.viewSections())
	case stepDimensions:
		sb.WriteString(m.viewDimensions())
	case stepForce:
		sb.WriteString(m.viewForce())
	case stepResult:
		sb.WriteString(m.viewResult())
	}

	if m.err != nil {
		sb.WriteString("\n")
		sb.WriteString(m.styles.Error.Render("Error: " + m.err.Error()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(m.help()))
	return sb.String()
}

func (m Model) help() string {
	switch m.step {
	case stepMaterial:
		return "↑/↓ select • enter confirm • q quit"
	case stepSection:
		return "↑/↓ select • enter confirm • esc back • q quit"
	case stepDimensions:
		return "tab/↑/↓ move • enter next • esc back • ctrl+c quit"
	case stepForce:
		return "enter compute • esc back • ctrl+c quit"
	default:
		return "b back • r restart • q quit"
	}
}

func (m Model) viewMaterials() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Select Material"))
	sb.WriteString("\n")
	for i, mat := range m.materials {
		sb.WriteString(m.item(i == m.matCursor, mat.Name))
	}
	sb.WriteString("\n")
	sb.WriteString(m.materialCard())
	return sb.String()
}

func (m Model) viewSections() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Select Section Type"))
	sb.WriteString("\n")
	for i, s := range m.shapes {
		sb.WriteString(m.item(i == m.secCursor, s.String()))
	}
	sb.WriteString("\n")
	sb.WriteString(diagram.SectionArt(m.Shape()))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) item(selected bool, text string) string {
	if selected {
		return m.styles.Selected.Render("› "+text) + "\n"
	}
	return "  " + text + "\n"
}

func (m Model) viewDimensions() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render(fmt.Sprintf("Section Dimensions: %s", m.Shape())))
	sb.WriteString("\n")
	sb.WriteString(diagram.SectionArt(m.Shape()))
	sb.WriteString("\n\n")
	for i, p := range m.params {
		sb.WriteString(m.styles.Label.Render(m.Shape().Label(p)))
		sb.WriteString(m.inputs[i].View())
		sb.WriteString(" mm")
		if l, ok := section.InputLimit(m.Shape(), p); ok {
			sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  [%g – %g]", l.Min, l.Max)))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m Model) viewForce() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Basic Calculations"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Label.Render("Applied Force (N)"))
	sb.WriteString(m.force.View())
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("  [%g – %g]", stress.ForceLimit.Min, stress.ForceLimit.Max)))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) viewResult() string {
	res := m.result

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("Material Properties"),
		m.materialCard(),
		m.styles.Header.Render("Stress-Strain Curve"),
		diagram.CurveChart(m.curve, m.chartWidth(), 8),
	)

	var results strings.Builder
	for _, l := range report.Result(res) {
		results.WriteString(m.styles.Label.Render(l.Label))
		results.WriteString(l.Value)
		results.WriteString("\n")
	}
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render(fmt.Sprintf("Cross Section: %s", m.Shape())),
		diagram.SectionArt(m.Shape()),
		"",
		m.styles.Header.Render("Results"),
		m.styles.Card.Render(strings.TrimRight(results.String(), "\n")),
		m.warnings(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right) + "\n"
}

func (m Model) chartWidth() int {
	return min(60, max(20, m.width/2-12))
}

// warnings flags inputs outside the ranges the shell offers
func (m Model) warnings() string {
	inst, err := m.instance()
	if err != nil {
		return ""
	}
	var out []string
	for _, p := range section.OutOfRange(inst.Shape, inst.Dimensions) {
		out = append(out, fmt.Sprintf("%s is outside the usual range", m.Shape().Label(p)))
	}
	if m.result != nil && !stress.ForceLimit.Contains(m.result.Force) {
		out = append(out, "Applied force is outside the usual range")
	}
	if len(out) == 0 {
		return ""
	}
	return m.styles.Warning.Render(strings.Join(out, "\n"))
}

func (m Model) materialCard() string {
	var sb strings.Builder
	for _, l := range report.Material(m.Material()) {
		sb.WriteString(m.styles.Label.Render(l.Label))
		sb.WriteString(l.Value)
		sb.WriteString("\n")
	}
	card := m.styles.Card.BorderForeground(lipgloss.Color(m.Material().Color))
	return card.Render(strings.TrimRight(sb.String(), "\n"))
}
