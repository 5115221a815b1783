package diagram

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosas/internal/section"
	"github.com/alexiusacademia/gosas/internal/stress"
	"github.com/guptarohit/asciigraph"
)

var sectionArt = map[section.Shape]string{
	section.IBeam: `
  <-- b -->
t  XXXXXXXX  |
      XX     |
e---->XX     h
      XX     |
   XXXXXXXX  |`,
	section.TBeam: `
   <-- b -->
t  XXXXXXXX  |
      XX     |
e---->XX     h
      XX     |
      XX     |`,
	section.Rectangle: `
  <-- b -->
  XXXXXXXX  |
  XXXXXXXX  |
  XXXXXXXX  h
  XXXXXXXX  |
  XXXXXXXX  |`,
	section.HollowRectangle: `
     <-- b -->
e-->XXXXXXXX  |
    XX    XX  |
t-->XX    XX  h
    XX    XX  |
    XXXXXXXX  |`,
	section.Circle: `
       |-r-->
     xxxx
  xXXXXXXXXx
 xXXXXXXXXXXx
 xXXXXXXXXXXx
  xXXXXXXXXx
     xXXx`,
	section.HollowCircle: `
       |-r-->
     x  x
  x        x
 x          x <-- e
 x          x
  x        x
     x  x`,
}

// SectionArt returns a dimensioned ASCII sketch of shape
func SectionArt(shape section.Shape) string {
	art, ok := sectionArt[shape]
	if !ok {
		return ""
	}
	return strings.TrimPrefix(art, "\n")
}

// CurveChart draws the stress-strain sample as a terminal line chart.
// The vertical axis is stress (MPa); strain runs left to right from 0 to the
// curve's maximum strain.
func CurveChart(c stress.Curve, width, height int) string {
	return asciigraph.Plot(c.Stresses(),
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(0),
		asciigraph.Caption(fmt.Sprintf("Stress (MPa) vs strain 0 .. %g", c.MaxStrain())),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		if n := len([]rune(line)); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// pad right-pads s to width runes; %-*s counts bytes and misaligns "²"
func pad(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
