package flagart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Render draws f into a width x height block. Flags with a design are
// painted as colored bands; the rest fall back to a framed emoji.
func Render(f Flag, width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}

	if f.Design != nil {
		return renderStripes(*f.Design, width, height)
	}

	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center)

	body := f.Emoji
	if body == "" {
		body = "?"
	}
	return frame.Render(body)
}

// Placeholder is shown when a code has no drawable flag.
func Placeholder(code string, width, height int) string {
	if width < 4 {
		width = 4
	}
	if height < 2 {
		height = 2
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("245")).
		Foreground(lipgloss.Color("245")).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render("Flag not found for " + code)
}

func renderStripes(d Design, width, height int) string {
	n := len(d.Colors)
	band := func(i int) lipgloss.Style {
		return lipgloss.NewStyle().Background(lipgloss.Color(d.Colors[i]))
	}

	rows := make([]string, height)
	switch d.Layout {
	case LayoutVertical:
		var line strings.Builder
		for i := 0; i < n; i++ {
			w := bandSize(width, n, i)
			line.WriteString(band(i).Render(strings.Repeat(" ", w)))
		}
		for y := range rows {
			rows[y] = line.String()
		}
	default:
		y := 0
		for i := 0; i < n; i++ {
			h := bandSize(height, n, i)
			for j := 0; j < h && y < height; j++ {
				rows[y] = band(i).Render(strings.Repeat(" ", width))
				y++
			}
		}
	}
	return strings.Join(rows, "\n")
}

// bandSize splits total into n near-equal parts, giving the remainder to
// the leading bands.
func bandSize(total, n, i int) int {
	size := total / n
	if i < total%n {
		size++
	}
	return size
}
