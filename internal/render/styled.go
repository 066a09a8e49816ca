package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bridge-torch-service/internal/domain"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorRed   = lipgloss.Color("167")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")

	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleForward = lipgloss.NewStyle().Foreground(colorGreen)
	styleBack    = lipgloss.NewStyle().Foreground(colorGray)
	styleDim     = lipgloss.NewStyle().Foreground(colorDim)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
)

// WriteStyled writes the solution for a terminal. With timeline set each
// step also shows its clock window and who is left on the start bank.
func WriteStyled(w io.Writer, times []int, sol *domain.Solution, timeline bool) error {
	var b strings.Builder

	if sol == nil {
		b.WriteString(styleError.Render(noSolution))
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(styleTitle.Render("Minimal total time: "))
	b.WriteString(styleNumber.Render(fmt.Sprint(sol.TotalTime)))
	b.WriteByte('\n')

	frames := Timeline(len(times), sol)
	for i, st := range sol.Steps {
		arrow := styleForward.Render(st.Direction.Arrow())
		if st.Direction == domain.Backward {
			arrow = styleBack.Render(st.Direction.Arrow())
		}

		fmt.Fprintf(&b, "%s %s %s %s",
			styleDim.Render(fmt.Sprintf("Step %d:", i+1)),
			participants(st, times),
			arrow,
			styleNumber.Render(fmt.Sprintf("time %d", st.Duration)),
		)
		if timeline {
			f := frames[i]
			bank := "empty"
			if len(f.OnStart) > 0 {
				bank = personLabels(f.OnStart, times)
			}
			fmt.Fprintf(&b, " %s", styleDim.Render(fmt.Sprintf("[t=%d..%d, start bank: %s]", f.Start, f.End, bank)))
		}
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
