// Package render writes size listings for the terminal.
package render

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/dennisklein/size"
)

const (
	sizeWidth = 12
	barWidth  = 20
)

var (
	sizeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	totalSizeStyle = sizeStyle.Bold(true)
	labelStyle     = lipgloss.NewStyle()
	totalStyle     = lipgloss.NewStyle().Bold(true)
	shareStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(5).Align(lipgloss.Right)
)

// Renderer writes one row per size, formatted with a size.Formatter.
//
//nolint:govet // fieldalignment: readability preferred over minor memory optimization
type Renderer struct {
	out       io.Writer
	formatter size.Formatter
	bar       progress.Model
}

// New creates a renderer writing to out.
func New(out io.Writer, formatter size.Formatter) *Renderer {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)

	return &Renderer{out: out, formatter: formatter, bar: bar}
}

// Size formats s without styling.
func (r *Renderer) Size(s size.Size) string {
	return r.formatter.Format(s.Bytes())
}

// column right-aligns the formatted size. Long spellings such as
// "1.50 Megabytes" widen the column instead of wrapping.
func (r *Renderer) column(s size.Size, style lipgloss.Style) string {
	return style.Render(fmt.Sprintf("%*s", sizeWidth, r.Size(s)))
}

// SizeRow writes "size  label".
func (r *Renderer) SizeRow(label string, s size.Size) error {
	return r.printf("%s  %s\n", r.column(s, sizeStyle), labelStyle.Render(label))
}

// ShareRow writes a row with a bar showing the fraction of total that s
// takes up.
func (r *Renderer) ShareRow(label string, s, total size.Size) error {
	fraction := Fraction(s, total)

	return r.printf("%s  %s %s  %s\n",
		r.column(s, sizeStyle),
		r.bar.ViewAs(fraction),
		shareStyle.Render(fmt.Sprintf("%.0f%%", fraction*100)),
		labelStyle.Render(label),
	)
}

// TotalRow writes a bold summary row preceded by an empty line.
func (r *Renderer) TotalRow(label string, s size.Size) error {
	return r.printf("\n%s  %s\n", r.column(s, totalSizeStyle), totalStyle.Render(label))
}

func (r *Renderer) printf(format string, args ...interface{}) error {
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

// Fraction returns part/total clamped to [0, 1]. A zero total yields 0.
func Fraction(part, total size.Size) float64 {
	if total.Bytes() <= 0 || part.Bytes() <= 0 {
		return 0
	}

	f := float64(part.Bytes()) / float64(total.Bytes())
	if f > 1 {
		return 1
	}

	return f
}
