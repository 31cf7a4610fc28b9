package presentation

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"

	"zlayer/internal/layers"
	"zlayer/internal/scan"
)

// adviceWidth is the wrap column for advisory text.
const adviceWidth = 76

const advice = "Large literal z-index values usually paper over a stacking-context " +
	"problem. Prefer resolving named layers (see `zlayer layers`) and small " +
	"offsets over hand-picked large literals."

var (
	severeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	subtleStyle  = lipgloss.NewStyle().Faint(true)
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	styled bool
}

// NewFormatter creates a new formatter. Styling is suppressed when the
// environment opts out of color (NO_COLOR, dumb terminals).
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
		styled: !termenv.EnvNoColor(),
	}
}

// NewPlainFormatter creates a formatter that never styles its output.
func NewPlainFormatter(writer io.Writer) *Formatter {
	return &Formatter{writer: writer}
}

// FormatValue prints a resolved stacking value as a plain integer line.
func (f *Formatter) FormatValue(value int) error {
	_, err := fmt.Fprintln(f.writer, value)
	return err
}

// FormatLayers prints fixed layer entries, one per line, as "<name> → <value>".
func (f *Formatter) FormatLayers(ls []layers.Layer) error {
	width := 0
	for _, l := range ls {
		if len(l.Name) > width {
			width = len(l.Name)
		}
	}
	for _, l := range ls {
		arrow := f.style(subtleStyle, "→")
		if _, err := fmt.Fprintf(f.writer, "%-*s %s %d\n", width, l.Name, arrow, l.Value); err != nil {
			return err
		}
	}
	return nil
}

// FormatFindings prints scan findings for path as human-readable lines,
// or a success message when there are none.
func (f *Formatter) FormatFindings(path string, findings []scan.Finding) error {
	if len(findings) == 0 {
		msg := f.style(successStyle, fmt.Sprintf("%s: no suspicious z-index values found", path))
		_, err := fmt.Fprintln(f.writer, msg)
		return err
	}

	for _, finding := range findings {
		label := f.severityLabel(finding.Severity)
		if _, err := fmt.Fprintf(f.writer, "%s:%d: %s: z-index %d\n",
			path, finding.Line, label, finding.Value); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(f.writer); err != nil {
		return err
	}
	_, err := fmt.Fprintln(f.writer, f.style(subtleStyle, wordwrap.String(advice, adviceWidth)))
	return err
}

// FormatReadError prints a single user-facing message for an unreadable
// stylesheet. Not fatal; the caller decides the exit code.
func (f *Formatter) FormatReadError(path string, readErr error) error {
	msg := fmt.Sprintf("cannot read %s: %v", path, readErr)
	_, err := fmt.Fprintln(f.writer, f.style(severeStyle, msg))
	return err
}

// FormatLayerList formats layer DTOs as JSON
func (f *Formatter) FormatLayerList(dtos []LayerDTO) error {
	return f.encodeJSON(dtos)
}

// FormatFindingList formats finding DTOs as JSON
func (f *Formatter) FormatFindingList(dtos []FindingDTO) error {
	return f.encodeJSON(dtos)
}

func (f *Formatter) encodeJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (f *Formatter) severityLabel(s scan.Severity) string {
	switch s {
	case scan.SeveritySevere:
		return f.style(severeStyle, s.String())
	default:
		return f.style(warningStyle, s.String())
	}
}

func (f *Formatter) style(style lipgloss.Style, text string) string {
	if !f.styled {
		return text
	}
	return style.Render(text)
}
