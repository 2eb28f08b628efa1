package style

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/linkshell/pkg/errors"
	"github.com/arthur-debert/linkshell/pkg/inspect"
	"github.com/arthur-debert/linkshell/pkg/link"
)

// KindLabel is the display name for each link kind.
var KindLabel = map[link.Kind]string{
	link.HardLink:     "hard link",
	link.SymbolicLink: "symbolic link",
	link.Junction:     "directory junction",
}

// Renderer turns structured results into terminal output.
type Renderer struct {
	colored bool
}

// NewRenderer creates a renderer for the given color mode (auto, always,
// never).
func NewRenderer(colorMode string) *Renderer {
	return &Renderer{colored: colorEnabled(colorMode)}
}

func (r *Renderer) paint(s lipgloss.Style, text string) string {
	if !r.colored {
		return text
	}
	return s.Render(text)
}

// paintStatus styles the leading status word of a result line.
func (r *Renderer) paintStatus(success bool, text string) string {
	if !r.colored {
		return text
	}
	return StatusStyle(success).Sprint(text)
}

// RenderOutcome renders the result of a create operation.
func (r *Renderer) RenderOutcome(req link.Request, outcome link.Outcome) string {
	label := KindLabel[req.Kind]
	if outcome.Created() {
		return fmt.Sprintf("%s %s: %s -> %s",
			r.paintStatus(true, "Created"),
			label,
			r.paint(PathStyle, req.Target),
			r.paint(PathStyle, req.Source))
	}
	return fmt.Sprintf("%s to create %s: %s",
		r.paintStatus(false, "Failed"),
		label,
		ReasonText(outcome.Reason))
}

// RenderReport renders an inspection report.
func (r *Renderer) RenderReport(report *inspect.Report) string {
	var b strings.Builder

	b.WriteString(r.paint(TitleStyle, report.Path))
	b.WriteString("\n")

	switch report.Type {
	case inspect.TypeNone:
		b.WriteString(r.paint(MutedStyle, "  not a link"))
	case inspect.TypeHardLink:
		fmt.Fprintf(&b, "  type:       hard link\n")
		fmt.Fprintf(&b, "  link count: %d", report.LinkCount)
	default:
		kind := "symbolic link"
		if report.Type == inspect.TypeJunction {
			kind = "directory junction"
		}
		fmt.Fprintf(&b, "  type:   %s\n", kind)
		fmt.Fprintf(&b, "  target: %s\n", r.paint(PathStyle, report.Target))
		if report.TargetExists {
			fmt.Fprintf(&b, "  target exists: %s", r.paint(SuccessStyle, "yes"))
		} else {
			fmt.Fprintf(&b, "  target exists: %s", r.paint(ErrorStyle, "no"))
		}
	}

	return b.String()
}

// RenderError renders a terminal-friendly error line.
func (r *Renderer) RenderError(err error) string {
	code := errors.GetErrorCode(err)
	if text, ok := reasonText[code]; ok {
		return fmt.Sprintf("%s %s", r.paint(ErrorStyle, "Error:"), text)
	}
	return fmt.Sprintf("%s %v", r.paint(ErrorStyle, "Error:"), err)
}
