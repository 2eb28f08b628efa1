// Package style renders link outcomes, inspection reports and errors for
// the terminal. The core hands it structured values only; all user-facing
// wording lives here.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/linkshell/pkg/errors"
)

// Semantic lipgloss styles with adaptive colors for light and dark themes.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "63", Dark: "117"})

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "42"})

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "124", Dark: "204"})

	PathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "250"})

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "243"})
)

// StatusStyle returns the pterm style for an outcome status label.
func StatusStyle(success bool) *pterm.Style {
	if success {
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	}
	return pterm.NewStyle(pterm.FgRed, pterm.Bold)
}

// colorEnabled decides whether output should be styled for the given
// mode (auto, always, never).
func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// reasonText maps the failure taxonomy onto user-facing sentences. The
// core deliberately never formats these; keeping the wording here lets
// other frontends phrase the same reasons differently.
var reasonText = map[errors.ErrorCode]string{
	errors.ErrSourceNotFound:          "the source path does not exist",
	errors.ErrTargetAlreadyExists:     "the target path already exists",
	errors.ErrUnsupportedForDirectory: "hard links can only be created for files, not directories",
	errors.ErrUnsupportedForFile:      "directory junctions can only be created for directories, not files",
	errors.ErrCrossVolume:             "hard links cannot span volumes",
	errors.ErrPermissionDenied:        "the operating system refused the operation for lack of privilege",
	errors.ErrUnsupportedPlatform:     "this link type is not supported on this platform",
	errors.ErrSystemFailure:           "the operating system reported an unexpected failure",
}

// ReasonText returns the human-readable sentence for a failure reason.
func ReasonText(code errors.ErrorCode) string {
	if text, ok := reasonText[code]; ok {
		return text
	}
	return "an unknown error occurred"
}
