package errors

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Format renders err as a category heading line followed by the usage and
// remediation blocks. colored adds ANSI styling.
func Format(err *CLIError, colored bool) string {
	if err == nil {
		return ""
	}

	heading := color.New(color.FgRed, color.Bold)
	label := color.New(color.FgYellow)
	bullet := color.New(color.Faint)
	for _, c := range []*color.Color{heading, label, bullet} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	b.WriteString(heading.Sprint(err.Category.String()))
	b.WriteString(": ")
	b.WriteString(err.Message)
	b.WriteByte('\n')

	if err.Usage != "" {
		fmt.Fprintf(&b, "\n%s %s\n", label.Sprint("Usage:"), err.Usage)
	}
	if len(err.Remediation) == 0 {
		return b.String()
	}
	fmt.Fprintf(&b, "\n%s\n", label.Sprint("To fix this:"))
	for _, step := range err.Remediation {
		fmt.Fprintf(&b, "  %s %s\n", bullet.Sprint("-"), step)
	}
	return b.String()
}

// Fprint writes err to w. Errors without a category are shown under
// fallback. Colors are on unless color.NoColor says otherwise.
func Fprint(w io.Writer, err error, fallback ErrorCategory) {
	if err == nil {
		return
	}
	cliErr := AsCLIError(err)
	if cliErr == nil {
		cliErr = &CLIError{Category: fallback, Message: err.Error(), cause: err}
	}
	fmt.Fprint(w, Format(cliErr, !color.NoColor))
}
