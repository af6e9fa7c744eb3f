package progress

import (
	"os"

	"golang.org/x/term"
)

// DetectTerminalCapabilities inspects stdout. NO_COLOR turns colors off and
// WORDPACE_ASCII=1 restricts output to ASCII.
func DetectTerminalCapabilities() TerminalCapabilities {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return TerminalCapabilities{}
	}

	caps := TerminalCapabilities{
		IsTTY:           true,
		SupportsColor:   os.Getenv("NO_COLOR") == "",
		SupportsUnicode: os.Getenv("WORDPACE_ASCII") != "1",
	}
	if w, _, err := term.GetSize(fd); err == nil {
		caps.Width = w
	}
	return caps
}

// SelectSymbols picks pace arrows and a spinner charset the terminal can draw.
func SelectSymbols(caps TerminalCapabilities) ProgressSymbols {
	if !caps.SupportsUnicode {
		// spinner.CharSets[9] is | / - \
		return ProgressSymbols{Success: "+", Warning: "-", SpinnerSet: 9}
	}
	// spinner.CharSets[14] is the braille dots
	return ProgressSymbols{Success: "▲", Warning: "▼", SpinnerSet: 14}
}
