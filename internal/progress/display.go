package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Console writes session progress to a terminal or a plain stream
type Console struct {
	mu           sync.Mutex
	out          io.Writer
	capabilities TerminalCapabilities
	symbols      ProgressSymbols
	compact      bool
	palette      palette
	spinner      *spinner.Spinner
	box          lipgloss.Style
}

// palette holds the colors used for console tokens
type palette struct {
	title   *color.Color
	success *color.Color
	warning *color.Color
	total   *color.Color
	notice  *color.Color
}

// newPalette builds a palette with color forced on or off
func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		title:   mk(color.Bold),
		success: mk(color.FgGreen),
		warning: mk(color.FgRed),
		total:   mk(color.FgCyan),
		notice:  mk(color.FgYellow, color.Bold),
	}
}

// tone returns the color for a tone
func (p palette) tone(t Tone) *color.Color {
	if t == ToneSuccess {
		return p.success
	}
	return p.warning
}

// NewConsole creates a console reporter writing to out.
// Compact folds each poll into a single line.
func NewConsole(out io.Writer, caps TerminalCapabilities, compact bool) *Console {
	if out == nil {
		out = os.Stdout
	}
	renderer := lipgloss.NewRenderer(out)
	box := renderer.NewStyle().Padding(0, 1)
	if caps.SupportsUnicode {
		box = box.BorderStyle(lipgloss.RoundedBorder())
		if caps.SupportsColor {
			box = box.BorderForeground(lipgloss.Color("6"))
		}
	}
	return &Console{
		out:          out,
		capabilities: caps,
		symbols:      SelectSymbols(caps),
		compact:      compact,
		palette:      newPalette(caps.SupportsColor),
		box:          box,
	}
}

// Report prints one poll
func (c *Console) Report(r PollReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.compact {
		fmt.Fprintln(c.out, c.palette.tone(worstTone(r)).Sprint(compactLine(r, c.symbols)))
		return
	}

	// each body line is followed by a blank separator
	fmt.Fprintln(c.out, c.palette.title.Sprint(Title(r.Elapsed)))
	fmt.Fprintf(c.out, "%s\n\n", c.palette.tone(r.DeltaTone()).Sprint(deltaText(r)))
	fmt.Fprintf(c.out, "%s\n\n", c.palette.tone(r.AverageTone()).Sprint(averageText(r)))
	fmt.Fprintf(c.out, "%s\n\n", c.palette.total.Sprint(totalText(r)))
}

// BreakStarted announces a break and starts the countdown spinner on a TTY
func (c *Console) BreakStarted(b Break) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprintln(c.out, c.palette.notice.Sprint(b.Message()))
	c.startSpinner(b.Minutes)
}

// BreakTick prints the minutes left in the current break
func (c *Console) BreakTick(remaining int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopSpinner()
	fmt.Fprintln(c.out, remainingText(remaining))
	if remaining > 0 {
		c.startSpinner(remaining)
	}
}

// Summary prints the closing session box
func (c *Console) Summary(s Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopSpinner()
	fmt.Fprintln(c.out, c.box.Render(joinLines(summaryLines(s))))
}

// startSpinner animates on stderr so stdout stays line oriented
func (c *Console) startSpinner(remaining int) {
	if !c.capabilities.IsTTY {
		return
	}
	c.spinner = spinner.New(
		spinner.CharSets[c.symbols.SpinnerSet],
		100*time.Millisecond,
	)
	c.spinner.Writer = os.Stderr
	c.spinner.Suffix = breakSuffix(remaining)
	c.spinner.Start()
}

// stopSpinner stops the spinner if running
func (c *Console) stopSpinner() {
	if c.spinner != nil {
		c.spinner.Stop()
		c.spinner = nil
	}
}

// worstTone picks the warning tone if either line is behind
func worstTone(r PollReport) Tone {
	if r.DeltaOnPace && r.AverageOnPace {
		return ToneSuccess
	}
	return ToneWarning
}
