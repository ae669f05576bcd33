package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/symgo/solveq"
	"golang.org/x/term"
)

// Element names a visual role within rendered output. The console renderer
// maps each element to a color.
type Element int8

const (
	// StepTitle is the short name of a derivation step.
	StepTitle Element = iota
	// StepDetail is the explanatory text of a derivation step.
	StepDetail
	// ResultKind is the solution-kind label, e.g. "multiple".
	ResultKind
	// ResultValue is a root expression.
	ResultValue
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int
	Colorize  bool
}

// Console renders traces and solutions for terminals with a fixed-width
// font.
type Console struct {
	colors map[Element]*color.Color
}

// NewConsole creates a console renderer.
//
// colors is a map from output elements to colors; it may cover just a subset
// of the elements. If colors is nil, a default palette is used.
func NewConsole(colors map[Element]*color.Color) *Console {
	c := &Console{}
	if colors == nil {
		c.colors = makeDefaultPalette()
	} else {
		c.colors = colors
	}
	return c
}

func makeDefaultPalette() map[Element]*color.Color {
	palette := map[Element]*color.Color{
		StepTitle:   color.New(color.FgCyan, color.Bold),
		StepDetail:  color.New(color.FgWhite),
		ResultKind:  color.New(color.FgGreen, color.Bold),
		ResultValue: color.New(color.FgYellow),
	}
	return palette
}

// Print renders a trace and a solution to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive).
func (c *Console) Print(tr *solveq.Trace, sol solveq.Solution, config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	return c.Render(tr, sol, os.Stdout, config)
}

// Render writes the numbered derivation steps and the final solution to out.
// Neither tr nor config may be nil.
func (c *Console) Render(tr *solveq.Trace, sol solveq.Solution, out io.Writer, config *Config) error {
	if tr == nil || config == nil {
		return errors.New("illegal argument: nil")
	}
	w := bufio.NewWriter(out)
	for i, step := range tr.Steps() {
		c.styled(StepTitle, fmt.Sprintf("%2d. %s", i+1, step.Title), w, config)
		w.WriteString("\n")
		for _, line := range wrap(step.Detail, config.LineWidth-6) {
			w.WriteString("      ")
			c.styled(StepDetail, line, w, config)
			w.WriteString("\n")
		}
	}
	w.WriteString("\n")
	c.styled(ResultKind, "⇒ "+sol.Kind().String(), w, config)
	values := sol.Values()
	if len(values) > 0 {
		w.WriteString(": ")
		for i, v := range values {
			if i > 0 {
				w.WriteString(", ")
			}
			c.styled(ResultValue, v.String(), w, config)
		}
	}
	w.WriteString("\n")
	return w.Flush()
}

// styled writes s through the element's color, or plainly when colorizing is
// off or no color is mapped.
func (c *Console) styled(el Element, s string, w io.Writer, config *Config) {
	if config.Colorize {
		if col, ok := c.colors[el]; ok {
			col.Fprint(w, s)
			return
		}
	}
	io.WriteString(w, s)
}

// wrap breaks text into lines of at most width characters, breaking at
// spaces. Overlong words are kept intact.
func wrap(text string, width int) []string {
	if width < 10 {
		width = 10
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's
// width and sets the Config.LineWidth parameter accordingly. Colors are
// enabled for interactive terminals only.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(int(os.Stdout.Fd())) {
		config.Colorize = true
		w, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	T().P("render", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}
