package formatter

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for formatting.
type Config struct {
	LineWidth int            // maximum display width of a line, in en
	MaxItems  int            // maximum number of leaf elements previewed
	Context   *uax11.Context // context for measuring display widths
}

// DefaultConfig returns a configuration for a line width of 65 en,
// measuring text in a Latin context.
func DefaultConfig() *Config {
	return &Config{LineWidth: 65, MaxItems: 5, Context: uax11.LatinContext}
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdin is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Config.Context is
// created based on heuristics from the user environment.
func ConfigFromTerminal() *Config {
	config := DefaultConfig()
	if term.IsTerminal(0) {
		if w, _, err := term.GetSize(0); err == nil {
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
	}
	config.Context = uax11.ContextFromEnvironment()
	T().P("format", "console").Infof("setting line length to %d en", config.LineWidth)
	return config
}

func (config *Config) normalize() *Config {
	if config == nil {
		return DefaultConfig()
	}
	c := *config
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 65
	}
	if c.MaxItems <= 0 {
		c.MaxItems = 5
	}
	return &c
}

// label describes a node without its children, e.g. "OffsetList len=3".
func label(c content.Content) string {
	s := fmt.Sprintf("%s len=%d", c.Kind(), c.Len())
	switch n := c.(type) {
	case *content.Numeric:
		s += " " + n.DType().String()
	case *content.FixedList:
		s += fmt.Sprintf(" size=%d", n.Size())
	case *content.Record:
		if n.IsTuple() {
			s += " tuple"
		}
	}
	return s
}

// preview formats up to max elements of a leaf. Wrappers have no preview.
func preview(c content.Content, max int) string {
	var items []string
	n := min(c.Len(), max)
	switch leaf := c.(type) {
	case *content.Numeric:
		for i := range n {
			items = append(items, leaf.Format(i))
		}
	case *content.Strings:
		for i := range n {
			items = append(items, strconv.Quote(leaf.At(i)))
		}
	case *content.ByteStrings:
		for i := range n {
			items = append(items, fmt.Sprintf("%x", leaf.At(i)))
		}
	default:
		return ""
	}
	if c.Len() > n {
		items = append(items, "…")
	}
	return "[" + strings.Join(items, " ") + "]"
}

// edge names the relation of a child to its parent: field names for
// records, variant numbers for unions. The empty field name is shown as "".
func edge(parent content.Content, i int) string {
	switch p := parent.(type) {
	case *content.Record:
		if !p.IsTuple() {
			if f := p.Fields()[i]; f != "" {
				return f
			}
			return `""`
		}
		return strconv.Itoa(i)
	case *content.Union:
		return "#" + strconv.Itoa(i)
	}
	return ""
}

var setupGraphemes sync.Once

// fit truncates s to a display width of at most width en, marking
// truncation with an ellipsis.
func fit(s string, width int, ctx *uax11.Context) string {
	if displayWidth(s, ctx) <= width {
		return s
	}
	room := width - displayWidth("…", ctx)
	cut := 0
	for i := range s { // i iterates over rune starts
		if i > 0 && displayWidth(s[:i], ctx) > room {
			break
		}
		cut = i
	}
	return s[:cut] + "…"
}

// displayWidth returns the display width of s in en.
func displayWidth(s string, ctx *uax11.Context) int {
	if s == "" {
		return 0
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), ctx)
}
