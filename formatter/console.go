package formatter

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/ragged/content"
)

// Console is a format for printing content trees to a console with a fixed
// width font. Node kinds are colored, leaves show a preview of their data,
// and lines are truncated to the configured line width.
type Console struct {
	colors map[content.Kind]*color.Color
}

// NewConsole creates a console formatter. colors maps content kinds to
// colors; kinds without a color are printed plain. If colors is nil, a
// default palette is used.
func NewConsole(colors map[content.Kind]*color.Color) *Console {
	if colors == nil {
		colors = makeDefaultPalette()
	}
	return &Console{colors: colors}
}

func makeDefaultPalette() map[content.Kind]*color.Color {
	leaf := color.New(color.FgBlue)
	list := color.New(color.FgGreen)
	return map[content.Kind]*color.Color{
		content.KindNumeric:       leaf,
		content.KindEmpty:         leaf,
		content.KindStrings:       leaf,
		content.KindByteStrings:   leaf,
		content.KindFixedList:     list,
		content.KindOffsetList:    list,
		content.KindStartStopList: list,
		content.KindRecord:        color.New(color.FgYellow),
		content.KindUnion:         color.New(color.FgRed),
	}
}

// Print outputs the tree rooted at root to w, one node per line.
//
// If parameter config is nil, a default configuration is used.
func (con *Console) Print(root content.Content, w io.Writer, config *Config) error {
	if root == nil || w == nil {
		return errIllegalArgument
	}
	config = config.normalize()
	p := &printer{con: con, w: w, config: config}
	p.node(root, "", "", "")
	return p.err
}

type printer struct {
	con    *Console
	w      io.Writer
	config *Config
	err    error
}

func (p *printer) write(s string, c *color.Color) {
	if p.err != nil {
		return
	}
	if c != nil {
		_, p.err = c.Fprint(p.w, s)
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

// node prints c, prefixed by indent, the tree branch and the edge name.
func (p *printer) node(c content.Content, indent, branch, name string) {
	head := indent + branch
	if name != "" {
		head += name + ": "
	}
	text := label(c)
	if pv := preview(c, p.config.MaxItems); pv != "" {
		text += " " + pv
	}
	// kind is colored, the remainder of the line is not
	kind := c.Kind().String()
	text = fit(text, p.config.LineWidth-displayWidth(head, p.config.Context), p.config.Context)
	p.write(head, nil)
	if strings.HasPrefix(text, kind) {
		p.write(kind, p.con.colors[c.Kind()])
		p.write(text[len(kind):], nil)
	} else {
		p.write(text, nil)
	}
	p.write("\n", nil)
	children := content.Children(c)
	childIndent := indent
	switch branch {
	case "├─ ":
		childIndent += "│  "
	case "└─ ":
		childIndent += "   "
	}
	for i, child := range children {
		b := "├─ "
		if i == len(children)-1 {
			b = "└─ "
		}
		p.node(child, childIndent, b, edge(c, i))
	}
}
