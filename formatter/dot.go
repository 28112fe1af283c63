package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/ragged/content"
)

// Dot outputs the structure of a content tree in Graphviz DOT format.
// Leaves are drawn as boxes, wrappers as ellipses; edges from records carry
// the field names, edges from unions the variant numbers.
func Dot(root content.Content, w io.Writer) error {
	if root == nil || w == nil {
		return errIllegalArgument
	}
	var nodelist, edgelist strings.Builder
	next := 0
	var visit func(c content.Content) int
	visit = func(c content.Content) int {
		ID := next
		next++
		text := dotEscape(label(c))
		if pv := preview(c, 3); pv != "" {
			text += `\n` + dotEscape(pv)
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\"%s];\n", ID, text, nodeDotStyles(c))
		for i, child := range content.Children(c) {
			childID := visit(child)
			if e := edge(c, i); e != "" {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\" [label=\"%s\"];\n", ID, childID, dotEscape(e))
			} else {
				fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, childID)
			}
		}
		return ID
	}
	visit(root)
	T().Debugf("DOT output of %d nodes", next)
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist.String()+edgelist.String()+"}\n")
	return err
}

// dotEscape escapes quotes and backslashes of a DOT label.
func dotEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

func nodeDotStyles(c content.Content) string {
	s := ",style=filled"
	if c.Kind().IsLeaf() {
		s += ",shape=box,fillcolor=\"#a3d7e4\""
	} else {
		s += ",color=black,shape=ellipse"
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[content.Depth(c)%len(hexcolors)])
	}
	if c.Kind() == content.KindUnion {
		s += ",penwidth=2"
	}
	return s
}

var hexcolors = [...]string{"white", "#CCDDFF", "#AACCFF", "#88BBFF", "#66AAFF",
	"#4499FF", "#2288FF", "#0077FF", "#0066FF"}
