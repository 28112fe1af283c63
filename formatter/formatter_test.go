package formatter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ragged/content"
	"github.com/npillmayer/ragged/dtype"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/net/html"
)

func sampleTree(t *testing.T) content.Content {
	t.Helper()
	nums, err := content.NewNumeric(dtype.Int8, []byte{1, 2, 0xff, 4})
	if err != nil {
		t.Fatal(err)
	}
	strs, err := content.NewStrings([]string{"a\"b", "中文"})
	if err != nil {
		t.Fatal(err)
	}
	fixed, err := content.NewFixedList(nums, 2, -1)
	if err != nil {
		t.Fatal(err)
	}
	rec, err := content.NewRecord([]string{"x", "y"}, []content.Content{fixed, strs}, -1)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

func plainConsole() *Console {
	return NewConsole(map[content.Kind]*color.Color{})
}

func TestConsolePrint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	var out bytes.Buffer
	err := plainConsole().Print(sampleTree(t), &out, &Config{LineWidth: 80, Context: uax11.LatinContext})
	if err != nil {
		t.Fatal(err)
	}
	want := "Record len=2\n" +
		"├─ x: FixedList len=2 size=2\n" +
		"│  └─ Numeric len=4 int8 [1 2 -1 4]\n" +
		"└─ y: Strings len=2 [\"a\\\"b\" \"中文\"]\n"
	if out.String() != want {
		t.Errorf("unexpected console output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestConsoleTruncatesLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	var out bytes.Buffer
	err := plainConsole().Print(sampleTree(t), &out, &Config{LineWidth: 16, MaxItems: 2})
	if err != nil {
		t.Fatal(err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n") {
		if w := displayWidth(line, uax11.LatinContext); w > 16 {
			t.Errorf("line %q has width %d > 16", line, w)
		}
	}
	if !strings.Contains(out.String(), "…") {
		t.Errorf("expected truncated lines, got\n%s", out.String())
	}
}

func TestConsoleColorsKinds(t *testing.T) {
	red := color.New(color.FgRed)
	red.EnableColor()
	con := NewConsole(map[content.Kind]*color.Color{content.KindRecord: red})
	var out bytes.Buffer
	if err := con.Print(sampleTree(t), &out, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "\x1b[31mRecord\x1b[0m len=2") {
		t.Errorf("expected colored kind, got %q", strings.SplitN(out.String(), "\n", 2)[0])
	}
}

func TestFit(t *testing.T) {
	ctx := uax11.LatinContext
	if s := fit("abc", 3, ctx); s != "abc" {
		t.Errorf("expected no truncation, got %q", s)
	}
	if s := fit("abcdef", 4, ctx); s != "abc…" {
		t.Errorf("expected abc…, got %q", s)
	}
	if s := fit("中文字", 4, ctx); displayWidth(s, ctx) > 4 {
		t.Errorf("wide characters exceed width: %q", s)
	}
}

func TestDot(t *testing.T) {
	var out bytes.Buffer
	if err := Dot(sampleTree(t), &out); err != nil {
		t.Fatal(err)
	}
	dot := out.String()
	for _, want := range []string{
		"strict digraph {",
		`"0" -> "1" [label="x"];`,
		`"1" -> "2";`,
		`"0" -> "3" [label="y"];`,
		`a\\\"b`,
		"shape=box",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output lacks %q:\n%s", want, dot)
		}
	}
	if err := Dot(nil, &out); err == nil {
		t.Errorf("expected error for nil tree")
	}
}

func TestHTML(t *testing.T) {
	var out bytes.Buffer
	if err := HTML(sampleTree(t), &out); err != nil {
		t.Fatal(err)
	}
	doc, err := html.Parse(&out)
	if err != nil {
		t.Fatal(err)
	}
	var kinds []string
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "span" && len(n.Attr) > 0 && n.Attr[0].Val == "kind" {
			kinds = append(kinds, n.FirstChild.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	want := []string{"Record", "FixedList", "Numeric", "Strings"}
	if strings.Join(kinds, ",") != strings.Join(want, ",") {
		t.Errorf("expected kinds %v, got %v", want, kinds)
	}
}

func TestConsolePrintsBareLeaf(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ragged")
	defer teardown()
	//
	var out bytes.Buffer
	if err := plainConsole().Print(content.NewEmpty(), &out, nil); err != nil {
		t.Fatal(err)
	}
	if out.String() != "Empty len=0\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if w := displayWidth("", uax11.LatinContext); w != 0 {
		t.Errorf("expected width 0 for empty string, got %d", w)
	}
}

func TestDotKeepsNewlinesInStrings(t *testing.T) {
	strs, err := content.NewStrings([]string{"a\nb"})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := Dot(strs, &out); err != nil {
		t.Fatal(err)
	}
	want := `[label="Strings len=1\n[\"a\\nb\"]"`
	if !strings.Contains(out.String(), want) {
		t.Errorf("expected label %s in DOT output:\n%s", want, out.String())
	}
}

func TestEdgeShowsEmptyFieldName(t *testing.T) {
	rec, err := content.NewRecord([]string{"", "b"},
		[]content.Content{content.NewEmpty(), content.NewEmpty()}, -1)
	if err != nil {
		t.Fatal(err)
	}
	if e := edge(rec, 0); e != `""` {
		t.Errorf("expected quoted empty name, got %q", e)
	}
	if e := edge(rec, 1); e != "b" {
		t.Errorf("expected field name b, got %q", e)
	}
}
