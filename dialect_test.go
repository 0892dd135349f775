package md2roff

import "testing"

func TestAvailableDialects(t *testing.T) {
	want := []string{"man", "mdoc", "mm", "mom"}
	got := AvailableDialects()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, name := range want {
		if got[i] != name {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestDialectByName(t *testing.T) {
	for _, name := range AvailableDialects() {
		d, ok := DialectByName(name)
		if !ok {
			t.Fatalf("dialect %q not found", name)
		}
		if d.Name() != name {
			t.Fatalf("got name %q, want %q", d.Name(), name)
		}
	}
	if d, ok := DialectByName(""); !ok || d.Name() != "man" {
		t.Fatalf("empty name should select man, got %v %v", d, ok)
	}
	if d, ok := DialectByName("  MDOC "); !ok || d.Name() != "mdoc" {
		t.Fatalf("name lookup should normalize, got %v %v", d, ok)
	}
	if _, ok := DialectByName("nroff"); ok {
		t.Fatal("unexpected dialect for unknown name")
	}
}

func TestDefaultDialect(t *testing.T) {
	if DefaultDialect().Name() != "man" {
		t.Fatalf("default dialect is %q", DefaultDialect().Name())
	}
}

func TestHeadingIndex(t *testing.T) {
	cases := map[int]int{1: 0, 2: 0, 3: 1, 4: 2, 5: 2, 9: 2}
	for level, want := range cases {
		if got := headingIndex(level); got != want {
			t.Fatalf("level %d: got %d, want %d", level, got, want)
		}
	}
}

func TestMomOrderedListStyleByDepth(t *testing.T) {
	m := momMacros
	cases := map[int]string{
		1: ".LIST DIGIT",
		2: ".LIST ALPHA",
		3: ".LIST DIGIT",
		4: ".LIST alpha",
	}
	for depth, want := range cases {
		if got := m.ListOpen(Ordered, depth); got != want {
			t.Fatalf("depth %d: got %q, want %q", depth, got, want)
		}
	}
	if got := m.ListOpen(Unordered, 1); got != ".LIST BULLET" {
		t.Fatalf("unordered depth 1: got %q", got)
	}
	if got := m.ListOpen(Unordered, 2); got != ".LIST DASH" {
		t.Fatalf("unordered depth 2: got %q", got)
	}
}

func TestMdocListGlyphAlternates(t *testing.T) {
	m := mdocMacros
	if got := m.ListOpen(Unordered, 1); got != ".Bl -bullet -offset indent" {
		t.Fatalf("depth 1: got %q", got)
	}
	if got := m.ListOpen(Unordered, 2); got != ".Bl -dash -offset indent" {
		t.Fatalf("depth 2: got %q", got)
	}
	if got := m.ListOpen(Ordered, 1); got != ".Bl -enum -offset indent" {
		t.Fatalf("ordered: got %q", got)
	}
}
