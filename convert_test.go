package md2roff

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestConvertManOrderedList(t *testing.T) {
	got := convertString(t, "1. first\n2. second\n\n", "man")
	want := ".\\\" x-roff document\n" +
		".do mso man.tmac\n" +
		".TH doc.md 7 2020-03-14 document\n" +
		".IP 1. 4\n" +
		"first\n" +
		".IP 2. 4\n" +
		"second\n" +
		".PP\n"
	if got != want {
		t.Fatalf("man ordered list:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestConvertManTitleLineConsumed(t *testing.T) {
	got := convertString(t, "# Hello\n\nBody text\n", "man")
	want := ".\\\" x-roff document\n" +
		".do mso man.tmac\n" +
		".TH Hello\n" +
		".PP\n" +
		"Body text\n"
	if got != want {
		t.Fatalf("title line:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestConvertHeaderPrecedesBody(t *testing.T) {
	for _, name := range AvailableDialects() {
		d, _ := DialectByName(name)
		out := convertString(t, "Body text\n", name)
		if !strings.HasPrefix(out, ".\\\" x-roff document\n"+d.Macros().Preamble+"\n") {
			t.Fatalf("%s: output does not open with macro preamble:\n%s", name, out)
		}
		idx := strings.Index(out, "Body text")
		if idx < 0 {
			t.Fatalf("%s: body text missing:\n%s", name, out)
		}
	}
}

func TestConvertTitleBeforeBodyInAllDialects(t *testing.T) {
	// "# Title" becomes the .TH line in man and mdoc and a heading macro
	// elsewhere; either way it precedes the body.
	for _, name := range AvailableDialects() {
		out := convertString(t, "# Title\n\nBody\n", name)
		title := strings.Index(out, "Title")
		body := strings.Index(out, "Body")
		if title < 0 || body < 0 || title > body {
			t.Fatalf("%s: title does not precede body:\n%s", name, out)
		}
	}
}

func TestConvertStrongPairsInAllDialects(t *testing.T) {
	cases := map[string][2]string{
		"man":  {`\fB`, `\fP`},
		"mdoc": {`\fB`, `\fP`},
		"mm":   {`\fB`, `\fP`},
		"mom":  {`\*[BD]`, `\*[PREV]`},
	}
	for name, pair := range cases {
		body := convertBody(t, "see **bold** text\n", name)
		want := "see " + pair[0] + "bold" + pair[1] + " text\n"
		if body != want {
			t.Fatalf("%s strong:\ngot:  %q\nwant: %q", name, body, want)
		}
	}
}

func TestConvertEmphasis(t *testing.T) {
	body := convertBody(t, "an *emphasized* word\n", "man")
	want := "an \\fIemphasized\\fP word\n"
	if body != want {
		t.Fatalf("emphasis:\ngot:  %q\nwant: %q", body, want)
	}
}

func TestConvertHyperlinkMan(t *testing.T) {
	body := convertBody(t, "See [Example](http://x.test) now.\n", "man")
	want := "See\n.UR http://x.test\nExample\n.UE\nnow.\n"
	if body != want {
		t.Fatalf("hyperlink:\ngot:\n%q\nwant:\n%q", body, want)
	}
}

func TestConvertHyperlinkPerDialect(t *testing.T) {
	cases := map[string]string{
		"mdoc": ".Lk http://x.test \"Example\"\n",
		"mm":   "Example <http://x.test>\n",
		"mom":  `Example \*[UL]http://x.test\*[ULX]` + "\n",
	}
	for name, want := range cases {
		body := convertBody(t, "[Example](http://x.test)\n", name)
		if body != want {
			t.Fatalf("%s hyperlink:\ngot:  %q\nwant: %q", name, body, want)
		}
	}
}

func TestConvertManualReference(t *testing.T) {
	cases := map[string]string{
		"man":  "\\fBprintf\\fP(3)\n",
		"mdoc": ".Xr printf 3\n",
		"mm":   "printf 3\n",
	}
	for name, want := range cases {
		body := convertBody(t, "[printf 3](man)\n", name)
		if body != want {
			t.Fatalf("%s man ref:\ngot:  %q\nwant: %q", name, body, want)
		}
	}
}

func TestConvertMailLink(t *testing.T) {
	body := convertBody(t, "[Alice](alice@example.org)\n", "man")
	want := ".MT alice@example.org\nAlice\n.ME\n"
	if body != want {
		t.Fatalf("mail link:\ngot:  %q\nwant: %q", body, want)
	}
}

func TestConvertFencedCodeMan(t *testing.T) {
	src := "```sh\n.config\nplain\n```\n"
	body := convertBody(t, src, "man")
	want := ".RS 4\n.EX\n" +
		".cc !\n.config\n!cc .\n" +
		"plain\n" +
		"\n.EE\n.RE\n"
	if body != want {
		t.Fatalf("fenced code:\ngot:\n%q\nwant:\n%q", body, want)
	}
}

func TestConvertFencedCodeVerbatim(t *testing.T) {
	// Markup inside a fence must come through untouched.
	src := "```\n**not bold** `not code`\n```\n"
	body := convertBody(t, src, "mdoc")
	want := ".Bd -literal -offset indent\n**not bold** `not code`\n.Ed\n"
	if body != want {
		t.Fatalf("verbatim fence:\ngot:  %q\nwant: %q", body, want)
	}
}

func TestConvertUnorderedListMdoc(t *testing.T) {
	body := convertBody(t, "- alpha\n- beta\n\n", "mdoc")
	want := ".Bl -bullet -offset indent\n.It\nalpha\n.It\nbeta\n.El\n.Pp\n"
	if body != want {
		t.Fatalf("mdoc list:\ngot:\n%q\nwant:\n%q", body, want)
	}
}

func TestConvertOrderedListMM(t *testing.T) {
	body := convertBody(t, "1. x\n\n", "mm")
	want := ".AL\n.LI\nx\n.LE\n.PP\n"
	if body != want {
		t.Fatalf("mm list:\ngot:  %q\nwant: %q", body, want)
	}
}

func TestConvertListMom(t *testing.T) {
	body := convertBody(t, "* a\n\n", "mom")
	want := ".LIST BULLET\n.ITEM\na\n.LIST OFF\n.PP\n"
	if body != want {
		t.Fatalf("mom list:\ngot:  %q\nwant: %q", body, want)
	}
}

func TestConvertHeadingMom(t *testing.T) {
	body := convertBody(t, "## Install\n", "mom")
	want := ".HEADING 1 \"Install\"\n"
	if body != want {
		t.Fatalf("mom heading:\ngot:  %q\nwant: %q", body, want)
	}
}

func TestConvertFrontMatterTitleBlock(t *testing.T) {
	src := "---\ntitle: widget\nsection: \"1\"\nmanual: Tools\n---\nBody\n"
	out := convertString(t, src, "man")
	if !strings.Contains(out, ".TH widget 1 2020-03-14 document Tools\n") {
		t.Fatalf("front matter title block missing:\n%s", out)
	}
	if strings.Contains(out, "title: widget") {
		t.Fatalf("front matter leaked into body:\n%s", out)
	}
	if !strings.Contains(out, "Body\n") {
		t.Fatalf("body missing:\n%s", out)
	}
}

func TestConvertFrontMatterDisabled(t *testing.T) {
	src := "---\ntitle: widget\n---\nBody\n"
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Source:  []byte(src),
		Writer:  &out,
		Name:    "doc.md",
		Options: []ConvertOption{WithDate(testDate), WithFrontMatter(false)},
	})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out.String(), ".TH doc.md 7 2020-03-14 document\n") {
		t.Fatalf("expected generated title block:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "title: widget") {
		t.Fatalf("expected raw front matter text in body:\n%s", out.String())
	}
}

func TestConvertNilWriter(t *testing.T) {
	err := Convert(ConvertRequest{Source: []byte("x\n")})
	if err == nil {
		t.Fatal("expected error for nil writer")
	}
}

func TestConvertNilDialectDefaultsToMan(t *testing.T) {
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Source:  []byte("Body\n"),
		Writer:  &out,
		Options: []ConvertOption{WithDate(testDate)},
	})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if !strings.Contains(out.String(), ".do mso man.tmac\n") {
		t.Fatalf("expected man preamble:\n%s", out.String())
	}
}

func TestConvertUnterminatedCodeSpan(t *testing.T) {
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Source: []byte("broken `span\n"),
		Writer: &out,
		Name:   "doc.md",
	})
	if !errors.Is(err, ErrUnterminatedCodeSpan) {
		t.Fatalf("expected ErrUnterminatedCodeSpan, got %v", err)
	}
}

func TestConvertRejectsBinaryInput(t *testing.T) {
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Source: []byte{'h', 'i', 0x00, '!'},
		Writer: &out,
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}
