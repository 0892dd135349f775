package md2roff

import (
	"fmt"
	"sort"
	"strings"
)

// Macros groups the literal macro spellings of one output dialect.
// Fixed spellings are plain strings; an empty string means the dialect
// has no macro for that event and the emitter writes nothing. The few
// parametric events are small formatting functions.
type Macros struct {
	Preamble     string // directive loading the macro package
	ParagraphEnd string
	LineBreak    string
	HeadingOpen  [3]string // section, subsection, sub-subsection
	HeadingClose [3]string
	CodeOpen     string
	CodeClose    string
	BoxOpen      string
	BoxClose     string
	ListClose    string
	ItemClose    string
	ControlOn    string // move the control character away from '.'
	ControlOff   string
	StrongOn     string
	StrongOff    string
	EmphasisOn   string
	EmphasisOff  string
	CodeSpanOn   string
	CodeSpanOff  string

	ListOpen  func(kind ListKind, depth int) string
	ItemOpen  func(kind ListKind, number int) string
	Hyperlink func(text, url string) string
	MailLink  func(text, addr string) string
	ManRef    func(name, section string) string
}

// Dialect provides the macro spellings of one troff macro package.
type Dialect interface {
	Name() string
	Macros() Macros
}

type dialect struct {
	name   string
	macros Macros
}

func (d dialect) Name() string   { return d.name }
func (d dialect) Macros() Macros { return d.macros }

// headingIndex maps an ATX heading level ('#' count) to a Macros heading
// slot: levels 1 and 2 are sections, 3 a subsection, 4 and deeper the
// smallest heading the dialect has.
func headingIndex(level int) int {
	switch {
	case level <= 2:
		return 0
	case level == 3:
		return 1
	default:
		return 2
	}
}

var manMacros = Macros{
	Preamble:     ".do mso man.tmac",
	ParagraphEnd: ".PP",
	LineBreak:    ".br",
	HeadingOpen:  [3]string{".SH ", ".SS ", ".TP\n\\fB"},
	HeadingClose: [3]string{"", "", "\\fR"},
	CodeOpen:     ".RS 4\n.EX",
	CodeClose:    "\n.EE\n.RE",
	BoxOpen:      ".B",
	BoxClose:     ".FT P",
	ControlOn:    ".cc !",
	ControlOff:   "!cc .",
	StrongOn:     "\\fB",
	StrongOff:    "\\fP",
	EmphasisOn:   "\\fI",
	EmphasisOff:  "\\fP",
	CodeSpanOn:   "\\f[CR]",
	CodeSpanOff:  "\\fP",
	ListOpen:     func(ListKind, int) string { return "" },
	ItemOpen: func(kind ListKind, number int) string {
		if kind == Ordered {
			return fmt.Sprintf(".IP %d. 4", number)
		}
		return `.IP \(bu 4`
	},
	Hyperlink: func(text, url string) string {
		return fmt.Sprintf(".UR %s\n%s\n.UE", url, text)
	},
	MailLink: func(text, addr string) string {
		return fmt.Sprintf(".MT %s\n%s\n.ME", addr, text)
	},
	ManRef: func(name, section string) string {
		if section == "" {
			return fmt.Sprintf("\\fB%s\\fP", name)
		}
		return fmt.Sprintf("\\fB%s\\fP(%s)", name, section)
	},
}

var mdocMacros = Macros{
	Preamble:     ".do mso mdoc.tmac",
	ParagraphEnd: ".Pp",
	LineBreak:    ".br",
	HeadingOpen:  [3]string{".Sh ", ".Ss ", ".Ss "},
	HeadingClose: [3]string{"", "", ""},
	CodeOpen:     ".Bd -literal -offset indent",
	CodeClose:    ".Ed",
	BoxOpen:      ".FT B",
	BoxClose:     ".FT P",
	ListClose:    ".El",
	ControlOn:    ".cc !",
	ControlOff:   "!cc .",
	StrongOn:     "\\fB",
	StrongOff:    "\\fP",
	EmphasisOn:   "\\fI",
	EmphasisOff:  "\\fP",
	CodeSpanOn:   "\\f[CR]",
	CodeSpanOff:  "\\fP",
	ListOpen: func(kind ListKind, depth int) string {
		if kind == Ordered {
			return ".Bl -enum -offset indent"
		}
		glyph := "dash"
		if depth%2 == 1 {
			glyph = "bullet"
		}
		return fmt.Sprintf(".Bl -%s -offset indent", glyph)
	},
	ItemOpen: func(ListKind, int) string { return ".It" },
	Hyperlink: func(text, url string) string {
		return fmt.Sprintf(".Lk %s %q", url, text)
	},
	MailLink: func(text, addr string) string {
		return fmt.Sprintf(".An %s Aq Mt %s", text, addr)
	},
	ManRef: func(name, section string) string {
		if section == "" {
			return ".Xr " + name
		}
		return fmt.Sprintf(".Xr %s %s", name, section)
	},
}

var mmMacros = Macros{
	Preamble:     ".do mso m.tmac",
	ParagraphEnd: ".PP",
	LineBreak:    ".br",
	HeadingOpen:  [3]string{".SH ", ".SS ", ".SS "},
	HeadingClose: [3]string{"", "", ""},
	CodeOpen:     ".RS 4\n.EX",
	CodeClose:    "\n.EE\n.RE",
	BoxOpen:      ".FT B",
	BoxClose:     ".FT P",
	ItemClose:    ".LE",
	ControlOn:    ".cc !",
	ControlOff:   "!cc .",
	StrongOn:     "\\fB",
	StrongOff:    "\\fP",
	EmphasisOn:   "\\fI",
	EmphasisOff:  "\\fP",
	CodeSpanOn:   "\\f[CR]",
	CodeSpanOff:  "\\fP",
	ListOpen: func(kind ListKind, depth int) string {
		if kind == Ordered {
			return ".AL"
		}
		return ".BL"
	},
	ItemOpen: func(ListKind, int) string { return ".LI" },
	Hyperlink: func(text, url string) string {
		return fmt.Sprintf("%s <%s>", text, url)
	},
	MailLink: func(text, addr string) string {
		return fmt.Sprintf("%s <%s>", text, addr)
	},
	ManRef: plainManRef,
}

var momMacros = Macros{
	Preamble:     ".do mso mom.tmac",
	ParagraphEnd: ".PP",
	LineBreak:    ".BR",
	HeadingOpen:  [3]string{`.HEADING 1 "`, `.HEADING 2 "`, `.HEADING 3 "`},
	HeadingClose: [3]string{`"`, `"`, `"`},
	CodeOpen:     ".CODE",
	CodeClose:    ".CODE OFF",
	BoxOpen:      ".DRH",
	BoxClose:     ".DRH",
	ListClose:    ".LIST OFF",
	ControlOn:    ".ESC_CHAR !",
	ControlOff:   ".ESC_CHAR .",
	StrongOn:     "\\*[BD]",
	StrongOff:    "\\*[PREV]",
	EmphasisOn:   "\\*[IT]",
	EmphasisOff:  "\\*[PREV]",
	CodeSpanOn:   "\\*[CODE]",
	CodeSpanOff:  "\\*[CODE OFF]",
	ListOpen: func(kind ListKind, depth int) string {
		if kind == Ordered {
			switch depth {
			case 2:
				return ".LIST ALPHA"
			case 4:
				return ".LIST alpha"
			default:
				return ".LIST DIGIT"
			}
		}
		if depth%2 == 1 {
			return ".LIST BULLET"
		}
		return ".LIST DASH"
	},
	ItemOpen: func(ListKind, int) string { return ".ITEM" },
	Hyperlink: func(text, url string) string {
		return fmt.Sprintf("%s \\*[UL]%s\\*[ULX]", text, url)
	},
	MailLink: func(text, addr string) string {
		return fmt.Sprintf("%s \\*[UL]%s\\*[ULX]", text, addr)
	},
	ManRef: plainManRef,
}

func plainManRef(name, section string) string {
	if section == "" {
		return name
	}
	return name + " " + section
}

var builtinDialects = map[string]Dialect{
	"man":  dialect{name: "man", macros: manMacros},
	"mdoc": dialect{name: "mdoc", macros: mdocMacros},
	"mm":   dialect{name: "mm", macros: mmMacros},
	"mom":  dialect{name: "mom", macros: momMacros},
}

// AvailableDialects returns the names of the supported macro packages.
func AvailableDialects() []string {
	names := make([]string, 0, len(builtinDialects))
	for name := range builtinDialects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DialectByName returns a supported dialect by name.
func DialectByName(name string) (Dialect, bool) {
	if name == "" {
		return builtinDialects["man"], true
	}
	normalized := strings.ToLower(strings.TrimSpace(name))
	d, ok := builtinDialects[normalized]
	return d, ok
}

// DefaultDialect returns the man dialect.
func DefaultDialect() Dialect {
	return builtinDialects["man"]
}
