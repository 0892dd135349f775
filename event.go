package md2roff

// Event is one abstract typesetting action produced by the block scanner
// and rendered immediately by the emitter. Which extra fields are
// meaningful depends on Kind.
type Event struct {
	Kind   eventKind
	Level  int      // heading level for EventHeading
	List   ListKind // list kind for EventListOpen
	Text   string   // heading text, link text, man page name, code line
	Target string   // link target, man page section
}

type eventKind uint8

// EventKind is the exported alias of eventKind for tooling and tests.
type EventKind = eventKind

const (
	eventParagraphEnd eventKind = iota
	eventLineBreak
	eventHeading
	eventListOpen
	eventListClose
	eventItemOpen
	eventItemClose
	eventCodeOpen
	eventCodeClose
	eventCodeLine
	eventBoxOpen
	eventBoxClose
	eventHyperlink
	eventMailLink
	eventManRef
)

const (
	// EventParagraphEnd terminates a paragraph.
	EventParagraphEnd eventKind = eventParagraphEnd
	// EventLineBreak forces a line break.
	EventLineBreak eventKind = eventLineBreak
	// EventHeading opens a section heading at Level with Text.
	EventHeading eventKind = eventHeading
	// EventListOpen opens a list of kind List.
	EventListOpen eventKind = eventListOpen
	// EventListClose closes the innermost list.
	EventListClose eventKind = eventListClose
	// EventItemOpen opens a list item at the innermost level.
	EventItemOpen eventKind = eventItemOpen
	// EventItemClose closes a list item.
	EventItemClose eventKind = eventItemClose
	// EventCodeOpen starts a literal code display.
	EventCodeOpen eventKind = eventCodeOpen
	// EventCodeClose ends a literal code display.
	EventCodeClose eventKind = eventCodeClose
	// EventCodeLine is one verbatim line inside a code display.
	EventCodeLine eventKind = eventCodeLine
	// EventBoxOpen starts a boxed (cartouche) heading.
	EventBoxOpen eventKind = eventBoxOpen
	// EventBoxClose ends a boxed heading.
	EventBoxClose eventKind = eventBoxClose
	// EventHyperlink renders a link with Text and Target.
	EventHyperlink eventKind = eventHyperlink
	// EventMailLink renders a mail link with Text and Target.
	EventMailLink eventKind = eventMailLink
	// EventManRef renders a manual page cross-reference.
	EventManRef eventKind = eventManRef
)
