package md2roff

import (
	"io"
	"strings"
)

// emitter renders abstract events as macro lines for one dialect. It
// reads the scanner's list stack for item numbering and list depth but
// owns no other state.
type emitter struct {
	w      io.Writer
	macros Macros
	stack  *ListStack
}

// line writes text followed by a newline.
func (e *emitter) line(text string) error {
	if _, err := io.WriteString(e.w, text); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, "\n")
	return err
}

// macroLine writes a macro line, skipping events the dialect has no
// spelling for.
func (e *emitter) macroLine(text string) error {
	if text == "" {
		return nil
	}
	return e.line(text)
}

func (e *emitter) event(ev Event) error {
	m := &e.macros
	switch ev.Kind {
	case eventParagraphEnd:
		return e.macroLine(m.ParagraphEnd)
	case eventLineBreak:
		return e.macroLine(m.LineBreak)
	case eventHeading:
		i := headingIndex(ev.Level)
		return e.line(m.HeadingOpen[i] + ev.Text + m.HeadingClose[i])
	case eventListOpen:
		return e.macroLine(m.ListOpen(ev.List, e.stack.Depth()))
	case eventListClose:
		return e.macroLine(m.ListClose)
	case eventItemOpen:
		frame := e.stack.Top()
		if frame == nil {
			return nil
		}
		text := m.ItemOpen(frame.Kind, frame.Counter)
		if frame.Kind == Ordered {
			frame.Counter++
		}
		return e.macroLine(text)
	case eventItemClose:
		return e.macroLine(m.ItemClose)
	case eventCodeOpen:
		return e.macroLine(m.CodeOpen)
	case eventCodeClose:
		return e.macroLine(m.CodeClose)
	case eventCodeLine:
		// A leading dot would be taken for a request; switch the control
		// character around the verbatim line.
		if strings.HasPrefix(ev.Text, ".") {
			if err := e.macroLine(m.ControlOn); err != nil {
				return err
			}
			if err := e.line(ev.Text); err != nil {
				return err
			}
			return e.macroLine(m.ControlOff)
		}
		return e.line(ev.Text)
	case eventBoxOpen:
		return e.macroLine(m.BoxOpen)
	case eventBoxClose:
		return e.macroLine(m.BoxClose)
	case eventHyperlink:
		return e.line(m.Hyperlink(ev.Text, ev.Target))
	case eventMailLink:
		return e.line(m.MailLink(ev.Text, ev.Target))
	case eventManRef:
		return e.line(m.ManRef(ev.Text, ev.Target))
	}
	return nil
}
