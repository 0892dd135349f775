package md2roff

import (
	"bytes"
	"errors"
	"strings"
)

// ErrUnterminatedCodeSpan reports an inline code span with no closing
// backtick before the end of the document.
var ErrUnterminatedCodeSpan = errors.New("inline code span not closed")

// openerGate is the set of characters allowed immediately before an
// emphasis or strong opener; elsewhere the marker is literal text.
const openerGate = "({[,.;`'\" \t\n"

// scanProse consumes one inline construct at the cursor: an emphasis or
// strong toggle, a code span, a link, a line end, or a literal byte.
func (s *scanner) scanProse() error {
	c := s.src[s.pos]
	switch {
	case c == '\n':
		return s.scanLineEnd()
	case (c == '*' || c == '_') && s.nextIs(c):
		s.toggleStrong()
	case c == '*' || c == '_':
		s.toggleEmphasis()
	case c == '`':
		return s.scanCodeSpan()
	case c == '[' || (c == '!' && s.nextIs('[')):
		return s.scanLink()
	default:
		s.buf.writeByte(c)
		s.pos++
	}
	return nil
}

// toggleStrong closes an open strong span, opens one when the preceding
// character permits it, and otherwise copies the marker pair literally.
func (s *scanner) toggleStrong() {
	if s.bold {
		s.bold = false
		s.buf.writeString(s.em.macros.StrongOff)
	} else if s.openerAllowed() {
		s.bold = true
		s.buf.writeString(s.em.macros.StrongOn)
	} else {
		s.buf.writeByte(s.src[s.pos])
		s.buf.writeByte(s.src[s.pos+1])
	}
	s.pos += 2
}

func (s *scanner) toggleEmphasis() {
	if s.italic {
		s.italic = false
		s.buf.writeString(s.em.macros.EmphasisOff)
	} else if s.openerAllowed() {
		s.italic = true
		s.buf.writeString(s.em.macros.EmphasisOn)
	} else {
		s.buf.writeByte(s.src[s.pos])
	}
	s.pos++
}

func (s *scanner) openerAllowed() bool {
	if s.pos == 0 {
		return true
	}
	return strings.IndexByte(openerGate, s.src[s.pos-1]) >= 0
}

// scanCodeSpan copies everything up to the closing backtick verbatim,
// wrapped in the dialect's code font switches. The visible backtick and
// closing quote around the span are kept. A missing closing backtick is
// fatal.
func (s *scanner) scanCodeSpan() error {
	s.pos++
	s.buf.writeByte('`')
	s.buf.writeString(s.em.macros.CodeSpanOn)
	for {
		if s.pos >= len(s.src) {
			return ErrUnterminatedCodeSpan
		}
		c := s.src[s.pos]
		if c == '`' {
			break
		}
		s.buf.writeByte(c)
		s.pos++
	}
	s.pos++
	s.buf.writeString(s.em.macros.CodeSpanOff)
	s.buf.writeByte('\'')
	return nil
}

// scanLink recognizes [text](target) and ![text](target). The target
// "man" marks a manual page cross-reference with text "name section"; a
// target containing '@' is a mail link. Anything not matching the full
// shape is a single literal character.
func (s *scanner) scanLink() error {
	i := s.pos
	if s.src[i] == '!' {
		i++
	}
	textStart := i + 1
	close1 := bytes.IndexByte(s.src[textStart:], ']')
	ok := close1 >= 0 &&
		textStart+close1+1 < len(s.src) &&
		s.src[textStart+close1+1] == '('
	urlStart := 0
	close2 := -1
	if ok {
		urlStart = textStart + close1 + 2
		close2 = bytes.IndexByte(s.src[urlStart:], ')')
		ok = close2 >= 0
	}
	if !ok {
		s.buf.writeByte(s.src[s.pos])
		s.pos++
		return nil
	}
	text := string(s.src[textStart : textStart+close1])
	target := string(s.src[urlStart : urlStart+close2])
	if err := s.flushLine(); err != nil {
		return err
	}
	s.pos = urlStart + close2 + 1
	switch {
	case target == "man":
		name, section := splitManRef(text)
		return s.em.event(Event{Kind: eventManRef, Text: name, Target: section})
	case strings.Contains(target, "@"):
		return s.em.event(Event{Kind: eventMailLink, Text: text, Target: target})
	default:
		return s.em.event(Event{Kind: eventHyperlink, Text: text, Target: target})
	}
}

// splitManRef splits "name section" on the first space; the section is
// empty when the text has no space.
func splitManRef(text string) (string, string) {
	if i := strings.IndexByte(text, ' '); i >= 0 {
		return text[:i], text[i+1:]
	}
	return text, ""
}
