package md2roff

import "bytes"

var fenceBytes = []byte("```")

// scanner walks the document once and drives the emitter. State is the
// cursor, the line-start and code-block modes, the two inline toggles and
// the list stack; the cursor only moves forward, with bounded lookahead
// for line ends and link delimiters.
type scanner struct {
	src []byte
	pos int

	em    *emitter
	buf   lineBuffer
	stack ListStack

	atLineStart bool
	inCode      bool
	bold        bool
	italic      bool
}

func newScanner(src []byte, em *emitter) *scanner {
	s := &scanner{src: src, em: em, atLineStart: true}
	s.buf.reset()
	s.stack.Reset()
	em.stack = &s.stack
	return s
}

func (s *scanner) run() error {
	for s.pos < len(s.src) {
		if s.inCode {
			if err := s.scanCodeLine(); err != nil {
				return err
			}
			continue
		}
		if s.src[s.pos] == '\\' {
			s.scanEscape()
			continue
		}
		if s.atLineStart {
			handled, err := s.scanLineStart()
			if err != nil {
				return err
			}
			if handled {
				continue
			}
		}
		if err := s.scanProse(); err != nil {
			return err
		}
	}
	if err := s.flushLine(); err != nil {
		return err
	}
	for s.stack.Depth() > 0 {
		if err := s.em.event(Event{Kind: eventItemClose}); err != nil {
			return err
		}
		if err := s.em.event(Event{Kind: eventListClose}); err != nil {
			return err
		}
		s.stack.Pop()
	}
	return nil
}

func (s *scanner) flushLine() error {
	return s.buf.flush(s.em.w)
}

// scanLineStart classifies the construct beginning at the current line.
// It reports false when the line carries no block construct, leaving the
// cursor for prose scanning.
func (s *scanner) scanLineStart() (bool, error) {
	s.atLineStart = false
	c := s.src[s.pos]
	switch {
	case c == '\n':
		return true, s.scanBlankLine()
	case c == '#':
		return s.scanHeading()
	case (c == '*' || c == '+' || c == '-') && s.nextIs(' ', '\t'):
		return true, s.scanBulletMarker()
	case c >= '0' && c <= '9':
		return s.scanOrderedMarker()
	case bytes.HasPrefix(s.src[s.pos:], fenceBytes):
		return true, s.scanFenceOpen()
	}
	return false, nil
}

// scanBlankLine flushes the pending line, closes one open list level and
// ends the paragraph.
func (s *scanner) scanBlankLine() error {
	if err := s.flushLine(); err != nil {
		return err
	}
	if s.stack.Depth() > 0 {
		if err := s.em.event(Event{Kind: eventItemClose}); err != nil {
			return err
		}
		if err := s.em.event(Event{Kind: eventListClose}); err != nil {
			return err
		}
		s.stack.Pop()
	}
	if err := s.em.event(Event{Kind: eventParagraphEnd}); err != nil {
		return err
	}
	s.pos++
	s.atLineStart = true
	return nil
}

// scanHeading handles ATX headings. A line whose last character is also
// '#' is a boxed heading and is reproduced verbatim between box markers;
// otherwise the '#' count selects the heading level. A '#' line without a
// terminating newline is left for prose scanning.
func (s *scanner) scanHeading() (bool, error) {
	if err := s.flushLine(); err != nil {
		return true, err
	}
	nl := bytes.IndexByte(s.src[s.pos:], '\n')
	if nl < 0 {
		return false, nil
	}
	line := s.src[s.pos : s.pos+nl]
	if line[len(line)-1] == '#' {
		for _, ev := range []Event{
			{Kind: eventBoxOpen},
			{Kind: eventLineBreak},
		} {
			if err := s.em.event(ev); err != nil {
				return true, err
			}
		}
		if err := s.em.line(string(line)); err != nil {
			return true, err
		}
		for _, ev := range []Event{
			{Kind: eventLineBreak},
			{Kind: eventBoxClose},
		} {
			if err := s.em.event(ev); err != nil {
				return true, err
			}
		}
		s.pos += nl + 1
		s.atLineStart = true
		return true, nil
	}
	level := 0
	i := s.pos
	for i < len(s.src) && s.src[i] == '#' {
		level++
		i++
	}
	for i < len(s.src) && (s.src[i] == ' ' || s.src[i] == '\t') {
		i++
	}
	text := string(s.src[i : s.pos+nl])
	s.pos += nl + 1
	s.atLineStart = true
	return true, s.em.event(Event{Kind: eventHeading, Level: level, Text: text})
}

// scanBulletMarker opens an unordered list on the first marker and closes
// the previous item on subsequent ones. Only the marker character is
// consumed; the item text is prose.
func (s *scanner) scanBulletMarker() error {
	if err := s.flushLine(); err != nil {
		return err
	}
	if s.stack.Depth() > 0 {
		if err := s.em.event(Event{Kind: eventItemClose}); err != nil {
			return err
		}
	} else {
		if err := s.stack.Push(Unordered); err != nil {
			return err
		}
		if err := s.em.event(Event{Kind: eventListOpen, List: Unordered}); err != nil {
			return err
		}
	}
	s.pos++
	return s.em.event(Event{Kind: eventItemOpen})
}

// scanOrderedMarker recognizes digits followed by '.'. The written number
// seeds the item counter, so numbering follows the document. Digits
// without a dot are plain text.
func (s *scanner) scanOrderedMarker() (bool, error) {
	i := s.pos
	num := 0
	for i < len(s.src) && s.src[i] >= '0' && s.src[i] <= '9' {
		num = num*10 + int(s.src[i]-'0')
		i++
	}
	if i >= len(s.src) || s.src[i] != '.' {
		return false, nil
	}
	if err := s.flushLine(); err != nil {
		return true, err
	}
	if s.stack.Depth() > 0 {
		if err := s.em.event(Event{Kind: eventItemClose}); err != nil {
			return true, err
		}
	} else {
		if err := s.stack.Push(Ordered); err != nil {
			return true, err
		}
		if err := s.em.event(Event{Kind: eventListOpen, List: Ordered}); err != nil {
			return true, err
		}
	}
	s.stack.Top().Counter = num
	if err := s.em.event(Event{Kind: eventItemOpen}); err != nil {
		return true, err
	}
	s.pos = i + 1
	for s.pos < len(s.src) && (s.src[s.pos] == ' ' || s.src[s.pos] == '\t') {
		s.pos++
	}
	return true, nil
}

// scanFenceOpen enters code-block mode. The rest of the fence line (any
// info string) is discarded.
func (s *scanner) scanFenceOpen() error {
	if err := s.flushLine(); err != nil {
		return err
	}
	if err := s.em.event(Event{Kind: eventCodeOpen}); err != nil {
		return err
	}
	s.inCode = true
	s.skipRestOfLine()
	return nil
}

// scanCodeLine copies one line verbatim, or leaves code-block mode when
// the line opens with a closing fence.
func (s *scanner) scanCodeLine() error {
	end := s.pos + len(s.src[s.pos:])
	if nl := bytes.IndexByte(s.src[s.pos:], '\n'); nl >= 0 {
		end = s.pos + nl
	}
	line := s.src[s.pos:end]
	s.pos = end
	if s.pos < len(s.src) {
		s.pos++
	}
	s.atLineStart = true
	if bytes.HasPrefix(line, fenceBytes) {
		s.inCode = false
		return s.em.event(Event{Kind: eventCodeClose})
	}
	return s.em.event(Event{Kind: eventCodeLine, Text: string(line)})
}

// scanEscape copies the character after a backslash into the line buffer,
// translating the usual C escapes.
func (s *scanner) scanEscape() {
	s.atLineStart = false
	s.pos++
	if s.pos >= len(s.src) {
		return
	}
	c := s.src[s.pos]
	switch c {
	case 'n':
		s.buf.writeByte('\n')
	case 'r':
		s.buf.writeByte('\r')
	case 't':
		s.buf.writeByte('\t')
	case 'f':
		s.buf.writeByte('\f')
	case 'b':
		s.buf.writeByte('\b')
	case 'a':
		s.buf.writeByte('\a')
	case 'e':
		s.buf.writeByte(0x1b)
	default:
		s.buf.writeByte(c)
	}
	s.pos++
}

// scanLineEnd handles a newline in prose: a following setext rule line
// turns the buffered text into a section heading, otherwise the newline
// joins the logical line as a space.
func (s *scanner) scanLineEnd() error {
	rest := s.src[s.pos+1:]
	if isSetextRule(rest) {
		nl := bytes.IndexByte(rest, '\n')
		if nl < 0 {
			// Rule line ends the document.
			s.pos = len(s.src)
			return nil
		}
		ruleEnd := s.pos + 1 + nl + 1
		if s.buf.len() == 0 {
			// Rule with no preceding text: plain section break.
			s.pos = ruleEnd
			s.atLineStart = true
			return nil
		}
		content := s.buf.bytes()
		if idx := bytes.LastIndexByte(content, '\n'); idx >= 0 {
			head := content[:idx]
			title := string(content[idx+1:])
			if len(head) > 0 {
				if err := s.em.line(string(head)); err != nil {
					return err
				}
			}
			s.buf.reset()
			s.pos = ruleEnd
			s.atLineStart = true
			return s.em.event(Event{Kind: eventHeading, Level: 1, Text: title})
		}
		title := string(squeeze(nil, content))
		s.buf.reset()
		s.pos = ruleEnd
		s.atLineStart = true
		return s.em.event(Event{Kind: eventHeading, Level: 1, Text: title})
	}
	s.buf.writeByte(' ')
	s.pos++
	s.atLineStart = true
	return nil
}

func isSetextRule(rest []byte) bool {
	if len(rest) < 3 {
		return false
	}
	switch rest[0] {
	case '=', '-', '*':
		return rest[1] == rest[0] && rest[2] == rest[0]
	}
	return false
}

func (s *scanner) nextIs(chars ...byte) bool {
	if s.pos+1 >= len(s.src) {
		return false
	}
	next := s.src[s.pos+1]
	for _, c := range chars {
		if next == c {
			return true
		}
	}
	return false
}

func (s *scanner) skipRestOfLine() {
	nl := bytes.IndexByte(s.src[s.pos:], '\n')
	if nl < 0 {
		s.pos = len(s.src)
		return
	}
	s.pos += nl + 1
}
