package md2roff

import "io"

// lineBuffer accumulates the text of one logical output line. Flushing
// squeezes interior whitespace runs to single spaces, trims the ends and
// writes the result as one line; an all-whitespace buffer writes nothing.
type lineBuffer struct {
	buf     []byte
	scratch []byte

	bufArr     [256]byte
	scratchArr [256]byte
}

func (b *lineBuffer) reset() {
	b.buf = b.bufArr[:0]
}

func (b *lineBuffer) writeByte(c byte) {
	if b.buf == nil {
		b.buf = b.bufArr[:0]
	}
	b.buf = append(b.buf, c)
}

func (b *lineBuffer) writeString(s string) {
	if b.buf == nil {
		b.buf = b.bufArr[:0]
	}
	b.buf = append(b.buf, s...)
}

func (b *lineBuffer) len() int {
	return len(b.buf)
}

func (b *lineBuffer) bytes() []byte {
	return b.buf
}

// flush writes the squeezed buffer contents as one line and resets the
// buffer. Nothing is written when the buffer holds no visible text.
func (b *lineBuffer) flush(w io.Writer) error {
	if len(b.buf) == 0 {
		return nil
	}
	if b.scratch == nil {
		b.scratch = b.scratchArr[:0]
	}
	b.scratch = squeeze(b.scratch[:0], b.buf)
	b.reset()
	if len(b.scratch) == 0 {
		return nil
	}
	b.scratch = append(b.scratch, '\n')
	_, err := w.Write(b.scratch)
	return err
}

// squeeze appends src to dst with every interior whitespace run collapsed
// to a single space and leading/trailing whitespace removed.
func squeeze(dst, src []byte) []byte {
	pending := false
	for _, c := range src {
		if isSpaceByte(c) {
			if len(dst) > 0 {
				pending = true
			}
			continue
		}
		if pending {
			dst = append(dst, ' ')
			pending = false
		}
		dst = append(dst, c)
	}
	return dst
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
