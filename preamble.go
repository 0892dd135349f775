package md2roff

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"
)

// writePreamble emits the dialect-selection directive and the generated
// title block. For the man and mdoc dialects a leading "# title section
// date source manual" line is consumed into the .TH request; the returned
// slice is the source with any consumed line removed.
func writePreamble(w io.Writer, d Dialect, src []byte, name string, meta DocumentMeta, date time.Time) ([]byte, error) {
	em := &emitter{w: w, macros: d.Macros()}
	if err := em.line(`.\" x-roff document`); err != nil {
		return src, err
	}
	if err := em.line(em.macros.Preamble); err != nil {
		return src, err
	}
	switch d.Name() {
	case "man", "mdoc":
		switch {
		case meta.Title != "":
			if err := em.line(".TH " + titleLine(meta, date)); err != nil {
				return src, err
			}
		case hasTitleLine(src):
			var line []byte
			line, src = cutFirstLine(src[2:])
			if err := em.line(".TH " + string(line)); err != nil {
				return src, err
			}
		default:
			th := fmt.Sprintf(".TH %s 7 %s document", name, date.Format("2006-01-02"))
			if err := em.line(th); err != nil {
				return src, err
			}
		}
	case "mom":
		title := meta.Title
		if title == "" {
			title = name
		}
		author := meta.Author
		if author == "" {
			author = "md2roff"
		}
		for _, line := range []string{
			fmt.Sprintf(".TITLE %q", title),
			fmt.Sprintf(".AUTHOR %q", author),
			".PAPER A4",
			".PRINTSTYLE TYPESET",
			".START",
		} {
			if err := em.line(line); err != nil {
				return src, err
			}
		}
	}
	return src, nil
}

func hasTitleLine(src []byte) bool {
	return len(src) >= 2 && src[0] == '#' && (src[1] == ' ' || src[1] == '\t')
}

func cutFirstLine(src []byte) ([]byte, []byte) {
	nl := bytes.IndexByte(src, '\n')
	if nl < 0 {
		return src, nil
	}
	return src[:nl], src[nl+1:]
}

// titleLine composes a .TH argument list from front matter, filling the
// section, date and source the same way the generated fallback does.
func titleLine(meta DocumentMeta, date time.Time) string {
	section := meta.Section
	if section == "" {
		section = "7"
	}
	when := meta.Date
	if when == "" {
		when = date.Format("2006-01-02")
	}
	source := meta.Source
	if source == "" {
		source = "document"
	}
	parts := []string{meta.Title, section, when, source}
	if meta.Manual != "" {
		parts = append(parts, meta.Manual)
	}
	return strings.Join(parts, " ")
}
