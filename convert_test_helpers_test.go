package md2roff

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

var testDate = time.Date(2020, 3, 14, 0, 0, 0, 0, time.UTC)

func convertString(t *testing.T, src, dialectName string) string {
	t.Helper()
	d, ok := DialectByName(dialectName)
	if !ok {
		t.Fatalf("unknown dialect %q", dialectName)
	}
	var out bytes.Buffer
	err := Convert(ConvertRequest{
		Source:  []byte(src),
		Writer:  &out,
		Name:    "doc.md",
		Dialect: d,
		Options: []ConvertOption{WithDate(testDate)},
	})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	return out.String()
}

// convertBody drops the generated preamble so tests can assert on the
// document body alone.
func convertBody(t *testing.T, src, dialectName string) string {
	t.Helper()
	out := convertString(t, src, dialectName)
	lines := strings.Split(out, "\n")
	i := 0
	for i < len(lines) && isPreambleLine(lines[i]) {
		i++
	}
	return strings.Join(lines[i:], "\n")
}

func isPreambleLine(line string) bool {
	switch line {
	case `.\" x-roff document`, ".PAPER A4", ".PRINTSTYLE TYPESET", ".START":
		return true
	}
	for _, prefix := range []string{".do mso ", ".TH ", ".TITLE ", ".AUTHOR "} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}
