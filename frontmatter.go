package md2roff

import (
	"bytes"

	"github.com/goccy/go-yaml"
)

// DocumentMeta is the YAML front matter a document may carry. The fields
// feed the generated title block; anything else in the block is ignored.
type DocumentMeta struct {
	Title   string `yaml:"title"`
	Section string `yaml:"section"`
	Date    string `yaml:"date"`
	Source  string `yaml:"source"`
	Manual  string `yaml:"manual"`
	Author  string `yaml:"author"`
}

var frontMatterDelim = []byte("---")

// parseFrontMatter strips a leading YAML front matter block. The opening
// delimiter must be the first line, the next line must look like
// metadata, and a closing delimiter must exist; otherwise, or when the
// block is not valid YAML, the document is returned untouched so the
// content falls through to the scanner.
func parseFrontMatter(src []byte) (DocumentMeta, []byte, bool) {
	var meta DocumentMeta
	openLine, next := splitLine(src, 0)
	if !bytes.Equal(bytes.TrimSpace(trimBOM(openLine)), frontMatterDelim) {
		return meta, src, false
	}
	bodyStart := next
	second, _ := splitLine(src, next)
	if !metadataLikely(second) {
		return meta, src, false
	}
	bodyEnd, closeNext, found := findFrontMatterEnd(src, next)
	if !found {
		return meta, src, false
	}
	if err := yaml.Unmarshal(src[bodyStart:bodyEnd], &meta); err != nil {
		return DocumentMeta{}, src, false
	}
	return meta, src[closeNext:], true
}

func splitLine(src []byte, start int) ([]byte, int) {
	if start >= len(src) {
		return nil, len(src)
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src)
	}
	return trimCR(src[start : start+i]), start + i + 1
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.ContainsRune(trimmed, ':') || bytes.ContainsRune(trimmed, '=')
}

func findFrontMatterEnd(src []byte, start int) (int, int, bool) {
	for idx := start; idx < len(src); {
		line, next := splitLine(src, idx)
		if bytes.Equal(bytes.TrimSpace(line), frontMatterDelim) {
			return idx, next, true
		}
		if next == idx {
			return 0, 0, false
		}
		idx = next
	}
	return 0, 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
