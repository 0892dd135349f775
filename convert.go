package md2roff

import (
	"fmt"
	"io"
	"time"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	// Source is the whole Markdown document. It is only read.
	Source []byte
	// Writer receives the generated troff source.
	Writer io.Writer
	// Name is the document name used for generated title lines.
	Name string
	// Dialect selects the macro package; nil means the man dialect.
	Dialect Dialect
	Options []ConvertOption
}

// ConvertOption configures conversion behavior.
type ConvertOption func(*convertConfig)

type convertConfig struct {
	date        time.Time
	frontMatter bool
}

// WithDate fixes the date used in generated title lines. The default is
// the current time.
func WithDate(t time.Time) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.date = t
	}
}

// WithFrontMatter enables or disables YAML front matter handling. It is
// enabled by default.
func WithFrontMatter(enabled bool) ConvertOption {
	return func(cfg *convertConfig) {
		cfg.frontMatter = enabled
	}
}

// Convert transforms one Markdown document into troff source for the
// requested dialect. All state is per call; documents never share state.
func Convert(req ConvertRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	d := req.Dialect
	if d == nil {
		d = DefaultDialect()
	}
	cfg := convertConfig{date: time.Now(), frontMatter: true}
	for _, opt := range req.Options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := ValidateInput(req.Source); err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	src := req.Source
	var meta DocumentMeta
	if cfg.frontMatter {
		if m, rest, ok := parseFrontMatter(src); ok {
			meta = m
			src = rest
		}
	}
	name := req.Name
	if name == "" {
		name = "stdin"
	}
	src, err := writePreamble(req.Writer, d, src, name, meta, cfg.date)
	if err != nil {
		return fmt.Errorf("convert %s: %w", name, err)
	}
	em := &emitter{w: req.Writer, macros: d.Macros()}
	if err := newScanner(src, em).run(); err != nil {
		return fmt.Errorf("convert %s: %w", name, err)
	}
	return nil
}
