// Package md2roff converts Markdown to troff/groff source.
//
// The converter is a single pass over an in-memory document: a block
// scanner recognizes headings, lists, fenced code and links from a few
// bytes of lookahead and emits dialect-specific macro lines as it goes.
// There is no intermediate syntax tree; inline emphasis, the list stack
// and the output line buffer are the only state carried across the scan.
//
// Four macro packages are supported: man (default), mdoc, mm and mom.
// Each is a table of literal macro spellings for the same abstract
// events, so the scanner never branches on the output dialect.
//
// Example:
//
//	err := md2roff.Convert(md2roff.ConvertRequest{
//		Source: []byte("# grep 1 2024-01-01 GNU\n\nPrint matching lines.\n"),
//		Writer: os.Stdout,
//		Name:   "grep.md",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Output starts with a directive loading the selected macro package and,
// for the man and mdoc dialects, a generated .TH title line derived from
// YAML front matter, a leading "# title section date source manual" line,
// or the document name and current date.
package md2roff
