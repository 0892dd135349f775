package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/md2roff"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/md2roff")
}

func main() {
	var (
		useMan      bool
		useMdoc     bool
		useMM       bool
		useMom      bool
		showVersion bool
	)

	flags := pflag.NewFlagSet("md2roff", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.BoolVarP(&useMan, "man", "n", false, "use the man macro package (default)")
	flags.BoolVarP(&useMdoc, "mdoc", "d", false, "use the mdoc macro package (BSD man pages)")
	flags.BoolVarP(&useMM, "mm", "m", false, "use the mm macro package")
	flags.BoolVarP(&useMom, "mom", "o", false, "use the mom macro package")
	flags.BoolVarP(&showVersion, "version", "v", false, "print version information")
	flags.SetInterspersed(true)
	flags.Usage = usage(flags)

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	for _, name := range unknownFlags(flags, os.Args[1:]) {
		fmt.Fprintf(os.Stderr, "md2roff: unknown option: %s\n", name)
	}

	if showVersion {
		fmt.Println(version.Module(), version.Current())
		return
	}

	dialect := resolveDialect(useMan, useMdoc, useMM, useMom)
	args := flags.Args()
	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			flags.Usage()
			return
		}
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := convertOne(arg, dialect); err != nil {
			fmt.Fprintf(os.Stderr, "md2roff: %v\n", err)
			os.Exit(1)
		}
	}
}

func convertOne(arg string, dialect md2roff.Dialect) error {
	name := arg
	var (
		source []byte
		err    error
	)
	if arg == "-" {
		name = "stdin"
		source, err = io.ReadAll(os.Stdin)
	} else {
		source, err = os.ReadFile(arg)
	}
	if err != nil {
		return err
	}
	return md2roff.Convert(md2roff.ConvertRequest{
		Source:  source,
		Writer:  os.Stdout,
		Name:    name,
		Dialect: dialect,
	})
}

func resolveDialect(man, mdoc, mm, mom bool) md2roff.Dialect {
	name := "man"
	switch {
	case mdoc:
		name = "mdoc"
	case mm:
		name = "mm"
	case mom:
		name = "mom"
	case man:
		name = "man"
	}
	d, _ := md2roff.DialectByName(name)
	return d
}

// unknownFlags returns the flag-looking arguments pflag skipped, so the
// run can warn about them and continue.
func unknownFlags(flags *pflag.FlagSet, args []string) []string {
	var unknown []string
	for _, arg := range args {
		if arg == "--" {
			break
		}
		switch {
		case strings.HasPrefix(arg, "--"):
			name := strings.TrimPrefix(arg, "--")
			if i := strings.IndexByte(name, '='); i >= 0 {
				name = name[:i]
			}
			if name != "" && name != "help" && flags.Lookup(name) == nil {
				unknown = append(unknown, arg)
			}
		case strings.HasPrefix(arg, "-") && len(arg) > 1:
			for _, c := range arg[1:] {
				if c == 'h' {
					continue
				}
				if flags.ShorthandLookup(string(c)) == nil {
					unknown = append(unknown, "-"+string(c))
				}
			}
		}
	}
	return unknown
}

func usage(flags *pflag.FlagSet) func() {
	return func() {
		width := 80
		fd := int(os.Stderr.Fd())
		if term.IsTerminal(fd) {
			if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				width = w
			}
		}
		intro := "Convert Markdown documents to troff/groff source. " +
			"Output goes to stdout and begins with a directive loading the " +
			"selected macro package. With no inputs, or with a bare -, " +
			"Markdown is read from stdin. Each named input is converted " +
			"independently, in argument order."
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintln(os.Stderr, "Usage: md2roff [flags] [file...]")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, wordwrap.String(intro, width))
		fmt.Fprintln(os.Stderr, "\nFlags:")
		fmt.Fprint(os.Stderr, flags.FlagUsagesWrapped(width))
	}
}
