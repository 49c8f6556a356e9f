// Command corestrcat exercises the string engine end to end: it reads
// lines of text, applies an optional fold/normalize transform, renders an
// optional format template against each line, and can resolve a strings
// bundle to look up localized output.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	corestr "github.com/axiomhq/corestr"
	"github.com/axiomhq/corestr/bundle"
	"github.com/axiomhq/corestr/internal/corelog"
	"github.com/axiomhq/corestr/locale"
)

func main() {
	var (
		foldCase       = flag.Bool("fold-case", false, "case-fold each line")
		foldDiacritics = flag.Bool("fold-diacritics", false, "diacritic-fold each line")
		normalizeForm  = flag.String("normalize", "", "normalize each line: D, C, KD, or KC")
		tmpl           = flag.String("format", "", "render this template against each line as %1$@")
		bundlePath     = flag.String("bundle", "", "load a strings bundle and look up each line as a key")
		localeID       = flag.String("locale", "en-US", "locale identifier for formatting")
	)
	flag.Parse()

	if lvl := os.Getenv("CORESTR_LOG_LEVEL"); lvl != "" {
		corelog.Logger().Debugf("corestrcat starting with log level override %q", lvl)
	}

	var tbl *bundle.Table
	if *bundlePath != "" {
		t, err := bundle.Load(*bundlePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "corestrcat: failed to load bundle %s: %v\n", *bundlePath, err)
			os.Exit(1)
		}
		bundle.Global.Register(t)
		tbl = t
	}

	l := locale.New(*localeID)
	var opts corestr.CompareOptions
	if *foldCase {
		opts.CaseInsensitive = true
	}
	if *foldDiacritics {
		opts.DiacriticInsensitive = true
	}

	scanner := bufio.NewScanner(os.Stdin)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		s := corestr.FromCString(line)

		if tbl != nil {
			if v, ok := tbl.Lookup(line); ok {
				s = corestr.FromCString(v)
			}
		}

		if opts.CaseInsensitive || opts.DiacriticInsensitive {
			s = s.Fold(opts)
		}

		if form, ok := parseForm(*normalizeForm); ok {
			s = s.Normalize(form)
		}

		if *tmpl != "" {
			rendered, _, err := corestr.WithFormat(l, *tmpl, s)
			if err != nil {
				fmt.Fprintf(os.Stderr, "corestrcat: format error: %v\n", err)
				continue
			}
			s = rendered
		}

		fmt.Fprintln(w, string(s.Runes()))
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "corestrcat: read error: %v\n", err)
		os.Exit(1)
	}
}

func parseForm(name string) (corestr.NormalizationForm, bool) {
	switch name {
	case "D":
		return corestr.FormD, true
	case "C":
		return corestr.FormC, true
	case "KD":
		return corestr.FormKD, true
	case "KC":
		return corestr.FormKC, true
	default:
		return 0, false
	}
}
