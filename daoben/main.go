// The command "daoben" converts daoben text into Han script.
//
// It loads a CSV dictionary, converts an input text file in a single pass,
// and writes two renderings:
//   - a plain-text transliteration, and
//   - an HTML document in which every translated word carries a hover
//     tooltip "<word> : <gloss>".
//
// Words missing from the dictionary and unmapped characters are copied
// verbatim, so a partial dictionary still yields complete output.
//
// Example usages:
//
//	# Convert input.txt with dictionary.csv (all defaults):
//	daoben
//
//	# Same thing, explicit:
//	daoben convert --dict dictionary.csv --in input.txt --out-txt output.txt --out-html output.html
//
//	# Convert with a preset dictionary:
//	daoben convert --dict dictionary_f.csv
//
//	# List dictionary entries mentioning "good":
//	daoben search good
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"daobentools/pkg/convert"
	"daobentools/pkg/dictionary"
	"daobentools/pkg/htmldoc"
)

// --- CLI help / usage -------------------------------------------------------

const helpText = `daoben - daoben to Han script converter

Usage:
  daoben
      Same as "daoben convert" with every flag at its default.

  daoben help
      Print this help message.

  daoben convert [flags]
      Convert a daoben text file into plain text and annotated HTML.

  daoben search [--dict PATH] [query]
      Print the dictionary entries whose word, replacement or gloss
      contains query. Without a query every entry is printed.
      Format: one entry per line
          <word>\t<replacement>\t<gloss>

Flags for "convert":
  --dict PATH
      Dictionary CSV (default "dictionary.csv"). The first row is a header
      and is ignored; every other row is
          <daoben word>,<replacement>[,<gloss>]

  --in PATH
      Source text, UTF-8 (default "input.txt").

  --out-txt PATH
      Plain-text output (default "output.txt").

  --out-html PATH
      HTML output (default "output.html").

  --title TEXT
      HTML document title (default "道本语转换结果").
`

// printUsage writes the CLI help text to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, helpText+"\n")
}

// --- convert ----------------------------------------------------------------

// convertConfig holds options for the "convert" subcommand.
type convertConfig struct {
	DictPath string
	InPath   string
	TxtPath  string
	HTMLPath string
	Title    string
}

// runConvert loads the dictionary, converts the input file and writes both
// output files.
func runConvert(cfg convertConfig) error {
	dict, err := dictionary.LoadFile(cfg.DictPath)
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	text, err := os.ReadFile(cfg.InPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	res := convert.New(dict).Convert(string(text))

	if err := os.WriteFile(cfg.TxtPath, []byte(res.Plain), 0o644); err != nil {
		return fmt.Errorf("write text: %w", err)
	}

	doc, err := htmldoc.Render(cfg.Title, res.HTML)
	if err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	if err := os.WriteFile(cfg.HTMLPath, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	matched := 0
	for _, t := range res.Tokens {
		if t.Kind == convert.Match {
			matched++
		}
	}
	fmt.Fprintf(os.Stderr,
		"Finished. Dictionary entries: %d, tokens: %d (translated: %d). Wrote %s and %s\n",
		dict.Len(), len(res.Tokens), matched, cfg.TxtPath, cfg.HTMLPath)

	return nil
}

// runConvertFromArgs parses flags for the "convert" subcommand and
// delegates to runConvert.
func runConvertFromArgs(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	dictPath := fs.String("dict", "dictionary.csv", "dictionary CSV")
	inPath := fs.String("in", "input.txt", "daoben source text")
	txtPath := fs.String("out-txt", "output.txt", "plain-text output")
	htmlPath := fs.String("out-html", "output.html", "HTML output")
	title := fs.String("title", htmldoc.DefaultTitle, "HTML document title")

	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return fmt.Errorf(`"convert" takes no positional arguments, got %q`, fs.Args())
	}

	return runConvert(convertConfig{
		DictPath: strings.TrimSpace(*dictPath),
		InPath:   strings.TrimSpace(*inPath),
		TxtPath:  strings.TrimSpace(*txtPath),
		HTMLPath: strings.TrimSpace(*htmlPath),
		Title:    *title,
	})
}

// --- search -----------------------------------------------------------------

// runSearchFromArgs lists matching dictionary entries on w.
func runSearchFromArgs(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	dictPath := fs.String("dict", "dictionary.csv", "dictionary CSV")
	fs.SetOutput(os.Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		return errors.New(`"search" expects at most one query argument`)
	}

	dict, err := dictionary.LoadFile(strings.TrimSpace(*dictPath))
	if err != nil {
		return fmt.Errorf("load dictionary: %w", err)
	}

	entries := dict.Search(fs.Arg(0))
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no match")
		return nil
	}
	return dictionary.WriteText(w, entries)
}

func main() {
	if len(os.Args) < 2 {
		if err := runConvertFromArgs(nil); err != nil {
			log.Fatal(err)
		}
		return
	}

	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	case "convert":
		if err := runConvertFromArgs(os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	case "search":
		if err := runSearchFromArgs(os.Stdout, os.Args[2:]); err != nil {
			log.Fatal(err)
		}
	default:
		log.Printf("Unknown subcommand %q\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
}
