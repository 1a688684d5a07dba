package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jung/hannum/internal/batch"
	"github.com/jung/hannum/internal/numeral"
)

type field struct {
	name  string
	label string
	get   func(f numeral.Formats) string
}

var fields = []field{
	{"korean", "Korean", func(f numeral.Formats) string { return f.Korean }},
	{"commas", "Commas", func(f numeral.Formats) string { return f.Commas }},
	{"sino", "Sino-Korean", func(f numeral.Formats) string { return f.SinoKorean }},
	{"english", "English", func(f numeral.Formats) string { return f.English }},
	{"scientific", "Scientific", func(f numeral.Formats) string { return f.Scientific }},
	{"romanized", "Romanized", func(f numeral.Formats) string { return f.Romanized }},
	{"words", "Words", func(f numeral.Formats) string { return f.EnglishWords }},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hannum", flag.ContinueOnError)
	fs.SetOutput(stderr)
	only := fs.String("only", "", "Print a single representation: korean, commas, sino, english, scientific, romanized, words")
	superscript := fs.Bool("superscript", false, "Write scientific exponents with superscript digits")
	encoding := fs.String("encoding", "utf-8", "Encoding of stdin: utf-8 or euc-kr")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: hannum [flags] [number...]")
		fmt.Fprintln(stderr, "\nReads Korean numerals or plain numbers from the arguments, or from stdin")
		fmt.Fprintln(stderr, "one per line when no arguments are given.")
		fmt.Fprintln(stderr, "\nFlags:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	selected := fields
	if *only != "" {
		selected = nil
		for _, f := range fields {
			if f.name == *only {
				selected = []field{f}
			}
		}
		if selected == nil {
			fmt.Fprintf(stderr, "unknown representation %q\n", *only)
			return 2
		}
	}

	var entries []batch.Entry
	if fs.NArg() > 0 {
		for i, arg := range fs.Args() {
			entries = append(entries, batch.ConvertLine(i+1, arg))
		}
	} else {
		r, err := batch.DecodeReader(stdin, *encoding)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		entries, err = batch.Convert(context.Background(), r)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}

	status := 0
	for _, e := range entries {
		if e.Error != "" {
			fmt.Fprintf(stderr, "%s: %s\n", e.Input, e.Error)
			status = 1
			continue
		}

		formats := *e.Formats
		if *superscript {
			formats.Scientific = numeral.Superscript(formats.Scientific)
		}

		if len(selected) == 1 {
			fmt.Fprintln(stdout, selected[0].get(formats))
			continue
		}
		fmt.Fprintln(stdout, e.Input)
		for _, f := range selected {
			if v := f.get(formats); v != "" {
				fmt.Fprintf(stdout, "  %-12s %s\n", f.label+":", v)
			}
		}
	}
	return status
}
