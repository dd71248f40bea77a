package main

import (
	"fmt"

	flag "github.com/spf13/pflag"
)

// cliFlags holds the parsed command line.
type cliFlags struct {
	input         string
	output        string
	template      string
	all           bool
	itemDiscounts bool
	sample        bool
	listTemplates bool
	workers       int
	verbose       bool
	version       bool
}

// parseFlags parses args (including the program name at args[0]).
func parseFlags(args []string) (*cliFlags, error) {
	flags := &cliFlags{}

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SortFlags = false

	fs.StringVarP(&flags.input, "input", "i", "", "document YAML file")
	fs.StringVarP(&flags.output, "output", "o", "", "output PDF file (default: input with .pdf extension)")
	fs.StringVarP(&flags.template, "template", "t", "modern", "template style (see --list-templates)")
	fs.BoolVar(&flags.all, "all", false, "render every template style concurrently")
	fs.BoolVar(&flags.itemDiscounts, "item-discounts", false, "apply item-level discounts to line totals")
	fs.BoolVar(&flags.sample, "sample", false, "write a sample document to --input and exit")
	fs.BoolVar(&flags.listTemplates, "list-templates", false, "list template styles and exit")
	fs.IntVarP(&flags.workers, "workers", "w", 0, "worker count for --all (default: CPU count)")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose progress on stderr")
	fs.BoolVar(&flags.version, "version", false, "print version and exit")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s -i document.yaml [-o out.pdf] [-t style]\n\nFlags:\n", args[0])
		fs.PrintDefaults()
	}

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	return flags, nil
}
