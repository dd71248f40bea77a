package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	invoicepdf "github.com/avelar/go-invoicepdf"
)

// run executes the command described by flags, writing informational output
// to out and PDFs to the filesystem.
func run(flags *cliFlags, out io.Writer) error {
	if flags.version {
		fmt.Fprintln(out, Version)
		return nil
	}
	if flags.listTemplates {
		for _, style := range invoicepdf.TemplateStyles() {
			fmt.Fprintln(out, style)
		}
		return nil
	}
	if flags.input == "" {
		return ErrNoInput
	}
	if flags.sample {
		if err := writeSampleDocument(flags.input); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote sample document to %s\n", flags.input)
		return nil
	}

	doc, company, err := loadDocument(flags.input)
	if err != nil {
		return err
	}

	renderer := invoicepdf.NewRenderer(
		invoicepdf.WithCompany(company),
		invoicepdf.WithComputeOptions(invoicepdf.ComputeOptions{
			ApplyItemDiscounts: flags.itemDiscounts,
		}),
	)

	outPath := flags.output
	if outPath == "" {
		outPath = replaceExt(flags.input, ".pdf")
	}

	if flags.all {
		return renderAllStyles(renderer, doc, outPath, resolveWorkers(flags.workers), flags.verbose)
	}

	style, err := invoicepdf.ParseTemplateStyle(flags.template)
	if err != nil {
		return err
	}

	if flags.verbose {
		fmt.Fprintf(os.Stderr, "Rendering %s as %s...\n", flags.input, style)
	}
	pdf, err := renderer.Render(context.Background(), doc, style)
	if err != nil {
		return err
	}
	return writePDF(outPath, pdf)
}

// writePDF writes the finished artifact.
func writePDF(path string, pdf []byte) error {
	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}

// replaceExt swaps the file extension of path for ext.
func replaceExt(path, ext string) string {
	if i := strings.LastIndex(path, "."); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ext
	}
	return path + ext
}

// styleOutPath derives the per-style output name used by --all:
// "acme.pdf" becomes "acme-modern.pdf".
func styleOutPath(base string, style invoicepdf.TemplateStyle) string {
	return strings.TrimSuffix(base, ".pdf") + "-" + string(style) + ".pdf"
}
