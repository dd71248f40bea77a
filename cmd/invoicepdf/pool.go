package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync"

	invoicepdf "github.com/avelar/go-invoicepdf"
)

// resolveWorkers picks the pool size for --all: an explicit flag wins,
// otherwise the CPU count capped at the number of styles.
func resolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.NumCPU()
	if limit := len(invoicepdf.TemplateStyles()); n > limit {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

// renderAllStyles renders the document in every template style concurrently.
// Render calls are independent and share only the read-only renderer, so a
// bounded semaphore is all the coordination needed. The first failure wins;
// remaining renders still run to completion.
func renderAllStyles(r *invoicepdf.Renderer, doc invoicepdf.FinancialDocument, outBase string, workers int, verbose bool) error {
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	var mu sync.Mutex
	var firstErr error

	for _, style := range invoicepdf.TemplateStyles() {
		wg.Add(1)
		sem <- struct{}{}
		go func(style invoicepdf.TemplateStyle) {
			defer wg.Done()
			defer func() { <-sem }()

			path := styleOutPath(outBase, style)
			if verbose {
				fmt.Fprintf(os.Stderr, "Rendering %s...\n", path)
			}

			pdf, err := r.Render(context.Background(), doc, style)
			if err == nil {
				err = writePDF(path, pdf)
			}
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s: %w", style, err)
				}
				mu.Unlock()
			}
		}(style)
	}

	wg.Wait()
	return firstErr
}
