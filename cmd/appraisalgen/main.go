// Command appraisalgen renders an appraisal JSON document to a PDF file.
//
//	appraisalgen -i report.json -o report.pdf
//
// Renderer selection and browser settings come from environment variables
// (RENDERER, CHROME_BIN, CHROME_DEBUGGER_URL, EXPORT_TIMEOUT).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"appraisalgen/internal/domain/appraisal"
	"appraisalgen/internal/platform/config"
	"appraisalgen/internal/render"
)

func main() {
	var input, output string
	flag.StringVar(&input, "i", "sample-data.json", "input appraisal JSON file")
	flag.StringVar(&input, "input", "sample-data.json", "input appraisal JSON file")
	flag.StringVar(&output, "o", "appraisal.pdf", "output PDF file")
	flag.StringVar(&output, "output", "appraisal.pdf", "output PDF file")
	flag.Parse()

	if err := run(input, output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(output)
}

func run(input, output string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	doc, err := appraisal.Load(input)
	if err != nil {
		return err
	}

	renderer, err := render.New(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()

	if err := renderer.Render(context.Background(), doc, f); err != nil {
		return err
	}
	return f.Close()
}
