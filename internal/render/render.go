// Package render selects between the two PDF renderers.
package render

import (
	"context"
	"fmt"
	"io"

	"appraisalgen/internal/domain/appraisal"
	"appraisalgen/internal/platform/config"
	"appraisalgen/internal/render/browser"
	"appraisalgen/internal/render/vector"
)

// Renderer turns one appraisal document into a PDF stream.
type Renderer interface {
	Render(ctx context.Context, doc *appraisal.Document, w io.Writer) error
}

// New builds the renderer named by cfg.Renderer. The vector renderer is the
// default; the browser renderer needs a reachable or launchable Chrome.
func New(cfg config.Config) (Renderer, error) {
	switch cfg.Renderer {
	case "", config.RendererVector:
		return vector.NewRenderer(vector.DefaultTheme()), nil
	case config.RendererBrowser:
		return browser.NewRenderer(browser.Options{
			Bin:         cfg.ChromeBin,
			DebuggerURL: cfg.ChromeDebuggerURL,
			Timeout:     cfg.ExportTimeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", cfg.Renderer)
	}
}
