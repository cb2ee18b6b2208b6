// Package browser exports the appraisal document to PDF through headless
// Chrome. It builds the HTML markup, loads it into a page and prints it with
// backgrounds enabled at A4 size. Chrome's print pipeline carries the in-page
// anchor links through to the PDF but emits no outline entries; bookmarks are
// a vector-renderer feature.
package browser

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"appraisalgen/internal/domain/appraisal"
	"appraisalgen/internal/render/markup"
)

// A4 paper size in inches, the unit PagePrintToPDF expects.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
)

type Options struct {
	// Bin is the Chrome binary to launch. Empty means let the launcher find
	// or fetch one.
	Bin string
	// DebuggerURL attaches to an already-running Chrome instead of launching.
	DebuggerURL string
	// Timeout bounds the whole export, launch included. Zero means no bound.
	Timeout time.Duration
}

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render builds the markup for doc, prints it through Chrome and streams the
// PDF to w.
func (r *Renderer) Render(ctx context.Context, doc *appraisal.Document, w io.Writer) error {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	controlURL := r.opts.DebuggerURL
	if controlURL == "" {
		l := launcher.New().Headless(true)
		if r.opts.Bin != "" {
			l = l.Bin(r.opts.Bin)
		}
		url, err := l.Launch()
		if err != nil {
			return fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = url
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		return fmt.Errorf("connect to chrome: %w", err)
	}
	defer b.Close()

	page, err := b.Page(proto.TargetCreateTarget{URL: "about:blank"})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	if err := page.SetDocumentContent(markup.Build(doc)); err != nil {
		return fmt.Errorf("set page content: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for page load: %w", err)
	}

	stream, err := page.PDF(printRequest())
	if err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	if _, err := io.Copy(w, stream); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func printRequest() *proto.PagePrintToPDF {
	return &proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      num(paperWidthIn),
		PaperHeight:     num(paperHeightIn),
		MarginTop:       num(0),
		MarginBottom:    num(0),
		MarginLeft:      num(0),
		MarginRight:     num(0),
	}
}

func num(v float64) *float64 {
	return &v
}
