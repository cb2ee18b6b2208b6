package browser

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/go-rod/rod/lib/launcher"

	"appraisalgen/internal/domain/appraisal"
)

func TestPrintRequestIsA4WithBackground(t *testing.T) {
	req := printRequest()
	if !req.PrintBackground {
		t.Fatal("print background must be enabled")
	}
	if req.PaperWidth == nil || *req.PaperWidth != paperWidthIn {
		t.Fatal("unexpected paper width")
	}
	if req.PaperHeight == nil || *req.PaperHeight != paperHeightIn {
		t.Fatal("unexpected paper height")
	}
}

// Exercises the full Chrome export when a browser is installed locally; the
// launcher is never allowed to download one inside tests.
func TestRenderWithLocalChrome(t *testing.T) {
	bin, has := launcher.LookPath()
	if !has {
		t.Skip("no local chrome found")
	}

	doc := &appraisal.Document{
		Meta: appraisal.Meta{ReportTitle: "Annual Appraisal"},
		Tabs: []appraisal.Tab{{Label: "Job Competencies"}},
	}

	r := NewRenderer(Options{Bin: bin, Timeout: time.Minute})
	var buf bytes.Buffer
	if err := r.Render(context.Background(), doc, &buf); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output does not look like a PDF")
	}
}
