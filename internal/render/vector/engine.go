// Package vector renders an appraisal document by drawing primitives directly
// onto a PDF canvas. It keeps a single vertical cursor per page, reserves
// space before drawing blocks of known height, and starts new pages itself
// rather than relying on the backend's automatic page breaks.
package vector

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"appraisalgen/internal/domain/appraisal"
)

// MaxDepth caps hierarchy recursion; nodes beyond it render a truncation
// notice instead of descending.
const MaxDepth = 16

// Stats exposes draw counters for observation in tests and diagnostics.
type Stats struct {
	Pages           int
	ScaffoldRedraws int
	SectionCards    int
	CommentCards    int
	Placeholders    int
}

// Engine walks one document and emits draw commands. An Engine is single-use:
// create, Render, then Output.
type Engine struct {
	pdf *gofpdf.Fpdf
	th  Theme
	tr  func(string) string
	doc *appraisal.Document

	pageW, pageH float64
	curTab       int
	links        []int
	firstPage    []int

	// sectionOpen tracks an in-progress section card whose outer border is
	// stroked per page segment, so a card may visually span a page boundary.
	sectionOpen bool
	sectionTop  float64

	stats Stats
}

func NewEngine(th Theme) *Engine {
	return &Engine{th: th}
}

// Render walks the document and lays out every tab. The input tree is only
// read, never mutated.
func (e *Engine) Render(doc *appraisal.Document) error {
	e.doc = doc
	pdf := gofpdf.New("P", "mm", "A4", "")
	e.pdf = pdf
	e.tr = pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(doc.Meta.ReportTitle, true)
	pdf.SetAutoPageBreak(false, e.th.MarginBottom)
	e.pageW, e.pageH = pdf.GetPageSize()

	e.links = make([]int, len(doc.Tabs))
	e.firstPage = make([]int, len(doc.Tabs))
	for i := range doc.Tabs {
		e.links[i] = pdf.AddLink()
	}

	for i := range doc.Tabs {
		e.curTab = i
		e.newPage()
		e.renderTab(doc.Tabs[i])
		if doc.RatingDetails != nil && i == len(doc.Tabs)-1 {
			e.drawRatingDetails(doc.RatingDetails)
		}
	}

	if pdf.Err() {
		return fmt.Errorf("vector render: %w", pdf.Error())
	}
	return nil
}

// Output writes the finished PDF to w and closes the document.
func (e *Engine) Output(w io.Writer) error {
	if err := e.pdf.Output(w); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

// OutputFile writes the finished PDF to path and closes the document.
func (e *Engine) OutputFile(path string) error {
	if err := e.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdf output: %w", err)
	}
	return nil
}

func (e *Engine) Stats() Stats {
	return e.stats
}

// PageCount reports the number of pages produced so far.
func (e *Engine) PageCount() int {
	return e.pdf.PageCount()
}

// TabFirstPage reports the first page on which tab i's scaffold was drawn,
// or 0 if the tab was never rendered.
func (e *Engine) TabFirstPage(i int) int {
	if i < 0 || i >= len(e.firstPage) {
		return 0
	}
	return e.firstPage[i]
}

func (e *Engine) contentWidth() float64 {
	return e.pageW - e.th.MarginLeft - e.th.MarginRight
}

// contentTop is the fixed cursor offset below the scaffold where page content
// starts.
func (e *Engine) contentTop() float64 {
	return e.th.MarginTop + e.th.HeaderHeight + e.th.NavHeight + 3
}

// ensureSpace starts a new page when a block of height h would cross the
// bottom margin. Blocks whose height is known ahead of drawing are therefore
// never split across pages.
func (e *Engine) ensureSpace(h float64) {
	if e.pdf.GetY()+h > e.pageH-e.th.MarginBottom {
		e.newPage()
	}
}

// newPage closes any in-progress section border segment, adds a page, redraws
// the scaffold and resets the cursor to the fixed content offset. The first
// page of each tab gets the tab's named link target and outline entry.
func (e *Engine) newPage() {
	if e.pdf.PageNo() > 0 && e.sectionOpen {
		e.strokeCardSegment(e.sectionTop, e.pageH-e.th.MarginBottom)
	}
	e.pdf.AddPage()
	e.stats.Pages++
	e.drawScaffold()
	if e.curTab < len(e.firstPage) && e.firstPage[e.curTab] == 0 {
		page := e.pdf.PageNo()
		e.firstPage[e.curTab] = page
		e.pdf.SetLink(e.links[e.curTab], 0, page)
		e.pdf.Bookmark(e.doc.Tabs[e.curTab].Label, 0, 0)
	}
	if e.sectionOpen {
		e.sectionTop = e.contentTop()
	}
	e.pdf.SetXY(e.th.MarginLeft, e.contentTop())
}

// drawScaffold draws the header block and navigation bar at fixed offsets
// from the top margin. Identical on every page; the current tab's pill is
// filled and every pill carries an internal link to its tab's first page.
func (e *Engine) drawScaffold() {
	th := e.th
	pdf := e.pdf
	x := th.MarginLeft

	pdf.SetTextColor(th.Text.R, th.Text.G, th.Text.B)
	pdf.SetFont(th.FontFamily, "B", 15)
	pdf.SetXY(x, th.MarginTop)
	pdf.CellFormat(e.contentWidth(), 7, e.tr(e.doc.Meta.ReportTitle), "", 2, "L", false, 0, "")

	line := e.doc.Meta.EmployeeName
	if line != "" && e.doc.Meta.EmployeeRole != "" {
		line += " - " + e.doc.Meta.EmployeeRole
	}
	if line != "" {
		pdf.SetFont(th.FontFamily, "", 9)
		pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
		pdf.CellFormat(e.contentWidth(), 5, e.tr(line), "", 2, "L", false, 0, "")
	}

	py := th.MarginTop + th.HeaderHeight
	px := x
	pdf.SetFont(th.FontFamily, "", 9)
	for i, tab := range e.doc.Tabs {
		label := e.tr(tab.Label)
		pw := pdf.GetStringWidth(label) + 8
		if px+pw > e.pageW-th.MarginRight && px > x {
			// Nav bar is one row by design; overflowing pills clamp to the
			// right margin rather than wrapping into the content area.
			pw = e.pageW - th.MarginRight - px
			if pw < 6 {
				break
			}
		}
		if i == e.curTab {
			pdf.SetFillColor(th.Primary.R, th.Primary.G, th.Primary.B)
			pdf.RoundedRect(px, py, pw, th.PillHeight, th.PillHeight/2, "1234", "F")
			pdf.SetTextColor(th.PrimaryText.R, th.PrimaryText.G, th.PrimaryText.B)
		} else {
			pdf.SetFillColor(255, 255, 255)
			pdf.SetDrawColor(th.Border.R, th.Border.G, th.Border.B)
			pdf.RoundedRect(px, py, pw, th.PillHeight, th.PillHeight/2, "1234", "FD")
			pdf.SetTextColor(th.Text.R, th.Text.G, th.Text.B)
		}
		pdf.SetXY(px, py)
		pdf.CellFormat(pw, th.PillHeight, label, "", 0, "C", false, e.links[i], "")
		px += pw + 3
	}

	sep := th.MarginTop + th.HeaderHeight + th.NavHeight
	pdf.SetDrawColor(th.Border.R, th.Border.G, th.Border.B)
	pdf.Line(x, sep, e.pageW-th.MarginRight, sep)

	e.stats.ScaffoldRedraws++
}
