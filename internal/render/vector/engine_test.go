package vector

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"appraisalgen/internal/domain/appraisal"
)

func num(v float64) *float64 {
	return &v
}

func jobCompetenciesDoc() *appraisal.Document {
	return &appraisal.Document{
		Meta: appraisal.Meta{ReportTitle: "Annual Appraisal", EmployeeName: "A. Person"},
		Tabs: []appraisal.Tab{{
			Label: "Job Competencies",
			Sections: []appraisal.Section{{
				Title:     "Manage Relationships",
				Weightage: num(80),
				Rating:    num(5.0),
				Comments: []appraisal.Comment{
					{Author: "Manager", Role: "Engineering Manager", Step: "Manager Review", Text: "Strong collaborator."},
					{Author: "Self", Step: "Self Review", Text: "Focused on cross-team handoffs."},
				},
			}},
		}},
	}
}

func longDoc(tabs, commentsPerTab int) *appraisal.Document {
	doc := &appraisal.Document{Meta: appraisal.Meta{ReportTitle: "Long Report"}}
	body := strings.Repeat("A reasonably long comment body that wraps over several lines. ", 4)
	for t := 0; t < tabs; t++ {
		sec := appraisal.Section{Title: "Section"}
		for c := 0; c < commentsPerTab; c++ {
			sec.Comments = append(sec.Comments, appraisal.Comment{Author: "Reviewer", Text: body})
		}
		doc.Tabs = append(doc.Tabs, appraisal.Tab{Label: "Tab", Sections: []appraisal.Section{sec}})
	}
	return doc
}

func TestScaffoldRedrawnOnEveryPage(t *testing.T) {
	e := NewEngine(DefaultTheme())
	if err := e.Render(longDoc(1, 30)); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if e.PageCount() < 2 {
		t.Fatalf("expected content to span pages, got %d", e.PageCount())
	}
	if got := e.Stats().ScaffoldRedraws; got != e.PageCount() {
		t.Fatalf("scaffold redraws %d != pages %d", got, e.PageCount())
	}
}

func TestEnsureSpaceStartsNewPage(t *testing.T) {
	e := NewEngine(DefaultTheme())
	if err := e.Render(jobCompetenciesDoc()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	pages := e.PageCount()
	e.pdf.SetY(e.pageH - e.th.MarginBottom - 2)
	oldY := e.pdf.GetY()

	e.ensureSpace(20)

	if e.PageCount() != pages+1 {
		t.Fatalf("expected a page break, pages %d -> %d", pages, e.PageCount())
	}
	if got := e.pdf.GetY(); got != e.contentTop() {
		t.Fatalf("cursor %f not at content offset %f", got, e.contentTop())
	}
	if e.pdf.GetY() >= oldY {
		t.Fatal("new cursor must never sit below the old one")
	}
}

func TestEnsureSpaceNoBreakWhenFits(t *testing.T) {
	e := NewEngine(DefaultTheme())
	if err := e.Render(jobCompetenciesDoc()); err != nil {
		t.Fatalf("render error: %v", err)
	}
	pages := e.PageCount()
	e.pdf.SetY(e.contentTop())
	e.ensureSpace(20)
	if e.PageCount() != pages {
		t.Fatal("unexpected page break with ample space")
	}
}

func TestEmptyTabPlaceholder(t *testing.T) {
	e := NewEngine(DefaultTheme())
	doc := &appraisal.Document{
		Meta: appraisal.Meta{ReportTitle: "R"},
		Tabs: []appraisal.Tab{{Label: "Empty"}},
	}
	if err := e.Render(doc); err != nil {
		t.Fatalf("render error: %v", err)
	}
	stats := e.Stats()
	if stats.Placeholders != 1 {
		t.Fatalf("expected one placeholder, got %d", stats.Placeholders)
	}
	if stats.SectionCards != 0 {
		t.Fatalf("expected no section cards, got %d", stats.SectionCards)
	}
	if e.PageCount() != 1 {
		t.Fatalf("expected a single page, got %d", e.PageCount())
	}
}

func TestReviewOnlyTabSkipsPlaceholder(t *testing.T) {
	e := NewEngine(DefaultTheme())
	doc := &appraisal.Document{
		Meta: appraisal.Meta{ReportTitle: "R"},
		Tabs: []appraisal.Tab{{
			Label:     "Overall",
			Review:    &appraisal.Review{Description: "Exceeds expectations"},
			EndMarker: "End of review",
		}},
	}
	if err := e.Render(doc); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := e.Stats().Placeholders; got != 0 {
		t.Fatalf("expected no placeholder for a review-only tab, got %d", got)
	}
}

func TestCommentHeightCoversWrappedMetaChips(t *testing.T) {
	e := NewEngine(DefaultTheme())
	if err := e.Render(jobCompetenciesDoc()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	c := appraisal.Comment{
		Author:   "Reviewer",
		Text:     "Short body.",
		Progress: num(75),
		Updated:  "2026-02-14 by the mid-cycle calibration committee",
		Status:   "Pending second-level manager acknowledgement",
	}
	w := 70.0
	rows := e.chipRows(e.commentMetaChips(c), w-2*e.th.CardPadding)
	if rows < 2 {
		t.Fatalf("fixture must wrap its chips, got %d row(s)", rows)
	}

	plain := c
	plain.Progress, plain.Updated, plain.Status = nil, "", ""
	got := e.commentHeight(c, w) - e.commentHeight(plain, w)
	want := float64(rows)*e.th.ChipHeight + float64(rows-1)*1.5 + 2
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("chip allowance %f, want %f for %d rows", got, want, rows)
	}
}

func TestTabFirstPages(t *testing.T) {
	first := NewEngine(DefaultTheme())
	if err := first.Render(longDoc(1, 30)); err != nil {
		t.Fatalf("render error: %v", err)
	}
	tabOnePages := first.PageCount()
	if tabOnePages < 2 {
		t.Fatalf("fixture must span pages, got %d", tabOnePages)
	}

	e := NewEngine(DefaultTheme())
	if err := e.Render(longDoc(2, 30)); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := e.TabFirstPage(0); got != 1 {
		t.Fatalf("tab 0 first page = %d, want 1", got)
	}
	if got := e.TabFirstPage(1); got != tabOnePages+1 {
		t.Fatalf("tab 1 first page = %d, want %d", got, tabOnePages+1)
	}
}

func TestCommentCardsDrawnInOrder(t *testing.T) {
	e := NewEngine(DefaultTheme())
	if err := e.Render(jobCompetenciesDoc()); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if got := e.Stats().CommentCards; got != 2 {
		t.Fatalf("expected 2 comment cards, got %d", got)
	}
	if e.PageCount() != 1 {
		t.Fatalf("scenario should fit one page, got %d", e.PageCount())
	}
}

func TestRendererProducesPDF(t *testing.T) {
	r := NewRenderer(DefaultTheme())
	var buf bytes.Buffer
	if err := r.Render(context.Background(), jobCompetenciesDoc(), &buf); err != nil {
		t.Fatalf("render error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatal("output does not look like a PDF")
	}
}

func TestHierarchyDepthCap(t *testing.T) {
	node := &appraisal.HierarchyNode{Title: "leaf"}
	for i := 0; i < MaxDepth+4; i++ {
		node = &appraisal.HierarchyNode{Title: "level", Children: []*appraisal.HierarchyNode{node}}
	}
	e := NewEngine(DefaultTheme())
	doc := &appraisal.Document{
		Meta: appraisal.Meta{ReportTitle: "R"},
		Tabs: []appraisal.Tab{{Label: "Goals", Hierarchy: []*appraisal.HierarchyNode{node}}},
	}
	if err := e.Render(doc); err != nil {
		t.Fatalf("render error: %v", err)
	}
}
