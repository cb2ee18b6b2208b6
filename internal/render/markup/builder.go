// Package markup builds the HTML document that simulates the appraisal's
// tabbed UI. Build is a pure function over the input tree; the browser
// renderer hands its output to headless Chrome for PDF export.
package markup

import (
	"fmt"
	"strings"

	"appraisalgen/internal/domain/appraisal"
)

// MaxDepth caps hierarchy recursion. Input deeper than this renders a
// truncation notice instead of descending further.
const MaxDepth = 16

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

// Escape replaces the three markup-unsafe characters in free text.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Build renders the whole document as a standalone HTML page, one print page
// per tab, with the navigation bar repeated at the top of every tab.
func Build(doc *appraisal.Document) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>%s</title>\n", Escape(doc.Meta.ReportTitle))
	b.WriteString("<style>\n")
	b.WriteString(stylesheet)
	b.WriteString("</style>\n</head>\n<body>\n")

	for i, tab := range doc.Tabs {
		fmt.Fprintf(&b, "<div class=\"page\" id=\"tab-%d\">\n", i)
		writeHeader(&b, doc.Meta)
		writeNav(&b, doc.Tabs, i)
		writeTab(&b, tab)
		if doc.RatingDetails != nil && i == len(doc.Tabs)-1 {
			writeRatingDetails(&b, doc.RatingDetails)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func writeHeader(b *strings.Builder, meta appraisal.Meta) {
	b.WriteString("<div class=\"report-header\">\n")
	fmt.Fprintf(b, "<h1>%s</h1>\n", Escape(meta.ReportTitle))
	if meta.EmployeeName != "" {
		fmt.Fprintf(b, "<div class=\"employee\">%s", Escape(meta.EmployeeName))
		if meta.EmployeeRole != "" {
			fmt.Fprintf(b, " <span class=\"role\">%s</span>", Escape(meta.EmployeeRole))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func writeNav(b *strings.Builder, tabs []appraisal.Tab, active int) {
	b.WriteString("<nav class=\"tab-bar\">\n")
	for i, tab := range tabs {
		class := "tab-pill"
		if i == active {
			class = "tab-pill active"
		}
		fmt.Fprintf(b, "<a class=\"%s\" href=\"#tab-%d\">%s</a>\n", class, i, Escape(tab.Label))
	}
	b.WriteString("</nav>\n")
}

func writeTab(b *strings.Builder, tab appraisal.Tab) {
	if len(tab.Sections) == 0 && len(tab.Hierarchy) == 0 && tab.Review == nil && tab.EndMarker == "" {
		b.WriteString("<div class=\"placeholder\">No content in this tab</div>\n")
		return
	}
	for _, sec := range tab.Sections {
		writeSection(b, sec)
	}
	if tab.Review != nil {
		writeReview(b, tab.Review)
	}
	if tab.EndMarker != "" {
		fmt.Fprintf(b, "<div class=\"end-marker\">%s</div>\n", Escape(tab.EndMarker))
	}
	for i, node := range tab.Hierarchy {
		writeNode(b, node, 0, i+1)
	}
}

func writeSection(b *strings.Builder, sec appraisal.Section) {
	b.WriteString("<div class=\"card section\">\n")
	b.WriteString("<div class=\"card-head\">\n")
	fmt.Fprintf(b, "<h2>%s</h2>\n", Escape(sec.Title))
	b.WriteString("<div class=\"chips\">\n")
	if sec.Weightage != nil {
		chip(b, "chip", fmt.Sprintf("Weightage %s%%", trimNum(*sec.Weightage)))
	}
	if sec.ExpectedRating != nil {
		chip(b, "chip", "Expected "+trimNum(*sec.ExpectedRating))
	}
	if sec.Rating != nil {
		chip(b, "chip rating", fmt.Sprintf("&#9733; %.1f", *sec.Rating))
	}
	b.WriteString("</div>\n</div>\n")
	if sec.Description != "" {
		fmt.Fprintf(b, "<p class=\"description\">%s</p>\n", Escape(sec.Description))
	}
	if len(sec.Behaviors) > 0 {
		b.WriteString("<ul class=\"behaviors\">\n")
		for _, behavior := range sec.Behaviors {
			fmt.Fprintf(b, "<li>%s</li>\n", Escape(behavior))
		}
		b.WriteString("</ul>\n")
	}
	if len(sec.Labels) > 0 {
		b.WriteString("<div class=\"chips labels\">\n")
		for _, label := range sec.Labels {
			chip(b, "chip label", Escape(label))
		}
		b.WriteString("</div>\n")
	}
	for _, c := range sec.Comments {
		writeComment(b, c)
	}
	b.WriteString("</div>\n")
}

func writeReview(b *strings.Builder, rev *appraisal.Review) {
	title := rev.Title
	if title == "" {
		title = "Review"
	}
	b.WriteString("<div class=\"card review\">\n")
	b.WriteString("<div class=\"card-head\">\n")
	fmt.Fprintf(b, "<h2>%s</h2>\n", Escape(title))
	if rev.Rating != nil {
		b.WriteString("<div class=\"chips\">\n")
		chip(b, "chip rating", fmt.Sprintf("&#9733; %.1f", *rev.Rating))
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
	if rev.Description != "" {
		fmt.Fprintf(b, "<p class=\"description\">%s</p>\n", Escape(rev.Description))
	}
	for _, c := range rev.Comments {
		writeComment(b, c)
	}
	b.WriteString("</div>\n")
}

func writeComment(b *strings.Builder, c appraisal.Comment) {
	b.WriteString("<div class=\"comment\">\n")
	b.WriteString("<div class=\"comment-head\">\n")
	fmt.Fprintf(b, "<span class=\"author\">%s</span>\n", Escape(c.Author))
	if c.Role != "" {
		fmt.Fprintf(b, "<span class=\"role\">%s</span>\n", Escape(c.Role))
	}
	if c.Step != "" {
		fmt.Fprintf(b, "<span class=\"step\">%s</span>\n", Escape(c.Step))
	}
	if c.Rating != nil {
		fmt.Fprintf(b, "<span class=\"chip rating\">&#9733; %.1f</span>\n", *c.Rating)
	}
	b.WriteString("</div>\n")
	fmt.Fprintf(b, "<p class=\"comment-text\">%s</p>\n", Escape(c.Text))
	if c.Progress != nil || c.Updated != "" || c.Status != "" {
		b.WriteString("<div class=\"chips meta\">\n")
		if c.Progress != nil {
			chip(b, "chip", fmt.Sprintf("Progress %s%%", trimNum(*c.Progress)))
		}
		if c.Updated != "" {
			chip(b, "chip", "Updated "+Escape(c.Updated))
		}
		if c.Status != "" {
			chip(b, "chip status", Escape(c.Status))
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

// writeNode renders one hierarchy node and recurses into its children with an
// indented block. index is 1-based within the node's sibling group.
func writeNode(b *strings.Builder, node *appraisal.HierarchyNode, depth, index int) {
	if depth >= MaxDepth {
		b.WriteString("<div class=\"node truncated\">Further levels omitted</div>\n")
		return
	}
	b.WriteString("<div class=\"node\">\n")
	b.WriteString("<div class=\"node-head\">\n")
	fmt.Fprintf(b, "<span class=\"badge\">%d</span>\n", index)
	fmt.Fprintf(b, "<span class=\"node-title\">%s</span>\n", Escape(node.Title))
	if node.Date != "" {
		fmt.Fprintf(b, "<span class=\"date\">%s</span>\n", Escape(node.Date))
	}
	b.WriteString("</div>\n")
	b.WriteString("<div class=\"chips\">\n")
	if node.KPI != "" {
		chip(b, "chip kpi", Escape(node.KPI))
	}
	if node.Category != "" {
		label := node.Category
		if node.CategoryType != "" {
			label += " / " + node.CategoryType
		}
		chip(b, "chip", Escape(label))
	}
	if node.Weightage != nil {
		chip(b, "chip", fmt.Sprintf("Weightage %s%%", trimNum(*node.Weightage)))
	}
	if node.Progress != nil {
		chip(b, "chip", fmt.Sprintf("Progress %s%%", trimNum(*node.Progress)))
	}
	if node.Rating != nil {
		chip(b, "chip rating", fmt.Sprintf("&#9733; %.1f", *node.Rating))
	}
	if node.Priority != "" {
		chip(b, "chip priority", Escape(node.Priority))
	}
	if node.Status != "" {
		chip(b, "chip status", Escape(node.Status))
	}
	b.WriteString("</div>\n")
	if node.Description != "" {
		fmt.Fprintf(b, "<p class=\"description\">%s</p>\n", Escape(node.Description))
	}
	for _, c := range node.Comments {
		writeComment(b, c)
	}
	if len(node.Children) > 0 {
		b.WriteString("<div class=\"node-children\">\n")
		for i, child := range node.Children {
			writeNode(b, child, depth+1, i+1)
		}
		b.WriteString("</div>\n")
	}
	b.WriteString("</div>\n")
}

func writeRatingDetails(b *strings.Builder, rd *appraisal.RatingDetails) {
	b.WriteString("<div class=\"card rating-details\">\n")
	b.WriteString("<h2>Rating Details</h2>\n")
	if rd.Description != "" {
		fmt.Fprintf(b, "<p class=\"description\">%s</p>\n", Escape(rd.Description))
	}
	b.WriteString("<div class=\"chips\">\n")
	if rd.Score != nil {
		chip(b, "chip", "Score "+trimNum(*rd.Score))
	}
	if rd.ManualRating != nil {
		chip(b, "chip", "Manual "+trimNum(*rd.ManualRating))
	}
	if rd.MappedScore != nil {
		chip(b, "chip", "Mapped "+trimNum(*rd.MappedScore))
	}
	if rd.MappedLabel != "" {
		chip(b, "chip label", Escape(rd.MappedLabel))
	}
	b.WriteString("</div>\n</div>\n")
}

// chip writes one pill-shaped metadata chip. label is expected to already be
// escaped (or entity-safe) by the caller.
func chip(b *strings.Builder, class, label string) {
	fmt.Fprintf(b, "<span class=\"%s\">%s</span>\n", class, label)
}

// trimNum formats a number dropping a trailing ".0" so whole weightages read
// as "80" rather than "80.0".
func trimNum(v float64) string {
	s := fmt.Sprintf("%.1f", v)
	return strings.TrimSuffix(s, ".0")
}
