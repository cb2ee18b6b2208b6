package vector

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"appraisalgen/internal/domain/appraisal"
)

type chipSpec struct {
	label  string
	fill   RGB
	text   RGB
	rating *float64
}

// card normalizes sections, reviews and the rating-details panel into one
// drawable shape.
type card struct {
	title       string
	chips       []chipSpec
	description string
	bullets     []string
	labels      []string
	comments    []appraisal.Comment
}

func (e *Engine) renderTab(tab appraisal.Tab) {
	if len(tab.Sections) == 0 && len(tab.Hierarchy) == 0 && tab.Review == nil && tab.EndMarker == "" {
		e.drawPlaceholder()
		return
	}
	for _, sec := range tab.Sections {
		e.drawCard(e.sectionCard(sec))
		e.stats.SectionCards++
	}
	if tab.Review != nil {
		e.drawCard(e.reviewCard(tab.Review))
	}
	if tab.EndMarker != "" {
		e.drawEndMarker(tab.EndMarker)
	}
	for i, node := range tab.Hierarchy {
		e.drawNode(node, 0, i+1, e.th.MarginLeft, e.contentWidth())
	}
}

func (e *Engine) sectionCard(sec appraisal.Section) card {
	th := e.th
	c := card{
		title:       sec.Title,
		description: sec.Description,
		bullets:     sec.Behaviors,
		labels:      sec.Labels,
		comments:    sec.Comments,
	}
	if sec.Weightage != nil {
		c.chips = append(c.chips, chipSpec{label: "Weightage " + trimNum(*sec.Weightage) + "%", fill: th.ChipFill, text: th.ChipText})
	}
	if sec.ExpectedRating != nil {
		c.chips = append(c.chips, chipSpec{label: "Expected " + trimNum(*sec.ExpectedRating), fill: th.ChipFill, text: th.ChipText})
	}
	if sec.Rating != nil {
		c.chips = append(c.chips, chipSpec{rating: sec.Rating})
	}
	return c
}

func (e *Engine) reviewCard(rev *appraisal.Review) card {
	c := card{
		title:       rev.Title,
		description: rev.Description,
		comments:    rev.Comments,
	}
	if c.title == "" {
		c.title = "Review"
	}
	if rev.Rating != nil {
		c.chips = append(c.chips, chipSpec{rating: rev.Rating})
	}
	return c
}

// drawCard draws one bordered content card. The outer border is stroked per
// page segment after the children are drawn, so a card whose content breaks
// onto a new page keeps a visible frame on both pages.
func (e *Engine) drawCard(c card) {
	th := e.th
	pad := th.CardPadding
	e.ensureSpace(pad + 7 + th.LineHeight)
	e.sectionOpen = true
	e.sectionTop = e.pdf.GetY()
	innerX := th.MarginLeft + pad
	innerW := e.contentWidth() - 2*pad

	rowY := e.sectionTop + pad
	e.pdf.SetFont(th.FontFamily, "B", 11)
	e.pdf.SetTextColor(th.Text.R, th.Text.G, th.Text.B)
	titleW := innerW * 0.5
	e.pdf.SetXY(innerX, rowY)
	e.pdf.CellFormat(titleW, th.ChipHeight+1, e.tr(c.title), "", 0, "L", false, 0, "")
	e.drawChipRow(innerX+titleW, rowY, innerW-titleW, c.chips)
	e.pdf.SetY(rowY + th.ChipHeight + 3)

	if c.description != "" {
		e.pdf.SetFont(th.FontFamily, "", 9)
		e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
		e.drawParagraph(innerX, innerW, c.description)
		e.pdf.Ln(1)
	}
	if len(c.bullets) > 0 {
		e.pdf.SetFont(th.FontFamily, "", 9)
		e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
		for _, item := range c.bullets {
			e.drawParagraph(innerX+3, innerW-3, "- "+item)
		}
		e.pdf.Ln(1)
	}
	if len(c.labels) > 0 {
		e.ensureSpace(th.ChipHeight + 2)
		y := e.pdf.GetY()
		specs := make([]chipSpec, 0, len(c.labels))
		for _, label := range c.labels {
			specs = append(specs, chipSpec{label: label, fill: e.th.BorderLight, text: e.th.Text})
		}
		e.drawChipRow(innerX, y, innerW, specs)
		e.pdf.SetY(y + th.ChipHeight + 2)
	}
	for _, comment := range c.comments {
		e.drawComment(innerX, innerW, comment)
	}

	e.sectionOpen = false
	bottom := e.pdf.GetY() + pad
	e.strokeCardSegment(e.sectionTop, bottom)
	e.pdf.SetY(bottom + 4)
}

func (e *Engine) strokeCardSegment(top, bottom float64) {
	if bottom-top < 1 {
		return
	}
	e.pdf.SetDrawColor(e.th.Border.R, e.th.Border.G, e.th.Border.B)
	e.pdf.RoundedRect(e.th.MarginLeft, top, e.contentWidth(), bottom-top, 2, "1234", "D")
}

// drawParagraph draws wrapped text line by line at x, breaking pages between
// lines. Caller sets font and color first.
func (e *Engine) drawParagraph(x, w float64, text string) {
	for _, line := range e.pdf.SplitText(e.tr(text), w) {
		e.ensureSpace(e.th.LineHeight)
		e.pdf.SetX(x)
		e.pdf.CellFormat(w, e.th.LineHeight, line, "", 2, "L", false, 0, "")
	}
}

// commentHeight pre-measures a comment card: fixed padding and header
// allowance, the wrapped height of the body at the card's text width, and
// the wrapped meta chip rows.
func (e *Engine) commentHeight(c appraisal.Comment, w float64) float64 {
	th := e.th
	e.pdf.SetFont(th.FontFamily, "", 9)
	lines := e.pdf.SplitText(e.tr(c.Text), w-2*th.CardPadding)
	h := 2*th.CardPadding + 6 + float64(len(lines))*th.LineHeight
	if specs := e.commentMetaChips(c); len(specs) > 0 {
		rows := float64(e.chipRows(specs, w-2*th.CardPadding))
		h += rows*th.ChipHeight + (rows-1)*1.5 + 2
	}
	return h
}

func (e *Engine) commentMetaChips(c appraisal.Comment) []chipSpec {
	th := e.th
	var specs []chipSpec
	if c.Progress != nil {
		specs = append(specs, chipSpec{label: "Progress " + trimNum(*c.Progress) + "%", fill: th.ChipFill, text: th.ChipText})
	}
	if c.Updated != "" {
		specs = append(specs, chipSpec{label: "Updated " + c.Updated, fill: th.ChipFill, text: th.ChipText})
	}
	if c.Status != "" {
		specs = append(specs, chipSpec{label: c.Status, fill: th.StatusFill, text: th.StatusText})
	}
	return specs
}

// chipRows counts the rows drawChipRow would use for specs within maxW,
// using the same widths and wrap rule.
func (e *Engine) chipRows(specs []chipSpec, maxW float64) int {
	e.pdf.SetFont(e.th.FontFamily, "", 8)
	rows, cx := 1, 0.0
	for _, spec := range specs {
		var cw float64
		if spec.rating != nil {
			cw = e.ratingChipWidth(*spec.rating)
		} else {
			cw = e.pdf.GetStringWidth(e.tr(spec.label)) + 6
		}
		if cx+cw > maxW && cx > 0 {
			cx = 0
			rows++
		}
		cx += cw + 2
	}
	return rows
}

func (e *Engine) drawComment(x, w float64, c appraisal.Comment) {
	th := e.th
	h := e.commentHeight(c, w)
	e.ensureSpace(h)

	top := e.pdf.GetY()
	e.pdf.SetFillColor(th.Surface.R, th.Surface.G, th.Surface.B)
	e.pdf.SetDrawColor(th.BorderLight.R, th.BorderLight.G, th.BorderLight.B)
	e.pdf.RoundedRect(x, top, w, h, 1.5, "1234", "FD")

	cursor := top + th.CardPadding
	e.pdf.SetFont(th.FontFamily, "B", 9)
	e.pdf.SetTextColor(th.Text.R, th.Text.G, th.Text.B)
	e.pdf.SetXY(x+th.CardPadding, cursor)
	e.pdf.CellFormat(e.pdf.GetStringWidth(e.tr(c.Author))+2, 4, e.tr(c.Author), "", 0, "L", false, 0, "")

	meta := c.Role
	if c.Step != "" {
		if meta != "" {
			meta += " | "
		}
		meta += c.Step
	}
	if meta != "" {
		e.pdf.SetFont(th.FontFamily, "", 8)
		e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
		e.pdf.CellFormat(0, 4, e.tr(meta), "", 0, "L", false, 0, "")
	}
	if c.Rating != nil {
		e.drawRatingChip(x+w-th.CardPadding-e.ratingChipWidth(*c.Rating), cursor-0.5, *c.Rating)
	}
	cursor += 6

	e.pdf.SetFont(th.FontFamily, "", 9)
	e.pdf.SetTextColor(th.Text.R, th.Text.G, th.Text.B)
	for _, line := range e.pdf.SplitText(e.tr(c.Text), w-2*th.CardPadding) {
		e.pdf.SetXY(x+th.CardPadding, cursor)
		e.pdf.CellFormat(w-2*th.CardPadding, th.LineHeight, line, "", 0, "L", false, 0, "")
		cursor += th.LineHeight
	}

	if specs := e.commentMetaChips(c); len(specs) > 0 {
		e.drawChipRow(x+th.CardPadding, cursor+1, w-2*th.CardPadding, specs)
	}

	e.pdf.SetY(top + h + 2)
	e.stats.CommentCards++
}

// drawNode renders one hierarchy node at the given left edge and width, then
// recurses into its children with an indented block. index is 1-based within
// the node's sibling group.
func (e *Engine) drawNode(node *appraisal.HierarchyNode, depth, index int, x, w float64) {
	th := e.th
	if depth >= MaxDepth {
		e.ensureSpace(th.LineHeight + 2)
		e.pdf.SetFont(th.FontFamily, "I", 8)
		e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
		e.pdf.SetX(x)
		e.pdf.CellFormat(w, th.LineHeight, "Further levels omitted", "", 2, "L", false, 0, "")
		return
	}

	e.ensureSpace(7 + th.ChipHeight + 2)
	top := e.pdf.GetY()
	badgeW := e.drawBadge(x, top, index)

	e.pdf.SetFont(th.FontFamily, "B", 10)
	e.pdf.SetTextColor(th.Text.R, th.Text.G, th.Text.B)
	e.pdf.SetXY(x+badgeW+2, top)
	titleW := w - badgeW - 2
	dateW := 0.0
	if node.Date != "" {
		e.pdf.SetFont(th.FontFamily, "", 8)
		dateW = e.pdf.GetStringWidth(e.tr(node.Date)) + 2
		e.pdf.SetFont(th.FontFamily, "B", 10)
	}
	e.pdf.CellFormat(titleW-dateW, 5, e.tr(node.Title), "", 0, "L", false, 0, "")
	if node.Date != "" {
		e.pdf.SetFont(th.FontFamily, "", 8)
		e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
		e.pdf.CellFormat(dateW, 5, e.tr(node.Date), "", 0, "R", false, 0, "")
	}
	e.pdf.SetY(top + 6)

	if specs := e.nodeChips(node); len(specs) > 0 {
		e.ensureSpace(th.ChipHeight + 2)
		y := e.pdf.GetY()
		e.drawChipRow(x+badgeW+2, y, w-badgeW-2, specs)
		e.pdf.SetY(y + th.ChipHeight + 2)
	}
	if node.Description != "" {
		e.pdf.SetFont(th.FontFamily, "", 9)
		e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
		e.drawParagraph(x+badgeW+2, w-badgeW-2, node.Description)
	}
	for _, comment := range node.Comments {
		e.drawComment(x+badgeW+2, w-badgeW-2, comment)
	}
	for i, child := range node.Children {
		e.drawNode(child, depth+1, i+1, x+th.Indent, w-th.Indent)
	}
	e.pdf.Ln(2)
}

func (e *Engine) nodeChips(node *appraisal.HierarchyNode) []chipSpec {
	th := e.th
	var specs []chipSpec
	if node.KPI != "" {
		specs = append(specs, chipSpec{label: node.KPI, fill: th.ChipFill, text: th.ChipText})
	}
	if node.Category != "" {
		label := node.Category
		if node.CategoryType != "" {
			label += " / " + node.CategoryType
		}
		specs = append(specs, chipSpec{label: label, fill: th.ChipFill, text: th.ChipText})
	}
	if node.Weightage != nil {
		specs = append(specs, chipSpec{label: "Weightage " + trimNum(*node.Weightage) + "%", fill: th.ChipFill, text: th.ChipText})
	}
	if node.Progress != nil {
		specs = append(specs, chipSpec{label: "Progress " + trimNum(*node.Progress) + "%", fill: th.ChipFill, text: th.ChipText})
	}
	if node.Rating != nil {
		specs = append(specs, chipSpec{rating: node.Rating})
	}
	if node.Priority != "" {
		specs = append(specs, chipSpec{label: node.Priority, fill: th.PriorityFill, text: th.PriorityText})
	}
	if node.Status != "" {
		specs = append(specs, chipSpec{label: node.Status, fill: th.StatusFill, text: th.StatusText})
	}
	return specs
}

func (e *Engine) drawRatingDetails(rd *appraisal.RatingDetails) {
	th := e.th
	c := card{title: "Rating Details", description: rd.Description}
	if rd.Score != nil {
		c.chips = append(c.chips, chipSpec{label: "Score " + trimNum(*rd.Score), fill: th.ChipFill, text: th.ChipText})
	}
	if rd.ManualRating != nil {
		c.chips = append(c.chips, chipSpec{label: "Manual " + trimNum(*rd.ManualRating), fill: th.ChipFill, text: th.ChipText})
	}
	if rd.MappedScore != nil {
		c.chips = append(c.chips, chipSpec{label: "Mapped " + trimNum(*rd.MappedScore), fill: th.ChipFill, text: th.ChipText})
	}
	if rd.MappedLabel != "" {
		c.chips = append(c.chips, chipSpec{label: rd.MappedLabel, fill: th.BorderLight, text: th.Text})
	}
	e.drawCard(c)
}

func (e *Engine) drawPlaceholder() {
	th := e.th
	h := 24.0
	e.ensureSpace(h)
	top := e.pdf.GetY()
	e.pdf.SetDrawColor(th.Border.R, th.Border.G, th.Border.B)
	e.pdf.SetDashPattern([]float64{1.2, 1.2}, 0)
	e.pdf.RoundedRect(th.MarginLeft, top, e.contentWidth(), h, 2, "1234", "D")
	e.pdf.SetDashPattern([]float64{}, 0)
	e.pdf.SetFont(th.FontFamily, "", 10)
	e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
	e.pdf.SetXY(th.MarginLeft, top+h/2-3)
	e.pdf.CellFormat(e.contentWidth(), 6, "No content in this tab", "", 0, "C", false, 0, "")
	e.pdf.SetY(top + h + 4)
	e.stats.Placeholders++
}

func (e *Engine) drawEndMarker(marker string) {
	th := e.th
	e.ensureSpace(8)
	e.pdf.SetFont(th.FontFamily, "I", 9)
	e.pdf.SetTextColor(th.Muted.R, th.Muted.G, th.Muted.B)
	e.pdf.SetX(th.MarginLeft)
	e.pdf.CellFormat(e.contentWidth(), 6, e.tr(marker), "", 2, "C", false, 0, "")
	e.pdf.Ln(2)
}

// drawChipRow draws chips left to right starting at (x, y), wrapping onto new
// rows within maxW. Leaves the PDF cursor untouched; callers advance Y.
func (e *Engine) drawChipRow(x, y, maxW float64, specs []chipSpec) {
	th := e.th
	cx, cy := x, y
	e.pdf.SetFont(th.FontFamily, "", 8)
	for _, spec := range specs {
		var cw float64
		if spec.rating != nil {
			cw = e.ratingChipWidth(*spec.rating)
		} else {
			cw = e.pdf.GetStringWidth(e.tr(spec.label)) + 6
		}
		if cx+cw > x+maxW && cx > x {
			cx = x
			cy += th.ChipHeight + 1.5
		}
		if spec.rating != nil {
			e.drawRatingChip(cx, cy, *spec.rating)
		} else {
			e.drawChip(cx, cy, spec.label, spec.fill, spec.text)
		}
		cx += cw + 2
	}
}

func (e *Engine) drawChip(x, y float64, label string, fill, text RGB) float64 {
	th := e.th
	e.pdf.SetFont(th.FontFamily, "", 8)
	w := e.pdf.GetStringWidth(e.tr(label)) + 6
	e.pdf.SetFillColor(fill.R, fill.G, fill.B)
	e.pdf.RoundedRect(x, y, w, th.ChipHeight, th.ChipHeight/2, "1234", "F")
	e.pdf.SetTextColor(text.R, text.G, text.B)
	e.pdf.SetXY(x, y)
	e.pdf.CellFormat(w, th.ChipHeight, e.tr(label), "", 0, "C", false, 0, "")
	return w
}

func (e *Engine) ratingChipWidth(rating float64) float64 {
	e.pdf.SetFont(e.th.FontFamily, "B", 8)
	return e.pdf.GetStringWidth(ratingLabel(rating)) + e.th.ChipHeight*0.55 + 7
}

// drawRatingChip draws the star-rating chip: a filled star glyph next to the
// numeric rating on an amber pill.
func (e *Engine) drawRatingChip(x, y, rating float64) float64 {
	th := e.th
	label := ratingLabel(rating)
	starD := th.ChipHeight * 0.55
	e.pdf.SetFont(th.FontFamily, "B", 8)
	w := e.pdf.GetStringWidth(label) + starD + 7
	e.pdf.SetFillColor(th.RatingFill.R, th.RatingFill.G, th.RatingFill.B)
	e.pdf.RoundedRect(x, y, w, th.ChipHeight, th.ChipHeight/2, "1234", "F")
	e.pdf.SetFillColor(th.Star.R, th.Star.G, th.Star.B)
	e.drawStar(x+2.5+starD/2, y+th.ChipHeight/2, starD/2)
	e.pdf.SetTextColor(th.RatingText.R, th.RatingText.G, th.RatingText.B)
	e.pdf.SetXY(x+starD+4, y)
	e.pdf.CellFormat(w-starD-4, th.ChipHeight, label, "", 0, "L", false, 0, "")
	return w
}

func (e *Engine) drawStar(cx, cy, r float64) {
	pts := make([]gofpdf.PointType, 0, 10)
	for i := 0; i < 10; i++ {
		radius := r
		if i%2 == 1 {
			radius = r * 0.45
		}
		a := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, gofpdf.PointType{X: cx + radius*math.Cos(a), Y: cy + radius*math.Sin(a)})
	}
	e.pdf.Polygon(pts, "F")
}

func (e *Engine) drawBadge(x, y float64, n int) float64 {
	th := e.th
	d := 5.0
	e.pdf.SetFillColor(th.Primary.R, th.Primary.G, th.Primary.B)
	e.pdf.Circle(x+d/2, y+d/2, d/2, "F")
	e.pdf.SetFont(th.FontFamily, "B", 7)
	e.pdf.SetTextColor(th.PrimaryText.R, th.PrimaryText.G, th.PrimaryText.B)
	e.pdf.SetXY(x, y)
	e.pdf.CellFormat(d, d, strconv.Itoa(n), "", 0, "C", false, 0, "")
	return d
}

func ratingLabel(rating float64) string {
	return fmt.Sprintf("%.1f", rating)
}

// trimNum drops a trailing ".0" so whole weightages read as "80".
func trimNum(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}
