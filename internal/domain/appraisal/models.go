// Package appraisal holds the input data model for an employee performance
// appraisal report. The tree is built once from a parsed JSON document and
// consumed read-only by the renderers; nothing here is mutated after load.
package appraisal

type Document struct {
	Meta          Meta           `json:"meta"`
	Tabs          []Tab          `json:"tabs"`
	RatingDetails *RatingDetails `json:"ratingDetails,omitempty"`
}

type Meta struct {
	ReportTitle  string `json:"reportTitle"`
	EmployeeName string `json:"employeeName"`
	EmployeeRole string `json:"employeeRole,omitempty"`
	Avatar       string `json:"avatar,omitempty"`
}

// Tab is one top-level navigable section of the report, rendered as a
// navigation pill and a contiguous run of pages.
type Tab struct {
	Label     string           `json:"label"`
	Sections  []Section        `json:"sections,omitempty"`
	Review    *Review          `json:"review,omitempty"`
	EndMarker string           `json:"endMarker,omitempty"`
	Hierarchy []*HierarchyNode `json:"hierarchy,omitempty"`
}

type Section struct {
	Title          string    `json:"title"`
	Weightage      *float64  `json:"weightage,omitempty"`
	ExpectedRating *float64  `json:"expectedRating,omitempty"`
	Rating         *float64  `json:"rating,omitempty"`
	Description    string    `json:"description,omitempty"`
	Behaviors      []string  `json:"behaviors,omitempty"`
	Comments       []Comment `json:"comments,omitempty"`
	Labels         []string  `json:"labels,omitempty"`
}

type Review struct {
	Title       string    `json:"title,omitempty"`
	Description string    `json:"description,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	Comments    []Comment `json:"comments,omitempty"`
}

type Comment struct {
	Author   string   `json:"author"`
	Role     string   `json:"role,omitempty"`
	Avatar   string   `json:"avatar,omitempty"`
	Step     string   `json:"step,omitempty"`
	Text     string   `json:"text"`
	Rating   *float64 `json:"rating,omitempty"`
	Progress *float64 `json:"progress,omitempty"`
	Updated  string   `json:"updated,omitempty"`
	Status   string   `json:"status,omitempty"`
}

// HierarchyNode is one node in the recursive goal tree. Depth up to 4 is
// observed in practice but nothing enforces it; the renderers cap recursion.
type HierarchyNode struct {
	Title        string           `json:"title"`
	Date         string           `json:"date,omitempty"`
	KPI          string           `json:"kpi,omitempty"`
	Category     string           `json:"category,omitempty"`
	CategoryType string           `json:"categoryType,omitempty"`
	Weightage    *float64         `json:"weightage,omitempty"`
	Progress     *float64         `json:"progress,omitempty"`
	Rating       *float64         `json:"rating,omitempty"`
	Priority     string           `json:"priority,omitempty"`
	Status       string           `json:"status,omitempty"`
	Description  string           `json:"description,omitempty"`
	Comments     []Comment        `json:"comments,omitempty"`
	Children     []*HierarchyNode `json:"children,omitempty"`
}

type RatingDetails struct {
	Description  string   `json:"description,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	ManualRating *float64 `json:"manualRating,omitempty"`
	MappedScore  *float64 `json:"mappedScore,omitempty"`
	MappedLabel  string   `json:"mappedLabel,omitempty"`
}
