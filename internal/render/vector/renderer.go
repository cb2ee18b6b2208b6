package vector

import (
	"context"
	"io"

	"appraisalgen/internal/domain/appraisal"
)

// Renderer adapts the layout engine to the render.Renderer contract. Each
// call builds a fresh single-use Engine, so a Renderer is safe for concurrent
// use.
type Renderer struct {
	theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

func (r *Renderer) Render(_ context.Context, doc *appraisal.Document, w io.Writer) error {
	engine := NewEngine(r.theme)
	if err := engine.Render(doc); err != nil {
		return err
	}
	return engine.Output(w)
}
