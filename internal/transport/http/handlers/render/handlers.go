package renderhandler

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"appraisalgen/internal/domain/appraisal"
	"appraisalgen/internal/render"
	"appraisalgen/internal/transport/http/api"
	"appraisalgen/internal/transport/http/middleware"
)

type Handler struct {
	renderer render.Renderer
}

func NewHandler(renderer render.Renderer) *Handler {
	return &Handler{renderer: renderer}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/appraisals/render", h.HandleRender)
}

// HandleRender accepts an appraisal document as JSON and responds with the
// rendered PDF. The document is rendered fully into memory before the first
// response byte, so a render failure still yields a clean JSON error.
func (h *Handler) HandleRender(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	doc, err := appraisal.Decode(r.Body)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "INVALID_INPUT", err.Error(), requestID)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Render(r.Context(), doc, &buf); err != nil {
		slog.Error("render failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "RENDER_FAILED", "could not render document", requestID)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="appraisal.pdf"`)
	if _, err := w.Write(buf.Bytes()); err != nil {
		slog.Warn("write pdf response failed", "err", err, "requestId", requestID)
	}
}
