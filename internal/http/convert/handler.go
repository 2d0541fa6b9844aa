package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrJamesThe3rd/gst2tally/internal/convert"
	"github.com/MrJamesThe3rd/gst2tally/internal/export"
)

type Handler struct {
	svc      *convert.Service
	maxBytes int64
}

func NewHandler(svc *convert.Service, maxBytes int64) *Handler {
	return &Handler{svc: svc, maxBytes: maxBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.convert)
	r.Post("/download", h.download)
}

func (h *Handler) convert(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, toResponse(res))
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	res, ok := h.run(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer

	zw := export.NewZipWriter(&buf)
	if err := h.svc.Save(res, zw); err != nil {
		slog.Error("failed to save outputs", "id", res.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	if err := zw.Close(); err != nil {
		slog.Error("failed to close zip", "id", res.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"gst2tally_%s.zip\"", res.ID))

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("failed to write zip", "id", res.ID, "error", err)
	}
}

// run parses the upload and converts it. It writes the error response itself
// and reports false when the request cannot be served.
func (h *Handler) run(w http.ResponseWriter, r *http.Request) (*convert.Result, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse form: "+err.Error())
		return nil, false
	}

	company := r.FormValue("company_name")
	if company == "" {
		writeError(w, http.StatusBadRequest, "company_name field is required")
		return nil, false
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required")
		return nil, false
	}
	defer closeFile(file)

	res, err := h.svc.Convert(file, company)
	if err != nil {
		if convert.IsInputError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}

		slog.Error("conversion failed", "request_id", middleware.GetReqID(r.Context()), "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")

		return nil, false
	}

	return res, true
}

func closeFile(f multipart.File) {
	if err := f.Close(); err != nil {
		slog.Warn("failed to close upload", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Success: false, Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
