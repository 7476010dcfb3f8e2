// Package page serves the server-rendered HTML pages: a landing page, an
// entry form and a table of everything stored.
package page

import (
	"bytes"
	"net/http"

	"datakeeper/internal/domain/record"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"
	"golang.org/x/exp/slog"
)

const (
	PathIndex = "/"
	PathForm  = "/add-data"
	PathTable = "/show-table-data"
	PathSave  = "/save-data"

	// SavedRedirect is where a successful form submission lands.
	SavedRedirect = PathForm + "?success"
)

type formInput struct {
	Name string `form:"name"`
}

type Handler struct {
	service record.Servicer
	decoder *form.Decoder
	log     *slog.Logger
}

func NewHandler(service record.Servicer, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		decoder: form.NewDecoder(),
		log:     log.With("component", "page_controller"),
	}
}

func (h *Handler) SetupRoutes(r chi.Router) {
	r.Get(PathIndex, h.index)
	r.Get(PathForm, h.addData)
	r.Get(PathTable, h.showTableData)
	r.Post(PathSave, h.saveData)
}

func (h *Handler) index(w http.ResponseWriter, _ *http.Request) {
	h.render(w, pageIndex, nil)
}

func (h *Handler) addData(w http.ResponseWriter, r *http.Request) {
	_, success := r.URL.Query()["success"]

	h.render(w, pageForm, formView{Success: success})
}

func (h *Handler) showTableData(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.FindAll(r.Context())
	if err != nil {
		h.log.Error("failed to load records", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	rows := make([]tableRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, tableRow{ID: rec.IDValue(), Name: rec.Name})
	}

	h.render(w, pageTable, tableView{Records: rows})
}

// saveData stores the submitted name as is; the form is not validated.
func (h *Handler) saveData(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	var in formInput
	if err := h.decoder.Decode(&in, r.PostForm); err != nil {
		h.log.Debug("failed to decode form", "error", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if _, err := h.service.Save(r.Context(), record.New(in.Name)); err != nil {
		h.log.Error("failed to save submitted record", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, SavedRedirect, http.StatusSeeOther)
}

func (h *Handler) render(w http.ResponseWriter, page string, data any) {
	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		h.log.Error("failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
