package statement

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/theezequiel42/water-tracker/internal/statement"
)

type Handler struct {
	svc *statement.Service
}

func NewHandler(svc *statement.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/months", h.months)
	r.Get("/names", h.names)
	r.Get("/statements/{name}", h.get)
	r.Get("/statements/{name}/chart", h.chart)
}

func (h *Handler) months(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.load(w, r)
	if !ok {
		return
	}

	resp := monthsResponse{
		Months:  make([]monthResponse, 0, len(ledger.Months())),
		Default: ledger.DefaultMonth(time.Now()).Key,
	}

	for _, d := range ledger.Months() {
		resp.Months = append(resp.Months, toMonthResponse(d))
	}

	writeJSON(w, resp)
}

func (h *Handler) names(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.load(w, r)
	if !ok {
		return
	}

	names := ledger.Names()
	if names == nil {
		names = []string{}
	}

	writeJSON(w, namesResponse{Names: names})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.load(w, r)
	if !ok {
		return
	}

	key := r.URL.Query().Get("month")
	if key == "" {
		key = ledger.DefaultMonth(time.Now()).Key
	}

	name := nameParam(r)

	s, err := ledger.Statement(name, key)
	if errors.Is(err, statement.ErrNotFound) {
		notFound(w, ledger, name)
		return
	}

	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, toStatementResponse(s))
}

func (h *Handler) chart(w http.ResponseWriter, r *http.Request) {
	ledger, ok := h.load(w, r)
	if !ok {
		return
	}

	name := nameParam(r)
	if !ledger.HasName(name) {
		notFound(w, ledger, name)
		return
	}

	writeJSON(w, toChartResponse(name, ledger.Chart(name)))
}

// load reads the sheet for this request and writes the error response when
// it cannot be used.
func (h *Handler) load(w http.ResponseWriter, r *http.Request) (*statement.Ledger, bool) {
	ledger, err := h.svc.Load(r.Context())
	if err != nil {
		slog.Error("failed to load sheet", "error", err)
		writeError(w, err)

		return nil, false
	}

	return ledger, true
}

// nameParam returns the decoded name segment. chi matches on RawPath when the
// request carries one, and the decoded Path otherwise.
func nameParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if r.URL.RawPath == "" {
		return raw
	}

	name, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}

	return name
}

// notFound answers 404, naming the closest listed name when there is one.
func notFound(w http.ResponseWriter, ledger *statement.Ledger, name string) {
	msg := fmt.Sprintf("no data found for %q", name)
	if hint := ledger.Suggest(name); hint != "" {
		msg += fmt.Sprintf(", did you mean %q?", hint)
	}

	http.Error(w, msg, http.StatusNotFound)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, statement.ErrUnknownMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, statement.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case statement.IsConfigError(err):
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		http.Error(w, "failed to load sheet", http.StatusBadGateway)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
