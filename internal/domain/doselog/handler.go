package doselog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"med-schedule/internal/domain/medicines"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, medsSvc *medicines.Service) {
	r.Get("/history", listHistoryHandler(svc))
	r.Get("/medicines/{medicineID}/history", listMedicineHistoryHandler(svc, medsSvc))
}

// entryResponse representa un cambio de estado devuelto por la API.
type entryResponse struct {
	ID           string           `json:"id"`
	MedicineID   string           `json:"medicine_id"`
	MedicineName string           `json:"medicine_name"`
	Time         string           `json:"time"`
	From         medicines.Status `json:"from"`
	To           medicines.Status `json:"to"`
	Source       string           `json:"source"`
	OccurredAt   time.Time        `json:"occurred_at"`
}

// listHistoryHandler godoc
// @Summary Historial de tomas
// @Description Cambios de estado de todos los registros, más reciente primero. Solo en memoria.
// @Tags history
// @Produce json
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Param status query string false "Lista CSV de estados destino (ej: taken,missed)"
// @Param from query string false "occurred_at mínimo (RFC3339)"
// @Param to query string false "occurred_at máximo (RFC3339)"
// @Param q query string false "Texto libre sobre el nombre del medicamento"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 500 {string} string "internal error"
// @Router /history [get]
func listHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.List(r.Context(), filter)
		if err != nil {
			writeListError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponses(items))
	}
}

// listMedicineHistoryHandler godoc
// @Summary Historial de un registro
// @Tags history
// @Produce json
// @Param medicineID path string true "ID del registro"
// @Param limit query int false "Máximo a devolver (1-200). Por defecto 50"
// @Param status query string false "Lista CSV de estados destino"
// @Param from query string false "occurred_at mínimo (RFC3339)"
// @Param to query string false "occurred_at máximo (RFC3339)"
// @Success 200 {array} entryResponse
// @Failure 400 {string} string "Parámetros de filtro inválidos"
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID}/history [get]
func listMedicineHistoryHandler(svc *Service, medsSvc *medicines.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		medicineID := chi.URLParam(r, "medicineID")
		if _, err := medsSvc.GetByID(r.Context(), medicineID); err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}

		filter, err := parseListFilter(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		items, err := svc.ListByMedicine(r.Context(), medicineID, filter)
		if err != nil {
			writeListError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toEntryResponses(items))
	}
}

func parseListFilter(r *http.Request) (ListFilter, error) {
	limit := DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= MaxLimit {
			limit = n
		}
	}

	filter := ListFilter{Limit: limit}

	// status=taken,missed
	if v := strings.TrimSpace(r.URL.Query().Get("status")); v != "" {
		parts := strings.Split(v, ",")
		out := make([]medicines.Status, 0, len(parts))
		for _, p := range parts {
			st := medicines.Status(strings.TrimSpace(p))
			if st == "" {
				continue
			}
			if !st.Valid() {
				return ListFilter{}, errors.New("unknown status " + string(st))
			}
			out = append(out, st)
		}
		if len(out) > 0 {
			filter.Statuses = out
		}
	}

	if v := strings.TrimSpace(r.URL.Query().Get("from")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("from must be RFC3339")
		}
		filter.From = &t
	}
	if v := strings.TrimSpace(r.URL.Query().Get("to")); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return ListFilter{}, errors.New("to must be RFC3339")
		}
		filter.To = &t
	}

	if v := strings.TrimSpace(r.URL.Query().Get("q")); v != "" {
		filter.Query = v
	}

	return filter, nil
}

func writeListError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrInvalidInput) {
		http.Error(w, "from must be before to", http.StatusBadRequest)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}

func toEntryResponses(items []Entry) []entryResponse {
	out := make([]entryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, entryResponse{
			ID:           e.ID,
			MedicineID:   e.MedicineID,
			MedicineName: e.MedicineName,
			Time:         e.Time,
			From:         e.From,
			To:           e.To,
			Source:       e.Source,
			OccurredAt:   e.OccurredAt,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
