package schedule

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"med-schedule/internal/domain/medicines"
	"med-schedule/internal/domain/schedule/clock"

	"github.com/go-chi/chi/v5"
)

const defaultUpcoming = 2

func RegisterRoutes(r chi.Router, medsSvc *medicines.Service) {
	r.Route("/schedule", func(sr chi.Router) {
		sr.Get("/", getScheduleHandler(medsSvc))
		sr.Get("/next", nextDoseHandler(medsSvc))

		// "Mark as Taken" / "Mark as Missed" sobre la tarjeta del slot
		sr.Post("/{slotTime}/status", updateSlotStatusHandler(medsSvc))
	})
}

// TimeSlotResponse es un slot derivado del listado actual.
type TimeSlotResponse struct {
	Time      string                       `json:"time"`
	Title     string                       `json:"title"`
	Completed bool                         `json:"completed"`
	Missed    bool                         `json:"missed"`
	Medicines []medicines.MedicineResponse `json:"medicines"`
}

type slotStatusRequest struct {
	Status medicines.Status `json:"status" enums:"pending,taken,missed,completed"`
}

// getScheduleHandler godoc
// @Summary Cronograma del día
// @Description Agrupa los registros por hora exacta y ordena los slots por hora del día. `completed` es true solo si todos los miembros están `taken`.
// @Tags schedule
// @Produce json
// @Success 200 {array} TimeSlotResponse
// @Failure 500 {string} string "internal error"
// @Router /schedule [get]
func getScheduleHandler(svc *medicines.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		slots := GroupByTime(items)
		out := make([]TimeSlotResponse, 0, len(slots))
		for _, s := range slots {
			out = append(out, ToSlotResponse(s))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// nextDoseHandler godoc
// @Summary Próxima toma
// @Description Registros `pending` ascendentes por hora. Lista vacía cuando no queda nada pendiente.
// @Tags schedule
// @Produce json
// @Param limit query int false "Máximo a devolver; 0 = todos. Por defecto 2"
// @Success 200 {array} medicines.MedicineResponse
// @Failure 400 {string} string "limit must be a non-negative integer"
// @Failure 500 {string} string "internal error"
// @Router /schedule/next [get]
func nextDoseHandler(svc *medicines.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := defaultUpcoming
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				http.Error(w, "limit must be a non-negative integer", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		next := Upcoming(items, limit)
		out := make([]medicines.MedicineResponse, 0, len(next))
		for _, m := range next {
			out = append(out, medicines.ToResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// updateSlotStatusHandler godoc
// @Summary Estado de un slot
// @Description Sobrescribe el estado de todos los registros con esa hora y devuelve el slot recalculado.
// @Tags schedule
// @Accept json
// @Produce json
// @Param slotTime path string true "Hora del slot, URL-encoded (ej: 9:00%20AM)"
// @Param payload body slotStatusRequest true "Nuevo estado"
// @Success 200 {object} TimeSlotResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "slot not found"
// @Router /schedule/{slotTime}/status [post]
func updateSlotStatusHandler(svc *medicines.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slotTime, err := url.PathUnescape(chi.URLParam(r, "slotTime"))
		if err != nil {
			http.Error(w, "invalid slot time", http.StatusBadRequest)
			return
		}

		var req slotStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if _, err := svc.UpdateSlotStatus(r.Context(), slotTime, req.Status); err != nil {
			switch {
			case errors.Is(err, medicines.ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, medicines.ErrNotFound):
				http.Error(w, "slot not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if minutes, err := clock.ParseClock(slotTime); err == nil {
			slotTime = clock.Format(minutes)
		}
		slot, ok := FindSlot(GroupByTime(items), slotTime)
		if !ok {
			http.Error(w, "slot not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, ToSlotResponse(slot))
	}
}

func ToSlotResponse(s TimeSlot) TimeSlotResponse {
	meds := make([]medicines.MedicineResponse, 0, len(s.Medicines))
	for _, m := range s.Medicines {
		meds = append(meds, medicines.ToResponse(m))
	}
	return TimeSlotResponse{
		Time:      s.Time,
		Title:     s.Title,
		Completed: s.Completed,
		Missed:    s.Missed,
		Medicines: meds,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
