package medicines

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"med-schedule/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medicines", func(mr chi.Router) {
		mr.Post("/", createMedicineHandler(svc))
		mr.Get("/", listMedicinesHandler(svc))

		// Placeholder de "escanear receta": no hay cámara ni OCR
		mr.Post("/capture", captureHandler(svc))

		mr.Get("/{medicineID}", getMedicineHandler(svc))
		mr.Patch("/{medicineID}/status", updateStatusHandler(svc))
	})
}

// createMedicineRequest es el cuerpo para registrar una toma.
type createMedicineRequest struct {
	Name     string   `json:"name"`
	Dosage   string   `json:"dosage"`
	Schedule Schedule `json:"schedule" enums:"Morning,Afternoon,Evening"`
	Time     string   `json:"time"`   // "H:MM AM|PM"
	Status   Status   `json:"status"` // opcional, default pending
}

type updateStatusRequest struct {
	Status Status `json:"status" enums:"pending,taken,missed,completed"`
}

type captureRequest struct {
	Source string `json:"source" enums:"camera,web"`
}

// MedicineResponse es la forma pública de un registro.
type MedicineResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Schedule  Schedule  `json:"schedule"`
	Time      string    `json:"time"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// createMedicineHandler godoc
// @Summary Registrar toma
// @Description Crea un registro en la lista en memoria. `time` debe ser `H:MM AM|PM`; `status` por defecto es `pending`.
// @Tags medicines
// @Accept json
// @Produce json
// @Param payload body createMedicineRequest true "Datos de la toma"
// @Success 201 {object} MedicineResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /medicines [post]
func createMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:     req.Name,
			Dosage:   req.Dosage,
			Schedule: req.Schedule,
			Time:     req.Time,
			Status:   req.Status,
		})
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, ToResponse(m))
	}
}

// listMedicinesHandler godoc
// @Summary Listar tomas
// @Tags medicines
// @Produce json
// @Success 200 {array} MedicineResponse
// @Failure 500 {string} string "internal error"
// @Router /medicines [get]
func listMedicinesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]MedicineResponse, 0, len(items))
		for _, m := range items {
			out = append(out, ToResponse(m))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getMedicineHandler godoc
// @Summary Obtener toma
// @Tags medicines
// @Produce json
// @Param medicineID path string true "ID del registro"
// @Success 200 {object} MedicineResponse
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID} [get]
func getMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicineID"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(m))
	}
}

// updateStatusHandler godoc
// @Summary Sobrescribir estado
// @Description Cualquier estado puede pasar a cualquier otro; no hay confirmación ni rollback.
// @Tags medicines
// @Accept json
// @Produce json
// @Param medicineID path string true "ID del registro"
// @Param payload body updateStatusRequest true "Nuevo estado"
// @Success 200 {object} MedicineResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Failure 404 {string} string "medicine not found"
// @Router /medicines/{medicineID}/status [patch]
func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "medicineID"), req.Status, SourceManual)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, ToResponse(m))
	}
}

// captureHandler godoc
// @Summary Capturar receta (placeholder)
// @Description Agrega un registro fijo en estado pending. `source=web` usa la plantilla web; cualquier otro valor, la de cámara.
// @Tags medicines
// @Accept json
// @Produce json
// @Param payload body captureRequest false "Origen de la captura"
// @Success 201 {object} MedicineResponse
// @Failure 500 {string} string "internal error"
// @Router /medicines/capture [post]
func captureHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req captureRequest
		// body opcional
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Source) == "" {
			req.Source = SourceCamera
		}

		m, err := svc.Capture(r.Context(), req.Source)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, ToResponse(m))
	}
}

func ToResponse(m Medicine) MedicineResponse {
	return MedicineResponse{
		ID:        m.ID,
		Name:      m.Name,
		Dosage:    m.Dosage,
		Schedule:  m.Schedule,
		Time:      m.Time,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromResponse es la inversa de ToResponse (cliente remoto).
func FromResponse(r MedicineResponse) Medicine {
	return Medicine{
		ID:        r.ID,
		Name:      r.Name,
		Dosage:    r.Dosage,
		Schedule:  r.Schedule,
		Time:      r.Time,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "medicine not found", http.StatusNotFound)
	default:
		middleware.GetLogger(r.Context()).Error("medicines handler failed", map[string]any{"err": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

// writeJSON está duplicado en cada módulo (medicines/schedule/doselog)
// hasta que valga la pena un helper común.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
