package rest

import (
	"encoding/json"
	"net/http"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/service"

	"github.com/gorilla/mux"
)

type TractorHandler struct {
	tractorSvc service.TractorService
}

func NewTractorHandler(tractorSvc service.TractorService) *TractorHandler {
	return &TractorHandler{tractorSvc: tractorSvc}
}

type resultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, resultResponse{Success: false, Message: message})
}

func (h *TractorHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterTractorInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	tractor, err := h.tractorSvc.Register(r.Context(), &input)
	if err != nil {
		status, msg := statusForError(err, "Failed to register tractor")
		respondFailure(w, status, msg)
		return
	}

	logger.Info("tractor registered", "id", tractor.ID, "tractorNumber", tractor.TractorNumber)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Tractor registered successfully",
		"data":    tractor,
	})
}

func (h *TractorHandler) List(w http.ResponseWriter, r *http.Request) {
	tractors, err := h.tractorSvc.List(r.Context())
	if err != nil {
		status, msg := statusForError(err, "Failed to fetch tractors")
		respondFailure(w, status, msg)
		return
	}
	if tractors == nil {
		tractors = []domain.Tractor{}
	}
	writeJSON(w, http.StatusOK, tractors)
}

func (h *TractorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	tractor, err := h.tractorSvc.GetByID(r.Context(), id)
	if err != nil {
		status, msg := statusForError(err, "Failed to fetch tractor")
		respondFailure(w, status, msg)
		return
	}
	writeJSON(w, http.StatusOK, tractor)
}

func (h *TractorHandler) ConfirmRental(w http.ResponseWriter, r *http.Request) {
	var req domain.RentalConfirmation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.tractorSvc.ConfirmRental(r.Context(), &req); err != nil {
		status, msg := statusForError(err, "Failed to confirm rental")
		respondFailure(w, status, msg)
		return
	}

	logger.Info("rental confirmed", "tractorId", req.TractorID, "renter", req.RenterEmail)
	writeJSON(w, http.StatusOK, resultResponse{
		Success: true,
		Message: "Rental confirmed and emails sent",
	})
}
