package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/service"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	user, err := h.authSvc.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		var conflictErr *domain.ConflictError
		if errors.As(err, &conflictErr) {
			logger.Info("signup rejected, account exists", "email", req.Email)
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "User already exists"})
			return
		}
		status, msg := statusForError(err, "Server error")
		writeJSON(w, status, messageResponse{Message: msg})
		return
	}

	logger.Info("account created", "email", user.Email)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Signup successful",
		"user":    user,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid request body"})
		return
	}

	token, user, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		status, msg := statusForError(err, "Server error")
		writeJSON(w, status, messageResponse{Message: msg})
		return
	}

	logger.Info("login succeeded", "email", user.Email)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
