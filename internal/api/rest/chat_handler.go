package rest

import (
	"encoding/json"
	"net/http"

	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/service"
)

type ChatHandler struct {
	chatSvc service.ChatService
}

func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, chatResponse{Reply: "Message is required"})
		return
	}

	reply, err := h.chatSvc.Complete(r.Context(), req.Message)
	if err != nil {
		logger.Error("chat completion failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, chatResponse{Reply: "AI Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}
