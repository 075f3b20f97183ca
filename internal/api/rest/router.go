package rest

import (
	"net/http"

	"greenfield-hub-backend/internal/security"
	"greenfield-hub-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every API route with the CORS and session middleware.
func NewRouter(
	authSvc service.AuthService,
	tractorSvc service.TractorService,
	chatSvc service.ChatService,
	tokens security.TokenManager,
	allowedOrigins []string,
) *mux.Router {
	authHandler := NewAuthHandler(authSvc)
	tractorHandler := NewTractorHandler(tractorSvc)
	chatHandler := NewChatHandler(chatSvc)

	router := mux.NewRouter()
	router.Use(CORSMiddleware(allowedOrigins))
	router.Use(SessionMiddleware(tokens))

	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, messageResponse{Message: "Green Field Hub backend running"})
	}).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/signup", authHandler.Signup).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods(http.MethodPost, http.MethodOptions)

	router.HandleFunc("/api/tractors/register", tractorHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/tractors/confirm-rental", tractorHandler.ConfirmRental).Methods(http.MethodPost, http.MethodOptions)
	router.HandleFunc("/api/tractors", tractorHandler.List).Methods(http.MethodGet)
	router.HandleFunc("/api/tractors/{id}", tractorHandler.GetByID).Methods(http.MethodGet)

	router.HandleFunc("/api/chat", chatHandler.Chat).Methods(http.MethodPost, http.MethodOptions)

	return router
}
