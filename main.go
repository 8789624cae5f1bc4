package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"minisignal/internal/auth"
	"minisignal/internal/config"
	apphandlers "minisignal/internal/handlers"
	"minisignal/internal/middleware"
	"minisignal/internal/store/sqlstore"
	"minisignal/internal/ws"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// Initialize Database
	store, err := sqlstore.New(cfg.Driver, cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	// Token signer: process-wide secret, read-only after startup. Rotating
	// it invalidates every outstanding token.
	authn := auth.NewAuthenticator(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize WebSocket Hub
	hub := ws.NewHub()
	go hub.Run()

	// Initialize Handlers
	authHandler := &apphandlers.AuthHandler{Store: store, Authn: authn}
	keyHandler := &apphandlers.KeyHandler{Store: store}
	userHandler := &apphandlers.UserHandler{Store: store}
	messageHandler := &apphandlers.MessageHandler{Store: store, Hub: hub}

	r := mux.NewRouter()
	r.Use(middleware.LoggingMiddleware)

	// Open endpoints
	r.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"ok": true, "ts": time.Now().Unix()})
	}).Methods("GET")
	r.HandleFunc("/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	// Everything else requires a valid bearer token
	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuth(authn))
	protected.HandleFunc("/keys", keyHandler.PublishKey).Methods("POST")
	protected.HandleFunc("/keys/{id}", keyHandler.GetKey).Methods("GET")
	protected.HandleFunc("/users", userHandler.ListUsers).Methods("GET")
	protected.HandleFunc("/users/by-email/{email}", userHandler.GetUserByEmail).Methods("GET")
	protected.HandleFunc("/messages/send", messageHandler.Send).Methods("POST")
	protected.HandleFunc("/messages/inbox", messageHandler.Inbox).Methods("GET")

	// WebSocket endpoint for new-message notifications
	protected.HandleFunc("/ws", func(w http.ResponseWriter, req *http.Request) {
		ws.ServeWs(hub, w, req, middleware.UserID(req))
	})

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	log.Println("Starting server on", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, cors(r)))
}
