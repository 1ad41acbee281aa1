package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"pharmgenius/config"
	"pharmgenius/controllers"
	"pharmgenius/utils"
)

// Server wires the router, configuration, and controller together
type Server struct {
	router     *mux.Router
	controller *controllers.Controller
	cfg        config.Config
}

// NewServer creates a new server instance
func NewServer(cfg config.Config) *Server {
	return &Server{
		router:     mux.NewRouter(),
		controller: controllers.NewController(cfg),
		cfg:        cfg,
	}
}

// setupRoutes configures all endpoints
func (s *Server) setupRoutes() {
	// GET / - API banner
	s.router.HandleFunc("/", s.controller.IndexHandler).Methods("GET")

	// GET /health - credential and connectivity check
	s.router.HandleFunc("/health", s.controller.HealthHandler).Methods("GET")

	// GET /info - capability description
	s.router.HandleFunc("/info", s.controller.InfoHandler).Methods("GET")

	// POST /search/drug - full drug search with options
	s.router.HandleFunc("/search/drug", s.controller.SearchDrugHandler).Methods("POST")

	// GET /search/quick - drug search with defaults via query parameter
	s.router.HandleFunc("/search/quick", s.controller.QuickSearchHandler).Methods("GET")
}

// Start configures and starts the HTTP server
func (s *Server) Start() error {
	s.setupRoutes()

	// Permissive CORS - tighten the origins before production use
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(s.router)

	log.Printf("PharmGenius Drug Search API starting on %s (%s)", s.cfg.Addr(), s.cfg.Environment)
	if !s.cfg.IsConfigured() {
		log.Printf("Warning: OPENAI_API_KEY not set - drug searches will fail until it is configured")
	}

	return http.ListenAndServe(s.cfg.Addr(), handler)
}

func main() {
	// Load .env before reading configuration from the environment
	if err := utils.LoadEnv(".env"); err != nil {
		log.Printf("Could not load .env file: %v", err)
	}

	cfg := config.Load()

	server := NewServer(cfg)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
