package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"pharmgenius/config"
	"pharmgenius/services"
)

// APIVersion is reported by the banner, health, and info endpoints
const APIVersion = "1.0.0"

// Controller handles all HTTP endpoints over the search service
type Controller struct {
	cfg    config.Config
	openai *services.OpenAIService
	search *services.DrugSearchService
}

// NewController creates a new controller wired to the given configuration
func NewController(cfg config.Config) *Controller {
	openai := services.NewOpenAIService(cfg)

	return &Controller{
		cfg:    cfg,
		openai: openai,
		search: services.NewDrugSearchService(openai, cfg.Model),
	}
}

// NewControllerWithClient creates a controller using a substitute completion
// client. Used by tests to avoid real network calls.
func NewControllerWithClient(cfg config.Config, client services.CompletionClient) *Controller {
	return &Controller{
		cfg:    cfg,
		openai: services.NewOpenAIService(cfg),
		search: services.NewDrugSearchService(client, cfg.Model),
	}
}

// writeJSON serializes a response body with the given status code
func (c *Controller) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
