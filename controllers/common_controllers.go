package controllers

import (
	"net/http"
	"time"

	"pharmgenius/models"
)

// IndexHandler serves the API banner
func (c *Controller) IndexHandler(w http.ResponseWriter, r *http.Request) {
	banner := map[string]string{
		"message":     "Welcome to PharmGenius Drug Search API",
		"version":     APIVersion,
		"powered_by":  "GPT-4o Search Preview",
		"environment": c.cfg.Environment,
		"docs":        "/info",
	}

	c.writeJSON(w, http.StatusOK, banner)
}

// HealthHandler verifies the API credential and OpenAI connectivity.
// Failures are reported in the payload, never as a non-200 status.
func (c *Controller) HealthHandler(w http.ResponseWriter, r *http.Request) {
	configured, reachable := c.search.HealthCheck(r.Context())

	health := models.HealthStatus{
		Configured: configured,
		Reachable:  reachable,
		Model:      c.cfg.Model,
		APIKey:     c.openai.MaskedKey(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}

	switch {
	case !configured:
		health.Status = "warning"
		health.Message = "OpenAI API key not configured"
	case !reachable:
		health.Status = "error"
		health.Message = "Cannot reach OpenAI API"
	default:
		health.Status = "healthy"
	}

	c.writeJSON(w, http.StatusOK, health)
}

// InfoHandler describes the API's capabilities and data sources
func (c *Controller) InfoHandler(w http.ResponseWriter, r *http.Request) {
	info := models.APIResponse{
		Success: true,
		Data: map[string]interface{}{
			"api_name":   "PharmGenius Drug Search API",
			"version":    APIVersion,
			"powered_by": "GPT-4o Search Preview",
			"capabilities": []string{
				"Real-time web search for drug information",
				"Comprehensive drug profiles",
				"Authoritative source citations",
				"Dosage and safety information",
				"Drug interaction checking",
			},
			"endpoints": map[string]string{
				"/search/drug":  "Main drug search endpoint with detailed options",
				"/search/quick": "Quick drug search with drug name only",
				"/health":       "API health check",
				"/info":         "API information",
			},
			"data_sources": []string{
				"FDA (Food and Drug Administration)",
				"EMA (European Medicines Agency)",
				"PubMed",
				"Official drug labels",
				"Medical literature databases",
			},
			"rate_limits":    "Standard OpenAI API limits apply",
			"authentication": "OpenAI API key required",
		},
		Message: "API information retrieved successfully",
	}

	c.writeJSON(w, http.StatusOK, info)
}
