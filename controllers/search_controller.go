package controllers

import (
	"encoding/json"
	"net/http"

	"pharmgenius/models"
)

// SearchDrugHandler processes POST /search/drug requests with a JSON body
func (c *Controller) SearchDrugHandler(w http.ResponseWriter, r *http.Request) {
	var req models.DrugSearchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeJSON(w, http.StatusBadRequest, models.APIResponse{
			Success: false,
			Message: "Invalid JSON format",
			Error:   "Invalid JSON format",
		})
		return
	}

	response, status := c.search.SearchDrug(r.Context(), req)
	c.writeJSON(w, status, response)
}

// QuickSearchHandler processes GET /search/quick?drug_name=... requests.
// The section flags take their defaults, so a quick search is equivalent to
// a POST with only drug_name set.
func (c *Controller) QuickSearchHandler(w http.ResponseWriter, r *http.Request) {
	req := models.DrugSearchRequest{
		DrugName: r.URL.Query().Get("drug_name"),
	}

	response, status := c.search.SearchDrug(r.Context(), req)
	c.writeJSON(w, status, response)
}
