package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"pharmgenius/models"
)

const (
	// System instruction framing the assistant for every search
	searchSystemPrompt = "You are a medical information specialist. Search the web to find accurate, " +
		"up-to-date drug information from authoritative medical sources like FDA, EMA, PubMed, and " +
		"medical literature. Provide comprehensive, well-structured responses with source citations."

	searchTemperature = 0.1
	searchMaxTokens   = 2000
	searchTimeout     = 30 * time.Second

	maxDrugNameLength = 100

	// How much of the prompt is echoed back in the success payload
	queryEchoLength = 200
)

// DrugSearchService orchestrates a drug search: validate the request, build
// the prompt, call the completion API once, and wrap the result (or failure)
// into the response envelope. Stateless between invocations.
type DrugSearchService struct {
	client CompletionClient
	model  string
}

// NewDrugSearchService creates a new drug search service using the given
// completion client and search model
func NewDrugSearchService(client CompletionClient, model string) *DrugSearchService {
	return &DrugSearchService{
		client: client,
		model:  model,
	}
}

// SearchDrug runs the full search pipeline and returns the response envelope
// together with the HTTP status it should be served with. Expected failures
// never escape as errors - they become success:false envelopes.
func (s *DrugSearchService) SearchDrug(ctx context.Context, req models.DrugSearchRequest) (models.APIResponse, int) {
	start := time.Now()

	drugName := strings.TrimSpace(req.DrugName)
	if drugName == "" {
		return errorResponse("drug_name is required and cannot be empty", start), http.StatusBadRequest
	}
	if len(drugName) > maxDrugNameLength {
		return errorResponse(fmt.Sprintf("drug_name cannot exceed %d characters", maxDrugNameLength), start), http.StatusBadRequest
	}

	opts := req.Options()
	prompt := BuildSearchPrompt(drugName, opts)

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	drugInfo, err := s.client.Complete(ctx, searchSystemPrompt, prompt, CompletionOptions{
		Model:       s.model,
		Temperature: searchTemperature,
		MaxTokens:   searchMaxTokens,
	})
	if err != nil {
		log.Printf("Drug search for %q failed: %v", drugName, err)
		message, status := describeSearchFailure(err)
		return errorResponse(message, start), status
	}

	data := models.DrugSearchData{
		DrugName:        drugName,
		SearchQuery:     truncateQuery(prompt),
		DrugInformation: drugInfo,
		SearchOptions:   opts,
		Timestamp:       start.UTC().Format(time.RFC3339),
	}

	return models.APIResponse{
		Success:        true,
		Data:           data,
		Message:        fmt.Sprintf("Successfully retrieved information for '%s'", drugName),
		ProcessingTime: time.Since(start).Seconds(),
	}, http.StatusOK
}

// HealthCheck reports whether the credential is present and whether the
// provider answers a minimal probe. It never returns an error.
func (s *DrugSearchService) HealthCheck(ctx context.Context) (configured bool, reachable bool) {
	configured = s.client.IsConfigured()
	if !configured {
		return false, false
	}

	if err := s.client.Probe(ctx); err != nil {
		log.Printf("OpenAI connectivity probe failed: %v", err)
		return true, false
	}

	return true, true
}

// BuildSearchPrompt constructs the natural-language search prompt for a drug.
// Classification, indications, mechanism of action, and regulatory status are
// always requested; the optional sections follow the request flags.
func BuildSearchPrompt(drugName string, opts models.SearchOptions) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Search for comprehensive information about the drug %q and provide detailed, "+
		"accurate information from authoritative medical sources.\n\n", drugName)
	prompt.WriteString("Please provide the following information in a structured format:\n\n")

	prompt.WriteString("1. Basic Information:\n")
	prompt.WriteString("   - Official drug name\n")
	prompt.WriteString("   - Generic name (if applicable)\n")
	prompt.WriteString("   - Common brand names\n")
	prompt.WriteString("   - Drug classification/category\n\n")

	prompt.WriteString("2. Medical Information:\n")
	prompt.WriteString("   - Primary indications (what conditions it treats)\n")
	prompt.WriteString("   - Mechanism of action (how it works)\n")
	prompt.WriteString("   - Therapeutic category\n\n")

	prompt.WriteString("3. Regulatory Information:\n")
	prompt.WriteString("   - FDA approval status\n")
	prompt.WriteString("   - Available formulations (tablets, injection, etc.)\n")
	prompt.WriteString("   - Prescription vs OTC status\n")

	section := 4
	if opts.IncludeDosage {
		fmt.Fprintf(&prompt, "\n%d. Dosage Information:\n", section)
		prompt.WriteString("   - Typical adult dosage\n")
		prompt.WriteString("   - Pediatric dosage (if applicable)\n")
		prompt.WriteString("   - Administration route\n")
		prompt.WriteString("   - Frequency of administration\n")
		section++
	}

	if opts.IncludeSideEffects {
		fmt.Fprintf(&prompt, "\n%d. Safety Information:\n", section)
		prompt.WriteString("   - Common side effects\n")
		prompt.WriteString("   - Serious/rare side effects\n")
		prompt.WriteString("   - Contraindications\n")
		prompt.WriteString("   - Important warnings and precautions\n")
		section++
	}

	if opts.IncludeInteractions {
		fmt.Fprintf(&prompt, "\n%d. Drug Interactions:\n", section)
		prompt.WriteString("   - Major drug interactions\n")
		prompt.WriteString("   - Food interactions\n")
		prompt.WriteString("   - Alcohol interactions\n")
	}

	prompt.WriteString("\nImportant Instructions:\n")
	prompt.WriteString("- Only use information from authoritative medical sources (FDA, EMA, PubMed, medical textbooks, official drug labels)\n")
	prompt.WriteString("- Ensure all information is current and accurate\n")
	prompt.WriteString("- If certain information is not available or unclear, state that explicitly\n")
	prompt.WriteString("- Include the sources where you found this information\n")
	prompt.WriteString("- Format the response in clear, structured sections\n")
	prompt.WriteString("- Use medical terminology appropriately but explain complex terms\n\n")
	prompt.WriteString("Please search the web for the most current and accurate information about this drug.")

	return prompt.String()
}

// describeSearchFailure maps a classified completion error onto a
// human-readable message and an HTTP status
func describeSearchFailure(err error) (string, int) {
	switch {
	case errors.Is(err, ErrNotConfigured):
		return "OpenAI client not configured. Please set OPENAI_API_KEY environment variable.", http.StatusServiceUnavailable
	case errors.Is(err, ErrTimeout):
		return "Drug information search timed out. Please try again.", http.StatusGatewayTimeout
	case errors.Is(err, ErrConnectivity):
		return "Could not reach the drug information provider. Please try again later.", http.StatusBadGateway
	case errors.Is(err, ErrProvider):
		return "The drug information provider returned an error.", http.StatusBadGateway
	default:
		return "Failed to search for drug information.", http.StatusInternalServerError
	}
}

// errorResponse builds a failed envelope with no data payload
func errorResponse(message string, start time.Time) models.APIResponse {
	return models.APIResponse{
		Success:        false,
		Message:        message,
		Error:          message,
		ProcessingTime: time.Since(start).Seconds(),
	}
}

// truncateQuery shortens the prompt echo included in the success payload
func truncateQuery(prompt string) string {
	if len(prompt) <= queryEchoLength {
		return prompt
	}
	return prompt[:queryEchoLength] + "..."
}
