package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"pharmgenius/config"
)

// Sentinel errors classifying completion failures. Callers use errors.Is to
// map them onto user-facing messages and HTTP statuses.
var (
	ErrNotConfigured = errors.New("OpenAI API key not set")
	ErrTimeout       = errors.New("completion request timed out")
	ErrConnectivity  = errors.New("could not reach completion API")
	ErrProvider      = errors.New("completion API returned an error")
)

// CompletionOptions controls a single completion call
type CompletionOptions struct {
	Model       string
	Temperature float64
	MaxTokens   int
}

// CompletionClient is the single capability the orchestrator needs from the
// external model provider. Tests substitute a deterministic fake.
type CompletionClient interface {
	Complete(ctx context.Context, system, user string, opts CompletionOptions) (string, error)
	Probe(ctx context.Context) error
	IsConfigured() bool
}

// OpenAIService handles communication with OpenAI's chat completions API
type OpenAIService struct {
	apiKey      string
	baseURL     string
	healthModel string
	httpClient  *http.Client
}

// chatRequest represents a request to the chat completions API
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature,omitempty"`
}

// chatMessage represents a message in the chat completions format
type chatMessage struct {
	Role    string `json:"role"` // "system", "user", or "assistant"
	Content string `json:"content"`
}

// chatResponse represents a response from the chat completions API
type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error,omitempty"`
}

// NewOpenAIService creates a new OpenAI service from the loaded configuration
func NewOpenAIService(cfg config.Config) *OpenAIService {
	return &OpenAIService{
		apiKey:      cfg.APIKey,
		baseURL:     cfg.BaseURL,
		healthModel: cfg.HealthModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsConfigured checks whether the API credential is present
func (s *OpenAIService) IsConfigured() bool {
	return s.apiKey != ""
}

// Complete performs exactly one chat completion round trip and returns the
// completion text. Failures are classified with the sentinel errors above.
func (s *OpenAIService) Complete(ctx context.Context, system, user string, opts CompletionOptions) (string, error) {
	if !s.IsConfigured() {
		return "", ErrNotConfigured
	}

	var messages []chatMessage
	if system != "" {
		messages = append(messages, chatMessage{Role: "system", Content: system})
	}
	messages = append(messages, chatMessage{Role: "user", Content: user})

	request := chatRequest{
		Model:       opts.Model,
		Messages:    messages,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrConnectivity, err)
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("%w: malformed response body (status %d)", ErrProvider, resp.StatusCode)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrProvider, completion.Error.Message)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("%w: no completion choices returned", ErrProvider)
	}

	return completion.Choices[0].Message.Content, nil
}

// Probe performs a minimal completion against the base model to verify
// connectivity. Used by the health check only.
func (s *OpenAIService) Probe(ctx context.Context) error {
	_, err := s.Complete(ctx, "", "Say 'API connection successful'", CompletionOptions{
		Model:     s.healthModel,
		MaxTokens: 10,
	})
	return err
}

// MaskedKey returns the API key with all but the edges hidden, for status output
func (s *OpenAIService) MaskedKey() string {
	if s.apiKey == "" {
		return ""
	}
	if len(s.apiKey) > 8 {
		return s.apiKey[:4] + "..." + s.apiKey[len(s.apiKey)-4:]
	}
	return "***"
}

// classifyTransportError distinguishes timeouts from other transport failures
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnectivity, err)
}
