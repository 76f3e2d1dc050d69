package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/DylanJDombrowski/pizzai-dashboard/internal/domain/models"
)

// apiURL is a var so tests can point the client at an httptest server.
var apiURL = "https://api.anthropic.com/v1/messages"

// SetAPIURL overrides the Anthropic endpoint. Intended for tests only.
func SetAPIURL(u string) { apiURL = u }

// APIURL returns the current Anthropic endpoint.
func APIURL() string { return apiURL }

const (
	apiVersion = "2023-06-01"
	model      = "claude-sonnet-4-20250514"
	maxTokens  = 4000
)

// Client proposes weekly shift assignments via the Anthropic Messages API.
// It satisfies the scheduling service's ShiftProposer interface.
type Client struct {
	httpClient *resty.Client
}

// NewClient creates a configured proposer client.
func NewClient(apiKey string) *Client {
	client := resty.New().
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", apiVersion).
		SetHeader("content-type", "application/json").
		SetTimeout(60 * time.Second)

	return &Client{httpClient: client}
}

type messageRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messageResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// ProposeSchedule submits the planning context and parses the returned JSON
// plan. Any transport, API or parse failure comes back as an error; the
// caller decides how to degrade.
func (c *Client) ProposeSchedule(ctx context.Context, planning models.PlanningContext) (*models.ShiftProposal, error) {
	prompt, err := buildPrompt(planning)
	if err != nil {
		return nil, fmt.Errorf("build scheduling prompt: %w", err)
	}

	reqBody := messageRequest{
		Model:     model,
		MaxTokens: maxTokens,
		Messages:  []message{{Role: "user", Content: prompt}},
	}

	var respBody messageResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post(apiURL)

	if err != nil {
		return nil, fmt.Errorf("anthropic api call: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("anthropic api error: %s", resp.String())
	}
	if len(respBody.Content) == 0 {
		return nil, fmt.Errorf("empty response from ai")
	}

	var text strings.Builder
	for _, block := range respBody.Content {
		text.WriteString(block.Text)
	}

	// Claude occasionally wraps the JSON in markdown fences despite the
	// instructions; strip them before parsing.
	responseText := strings.TrimSpace(text.String())
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	var proposal models.ShiftProposal
	if err := json.Unmarshal([]byte(responseText), &proposal); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ai proposal: %w", err)
	}

	return &proposal, nil
}
