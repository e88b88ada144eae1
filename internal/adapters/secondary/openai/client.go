package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"tokenomics-lab/internal/config"
	"tokenomics-lab/internal/core/domain"
	ports "tokenomics-lab/internal/core/ports/output"
)

const systemPrompt = "You are a highly analytical and experienced tokenomics advisor."

const basePrompt = `You are a Senior Tokenomics Advisor. Your task is to analyze the provided tokenomics simulation data
and identify potential risks and opportunities. Provide clear, actionable insights and recommendations.

Focus on the following areas:
1.  **Inflationary Pressure:** Is the circulating supply growing too rapidly? What are the implications?
2.  **Vesting Schedule Risks:** Are there large token unlocks (cliffs) that could lead to significant sell pressure?
    Are team/private sale vesting periods appropriate for long-term alignment?
3.  **Centralization Risk:** Based on initial and long-term allocation percentages, is there a risk of token concentration
    (e.g., too much control by team, treasury, or early investors)?
4.  **Burn/Sink Effectiveness:** Are the token burn mechanisms sufficient to counteract emissions and maintain value?
5.  **Overall Sustainability & Value Accrual:** Does the model seem sustainable long-term? How does value accrue to the token?

Provide your analysis in a structured format, using bullet points or numbered lists for risks and recommendations.
Be concise but comprehensive.

---
Simulation Data (JSON):`

type advisorClient struct {
	baseURL     string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	client      *http.Client
	enabled     bool
}

// NewAdvisorClient creates an OpenAI-backed advisor adapter. Availability is
// decided by configuration: disabled or keyless clients stay constructible so
// the rest of the app can start without the advisor.
func NewAdvisorClient(cfg *config.AdvisorConfig) ports.AdvisorClient {
	if !cfg.Enabled || cfg.APIKey == "" {
		return &advisorClient{enabled: false}
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &advisorClient{
		baseURL:     cfg.BaseURL,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		enabled:     true,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *advisorClient) IsAvailable() bool {
	return c.enabled
}

// OpenAI chat completions wire structures
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *advisorClient) Analyze(ctx context.Context, results []domain.MonthSnapshot) (string, error) {
	if !c.enabled {
		return "", domain.ErrAdvisorNotAvailable
	}

	data, err := json.Marshal(results)
	if err != nil {
		return "", fmt.Errorf("marshal simulation results: %w", err)
	}

	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: basePrompt + "\n" + string(data)},
		},
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrAdvisorRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrAdvisorRequestFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr errorResponse
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: %s: %s", domain.ErrAdvisorRequestFailed, resp.Status, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: %s", domain.ErrAdvisorRequestFailed, resp.Status)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrAdvisorRequestFailed, err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", domain.ErrAdvisorEmptyResponse
	}

	return chatResp.Choices[0].Message.Content, nil
}
