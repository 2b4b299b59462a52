package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/murtaDuElama/FitnessCenter/internal/logger"
)

const maxAttempts = 3

// Client talks to an OpenAI-compatible chat completions endpoint.
// Rate-limited responses are retried with the server's Retry-After
// delay when present.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
	model      string
}

func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// AnalyzeWorkout reviews a workout description from a coaching angle.
func (c *Client) AnalyzeWorkout(ctx context.Context, description string) (string, error) {
	system := "You are a fitness coach. Give actionable, safe, concise guidance."
	user := "Analyze the following workout description. " +
		"Return: 1) positives 2) risks 3) improvements 4) sample next session.\n\n" +
		description

	return c.Chat(ctx, system, user)
}

// NutritionAdvice answers a nutrition question with practical guidance.
func (c *Client) NutritionAdvice(ctx context.Context, question string) (string, error) {
	system := "You are a nutrition assistant. Give practical, evidence-based, non-medical guidance."
	user := "Answer the nutrition question concisely. " +
		"If missing info, ask up to 3 short clarification questions.\n\n" +
		question

	return c.Chat(ctx, system, user)
}

func (c *Client) Chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", err
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			delay := retryDelay(resp.Header.Get("Retry-After"), attempt)
			resp.Body.Close()
			logger.Infof("AI rate limited, retrying in %s (attempt %d)", delay, attempt)

			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return "", err
		}

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("ai api error: %d - %s", resp.StatusCode, string(respBody))
		}

		var parsed chatResponse
		if err := json.Unmarshal(respBody, &parsed); err != nil {
			return "", fmt.Errorf("ai api: bad response: %w", err)
		}
		if len(parsed.Choices) == 0 {
			return "", fmt.Errorf("ai api: empty response")
		}

		return parsed.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("ai api: still rate limited after %d attempts", maxAttempts)
}

func retryDelay(retryAfter string, attempt int) time.Duration {
	if secs, err := strconv.Atoi(strings.TrimSpace(retryAfter)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return time.Duration(2*attempt) * time.Second
}
