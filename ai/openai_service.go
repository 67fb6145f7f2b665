package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/anjiri1684/edu_assist/configs"
)

const defaultBaseURL = "https://api.openai.com/v1"
const defaultModel = "gpt-3.5-turbo"

// ErrUnavailable is returned when the AI collaborator cannot be reached or
// returns output the caller cannot use.
var ErrUnavailable = errors.New("AI assistant is currently unavailable")

var httpClient = &http.Client{Timeout: 30 * time.Second}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatCompletion sends a system/user prompt pair to the chat completions API
// and returns the assistant's reply.
func ChatCompletion(system, user string, maxTokens int, temperature float64) (string, error) {
	apiKey := config.Config("OPENAI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY is not configured", ErrUnavailable)
	}

	baseURL := config.Config("OPENAI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := config.Config("OPENAI_MODEL")
	if model == "" {
		model = defaultModel
	}

	payload := chatCompletionRequest{
		Model: model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, strings.TrimRight(baseURL, "/")+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		log.Printf("OpenAI request failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var parsed chatCompletionResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("%w: malformed response", ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			log.Printf("OpenAI error (%d): %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
