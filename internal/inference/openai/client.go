package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/traitel/calmnight/internal/inference"
)

const systemPrompt = `You are a warm, non-judgmental wellness companion for someone working through emotional eating.
You receive JSON with their recent check-ins (emotion and intensity from 1 to 10, where 10 is the most intense),
journal entries, average mood (1 to 10, higher is calmer), most common emotion and current streak of days with a check-in.

Write a short reflection in the second person, 3 to 5 sentences, that:
- notices patterns gently without diagnosing
- acknowledges effort and consistency
- never gives medical advice

Then give 2 or 3 small, concrete suggestions for the next day.

STRICT OUTPUT: Return ONLY a JSON object {"reflection": "<text>", "suggestions": ["<text>", ...]}. No text outside the JSON.`

type Client struct {
	httpClient       *resty.Client
	model            string
	maxRetryAttempts uint
}

func NewClient(apiKey, model string, retryAttempts uint) *Client {
	client := resty.New()
	client.SetBaseURL("https://api.openai.com/v1")
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")

	return &Client{
		httpClient:       client,
		model:            model,
		maxRetryAttempts: retryAttempts,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

// GetModel returns the model name configured for this client
func (client Client) GetModel() string {
	return client.model
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float32         `json:"temperature,omitempty"`
	ResponseFormat *ResponseFormat `json:"response_format,omitempty"`
}

type ResponseFormat struct {
	Type string `json:"type"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// isRetryableError determines if an error should trigger a retry
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Incomplete responses fail to decode
	errStr := err.Error()
	if strings.Contains(errStr, "json.Unmarshal") || strings.Contains(errStr, "unexpected end of JSON input") {
		return true
	}

	if strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "i/o timeout") {
		return true
	}

	// Server errors and rate limiting
	if strings.Contains(errStr, "response error 5") || strings.Contains(errStr, "response error 429") {
		return true
	}

	return false
}

// Reflect implements the inference.Client interface
func (client *Client) Reflect(
	ctx context.Context,
	params inference.ReflectionRequest,
) (inference.ReflectionResponse, error) {
	var result inference.ReflectionResponse
	if err := retry.Do(
		func() error {
			response, err := client.reflect(ctx, params)
			if err != nil {
				if !isRetryableError(err) {
					return retry.Unrecoverable(err)
				}
				return err
			}
			result = response
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
	); err != nil {
		return inference.ReflectionResponse{}, err
	}
	return result, nil
}

func (client *Client) getRequestBody(args inference.ReflectionRequest) (ChatCompletionRequest, error) {
	userContent, err := json.Marshal(args)
	if err != nil {
		return ChatCompletionRequest{}, fmt.Errorf("json.Marshal() > %w", err)
	}

	return ChatCompletionRequest{
		Model: client.model,
		Messages: []Message{
			{Role: RoleSystem, Content: systemPrompt},
			{Role: RoleUser, Content: string(userContent)},
		},
		Temperature:    0.7,
		ResponseFormat: &ResponseFormat{Type: "json_object"},
	}, nil
}

func (client *Client) reflect(
	ctx context.Context,
	args inference.ReflectionRequest,
) (inference.ReflectionResponse, error) {
	if args.IsEmpty() {
		return inference.ReflectionResponse{}, fmt.Errorf("nothing to reflect on: no check-ins or journals")
	}

	requestBody, err := client.getRequestBody(args)
	if err != nil {
		return inference.ReflectionResponse{}, fmt.Errorf("getRequestBody > %w", err)
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		return inference.ReflectionResponse{}, fmt.Errorf("httpClient.Post > %w", err)
	}
	if response.IsError() {
		return inference.ReflectionResponse{}, fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
	}

	responseBody := response.Result().(*ChatCompletionResponse)
	if responseBody == nil || len(responseBody.Choices) == 0 {
		return inference.ReflectionResponse{}, fmt.Errorf("empty response body or choices: %s", response.String())
	}

	content := responseBody.Choices[0].Message.Content
	if content == "" {
		return inference.ReflectionResponse{}, fmt.Errorf("empty response content: %s", response.String())
	}
	slog.Default().Debug("openai response content",
		"model", client.model,
		"usage", responseBody.Usage,
	)

	var decoded inference.ReflectionResponse
	if err := json.NewDecoder(strings.NewReader(content)).Decode(&decoded); err != nil {
		slog.Default().Error("Failed to parse OpenAI response as JSON",
			"checkIns", len(args.CheckIns),
			"journals", len(args.Journals),
			"error", err)
		return inference.ReflectionResponse{}, fmt.Errorf("json.Unmarshal(%s) > %w", content, err)
	}
	if strings.TrimSpace(decoded.Reflection) == "" {
		return inference.ReflectionResponse{}, fmt.Errorf("response has no reflection: %s", content)
	}
	return decoded, nil
}
