// Package together is a client for the Together AI chat-completions API,
// called either directly with a bearer key or through a same-origin proxy.
package together

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultEndpoint = "https://api.together.xyz/v1/chat/completions"
	DefaultModel    = "meta-llama/Llama-3.3-70B-Instruct-Turbo-Free"

	// Apology is returned when the response carries no recognised text.
	Apology = "Sorry, I couldn't generate an excuse at the moment."

	systemPrompt = "You are an excuse generator AI that creates believable, creative, and slightly humorous excuses for various situations. You respond with just the excuse text, without any introductions, explanations, or disclaimers."
)

var (
	ErrNetwork           = errors.New("generation service unreachable")
	ErrHTTPStatus        = errors.New("generation service returned non-2xx status")
	ErrMalformedResponse = errors.New("generation service returned malformed response")
	ErrUpstream          = errors.New("generation service reported an error")
)

// APIError represents a non-2xx HTTP response.
type APIError struct {
	StatusCode int
	Body       string // first 512 bytes
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
}

// Unwrap lets errors.Is match ErrHTTPStatus.
func (e *APIError) Unwrap() error {
	return ErrHTTPStatus
}

// Message is one chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request is the chat-completions payload.
type Request struct {
	Model            string    `json:"model"`
	Messages         []Message `json:"messages"`
	Temperature      float64   `json:"temperature"`
	MaxTokens        int       `json:"max_tokens"`
	TopP             float64   `json:"top_p"`
	FrequencyPenalty float64   `json:"frequency_penalty"`
	PresencePenalty  float64   `json:"presence_penalty"`
}

// Response covers the response shapes seen from Together and compatible APIs.
// Output is either an object with choices or a plain string.
type Response struct {
	Choices []struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message,omitempty"`
		Text string `json:"text,omitempty"`
	} `json:"choices,omitempty"`
	Output json.RawMessage `json:"output,omitempty"`
	Error  json.RawMessage `json:"error,omitempty"`
}

// Client sends generation requests.
type Client struct {
	endpoint   string
	apiKey     string
	model      string
	httpClient *http.Client
}

// Option configures Client behavior.
type Option func(*Client)

// WithEndpoint sets the URL requests are posted to.
func WithEndpoint(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.endpoint = url
		}
	}
}

// WithAPIKey sets the bearer credential. Leave empty when calling through a proxy.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithModel sets the model identifier.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// New creates a Client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint: DefaultEndpoint,
		model:    DefaultModel,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// NewRequest builds the generation payload for a situation.
func (c *Client) NewRequest(situation string) Request {
	return Request{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf("I need an excuse for the following situation: %s\nGive me a creative and believable excuse that I can use. It should be 1-3 sentences long and sound natural.", situation)},
		},
		Temperature:      0.7,
		MaxTokens:        150,
		TopP:             0.9,
		FrequencyPenalty: 0.3,
		PresencePenalty:  0.3,
	}
}

// Generate requests an excuse and returns the raw generated text.
// Exactly one request is made; there are no retries.
func (c *Client) Generate(ctx context.Context, situation string) (string, error) {
	payload, err := json.Marshal(c.NewRequest(situation))
	if err != nil {
		return "", err
	}

	status, body, err := c.Forward(ctx, payload)
	if err != nil {
		return "", err
	}

	if status < 200 || status >= 300 {
		bodyStr := string(body)
		if len(bodyStr) > 512 {
			bodyStr = bodyStr[:512]
		}
		return "", &APIError{StatusCode: status, Body: bodyStr}
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return resp.Text()
}

// Forward posts an already encoded payload and returns the status and body
// as received. Only transport failures are errors.
func (c *Client) Forward(ctx context.Context, payload []byte) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}
	return resp.StatusCode, body, nil
}

// Text extracts the generated text, trying choices[0].message.content,
// choices[0].text, output.choices[0].text and output as a string in order.
// A payload with an error field fails; one with none of these yields Apology.
func (r *Response) Text() (string, error) {
	if len(r.Choices) > 0 {
		if m := r.Choices[0].Message; m != nil {
			return strings.TrimSpace(m.Content), nil
		}
		if r.Choices[0].Text != "" {
			return strings.TrimSpace(r.Choices[0].Text), nil
		}
	}

	if len(r.Output) > 0 {
		var nested struct {
			Choices []struct {
				Text string `json:"text"`
			} `json:"choices"`
		}
		if err := json.Unmarshal(r.Output, &nested); err == nil && len(nested.Choices) > 0 {
			return strings.TrimSpace(nested.Choices[0].Text), nil
		}

		var plain string
		if err := json.Unmarshal(r.Output, &plain); err == nil && plain != "" {
			return strings.TrimSpace(plain), nil
		}
	}

	if len(r.Error) > 0 && string(r.Error) != "null" {
		return "", fmt.Errorf("%w: %s", ErrUpstream, errorMessage(r.Error))
	}

	return Apology, nil
}

// errorMessage reads error.message, a plain string error, or the raw JSON.
func errorMessage(raw json.RawMessage) string {
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}
	return "API request failed"
}
