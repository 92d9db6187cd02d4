// Package assistant answers free-text questions about current supply
// chain conditions. It forwards the question plus a bounded, relevance-
// ranked news context to an OpenAI-compatible chat endpoint and falls
// back to canned rule-based text when the call fails or is rate-limited.
package assistant

import (
	"context"
	"errors"
	"log"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/malagasr/supply-alert/internal/rank"
)

const systemPrompt = `You are a supply chain intelligence assistant for logistics professionals.
Answer questions about freight, border crossings, port congestion, weather disruptions, and trade policy.
Ground your answer in the provided news context when it is relevant. Be concise and factual.
If the context does not cover the question, say so rather than speculating.`

const (
	maxTokens     = 500
	temperature   = 0.4
	contextBudget = 4000 // character cap on the embedded news context
)

var errDisabled = errors.New("assistant disabled: missing API key")

// Client wraps the chat completion API. A nil or key-less client still
// answers; every failure path lands in the rule-based fallback.
type Client struct {
	client    *openai.Client
	model     string
	limiter   *rate.Limiter
	logger    *log.Logger
	activated bool
}

// NewClient builds an assistant. Empty apiKey disables the remote call;
// baseURL overrides the default endpoint (used by tests and proxies).
func NewClient(apiKey, model, baseURL string, logger *log.Logger) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}
	var cli *openai.Client
	activated := apiKey != ""
	if activated {
		cfg := openai.DefaultConfig(apiKey)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		cli = openai.NewClientWithConfig(cfg)
	}
	return &Client{
		client:    cli,
		model:     model,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		logger:    logger,
		activated: activated,
	}
}

// Ready indicates whether the remote endpoint is usable.
func (c *Client) Ready() bool {
	return c.activated && c.client != nil
}

// Answer holds the assistant's reply and whether it came from the
// rule-based fallback rather than the model.
type Answer struct {
	Text     string
	Fallback bool
}

// Ask answers a question using the ranked items as prompt context. It
// never returns an error to the caller: any failure degrades to the
// deterministic fallback text.
func (c *Client) Ask(ctx context.Context, question string, items []rank.ScoredItem) Answer {
	text, err := c.complete(ctx, question, items)
	if err != nil {
		if c.logger != nil && !errors.Is(err, errDisabled) {
			c.logger.Printf("assistant call failed, using fallback: %v", err)
		}
		return Answer{Text: FallbackAnswer(question, items), Fallback: true}
	}
	return Answer{Text: text}
}

func (c *Client) complete(ctx context.Context, question string, items []rank.ScoredItem) (string, error) {
	if !c.Ready() {
		return "", errDisabled
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	user := question
	if newsContext := rank.Context(items, contextBudget); newsContext != "" {
		user = "Current news context:\n" + newsContext + "\nQuestion: " + question
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		MaxTokens:   maxTokens,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}

// SetLimiter swaps the outbound rate limiter, for tests.
func (c *Client) SetLimiter(l *rate.Limiter) { c.limiter = l }
