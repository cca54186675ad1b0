package worker

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// claudeSystemPrompt frames content generation as a single article.
const claudeSystemPrompt = `You are a technical content writer. Write a short,
well-structured article on the topic given by the user. Start with a title
on its own line, then the body. Keep it under 400 words.`

// ClaudeContentAgent generates articles through the Anthropic API.
// It declares the same content operation as the template-based agent, so
// the coordinator cannot tell them apart.
type ClaudeContentAgent struct {
	client anthropic.Client
	model  anthropic.Model
}

// NewClaudeContentAgent creates a Claude-backed content agent.
// Returns an error when no API key is supplied.
func NewClaudeContentAgent(apiKey string, model anthropic.Model) (*ClaudeContentAgent, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic api key is not set")
	}
	if model == "" {
		model = anthropic.ModelClaude3_5Haiku20241022
	}
	return &ClaudeContentAgent{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}, nil
}

// Article asks Claude for an article on the topic and parses the first
// line as the title.
func (a *ClaudeContentAgent) Article(ctx context.Context, topic string) (*Article, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: 1024,
		System: []anthropic.TextBlockParam{
			{Text: claudeSystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(topic)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("generate article: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}

	title, body, _ := strings.Cut(strings.TrimSpace(text.String()), "\n")
	body = strings.TrimSpace(body)
	return &Article{
		Topic:     topic,
		Title:     strings.TrimSpace(title),
		Body:      body,
		WordCount: len(strings.Fields(body)),
	}, nil
}

// Table returns the agent's operation declaration.
func (a *ClaudeContentAgent) Table(name string) *Table {
	return NewTable().
		Register(KindContent, func(ctx context.Context, task string) (any, error) {
			return a.Article(ctx, task)
		}).
		Register(KindGeneric, Echo(name))
}
