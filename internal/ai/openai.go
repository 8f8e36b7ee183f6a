package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/minte-atnafu/Developer-Activity-Dashboard/internal/activity"
)

// Summarizer defines the AI summary interface used by the digest command.
type Summarizer interface {
	// SummarizeActivities creates a short narrative summary of a set of
	// activities in the given language.
	SummarizeActivities(ctx context.Context, items []activity.Activity, language string) (string, error)
}

// OpenAIClient implements Summarizer using OpenAI Chat Completions API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional
}

func NewOpenAI(cfg Config) *OpenAIClient {
	var c *openai.Client
	if cfg.BaseURL != "" {
		cc := openai.DefaultConfig(cfg.APIKey)
		cc.BaseURL = cfg.BaseURL
		c = openai.NewClientWithConfig(cc)
	} else {
		c = openai.NewClient(cfg.APIKey)
	}
	model := cfg.Model
	if model == "" {
		panic("OpenAI model must be specified")
	}
	return &OpenAIClient{client: c, model: model}
}

func (o *OpenAIClient) SummarizeActivities(ctx context.Context, items []activity.Activity, language string) (string, error) {
	// set timeout to 300s for digest-level summary
	ctx, cancel := context.WithTimeout(ctx, 300*time.Second)
	defer cancel()
	if len(items) == 0 {
		return "", nil
	}
	b := &strings.Builder{}
	for i, it := range items {
		if i >= 20 {
			break
		}
		fmt.Fprintf(b, "- [%s/%s] %s\n", it.Source, it.Type, it.Title)
	}
	sys := fmt.Sprintf(`
		Try your best to rewrite the list into a summary, write in %s, return 2 ~ 4 sentences (60-180 words), summarizing what this developer worked on.
		Group related work: code pushed, issues and pull requests, questions asked and answered.
		You must be concrete, no fluff
		`, langOrDefault(language))
	user := fmt.Sprintf("Recent developer activity (source/type and title):\n%s\nTask: Write a short narrative of this period's work. Output the summary only, plain text, one or two paragraphs, no links.", b.String())
	out, err := o.create(ctx, sys, user)
	if err != nil {
		slog.Error("openai: summarize activities error", "err", err)
		return "", err
	}
	return strings.TrimSpace(out), nil
}

func (o *OpenAIClient) create(ctx context.Context, system, user string) (string, error) {
	// Default timeout guard, if caller didn't set one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 300*time.Second)
		defer cancel()
	}
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: 0.4,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func langOrDefault(lang string) string {
	l := strings.TrimSpace(lang)
	if l == "" {
		return "English"
	}
	return l
}
