package evaluate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"

	"github.com/seoscope/seoscope/internal/llm"
)

// Kind selects which structured evaluation to run.
type Kind string

const (
	KindKeyword Kind = "keyword-optimization"
	KindContent Kind = "content-quality"
	KindLink    Kind = "link-quality"
)

// Input bundles the extracted page data an evaluation prompt embeds.
type Input struct {
	Content         string
	FullText        string
	Title           string
	MetaDescription string
	URL             string
	Keywords        []string
}

// Section is one parsed line of the model's evaluation: a guideline label,
// its analysis, and an optional suggestion.
type Section struct {
	Label      string
	Analysis   string
	Suggestion string
}

// Evaluator calls a chat model with a fixed-structure prompt per Kind and
// parses the reply into ordered sections. Collaborators are injected at
// construction; the evaluator holds no mutable state.
type Evaluator struct {
	Client      llm.Client
	Model       string
	Temperature float32
	// Timeout bounds a single evaluation call. Zero means the caller's
	// context deadline applies alone.
	Timeout time.Duration
}

// Evaluate runs one evaluation. Failures are logged and yield an empty
// section list so that one broken evaluation never blocks the others; the
// caller renders a fallback state for empty results.
func (e *Evaluator) Evaluate(ctx context.Context, kind Kind, in Input) []Section {
	if e.Client == nil || strings.TrimSpace(e.Model) == "" {
		log.Warn().Str("kind", string(kind)).Msg("evaluator not configured")
		return nil
	}
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	prompt, err := buildPrompt(kind, in)
	if err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Msg("prompt build failed")
		return nil
	}

	resp, err := e.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: e.Temperature,
		N:           1,
	})
	if err != nil {
		log.Warn().Err(err).Str("kind", string(kind)).Msg("evaluation call failed")
		return nil
	}
	if len(resp.Choices) == 0 {
		log.Warn().Str("kind", string(kind)).Msg("evaluation returned no choices")
		return nil
	}
	raw := strings.TrimSpace(resp.Choices[0].Message.Content)
	if raw == "" {
		log.Warn().Str("kind", string(kind)).Msg("evaluation returned empty content")
		return nil
	}
	return ParseSections(raw, kind)
}

var errUnknownKind = errors.New("unknown evaluation kind")

func buildPrompt(kind Kind, in Input) (string, error) {
	switch kind {
	case KindKeyword:
		return keywordPrompt(in), nil
	case KindContent:
		return contentPrompt(in), nil
	case KindLink:
		return linkPrompt(in), nil
	default:
		return "", errUnknownKind
	}
}
