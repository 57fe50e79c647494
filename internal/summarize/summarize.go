package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
	openai "github.com/sashabaranov/go-openai"
)

// ErrContentTooShort reports content below the summarizable floor.
var ErrContentTooShort = errors.New("content too short to summarize")

// MinContentRunes is the smallest body the summarizer accepts.
const MinContentRunes = 100

// aiInputRunes caps the prefix sent to the model.
const aiInputRunes = 800

// Client is the minimal interface needed to call a chat model. It mirrors the
// go-openai method so any OpenAI-compatible backend can be adapted.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Result is one produced summary. AI records which path answered, which the
// formatted output discloses.
type Result struct {
	Text string
	AI   bool
}

// Summarizer prefers the configured model and falls back to the extractive
// scorer on any model failure. A nil Client or empty Model disables the AI
// path entirely.
type Summarizer struct {
	Client Client
	Model  string
	// MaxSentences bounds the extractive fallback. Zero means
	// DefaultMaxSentences.
	MaxSentences int
}

// Summarize produces a summary for one article. The AI path failing is never
// an error: the extractive scorer always answers once content clears
// MinContentRunes.
func (s *Summarizer) Summarize(ctx context.Context, title, content string) (Result, error) {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) < MinContentRunes {
		return Result{}, fmt.Errorf("%w: need at least %d characters", ErrContentTooShort, MinContentRunes)
	}

	if s.Client != nil && s.Model != "" {
		text, err := s.abstractive(ctx, title, content)
		if err == nil && text != "" {
			return Result{Text: text, AI: true}, nil
		}
		log.Warn().Err(err).Msg("AI summarization failed; using extractive fallback")
	}

	return Result{Text: Extractive(content, s.MaxSentences)}, nil
}

const systemPrompt = "당신은 뉴스 편집자입니다. 주어진 기사 본문을 핵심만 남겨 3~5문장의 한국어로 요약하세요. 새로운 사실을 추가하지 마세요."

func (s *Summarizer) abstractive(ctx context.Context, title, content string) (string, error) {
	input := content
	if runes := []rune(input); len(runes) > aiInputRunes {
		input = string(runes[:aiInputRunes])
	}
	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.Model,
		Temperature: 0.2,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: "제목: " + title + "\n\n본문:\n" + input},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
