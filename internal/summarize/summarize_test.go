package summarize

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

type stubClient struct {
	reply   string
	err     error
	gotUser string
	calls   int
}

func (s *stubClient) CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.calls++
	for _, m := range req.Messages {
		if m.Role == openai.ChatMessageRoleUser {
			s.gotUser = m.Content
		}
	}
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

// longContent clears MinContentRunes and has enough sentences to summarize.
var longContent = strings.Repeat("정부가 발표한 정책에 대해 업계는 다양한 반응을 보이고 있다. ", 10)

func TestSummarize_ContentLengthBoundary(t *testing.T) {
	s := &Summarizer{}
	ctx := context.Background()

	if _, err := s.Summarize(ctx, "제목", strings.Repeat("가", 99)); !errors.Is(err, ErrContentTooShort) {
		t.Fatalf("99 runes: err = %v, want ErrContentTooShort", err)
	}
	if _, err := s.Summarize(ctx, "제목", strings.Repeat("가", 100)); err != nil {
		t.Fatalf("100 runes: unexpected err = %v", err)
	}
}

func TestSummarize_ExtractiveWithoutClient(t *testing.T) {
	s := &Summarizer{}
	res, err := s.Summarize(context.Background(), "제목", longContent)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if res.AI {
		t.Fatalf("expected extractive result")
	}
	if res.Text == "" {
		t.Fatalf("empty summary")
	}
}

func TestSummarize_AIPathWins(t *testing.T) {
	c := &stubClient{reply: "모델이 생성한 요약입니다."}
	s := &Summarizer{Client: c, Model: "gpt-4o-mini"}
	res, err := s.Summarize(context.Background(), "기사 제목", longContent)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if !res.AI || res.Text != "모델이 생성한 요약입니다." {
		t.Fatalf("res = %+v", res)
	}
	if !strings.Contains(c.gotUser, "기사 제목") {
		t.Fatalf("title missing from prompt: %q", c.gotUser)
	}
}

func TestSummarize_AIFailureFallsBack(t *testing.T) {
	c := &stubClient{err: errors.New("upstream 500")}
	s := &Summarizer{Client: c, Model: "gpt-4o-mini"}
	res, err := s.Summarize(context.Background(), "제목", longContent)
	if err != nil {
		t.Fatalf("AI failure must not propagate, got %v", err)
	}
	if res.AI {
		t.Fatalf("expected extractive fallback")
	}
	if res.Text == "" {
		t.Fatalf("empty fallback summary")
	}
	if c.calls != 1 {
		t.Fatalf("expected one AI attempt, got %d", c.calls)
	}
}

func TestSummarize_EmptyAIReplyFallsBack(t *testing.T) {
	c := &stubClient{reply: "   "}
	s := &Summarizer{Client: c, Model: "gpt-4o-mini"}
	res, err := s.Summarize(context.Background(), "제목", longContent)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if res.AI {
		t.Fatalf("blank model reply should fall back to extractive")
	}
}

func TestSummarize_TruncatesAIInput(t *testing.T) {
	c := &stubClient{reply: "요약"}
	s := &Summarizer{Client: c, Model: "gpt-4o-mini"}
	long := strings.Repeat("본문 문장이 계속 이어진다. ", 200)
	if _, err := s.Summarize(context.Background(), "제목", long); err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	// Prompt carries a fixed prefix plus at most aiInputRunes of content.
	if got := len([]rune(c.gotUser)); got > aiInputRunes+50 {
		t.Fatalf("prompt length %d exceeds the truncation budget", got)
	}
}

func TestFormat_DisclosesOrigin(t *testing.T) {
	ext := Result{Text: "요약 문장."}.Format()
	if !strings.HasPrefix(ext, formatHeader) {
		t.Fatalf("missing header: %q", ext)
	}
	if !strings.Contains(ext, "추출하여") {
		t.Fatalf("extractive footer missing: %q", ext)
	}
	ai := Result{Text: "요약 문장.", AI: true}.Format()
	if !strings.Contains(ai, "AI 모델") {
		t.Fatalf("AI footer missing: %q", ai)
	}
	if !strings.Contains(ai, "---") {
		t.Fatalf("separator missing: %q", ai)
	}
}
