package summarize

import "strings"

const (
	formatHeader     = "📋 **뉴스 요약**"
	footerExtractive = "💡 이 요약은 원문에서 중요한 문장들을 추출하여 생성되었습니다."
	footerAI         = "🤖 이 요약은 AI 모델이 생성했습니다."
)

// Format wraps the summary in the fixed header/footer template. The footer
// discloses whether a model or the extractive scorer produced the text.
func (r Result) Format() string {
	footer := footerExtractive
	if r.AI {
		footer = footerAI
	}
	return strings.Join([]string{
		formatHeader,
		"",
		strings.TrimSpace(r.Text),
		"",
		"---",
		footer,
	}, "\n")
}
