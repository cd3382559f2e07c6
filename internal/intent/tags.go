package intent

import "strings"

// noteKeywords are the procurement terms auto-tagged onto notes.
var noteKeywords = []string{
	"검토", "완료", "승인", "요청", "회의", "수정", "확인", "보류", "긴급",
	"규격서", "견적", "계약서", "납품", "검수", "지출", "결재", "공고",
	"입찰", "낙찰", "협상", "조달", "예산", "변경", "연장", "취소",
}

// ExtractTags pulls known keywords out of note content, preserving the
// keyword-list order and deduplicating.
func ExtractTags(content string) []string {
	tags := make([]string, 0, 4)
	seen := make(map[string]struct{})
	for _, keyword := range noteKeywords {
		if !strings.Contains(content, keyword) {
			continue
		}
		if _, dup := seen[keyword]; dup {
			continue
		}
		seen[keyword] = struct{}{}
		tags = append(tags, keyword)
	}
	return tags
}
