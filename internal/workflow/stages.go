// Package workflow holds the contract lifecycle rules: the fixed stage
// tables per contracting method and the transitions derived from them.
package workflow

import "github.com/sgkim-dev/contract-desk/internal/model"

// Competitive methods walk seven stages; private negotiation skips the
// announcement and opening steps.
var (
	competitiveStages = []string{
		"공고준비",
		"공고중",
		"개찰완료",
		"계약준비",
		"계약완료",
		"지출준비",
		"집행완료",
	}
	privateStages = []string{
		"계약준비",
		"계약완료",
		"지출준비",
		"집행완료",
	}
)

const (
	// TerminalStage completes a contract regardless of method.
	TerminalStage = "집행완료"
	// SignedStage is the stage the contract-end alert and the deadline
	// sweep key off.
	SignedStage = "계약완료"
)

// StagesFor returns the ordered stage list for a method. Unknown methods get
// nil, which makes every stage change invalid and progress zero.
func StagesFor(method model.Method) []string {
	switch method {
	case model.MethodPrivateNegotiation:
		return privateStages
	case model.MethodOpenBid, model.MethodRestrictedBid, model.MethodNominatedBid, model.MethodOpenNegotiation:
		return competitiveStages
	default:
		return nil
	}
}

// InitialStage is where a freshly created contract starts.
func InitialStage(method model.Method) string {
	if method == model.MethodPrivateNegotiation {
		return "계약준비"
	}
	return "공고준비"
}

// IsValidStage reports whether stage belongs to the method's stage list.
func IsValidStage(method model.Method, stage string) bool {
	return stageIndex(method, stage) >= 0
}

// Progress returns the percentage of the stage list already reached,
// rounded to the nearest integer. A stage missing from the list yields 0.
func Progress(method model.Method, stage string) int {
	stages := StagesFor(method)
	if len(stages) == 0 {
		return 0
	}
	index := stageIndex(method, stage)
	if index < 0 {
		return 0
	}
	return int(float64(index+1)/float64(len(stages))*100 + 0.5)
}

func stageIndex(method model.Method, stage string) int {
	for i, s := range StagesFor(method) {
		if s == stage {
			return i
		}
	}
	return -1
}
