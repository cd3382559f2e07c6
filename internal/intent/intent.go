// Package intent maps free-text fragments from chat input onto the fixed
// enums. Plain keyword containment with documented defaults; check order
// matters, more specific keywords first.
package intent

import (
	"strings"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

// MapCategory infers the contract category. Default: SERVICE.
func MapCategory(text string) model.Category {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "제조"), strings.Contains(normalized, "제작"):
		return model.CategoryGoodsManufacture
	case strings.Contains(normalized, "물품"), strings.Contains(normalized, "구매"):
		return model.CategoryGoodsPurchase
	case strings.Contains(normalized, "공사"), strings.Contains(normalized, "시설"), strings.Contains(normalized, "건설"):
		return model.CategoryConstruction
	default:
		return model.CategoryService
	}
}

// MapMethod infers the contracting method. "비공개" is checked before
// "공개수의" so that "비공개수의" lands on private negotiation. Default:
// OPEN_BID.
func MapMethod(text string) model.Method {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "제한"):
		return model.MethodRestrictedBid
	case strings.Contains(normalized, "지명"):
		return model.MethodNominatedBid
	case strings.Contains(normalized, "비공개"):
		return model.MethodPrivateNegotiation
	case strings.Contains(normalized, "공개수의"):
		return model.MethodOpenNegotiation
	case strings.Contains(normalized, "수의"):
		return model.MethodPrivateNegotiation
	default:
		return model.MethodOpenBid
	}
}

// MapStatus infers the contract status; English enum literals are accepted
// as well. Default: BEFORE_START.
func MapStatus(text string) model.Status {
	normalized := strings.ToLower(text)
	switch {
	case strings.Contains(normalized, "진행"), normalized == "in_progress":
		return model.StatusInProgress
	case strings.Contains(normalized, "대기"), normalized == "waiting":
		return model.StatusWaiting
	case strings.Contains(normalized, "지연"), normalized == "delayed":
		return model.StatusDelayed
	case strings.Contains(normalized, "완료"), normalized == "completed":
		return model.StatusCompleted
	default:
		return model.StatusBeforeStart
	}
}
