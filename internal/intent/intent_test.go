package intent

import (
	"reflect"
	"testing"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

func TestMapCategory(t *testing.T) {
	cases := []struct {
		input string
		want  model.Category
	}{
		{"물품 제조 계약", model.CategoryGoodsManufacture},
		{"제작 의뢰", model.CategoryGoodsManufacture},
		{"물품 구매", model.CategoryGoodsPurchase},
		{"시설 공사", model.CategoryConstruction},
		{"연구 용역", model.CategoryService},
		{"", model.CategoryService},
	}

	for _, tc := range cases {
		if got := MapCategory(tc.input); got != tc.want {
			t.Errorf("MapCategory(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestMapMethod(t *testing.T) {
	cases := []struct {
		input string
		want  model.Method
	}{
		{"제한경쟁", model.MethodRestrictedBid},
		{"지명경쟁", model.MethodNominatedBid},
		{"공개수의", model.MethodOpenNegotiation},
		{"수의계약", model.MethodPrivateNegotiation},
		{"일반경쟁", model.MethodOpenBid},
		{"", model.MethodOpenBid},
	}

	for _, tc := range cases {
		if got := MapMethod(tc.input); got != tc.want {
			t.Errorf("MapMethod(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

// 비공개수의 contains 공개수의 as a substring; the more specific keyword has
// to win.
func TestMapMethodPrefersPrivateOverOpenNegotiation(t *testing.T) {
	if got := MapMethod("비공개수의"); got != model.MethodPrivateNegotiation {
		t.Errorf("MapMethod(비공개수의) = %s, want PRIVATE_NEGOTIATION", got)
	}
}

func TestMapStatus(t *testing.T) {
	cases := []struct {
		input string
		want  model.Status
	}{
		{"진행 중", model.StatusInProgress},
		{"in_progress", model.StatusInProgress},
		{"대기", model.StatusWaiting},
		{"지연", model.StatusDelayed},
		{"완료", model.StatusCompleted},
		{"뭔가 다른 것", model.StatusBeforeStart},
	}

	for _, tc := range cases {
		if got := MapStatus(tc.input); got != tc.want {
			t.Errorf("MapStatus(%q) = %s, want %s", tc.input, got, tc.want)
		}
	}
}

func TestExtractTags(t *testing.T) {
	got := ExtractTags("규격서 검토 완료, 견적 요청함")
	want := []string{"검토", "완료", "요청", "규격서", "견적"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractTags = %v, want %v", got, want)
	}

	if got := ExtractTags("일반 내용"); len(got) != 0 {
		t.Errorf("ExtractTags without keywords = %v, want empty", got)
	}
}
