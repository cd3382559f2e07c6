package workflow

import (
	"testing"

	"github.com/sgkim-dev/contract-desk/internal/model"
)

func TestStagesFor(t *testing.T) {
	competitive := StagesFor(model.MethodOpenBid)
	if len(competitive) != 7 {
		t.Fatalf("competitive stage count = %d, want 7", len(competitive))
	}
	if competitive[0] != "공고준비" || competitive[6] != "집행완료" {
		t.Errorf("unexpected competitive stages: %v", competitive)
	}

	private := StagesFor(model.MethodPrivateNegotiation)
	if len(private) != 4 {
		t.Fatalf("private stage count = %d, want 4", len(private))
	}
	if private[0] != "계약준비" {
		t.Errorf("private stages start at %q", private[0])
	}

	if got := StagesFor(model.Method("UNKNOWN")); got != nil {
		t.Errorf("unknown method stages = %v, want nil", got)
	}
}

func TestInitialStage(t *testing.T) {
	if got := InitialStage(model.MethodOpenBid); got != "공고준비" {
		t.Errorf("open bid initial stage = %q", got)
	}
	if got := InitialStage(model.MethodPrivateNegotiation); got != "계약준비" {
		t.Errorf("private negotiation initial stage = %q", got)
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		method model.Method
		stage  string
		want   int
	}{
		{model.MethodOpenBid, "공고준비", 14},
		{model.MethodOpenBid, "개찰완료", 43},
		{model.MethodOpenBid, "집행완료", 100},
		{model.MethodPrivateNegotiation, "계약준비", 25},
		{model.MethodPrivateNegotiation, "집행완료", 100},
		{model.MethodOpenBid, "없는단계", 0},
		{model.Method("UNKNOWN"), "계약준비", 0},
	}

	for _, tc := range cases {
		if got := Progress(tc.method, tc.stage); got != tc.want {
			t.Errorf("Progress(%s, %s) = %d, want %d", tc.method, tc.stage, got, tc.want)
		}
	}
}
