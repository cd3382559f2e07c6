package chat

import (
	"github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

func stringProp(description string) jsonschema.Definition {
	return jsonschema.Definition{Type: jsonschema.String, Description: description}
}

// Tools lists every function the model may call. Amounts are passed as
// strings so Korean expressions survive; references accept an ID or a title
// fragment.
func Tools() []openai.Tool {
	defs := []openai.FunctionDefinition{
		{
			Name:        "createContract",
			Description: "새 계약을 생성합니다. 계약명은 필수입니다.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"title":         stringProp("계약명"),
					"category":      stringProp("계약종류: 물품(구매), 물품(제조), 용역, 공사"),
					"method":        stringProp("계약방식: 일반경쟁, 제한경쟁, 지명경쟁, 공개수의, 비공개수의"),
					"amount":        stringProp("금액, 한국어 표현 가능 (예: 5천만원)"),
					"budget":        stringProp("배정 예산, 한국어 표현 가능"),
					"requester":     stringProp("요청 부서"),
					"contractor":    stringProp("계약 상대방"),
					"deadline":      stringProp("마감일 (YYYY-MM-DD)"),
					"contractStart": stringProp("계약 시작일 (YYYY-MM-DD)"),
					"contractEnd":   stringProp("계약 종료일 (YYYY-MM-DD)"),
				},
				Required: []string{"title"},
			},
		},
		{
			Name:        "listContracts",
			Description: "계약 목록을 조회합니다. 조건 없이 호출하면 최근 계약을 보여줍니다.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"status":   stringProp("상태 필터: 시작 전, 진행 중, 대기, 지연, 완료"),
					"category": stringProp("계약종류 필터"),
					"search":   stringProp("계약명/부서/상대방 검색어"),
					"limit":    {Type: jsonschema.Integer, Description: "최대 건수 (기본 20)"},
				},
			},
		},
		{
			Name:        "getContract",
			Description: "계약 한 건의 상세 정보를 조회합니다.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"ref": stringProp("계약 ID 또는 계약명 일부"),
				},
				Required: []string{"ref"},
			},
		},
		{
			Name:        "updateContract",
			Description: "계약을 수정합니다. 지정한 필드만 변경됩니다. 대금집행일을 설정하면 계약이 집행완료/완료 처리됩니다.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"ref":             stringProp("계약 ID 또는 계약명 일부"),
					"title":           stringProp("계약명"),
					"stage":           stringProp("단계 (예: 공고중, 계약완료)"),
					"status":          stringProp("상태 (예: 진행 중, 대기, 지연, 완료)"),
					"amount":          stringProp("금액, 한국어 표현 가능"),
					"budget":          stringProp("배정 예산, 한국어 표현 가능"),
					"contractAmount":  stringProp("계약금액, 한국어 표현 가능"),
					"executionAmount": stringProp("집행금액, 한국어 표현 가능"),
					"contractor":      stringProp("계약 상대방"),
					"requester":       stringProp("요청 부서"),
					"deadline":        stringProp("마감일 (YYYY-MM-DD)"),
					"contractStart":   stringProp("계약 시작일 (YYYY-MM-DD)"),
					"contractEnd":     stringProp("계약 종료일 (YYYY-MM-DD)"),
					"paymentDate":     stringProp("대금집행일 (YYYY-MM-DD)"),
				},
				Required: []string{"ref"},
			},
		},
		{
			Name:        "addNote",
			Description: "계약에 메모를 추가합니다. 태그를 생략하면 내용에서 자동 추출합니다.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"ref":     stringProp("계약 ID 또는 계약명 일부"),
					"content": stringProp("메모 내용"),
					"tags": {
						Type:        jsonschema.Array,
						Description: "태그 목록",
						Items:       &jsonschema.Definition{Type: jsonschema.String},
					},
				},
				Required: []string{"ref", "content"},
			},
		},
		{
			Name:        "deleteContract",
			Description: "계약을 삭제합니다. confirm이 true일 때만 실제로 삭제합니다.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"ref":     stringProp("계약 ID 또는 계약명 일부"),
					"confirm": {Type: jsonschema.Boolean, Description: "사용자 확인 여부"},
				},
				Required: []string{"ref"},
			},
		},
		{
			Name:        "setBudget",
			Description: "연간 예산을 설정합니다.",
			Parameters: jsonschema.Definition{
				Type: jsonschema.Object,
				Properties: map[string]jsonschema.Definition{
					"amount": stringProp("연간 예산, 한국어 표현 가능 (예: 10억)"),
				},
				Required: []string{"amount"},
			},
		},
	}

	tools := make([]openai.Tool, len(defs))
	for i := range defs {
		tools[i] = openai.Tool{Type: openai.ToolTypeFunction, Function: &defs[i]}
	}
	return tools
}
