package chat

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

// Message is one turn of client-side conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Events receives streaming callbacks: OnDelta for each assistant text chunk
// and OnTool before each tool execution. Either may be nil.
type Events struct {
	OnDelta func(text string)
	OnTool  func(name string)
}

// Service drives the tool-calling conversation loop against the model.
type Service struct {
	client        *openai.Client
	model         string
	historyWindow int
	maxToolRounds int
	dispatcher    *Dispatcher
	log           zerolog.Logger

	now func() time.Time
}

func NewService(client *openai.Client, model string, historyWindow, maxToolRounds int, dispatcher *Dispatcher, log zerolog.Logger) *Service {
	return &Service{
		client:        client,
		model:         model,
		historyWindow: historyWindow,
		maxToolRounds: maxToolRounds,
		dispatcher:    dispatcher,
		log:           log,
		now:           time.Now,
	}
}

// Stream runs the conversation until the model answers in plain text,
// executing tool calls between rounds. Only the trailing history window is
// sent; past the round cap the tools are withheld so the model must conclude.
func (s *Service) Stream(ctx context.Context, history []Message, events Events) error {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt(s.now())},
	}
	for _, m := range trimHistory(history, s.historyWindow) {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	tools := Tools()
	for round := 0; ; round++ {
		request := openai.ChatCompletionRequest{
			Model:    s.model,
			Messages: messages,
		}
		if round < s.maxToolRounds {
			request.Tools = tools
		}

		content, toolCalls, err := s.streamRound(ctx, request, events)
		if err != nil {
			return err
		}
		if len(toolCalls) == 0 {
			return nil
		}

		messages = append(messages, openai.ChatCompletionMessage{
			Role:      openai.ChatMessageRoleAssistant,
			Content:   content,
			ToolCalls: toolCalls,
		})
		for _, call := range toolCalls {
			if events.OnTool != nil {
				events.OnTool(call.Function.Name)
			}
			s.log.Debug().Str("tool", call.Function.Name).Msg("executing tool call")
			result := s.dispatcher.Execute(ctx, call.Function.Name, call.Function.Arguments)
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    result,
				ToolCallID: call.ID,
			})
		}
	}
}

// streamRound runs one completion, forwarding text deltas as they arrive and
// assembling any tool calls from their indexed fragments.
func (s *Service) streamRound(ctx context.Context, request openai.ChatCompletionRequest, events Events) (string, []openai.ToolCall, error) {
	stream, err := s.client.CreateChatCompletionStream(ctx, request)
	if err != nil {
		return "", nil, err
	}
	defer stream.Close()

	var content strings.Builder
	var toolCalls []openai.ToolCall

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", nil, err
		}
		if len(response.Choices) == 0 {
			continue
		}

		delta := response.Choices[0].Delta
		if delta.Content != "" {
			content.WriteString(delta.Content)
			if events.OnDelta != nil {
				events.OnDelta(delta.Content)
			}
		}
		for _, fragment := range delta.ToolCalls {
			index := 0
			if fragment.Index != nil {
				index = *fragment.Index
			}
			for len(toolCalls) <= index {
				toolCalls = append(toolCalls, openai.ToolCall{})
			}
			if fragment.ID != "" {
				toolCalls[index].ID = fragment.ID
			}
			if fragment.Type != "" {
				toolCalls[index].Type = fragment.Type
			}
			if fragment.Function.Name != "" {
				toolCalls[index].Function.Name = fragment.Function.Name
			}
			toolCalls[index].Function.Arguments += fragment.Function.Arguments
		}
	}

	return content.String(), toolCalls, nil
}

func trimHistory(history []Message, window int) []Message {
	if window <= 0 || len(history) <= window {
		return history
	}
	return history[len(history)-window:]
}
