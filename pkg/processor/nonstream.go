package processor

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/models"
)

// ResponseInput is a complete, non-streamed model response.
type ResponseInput struct {
	ThreadID    string
	ThreadRunID string
	Model       string

	Prompt []models.PromptMessage

	Content      string
	ToolCalls    []models.ToolCall // native calls, in provider order
	FinishReason string
	Created      int64
	Usage        *llm.UsageChunk

	Sink Sink
}

// ProcessResponse emits the same item sequence as the streaming path for a
// response that arrived whole: thread_run_start, the final assistant
// message, each tool call in order, then finish, assistant_response_end and
// thread_run_end. All tools run after the assistant message is persisted.
func (p *Processor) ProcessResponse(ctx context.Context, input *ResponseInput) (*Result, error) {
	w := &streamWalk{
		input: &StreamInput{
			ThreadID:    input.ThreadID,
			ThreadRunID: input.ThreadRunID,
			Model:       input.Model,
			Prompt:      input.Prompt,
			Sink:        input.Sink,
		},
		nativeBuf:    newNativeBuffer(),
		started:      true,
		accumulated:  input.Content,
		finishReason: input.FinishReason,
		model:        input.Model,
		created:      input.Created,
		usage:        input.Usage,
	}

	if err := p.emit(ctx, w, p.statusItem(w, models.StatusThreadRunStart, nil)); err != nil {
		return p.result(w), err
	}

	for i, call := range input.ToolCalls {
		args, err := json.Marshal(call.Arguments)
		if err != nil {
			args = []byte("{}")
		}
		w.nativeBuf.Add(&llm.ToolCallDeltaChunk{
			Index:          i,
			ID:             call.ID,
			Name:           call.FunctionName,
			ArgumentsDelta: string(args),
		})
		p.acceptCallDeferred(w, call, nil)
	}

	if p.config.XMLToolCalling {
		blocks, _ := ExtractBlocks(input.Content)
		for _, block := range blocks {
			if p.capReached(w) {
				break
			}
			calls, details, err := ParseBlock(block)
			if err != nil {
				p.logger.Warn("Skipping malformed tool call block",
					"thread_run_id", input.ThreadRunID, "error", err)
				continue
			}
			accepted := false
			for i, call := range calls {
				if p.capReached(w) {
					break
				}
				w.xmlCallCount++
				accepted = true
				d := details[i]
				p.acceptCallDeferred(w, call, &d)
			}
			if accepted {
				w.xmlBlocksAccepted++
			}
		}
		if p.capReached(w) {
			w.finishReason = FinishReasonXMLToolLimitReached
			if cut := xmlCutPoint(w.accumulated, w.xmlBlocksAccepted); cut >= 0 {
				w.accumulated = w.accumulated[:cut]
			}
		}
	}

	if w.usage == nil {
		var prompt strings.Builder
		for _, m := range input.Prompt {
			prompt.WriteString(m.Content)
			prompt.WriteString("\n")
		}
		est := p.counter.EstimateUsage(input.Model, prompt.String(), input.Content)
		w.usage = &est
	}

	if err := p.finalise(ctx, w); err != nil {
		return p.result(w), err
	}
	return p.result(w), nil
}
