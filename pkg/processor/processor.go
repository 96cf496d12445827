package processor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agentd-io/agentd/pkg/llm"
	"github.com/agentd-io/agentd/pkg/models"
	"github.com/agentd-io/agentd/pkg/tools"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Processor turns an LLM response into the ordered item sequence of a run,
// executing tool calls it encounters. One Processor is safe to reuse across
// runs; all per-cycle state lives in the stream walk.
type Processor struct {
	config  Config
	store   MessageStore
	tools   ToolExecutor
	counter *llm.TokenCounter
	logger  *slog.Logger
}

// New validates the configuration and creates a Processor.
func New(cfg Config, store MessageStore, executor ToolExecutor, counter *llm.TokenCounter, logger *slog.Logger) (*Processor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid processor config: %w", err)
	}
	if counter == nil {
		counter = llm.NewTokenCounter()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		config:  cfg,
		store:   store,
		tools:   executor,
		counter: counter,
		logger:  logger,
	}, nil
}

// streamWalk is the per-cycle state of ProcessStream.
type streamWalk struct {
	input *StreamInput

	started     bool
	isContinue  bool
	sequence    int
	accumulated string
	currentXML  string

	xmlCallCount      int
	xmlCapped         bool
	xmlBlocksAccepted int

	nativeBuf *nativeBuffer
	contexts  []*toolContext

	model        string
	created      int64
	finishReason string
	usage        *llm.UsageChunk

	shouldAutoContinue bool
	agentTerminate     bool

	assistantMessageID string
}

// ProcessStream consumes one LLM chunk stream and drives the full item
// sequence for this cycle. Cancellation of ctx suppresses further emissions;
// the caller decides how the run terminates.
func (p *Processor) ProcessStream(ctx context.Context, input *StreamInput) (*Result, error) {
	w := &streamWalk{
		input:      input,
		nativeBuf:  newNativeBuffer(),
		isContinue: input.Continuous != nil,
	}
	if w.isContinue {
		w.sequence = input.Continuous.Sequence
		w.accumulated = input.Continuous.AccumulatedContent
	}

	if err := p.streamLoop(ctx, w); err != nil {
		return p.result(w), err
	}
	if err := p.drain(ctx, w); err != nil {
		return p.result(w), err
	}
	if err := p.finalise(ctx, w); err != nil {
		return p.result(w), err
	}
	return p.result(w), nil
}

func (p *Processor) result(w *streamWalk) *Result {
	res := &Result{
		ShouldAutoContinue: w.shouldAutoContinue,
		AgentTerminated:    w.agentTerminate,
		FinishReason:       w.finishReason,
		Usage:              w.usage,
		Model:              w.model,
		Created:            w.created,
		AccumulatedContent: w.accumulated,
	}
	if w.shouldAutoContinue {
		res.Continuous = &ContinuousState{
			AccumulatedContent: w.accumulated,
			Sequence:           w.sequence,
			ThreadRunID:        w.input.ThreadRunID,
		}
	}
	return res
}

// ── Streaming ───────────────────────────────────────────────

func (p *Processor) streamLoop(ctx context.Context, w *streamWalk) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chunk, ok := <-w.input.Chunks:
			if !ok {
				return nil
			}
			if err := p.handleChunk(ctx, w, chunk); err != nil {
				return err
			}
		}
	}
}

func (p *Processor) handleChunk(ctx context.Context, w *streamWalk, chunk llm.Chunk) error {
	if err := p.ensureStarted(ctx, w); err != nil {
		return err
	}

	switch c := chunk.(type) {
	case *llm.ReasoningChunk:
		// Reasoning joins the assistant content without a separate yield.
		if !w.shouldAutoContinue && !w.xmlCapped {
			w.accumulated += c.Content
		}

	case *llm.TextChunk:
		// Once the XML call cap trips the accumulated content is frozen at
		// the cut point; later text is neither kept nor yielded.
		if w.shouldAutoContinue || w.xmlCapped {
			return nil
		}
		w.accumulated += c.Content
		w.currentXML += c.Content
		if err := p.emitChunk(ctx, w, c.Content); err != nil {
			return err
		}
		if p.config.XMLToolCalling && !w.xmlCapped {
			if err := p.scanXML(ctx, w); err != nil {
				return err
			}
		}

	case *llm.ToolCallDeltaChunk:
		if !p.config.NativeToolCalling {
			return nil
		}
		if err := p.emit(ctx, w, p.statusItem(w, models.StatusToolCallChunk, map[string]any{
			"tool_call_index": c.Index,
			"function_name":   c.Name,
		})); err != nil {
			return err
		}
		if call := w.nativeBuf.Add(c); call != nil {
			p.acceptCall(ctx, w, *call, nil)
		}

	case *llm.FinishChunk:
		if w.finishReason != FinishReasonXMLToolLimitReached {
			w.finishReason = c.Reason
		}
		if c.Model != "" {
			w.model = c.Model
		}
		if c.Created != 0 {
			w.created = c.Created
		}
		if c.Reason == llm.FinishReasonLength && w.input.CanAutoContinue {
			w.shouldAutoContinue = true
		}

	case *llm.UsageChunk:
		w.usage = c

	case *llm.ErrorChunk:
		if err := p.emit(ctx, w, p.statusItem(w, models.StatusError, map[string]any{
			"message": c.Message,
		})); err != nil {
			return err
		}
		return fmt.Errorf("llm stream error: %s", c.Message)
	}
	return nil
}

func (p *Processor) ensureStarted(ctx context.Context, w *streamWalk) error {
	if w.started {
		return nil
	}
	w.started = true
	if w.isContinue {
		return nil
	}
	if err := p.emit(ctx, w, p.statusItem(w, models.StatusThreadRunStart, nil)); err != nil {
		return err
	}
	return p.emit(ctx, w, p.statusItem(w, models.StatusAssistantResponseStart, nil))
}

func (p *Processor) emitChunk(ctx context.Context, w *streamWalk, content string) error {
	seq := w.sequence
	w.sequence++
	now := time.Now().UTC()
	return p.emit(ctx, w, &models.ResponseItem{
		MessageID: uuid.NewString(),
		ThreadID:  w.input.ThreadID,
		Type:      models.ItemTypeAssistant,
		Content:   map[string]any{"role": "assistant", "content": content},
		Metadata: map[string]any{
			"stream_status": models.StreamStatusChunk,
			"sequence":      seq,
			"thread_run_id": w.input.ThreadRunID,
		},
		IsLLMMessage: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// scanXML consumes complete tool-call blocks from the running window. When
// the cap trips, the accumulated content is cut to end exactly after the
// last accepted block and no further scanning happens this run.
func (p *Processor) scanXML(ctx context.Context, w *streamWalk) error {
	blocks, rest := ExtractBlocks(w.currentXML)
	w.currentXML = rest

	for _, block := range blocks {
		if p.capReached(w) {
			break
		}
		calls, details, err := ParseBlock(block)
		if err != nil {
			p.logger.Warn("Skipping malformed tool call block",
				"thread_run_id", w.input.ThreadRunID, "error", err)
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
			p.acceptCall(ctx, w, call, &d)
		}
		if accepted {
			w.xmlBlocksAccepted++
		}
	}

	if p.capReached(w) && !w.xmlCapped {
		w.xmlCapped = true
		w.finishReason = FinishReasonXMLToolLimitReached
		if cut := xmlCutPoint(w.accumulated, w.xmlBlocksAccepted); cut >= 0 {
			w.accumulated = w.accumulated[:cut]
		}
	}
	return nil
}

// xmlCutPoint returns the index just after the nth complete tool-call block
// in text, walking blocks in order so repeated identical blocks resolve to
// the right occurrence. Returns -1 when text holds fewer than n blocks.
func xmlCutPoint(text string, n int) int {
	if n <= 0 {
		return -1
	}
	pos := 0
	for i := 0; i < n; i++ {
		start := strings.Index(text[pos:], openTag)
		if start < 0 {
			return -1
		}
		end := strings.Index(text[pos+start:], closeTag)
		if end < 0 {
			return -1
		}
		pos = pos + start + end + len(closeTag)
	}
	return pos
}

func (p *Processor) capReached(w *streamWalk) bool {
	return p.config.MaxXMLToolCalls > 0 && w.xmlCallCount >= p.config.MaxXMLToolCalls
}

// acceptCall records a parsed tool call and, when streaming execution is
// on, launches it immediately.
func (p *Processor) acceptCall(ctx context.Context, w *streamWalk, call models.ToolCall, details *models.ParsingDetails) {
	tc := &toolContext{
		call:    call,
		index:   len(w.contexts),
		details: details,
	}
	w.contexts = append(w.contexts, tc)

	if !p.config.ExecuteTools || !p.config.ExecuteOnStream || w.agentTerminate {
		return
	}
	if err := p.emit(ctx, w, p.toolStatusItem(w, models.StatusToolStarted, tc)); err != nil {
		return
	}
	tc.started = true
	tc.resultCh = make(chan models.ToolResult, 1)
	go func() {
		tc.resultCh <- p.tools.Execute(ctx, call.FunctionName, call.Arguments)
	}()
}

// ── Draining ────────────────────────────────────────────────

func (p *Processor) drain(ctx context.Context, w *streamWalk) error {
	if err := p.ensureStarted(ctx, w); err != nil {
		return err
	}

	// Arguments of native calls that never parsed cleanly are repaired here.
	for _, call := range w.nativeBuf.Drain() {
		p.acceptCallDeferred(w, call, nil)
	}

	if w.usage == nil {
		var prompt strings.Builder
		for _, m := range w.input.Prompt {
			prompt.WriteString(m.Content)
			prompt.WriteString("\n")
		}
		est := p.counter.EstimateUsage(w.input.Model, prompt.String(), w.accumulated)
		w.usage = &est
	}

	// Await tools launched during streaming.
	for _, tc := range w.contexts {
		if tc.resultCh == nil {
			continue
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case result := <-tc.resultCh:
			tc.result = &result
			if err := p.emitToolResult(ctx, w, tc); err != nil {
				return err
			}
		}
	}
	return nil
}

// acceptCallDeferred records a call for batch execution without launching it.
// Duplicate detection is by call identity, not function name.
func (p *Processor) acceptCallDeferred(w *streamWalk, call models.ToolCall, details *models.ParsingDetails) {
	for _, existing := range w.contexts {
		if existing.call.ID != "" && existing.call.ID == call.ID {
			return
		}
	}
	w.contexts = append(w.contexts, &toolContext{call: call, index: len(w.contexts), details: details})
}

// ── Finalising ──────────────────────────────────────────────

func (p *Processor) finalise(ctx context.Context, w *streamWalk) error {
	if !w.shouldAutoContinue {
		if err := p.persistAssistantMessage(ctx, w); err != nil {
			return err
		}
	}

	if p.config.ExecuteTools && !w.agentTerminate {
		if err := p.executePending(ctx, w); err != nil {
			return err
		}
	}

	if w.shouldAutoContinue {
		return nil
	}

	if w.agentTerminate {
		w.finishReason = FinishReasonAgentTerminated
	}
	if w.finishReason == "" {
		w.finishReason = llm.FinishReasonStop
	}

	if err := p.emit(ctx, w, p.statusItem(w, models.StatusFinish, map[string]any{
		"finish_reason": w.finishReason,
	})); err != nil {
		return err
	}
	if err := p.persistResponseEnd(ctx, w); err != nil {
		return err
	}
	return p.emit(ctx, w, p.statusItem(w, models.StatusThreadRunEnd, nil))
}

func (p *Processor) persistAssistantMessage(ctx context.Context, w *streamWalk) error {
	content := map[string]any{"role": "assistant", "content": w.accumulated}
	if calls := w.nativeBuf.PromptCalls(); len(calls) > 0 {
		content["tool_calls"] = calls
	}

	stored, err := p.store.AddMessage(ctx, models.AddMessageRequest{
		ThreadID:     w.input.ThreadID,
		Type:         models.ItemTypeAssistant,
		Content:      content,
		IsLLMMessage: true,
		Metadata:     map[string]any{"thread_run_id": w.input.ThreadRunID},
	})
	if err != nil {
		return fmt.Errorf("failed to persist assistant message: %w", err)
	}
	w.assistantMessageID = stored.MessageID

	yielded := *stored
	yielded.Metadata = mergeMeta(stored.Metadata, map[string]any{
		"stream_status": models.StreamStatusComplete,
		"thread_run_id": w.input.ThreadRunID,
	})
	return p.emit(ctx, w, &yielded)
}

// executePending runs every recorded call not already executed, under the
// configured strategy.
func (p *Processor) executePending(ctx context.Context, w *streamWalk) error {
	var pending []*toolContext
	for _, tc := range w.contexts {
		if tc.result == nil && tc.resultCh == nil {
			pending = append(pending, tc)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	if p.config.ToolExecutionStrategy == StrategyParallel {
		return p.executeParallel(ctx, w, pending)
	}
	return p.executeSequential(ctx, w, pending)
}

func (p *Processor) executeSequential(ctx context.Context, w *streamWalk, pending []*toolContext) error {
	for _, tc := range pending {
		if w.agentTerminate {
			break
		}
		if err := p.emit(ctx, w, p.toolStatusItem(w, models.StatusToolStarted, tc)); err != nil {
			return err
		}
		tc.started = true
		result := p.tools.Execute(ctx, tc.call.FunctionName, tc.call.Arguments)
		tc.result = &result
		if err := p.emitToolResult(ctx, w, tc); err != nil {
			return err
		}
	}
	return nil
}

func (p *Processor) executeParallel(ctx context.Context, w *streamWalk, pending []*toolContext) error {
	for _, tc := range pending {
		if err := p.emit(ctx, w, p.toolStatusItem(w, models.StatusToolStarted, tc)); err != nil {
			return err
		}
		tc.started = true
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, tc := range pending {
		g.Go(func() error {
			result := p.tools.Execute(gctx, tc.call.FunctionName, tc.call.Arguments)
			tc.result = &result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, tc := range pending {
		if err := p.emitToolResult(ctx, w, tc); err != nil {
			return err
		}
	}
	return nil
}

// emitToolResult persists the tool message, yields it with the rich payload
// substituted into content, and emits the terminal tool status.
func (p *Processor) emitToolResult(ctx context.Context, w *streamWalk, tc *toolContext) error {
	result := *tc.result
	tc.assistantMessageID = w.assistantMessageID

	frontend := map[string]any{
		"tool_name":    tc.call.FunctionName,
		"xml_tag_name": tc.call.XMLTagName,
		"arguments":    tc.call.Arguments,
		"tool_index":   tc.index,
		"result": map[string]any{
			"success": result.Success,
			"output":  result.Output,
			"error":   result.Error,
		},
	}
	if tc.assistantMessageID != "" {
		frontend["assistant_message_id"] = tc.assistantMessageID
	}
	if tc.details != nil {
		frontend["parsing_details"] = tc.details
	}

	stored, err := p.store.AddMessage(ctx, models.AddMessageRequest{
		ThreadID:     w.input.ThreadID,
		Type:         models.ItemTypeTool,
		Content:      p.toolMessageContent(tc, result),
		IsLLMMessage: true,
		Metadata: map[string]any{
			"thread_run_id":    w.input.ThreadRunID,
			"frontend_content": frontend,
		},
	})
	if err != nil {
		if emitErr := p.emit(ctx, w, p.toolStatusItem(w, models.StatusToolError, tc)); emitErr != nil {
			return emitErr
		}
		return fmt.Errorf("failed to persist tool message: %w", err)
	}

	yielded := *stored
	yielded.Content = frontend
	if err := p.emit(ctx, w, &yielded); err != nil {
		return err
	}

	statusType := models.StatusToolCompleted
	if !result.Success {
		statusType = models.StatusToolFailed
	}
	status := p.toolStatusItem(w, statusType, tc)
	status.Content["message_id"] = stored.MessageID
	if err := p.emit(ctx, w, status); err != nil {
		return err
	}

	if models.IsTerminatingTool(tc.call.FunctionName) {
		w.agentTerminate = true
		w.shouldAutoContinue = false
	}
	return nil
}

// toolMessageContent is the concise LLM-facing payload of a tool message.
func (p *Processor) toolMessageContent(tc *toolContext, result models.ToolResult) map[string]any {
	if tc.call.ID != "" {
		return map[string]any{
			"role":         "tool",
			"tool_call_id": tc.call.ID,
			"name":         tc.call.FunctionName,
			"content":      tools.ResultContent(result),
		}
	}

	role := "user"
	if p.config.XMLAddingStrategy == XMLAddingAssistantMessage {
		role = "assistant"
	}
	rendered := fmt.Sprintf("<tool_result> <%s> %s </%s> </tool_result>",
		tc.call.XMLTagName, tools.ResultContent(result), tc.call.XMLTagName)
	return map[string]any{"role": role, "content": rendered}
}

func (p *Processor) persistResponseEnd(ctx context.Context, w *streamWalk) error {
	message := map[string]any{"role": "assistant", "content": w.accumulated}
	if calls := w.nativeBuf.PromptCalls(); len(calls) > 0 {
		message["tool_calls"] = calls
	}

	model := w.model
	if model == "" {
		model = w.input.Model
	}
	usage := map[string]any{}
	if w.usage != nil {
		usage["prompt_tokens"] = w.usage.PromptTokens
		usage["completion_tokens"] = w.usage.CompletionTokens
		usage["total_tokens"] = w.usage.TotalTokens
	}

	content := map[string]any{
		"choices": []any{map[string]any{
			"finish_reason": w.finishReason,
			"message":       message,
		}},
		"created":   w.created,
		"model":     model,
		"usage":     usage,
		"streaming": true,
	}

	stored, err := p.store.AddMessage(ctx, models.AddMessageRequest{
		ThreadID:     w.input.ThreadID,
		Type:         models.ItemTypeAssistantResponseEnd,
		Content:      content,
		IsLLMMessage: false,
		Metadata:     map[string]any{"thread_run_id": w.input.ThreadRunID},
	})
	if err != nil {
		return fmt.Errorf("failed to persist assistant_response_end: %w", err)
	}
	return p.emit(ctx, w, stored)
}

// ── Item helpers ────────────────────────────────────────────

func (p *Processor) emit(ctx context.Context, w *streamWalk, item *models.ResponseItem) error {
	if err := w.input.Sink(ctx, item); err != nil {
		return fmt.Errorf("failed to emit response item: %w", err)
	}
	return nil
}

func (p *Processor) statusItem(w *streamWalk, statusType string, extra map[string]any) *models.ResponseItem {
	content := map[string]any{
		"role":        "system",
		"status_type": statusType,
	}
	for k, v := range extra {
		content[k] = v
	}
	now := time.Now().UTC()
	return &models.ResponseItem{
		MessageID:    uuid.NewString(),
		ThreadID:     w.input.ThreadID,
		Type:         models.ItemTypeStatus,
		Content:      content,
		Metadata:     map[string]any{"thread_run_id": w.input.ThreadRunID},
		IsLLMMessage: false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func (p *Processor) toolStatusItem(w *streamWalk, statusType string, tc *toolContext) *models.ResponseItem {
	return p.statusItem(w, statusType, map[string]any{
		"function_name": tc.call.FunctionName,
		"xml_tag_name":  tc.call.XMLTagName,
		"tool_index":    tc.index,
	})
}

func mergeMeta(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}
