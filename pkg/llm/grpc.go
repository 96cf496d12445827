package llm

import (
	"context"
	"fmt"
	"io"

	llmv1 "github.com/agentd-io/agentd/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// GRPCClient implements Client by calling the model gateway via gRPC.
type GRPCClient struct {
	conn   *grpc.ClientConn
	client llmv1.LLMServiceClient
}

// NewGRPCClient creates a new gRPC client for the model gateway.
func NewGRPCClient(addr string) (*GRPCClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to LLM gateway at %s: %w", addr, err)
	}
	return &GRPCClient{
		conn:   conn,
		client: llmv1.NewLLMServiceClient(conn),
	}, nil
}

// Generate sends a conversation to the gateway and returns a channel of chunks.
func (c *GRPCClient) Generate(ctx context.Context, req *Request) (<-chan Chunk, error) {
	stream, err := c.client.Generate(ctx, toProtoRequest(req))
	if err != nil {
		return nil, fmt.Errorf("gRPC Generate call failed: %w", err)
	}

	ch := make(chan Chunk, 32)
	go func() {
		defer close(ch)
		for {
			resp, err := stream.Recv()
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- &ErrorChunk{Message: err.Error(), Retryable: false}:
				case <-ctx.Done():
				}
				return
			}
			chunk := fromProtoChunk(resp)
			if chunk != nil {
				select {
				case ch <- chunk:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return ch, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

func toProtoRequest(req *Request) *llmv1.GenerateRequest {
	out := &llmv1.GenerateRequest{
		RunId:       req.RunID,
		ThreadId:    req.ThreadID,
		Model:       req.Model,
		Messages:    toProtoMessages(req),
		Tools:       toProtoTools(req.Tools),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Stream:      req.Stream,
	}
	return out
}

func toProtoMessages(req *Request) []*llmv1.PromptMessage {
	out := make([]*llmv1.PromptMessage, len(req.Messages))
	for i, m := range req.Messages {
		pm := &llmv1.PromptMessage{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallId: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			pm.ToolCalls = append(pm.ToolCalls, &llmv1.ToolCall{
				Id:        tc.ID,
				Name:      tc.Name,
				Arguments: tc.Arguments,
			})
		}
		out[i] = pm
	}
	return out
}

func toProtoTools(tools []ToolDefinition) []*llmv1.ToolDefinition {
	if len(tools) == 0 {
		return nil
	}
	out := make([]*llmv1.ToolDefinition, len(tools))
	for i, t := range tools {
		out[i] = &llmv1.ToolDefinition{
			Name:             t.Name,
			Description:      t.Description,
			ParametersSchema: t.ParametersSchema,
		}
	}
	return out
}

func fromProtoChunk(resp *llmv1.GenerateChunk) Chunk {
	switch c := resp.Content.(type) {
	case *llmv1.GenerateChunk_Text:
		return &TextChunk{Content: c.Text.Content}
	case *llmv1.GenerateChunk_Reasoning:
		return &ReasoningChunk{Content: c.Reasoning.Content}
	case *llmv1.GenerateChunk_ToolCallDelta:
		return &ToolCallDeltaChunk{
			Index:          int(c.ToolCallDelta.Index),
			ID:             c.ToolCallDelta.Id,
			Name:           c.ToolCallDelta.Name,
			ArgumentsDelta: c.ToolCallDelta.ArgumentsDelta,
		}
	case *llmv1.GenerateChunk_Finish:
		return &FinishChunk{
			Reason:  c.Finish.FinishReason,
			Model:   resp.Model,
			Created: resp.Created,
		}
	case *llmv1.GenerateChunk_Usage:
		return &UsageChunk{
			PromptTokens:     int(c.Usage.PromptTokens),
			CompletionTokens: int(c.Usage.CompletionTokens),
			TotalTokens:      int(c.Usage.TotalTokens),
		}
	case *llmv1.GenerateChunk_Error:
		return &ErrorChunk{
			Message:   c.Error.Message,
			Code:      c.Error.Code,
			Retryable: c.Error.Retryable,
		}
	default:
		return nil
	}
}
