package llm

import (
	"context"
	"log/slog"
)

// FallbackClient wraps a primary and an optional fallback gateway client.
// When the primary call fails outright, or the stream surfaces a retryable
// error before producing any content, the request is replayed against the
// fallback.
type FallbackClient struct {
	primary  Client
	fallback Client
}

// NewFallbackClient creates a client with fallback routing. fallback may be
// nil, in which case the primary is used unconditionally.
func NewFallbackClient(primary, fallback Client) *FallbackClient {
	return &FallbackClient{primary: primary, fallback: fallback}
}

// Generate invokes the primary gateway, rerouting to the fallback on
// pre-content retryable failures.
func (c *FallbackClient) Generate(ctx context.Context, req *Request) (<-chan Chunk, error) {
	primary, err := c.primary.Generate(ctx, req)
	if err != nil {
		if c.fallback == nil {
			return nil, err
		}
		slog.Warn("Primary LLM gateway unavailable, using fallback",
			"run_id", req.RunID, "error", err)
		return c.fallback.Generate(ctx, req)
	}
	if c.fallback == nil {
		return primary, nil
	}

	out := make(chan Chunk, 32)
	go func() {
		defer close(out)
		delivered := false
		for chunk := range primary {
			if ec, ok := chunk.(*ErrorChunk); ok && ec.Retryable && !delivered {
				slog.Warn("Primary LLM gateway errored before content, retrying on fallback",
					"run_id", req.RunID, "code", ec.Code, "error", ec.Message)
				fb, err := c.fallback.Generate(ctx, req)
				if err != nil {
					select {
					case out <- chunk:
					case <-ctx.Done():
					}
					return
				}
				for fc := range fb {
					select {
					case out <- fc:
					case <-ctx.Done():
						return
					}
				}
				return
			}
			if _, ok := chunk.(*ErrorChunk); !ok {
				delivered = true
			}
			select {
			case out <- chunk:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Close releases both underlying clients.
func (c *FallbackClient) Close() error {
	err := c.primary.Close()
	if c.fallback != nil {
		if ferr := c.fallback.Close(); err == nil {
			err = ferr
		}
	}
	return err
}
