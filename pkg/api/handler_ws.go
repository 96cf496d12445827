package api

import (
	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// HandleWebSocket handles GET /ws: the dashboard connection speaking the
// subscribe/unsubscribe/catchup protocol over run and global channels.
func (s *Server) HandleWebSocket(c *gin.Context) {
	opts := &websocket.AcceptOptions{
		OriginPatterns: s.cfg.Server.AllowedWSOrigins,
	}
	if len(opts.OriginPatterns) == 0 {
		// Development default: no origin allowlist configured.
		opts.InsecureSkipVerify = true
	}

	conn, err := websocket.Accept(c.Writer, c.Request, opts)
	if err != nil {
		s.logger.Warn("WebSocket accept failed", "error", err)
		return
	}

	s.manager.HandleConnection(c.Request.Context(), conn)
}
