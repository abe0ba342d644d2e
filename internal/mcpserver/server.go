package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/docgenius/internal/rag"
)

const version = "1.0.0"

// Server exposes the document question-answering pipeline as MCP tools over
// stdio, so agent clients can use the same service the HTTP API does.
type Server struct {
	ragService rag.Service
	server     *mcp.Server
}

func NewServer(ragService rag.Service) (*Server, error) {
	if ragService == nil {
		return nil, errors.New("rag service is required")
	}

	impl := &mcp.Implementation{
		Name:    "docgenius",
		Version: version,
	}

	s := &Server{
		ragService: ragService,
		server:     mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s, nil
}

// Run blocks until the context is cancelled or the transport closes.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
