package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/qa"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

// Params aggregates everything the MCP server needs. DefaultAI is the
// fallback config for tool calls that do not name a provider; it is
// assembled at the edge and never read from ambient state inside a tool.
type Params struct {
	QA        qa.Service
	Documents docModel.DocumentStore
	DefaultAI qaModel.AIConfig
}

func (p *Params) Validate() error {
	if p.QA == nil {
		return ErrMissingQAService
	}
	if p.Documents == nil {
		return ErrMissingDocumentStore
	}
	return nil
}

type Server struct {
	params *Params
	server *mcp.Server
	logger *logger_i.Logger
}

func NewServer(params *Params) (*Server, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("validating params: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    config.MCPServerName,
		Version: config.MCPServerVersion,
	}

	s := &Server{
		params: params,
		server: mcp.NewServer(impl, nil),
		logger: logger_i.NewLogger("mcp"),
	}

	s.registerTools()

	return s, nil
}

// Run serves the MCP session over stdio. It blocks until the context is
// cancelled or the peer disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
