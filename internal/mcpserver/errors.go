// Package mcpserver exposes the question-answering pipeline over the
// Model Context Protocol so agent tooling can query uploaded documents.
package mcpserver

import "errors"

var (
	ErrMissingQAService     = errors.New("mcp: qa service is required")
	ErrMissingDocumentStore = errors.New("mcp: document store is required")
)
