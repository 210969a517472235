package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/DocQA/internal/adapter/utils"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

// AskInput is the input schema for the ask_question tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the uploaded documents"`
	Provider string `json:"provider,omitempty" jsonschema:"answer synthesis provider: local, openai or gemini"`
	Model    string `json:"model,omitempty" jsonschema:"model name override for remote providers"`
	APIKey   string `json:"apiKey,omitempty" jsonschema:"API key for remote providers"`
}

// AskOutput is the output schema for the ask_question tool.
type AskOutput struct {
	Question string       `json:"question"`
	Answer   string       `json:"answer"`
	Sources  []SourceInfo `json:"sources"`
}

type SourceInfo struct {
	Document string `json:"document"`
	Page     int    `json:"page"`
	Excerpt  string `json:"excerpt"`
}

// ListDocumentsInput is the (empty) input schema for list_documents.
type ListDocumentsInput struct{}

type DocumentInfo struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	PageCount int    `json:"page_count"`
}

type ListDocumentsOutput struct {
	Documents []DocumentInfo `json:"documents"`
	Count     int            `json:"count"`
}

func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a question using the uploaded documents, citing document names and pages",
	}, s.handleAskQuestion)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_documents",
		Description: "List the uploaded documents and their processing state",
	}, s.handleListDocuments)
}

// handleAskQuestion runs the full answering pipeline synchronously. The
// degraded-answer branches come back as ordinary answers, so the tool only
// errors on contract violations or an internal pipeline failure.
func (s *Server) handleAskQuestion(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return nil, AskOutput{}, errors.New("question must not be empty")
	}

	cfg := s.params.DefaultAI
	if input.Provider != "" {
		cfg.Provider = qaModel.Provider(input.Provider)
	}
	if input.Model != "" {
		cfg.Model = input.Model
	}
	if input.APIKey != "" {
		cfg.APIKey = input.APIKey
	}
	cfg, err := cfg.Normalize()
	if err != nil {
		return nil, AskOutput{}, err
	}

	job := jobModel.Job{
		Id:          utils.GetNewUUID(),
		TraceId:     utils.GetNewUUID(),
		Kind:        jobModel.JobKindQuestion,
		Question:    input.Question,
		AI:          cfg,
		CreatedTime: time.Now(),
		Status:      jobModel.JobStatusRunning,
	}
	s.logger.Info("ask_question tool call", "jobId", job.Id)

	done := s.params.QA.AnswerQuestion(ctx, job)
	if done.Status == jobModel.JobStatusError || done.Result == nil {
		return nil, AskOutput{}, fmt.Errorf("answering failed: %s", done.Error.Message)
	}

	output := AskOutput{
		Question: done.Result.Question,
		Answer:   done.Result.Answer,
		Sources:  make([]SourceInfo, len(done.Result.Sources)),
	}
	for i, src := range done.Result.Sources {
		output.Sources[i] = SourceInfo{
			Document: src.DocumentName,
			Page:     src.Page,
			Excerpt:  src.Excerpt,
		}
	}

	return nil, output, nil
}

func (s *Server) handleListDocuments(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListDocumentsInput,
) (*mcp.CallToolResult, ListDocumentsOutput, error) {
	documents, err := s.params.Documents.ListDocuments(ctx)
	if err != nil {
		return nil, ListDocumentsOutput{}, fmt.Errorf("listing documents: %w", err)
	}

	output := ListDocumentsOutput{
		Documents: make([]DocumentInfo, len(documents)),
		Count:     len(documents),
	}
	for i, doc := range documents {
		output.Documents[i] = DocumentInfo{
			Id:        doc.Id,
			Name:      doc.Name,
			Status:    string(doc.Status),
			Error:     doc.Error,
			PageCount: len(doc.Pages),
		}
	}

	return nil, output, nil
}
