package jobModel

import (
	"context"
	"time"

	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

type JobStatus string
type InternalStatus string

type JobKind string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	Validating   InternalStatus = "Validating"
	Scoring      InternalStatus = "Scoring"
	Synthesizing InternalStatus = "Synthesizing"
	Done         InternalStatus = "Done"

	IngestInit       InternalStatus = "IngestInit"
	IngestProcessing InternalStatus = "IngestProcessing"
	Error            InternalStatus = "Error"

	JobKindQuestion JobKind = "Question"
	JobKindIngest   JobKind = "Ingest"
)

// Job is one unit of async work. The AI config and raw file payloads are
// deliberately excluded from serialization: they ride the in-memory job
// channel only, so credentials and upload bytes never reach the job store.
type Job struct {
	Id          string                  `json:"id"`
	TraceId     string                  `json:"trace_id"`
	Kind        JobKind                 `json:"kind"`
	Question    string                  `json:"question,omitempty"`
	AI          qaModel.AIConfig        `json:"-"`
	Files       []docModel.FileUpload   `json:"-"`
	FileNames   []string                `json:"file_names,omitempty"`
	DocumentIds []string                `json:"document_ids,omitempty"`
	Result      *qaModel.QuestionAnswer `json:"result,omitempty"`
	Error       JobError                `json:"error,omitempty"`
	CreatedTime time.Time               `json:"created_time"`
	EndTime     time.Time               `json:"end_time,omitempty"`
	Status      JobStatus               `json:"status"`
	CurrentStep InternalStatus          `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}
