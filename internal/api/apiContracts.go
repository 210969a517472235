package api

import (
	"time"

	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type AnswerResponse struct {
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
	Sources  []Citation `json:"sources"`
}

type Citation struct {
	Document string `json:"document" example:"report.pdf"`
	Page     int    `json:"page" example:"3"`
	Excerpt  string `json:"excerpt"`
}

type Result struct {
	Status string          `json:"status"`
	Answer *AnswerResponse `json:"answer,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type DocumentResponse struct {
	Id         string    `json:"id"`
	Name       string    `json:"name" example:"report.pdf"`
	Size       string    `json:"size" example:"1.2 MB"`
	Status     string    `json:"status" example:"ready"`
	Error      string    `json:"error,omitempty"`
	PageCount  int       `json:"page_count"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

type UploadResponse struct {
	JobId     string             `json:"job_id"`
	StatusURL string             `json:"status_url"`
	Documents []DocumentResponse `json:"documents"`
}

type HistoryRecord struct {
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
	Sources  []Citation `json:"sources"`
	AskedAt  time.Time  `json:"asked_at"`
}

type HistoryResponse struct {
	Records []HistoryRecord `json:"records"`
}

// requests---------------------

type AskRequest struct {
	Question string           `json:"question" validate:"required"`
	AI       qaModel.AIConfig `json:"ai,omitempty"`
}

type JobStatusRequest struct {
	JobId string `json:"job_id" validate:"required"`
}
