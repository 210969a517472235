package adapter

import (
	"fmt"
	"time"

	"github.com/akolanti/DocQA/internal/api"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("questions/%s", id), //pass "questions/job.Id"
	}
}

func ToAPIResponse(job jobModel.Job) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status: string(job.Status),
		Answer: ToAnswerResponse(job.Result),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToAnswerResponse(answer *qaModel.QuestionAnswer) *api.AnswerResponse {
	if answer == nil {
		return nil
	}

	return &api.AnswerResponse{
		Question: answer.Question,
		Answer:   answer.Answer,
		Sources:  toCitations(answer.Sources),
	}
}

func toCitations(sources []qaModel.Citation) []api.Citation {
	citations := make([]api.Citation, 0, len(sources))
	for _, source := range sources {
		citations = append(citations, api.Citation{
			Document: source.DocumentName,
			Page:     source.Page,
			Excerpt:  source.Excerpt,
		})
	}
	return citations
}

func ToDocumentResponse(doc docModel.Document) api.DocumentResponse {
	return api.DocumentResponse{
		Id:         doc.Id,
		Name:       doc.Name,
		Size:       doc.SizeLabel,
		Status:     string(doc.Status),
		Error:      doc.Error,
		PageCount:  len(doc.Pages),
		UploadedAt: doc.UploadedAt,
	}
}

func ToDocumentListResponse(docs []docModel.Document) api.DocumentListResponse {
	responses := make([]api.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, ToDocumentResponse(doc))
	}
	return api.DocumentListResponse{Documents: responses}
}

func ToUploadResponse(jobId string, docs []docModel.Document) api.UploadResponse {
	return api.UploadResponse{
		JobId:     jobId,
		StatusURL: fmt.Sprintf("questions/%s", jobId),
		Documents: ToDocumentListResponse(docs).Documents,
	}
}

func ToHistoryResponse(records []qaModel.QuestionAnswer) api.HistoryResponse {
	out := make([]api.HistoryRecord, 0, len(records))
	for _, record := range records {
		out = append(out, api.HistoryRecord{
			Question: record.Question,
			Answer:   record.Answer,
			Sources:  toCitations(record.Sources),
			AskedAt:  record.AskedAt,
		})
	}
	return api.HistoryResponse{Records: out}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
