package handlers

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/akolanti/DocQA/internal/adapter/utils"
	"github.com/akolanti/DocQA/internal/api"
	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/internal/job"
	"github.com/akolanti/DocQA/internal/metrics"
	"github.com/akolanti/DocQA/internal/qa/extract"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
}

func InitJobHandler(jobService *job.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})

}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new job")
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result jobModel.Job, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance != nil {
		return handlerInstance.service.JobStore.GetJob(ctxC, id)
	}
	return result, false
}

func ValidateAskRequest(askReq api.AskRequest) bool {
	if handlerInstance == nil {
		return false
	}
	return strings.TrimSpace(askReq.Question) != ""
}

// CreateDocumentRecords registers one pending Document per upload so the
// records are listable before extraction starts.
func CreateDocumentRecords(uploads []docModel.FileUpload, traceId string) []docModel.Document {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)

	documents := make([]docModel.Document, 0, len(uploads))
	for _, upload := range uploads {
		doc := docModel.Document{
			Id:          utils.GetNewUUID(),
			Name:        upload.Name,
			SizeLabel:   extract.SizeLabel(upload.Size),
			ContentType: extract.DocTypeFor(upload.Name),
			Status:      docModel.StatusPending,
			UploadedAt:  time.Now().UTC(),
		}
		if err := handlerInstance.service.DocumentStore.SaveDocument(ctxC, doc); err != nil {
			logJH.Error("Error saving document record", "documentId", doc.Id, "error", err)
		}
		documents = append(documents, doc)
	}
	return documents
}

func ListStoredDocuments(traceId string) ([]docModel.Document, error) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	return handlerInstance.service.DocumentStore.ListDocuments(ctxC)
}

func GetStoredDocument(id string, traceId string) (docModel.Document, bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	return handlerInstance.service.DocumentStore.GetDocument(ctxC, id)
}

func DeleteStoredDocument(id string, traceId string) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	handlerInstance.service.DocumentStore.DeleteDocument(ctxC, id)
}

func RecentHistory(traceId string) ([]qaModel.QuestionAnswer, error) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	return handlerInstance.service.HistoryStore.RecentRecords(ctxC, config.HistoryFetchCount)
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := jobModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = jobModel.JobStatusQueued
	_job.Kind = newJob.kind

	if newJob.kind == jobModel.JobKindIngest {
		_job.CurrentStep = jobModel.IngestInit
		_job.Files = newJob.files
		_job.FileNames = newJob.fileNames
		_job.DocumentIds = newJob.documentIds
	} else {
		_job.CurrentStep = jobModel.Validating
		_job.Question = newJob.question
		_job.AI = newJob.ai
	}

	//persist QUEUED before the send so the status URL resolves as soon as the caller has it
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, newJob.traceId)
	if err := h.service.JobStore.SaveJob(ctxC, _job); err != nil {
		logJH.Error("Error saving queued job", "jobId", _job.Id, "error", err)
	}

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //this is a blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new job")

	//we will start a new worker every 10 requests - can also be configured
	// or
	//for performance - a new worker is added for a document ingestion type job
	//ingestion runs extraction over every file which might take time
	//worker will be removed if it has idle time - so it should be ok
	//this also allows us to only keep 1 worker running at most times therefore cutting resource spend

	accurateCount := atomic.AddInt64(&h.service.RequestCount, 1) //after sending a request increment counter
	if accurateCount%config.RequestsPerNewWorkerCount == 0 || _job.Kind == jobModel.JobKindIngest {
		metrics.StartDispatcherSignalCount() //metrics
		logJH.Debug("Worker count ", accurateCount)
		h.service.DispatcherChannel <- true
	}
}
