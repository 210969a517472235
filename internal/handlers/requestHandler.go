package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/DocQA/internal/adapter"
	"github.com/akolanti/DocQA/internal/adapter/utils"
	"github.com/akolanti/DocQA/internal/api"
	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
	"github.com/akolanti/DocQA/internal/domain/qaModel"
	"github.com/akolanti/DocQA/pkg/logger_i"
)

var logRH *logger_i.Logger

// technically i dont need this
// but i want to eventually remove jobHandler from handlers and set it in another package
// so in anticipation for that this struct exists
type newJobData struct {
	id          string
	kind        jobModel.JobKind
	question    string
	ai          qaModel.AIConfig
	traceId     string
	files       []docModel.FileUpload
	fileNames   []string
	documentIds []string
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	return
}

// AskHandler godoc
// @Summary      Ask a question over the uploaded documents
// @Description  Accepts a question with an optional AI provider config, initializes a background answering job, and returns a job ID to track status.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        request  body      api.AskRequest       true  "Question and optional AI provider config"
// @Success      202      {object}  api.InitJobResponse  "Job successfully created"
// @Failure      400      {object}  api.JobResponse      "Invalid question or AI provider"
// @Router       /questions [post]
func AskHandler(w http.ResponseWriter, request *http.Request) {

	if validateContext(request.Context()) {

		var requestData api.AskRequest
		defer func(Body io.ReadCloser) {
			err := Body.Close()
			if err != nil {
				logRH.Error("Couldn't close the Ask handler reader :", err)
			}
		}(request.Body)
		if err := json.NewDecoder(request.Body).Decode(&requestData); err != nil || !ValidateAskRequest(requestData) {
			logRH.Warn("Bad Ask Request: ", "error:", err, "request data:", requestData)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Bad Request")
			return
		}

		normalizedAI, err := requestData.AI.Normalize()
		if err != nil {
			logRH.Warn("Unknown AI provider: ", "provider:", requestData.AI.Provider)
			WriteErrorResponse(w, http.StatusBadRequest, "", "Invalid AI provider")
			return
		}

		newJob := newJobData{
			id:       utils.GetNewUUID(),
			kind:     jobModel.JobKindQuestion,
			question: requestData.Question,
			ai:       normalizedAI,
			traceId:  request.Context().Value(config.TRACE_ID_KEY).(string),
		}
		CreateNewJob(newJob)
		writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newJob.id))
		return
	}
	logRH.Warn("Invalid Context by request ", request.RemoteAddr)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of a specific job using its ID. A completed question job carries the answer and its sources.
// @Tags         Questions
// @Accept       json
// @Produce      json
// @Param        jobId  path      string  true  "Job ID"
// @Success      200    {object}  api.JobResponse  "The current status of the job"
// @Failure      404    {object}  api.JobResponse  "Job not found (returns Error object within JobResponse)"
// @Router       /questions/{jobId} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		//use chi get the url id
		idString := utils.GetChiURLParam(r, "jobId")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// PostDocumentsHandler handles the uploading of documents for question answering.
// @Summary      Upload documents
// @Description  Receives one or more files via multipart/form-data, registers pending document records, and queues one extraction job covering the batch.
// @Tags         Documents
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "The PDF, DOCX, TXT or RTF files to upload"
// @Success      202  {object}  api.UploadResponse  "Accepted - returns job id and document ids"
// @Failure      400  {object}  api.JobResponse     "Bad Request - Missing files or upload too large"
// @Router       /documents [post]
func PostDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {

		err := r.ParseMultipartForm(config.MaxUploadBytes)
		if err != nil {
			WriteErrorResponse(w, http.StatusBadRequest, "", "File too large or bad request")
			return
		}

		uploads, errString := readUploads(r)
		if errString != "" {
			WriteErrorResponse(w, http.StatusBadRequest, "", errString)
			return
		}

		traceId := r.Context().Value(config.TRACE_ID_KEY).(string)
		documents := CreateDocumentRecords(uploads, traceId)

		newJob := newJobData{
			id:      utils.GetNewUUID(),
			kind:    jobModel.JobKindIngest,
			traceId: traceId,
			files:   uploads,
		}
		for _, doc := range documents {
			newJob.fileNames = append(newJob.fileNames, doc.Name)
			newJob.documentIds = append(newJob.documentIds, doc.Id)
		}
		CreateNewJob(newJob)

		writeJsonResponse(w, http.StatusAccepted, adapter.ToUploadResponse(newJob.id, documents))
		return
	}
	logRH.Warn("Invalid Context by request ", r.RemoteAddr)
}

// ListDocumentsHandler godoc
// @Summary      List documents
// @Description  Lists every stored document with its lifecycle state and page count.
// @Tags         Documents
// @Produce      json
// @Success      200  {object}  api.DocumentListResponse
// @Router       /documents [get]
func ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		documents, err := ListStoredDocuments(r.Context().Value(config.TRACE_ID_KEY).(string))
		if err != nil {
			logRH.Error("Error listing documents", "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "", "Internal Server Error")
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToDocumentListResponse(documents))
	}
}

// GetDocumentHandler godoc
// @Summary      Get one document
// @Description  Retrieves one document's lifecycle state, extraction error and page count.
// @Tags         Documents
// @Produce      json
// @Param        documentId  path      string  true  "Document ID"
// @Success      200         {object}  api.DocumentResponse
// @Failure      404         {object}  api.JobResponse  "Document not found"
// @Router       /documents/{documentId} [get]
func GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "documentId")
		doc, isFound := GetStoredDocument(idString, r.Context().Value(config.TRACE_ID_KEY).(string))
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Document not found")
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToDocumentResponse(doc))
	}
}

// DeleteDocumentHandler godoc
// @Summary      Delete a document
// @Description  Removes one document; its pages no longer participate in answering.
// @Tags         Documents
// @Param        documentId  path  string  true  "Document ID"
// @Success      204  "Document deleted"
// @Failure      404  {object}  api.JobResponse  "Document not found"
// @Router       /documents/{documentId} [delete]
func DeleteDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "documentId")
		traceId := r.Context().Value(config.TRACE_ID_KEY).(string)

		if _, isFound := GetStoredDocument(idString, traceId); !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Document not found")
			return
		}

		DeleteStoredDocument(idString, traceId)
		w.WriteHeader(http.StatusNoContent)
	}
}

// GetHistoryHandler godoc
// @Summary      Recent question history
// @Description  Returns the most recently answered questions, newest first.
// @Tags         History
// @Produce      json
// @Success      200  {object}  api.HistoryResponse
// @Router       /history [get]
func GetHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		records, err := RecentHistory(r.Context().Value(config.TRACE_ID_KEY).(string))
		if err != nil {
			logRH.Error("Error fetching history", "error", err)
			WriteErrorResponse(w, http.StatusInternalServerError, "", "Internal Server Error")
			return
		}
		writeJsonResponse(w, http.StatusOK, adapter.ToHistoryResponse(records))
	}
}
