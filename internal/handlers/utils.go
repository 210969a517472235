package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/akolanti/DocQA/internal/adapter"
	"github.com/akolanti/DocQA/internal/config"
	"github.com/akolanti/DocQA/internal/domain/docModel"
	"github.com/akolanti/DocQA/internal/domain/jobModel"
)

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response: %v", err)
	}
}

func validateId(id string, traceId string) (result jobModel.Job, isFound bool) {
	if id == "" {
		logRH.Warn("Empty Job ID")
		return jobModel.Job{}, false
	}
	return GetJobStatus(id, traceId)
}

func validateContext(ctx context.Context) bool {
	logRH.With("traceId:", ctx.Value(config.TRACE_ID_KEY).(string))
	if ctx.Err() != nil {
		logRH.Warn("context error", ctx.Err())
		return false
	}

	select {
	case <-ctx.Done():
		logRH.Warn("context cancelled")
		return false
	default:
		return true

	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, id string, error string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(id, error, httpCode))
}

// readUploads drains every file in the multipart "files" field into
// memory. The payload rides the job channel, never the filesystem, so the
// raw bytes disappear with the job.
func readUploads(r *http.Request) ([]docModel.FileUpload, string) {
	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		return nil, "files field is required"
	}

	fileHeaders := r.MultipartForm.File["files"]
	uploads := make([]docModel.FileUpload, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		fileReader, err := header.Open()
		if err != nil {
			return nil, "Could not retrieve file"
		}

		data, err := io.ReadAll(fileReader)
		closeErr := fileReader.Close()
		if err != nil || closeErr != nil {
			return nil, "Could not read file"
		}

		uploads = append(uploads, docModel.FileUpload{
			Name: header.Filename,
			Size: header.Size,
			Data: data,
		})
	}
	return uploads, ""
}
