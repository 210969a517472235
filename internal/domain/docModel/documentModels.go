package docModel

import (
	"context"
	"time"
)

type DocumentStatus string

const (
	StatusPending    DocumentStatus = "pending"
	StatusProcessing DocumentStatus = "processing"
	StatusReady      DocumentStatus = "ready"
	StatusFailed     DocumentStatus = "failed"
)

type DocType string

var PDF DocType = "PDF"
var DOCX DocType = "DOCX"
var TXT DocType = "TXT"
var RTF DocType = "RTF"
var ERR DocType = "ERROR"

// Document is the stored record of one upload. Pages is populated by the
// extraction step and index 0 holds page 1. The raw bytes never live here,
// they travel inside the ingest job only.
type Document struct {
	Id          string         `json:"id"`
	Name        string         `json:"name"`
	SizeLabel   string         `json:"size"`
	ContentType DocType        `json:"contentType"`
	Status      DocumentStatus `json:"status"`
	Error       string         `json:"error,omitempty"`
	Pages       []string       `json:"pages,omitempty"`
	UploadedAt  time.Time      `json:"uploaded_at"`
}

// FileUpload carries one uploaded file's payload into the ingest job.
type FileUpload struct {
	Name string
	Size int64
	Data []byte
}

type DocumentStore interface {
	SaveDocument(ctx context.Context, doc Document) error
	GetDocument(ctx context.Context, id string) (Document, bool)
	ListDocuments(ctx context.Context) ([]Document, error)
	DeleteDocument(ctx context.Context, id string)
}
