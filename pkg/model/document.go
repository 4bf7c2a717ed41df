package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type DocumentID string

// NewDocumentID generates a new unique DocumentID
func NewDocumentID() DocumentID {
	return DocumentID(uuid.New().String())
}

// Document is the metadata record of an ingested document. The extracted
// text is stored separately in blob storage under documents/<id>.txt and
// loaded by reference when the document grounds a chat turn.
type Document struct {
	ID        DocumentID
	FileName  string
	Owner     string
	Pages     int
	CreatedAt time.Time
}

// Validate checks if the document metadata is complete
func (d *Document) Validate() error {
	if d.ID == "" {
		return goerr.New("document id is empty")
	}
	if d.FileName == "" {
		return goerr.New("document file name is empty")
	}
	return nil
}
