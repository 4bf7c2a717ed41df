package document

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/t-okazaki/satchel/pkg/adapter"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/repository"
)

// UseCase handles ingesting documents and serving their extracted text.
// The document database holds only the metadata; the extracted text lives
// in blob storage under documents/<id>.txt.
type UseCase struct {
	repo      repository.Repository
	storage   adapter.Storage
	extractor adapter.Extractor
}

// New creates a new document UseCase instance
func New(repo repository.Repository, storage adapter.Storage, extractor adapter.Extractor) *UseCase {
	return &UseCase{
		repo:      repo,
		storage:   storage,
		extractor: extractor,
	}
}

func textKey(id model.DocumentID) string {
	return "documents/" + string(id) + ".txt"
}

// Ingest runs a file through the extraction service and persists the
// result: text to storage, metadata to the repository
func (u *UseCase) Ingest(ctx context.Context, path, owner string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read file", goerr.V("path", path))
	}

	fileName := filepath.Base(path)
	result, err := u.extractor.Extract(ctx, data, fileName)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to extract document text", goerr.V("file", fileName))
	}
	if result.Text == "" {
		return nil, goerr.New("document produced no text", goerr.V("file", fileName))
	}

	doc := &model.Document{
		ID:        model.NewDocumentID(),
		FileName:  fileName,
		Owner:     owner,
		Pages:     result.Pages,
		CreatedAt: time.Now(),
	}

	if err := adapter.PutText(ctx, u.storage, textKey(doc.ID), result.Text); err != nil {
		return nil, goerr.Wrap(err, "failed to store document text", goerr.V("document_id", doc.ID))
	}

	if err := u.repo.PutDocument(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to save document metadata", goerr.V("document_id", doc.ID))
	}

	return doc, nil
}

// Document retrieves document metadata by ID
func (u *UseCase) Document(ctx context.Context, id model.DocumentID) (*model.Document, error) {
	return u.repo.GetDocument(ctx, id)
}

// Text loads the extracted text of a document
func (u *UseCase) Text(ctx context.Context, id model.DocumentID) (string, error) {
	return adapter.GetText(ctx, u.storage, textKey(id))
}

// List returns document metadata, newest first
func (u *UseCase) List(ctx context.Context) ([]*model.Document, error) {
	return u.repo.ListDocuments(ctx)
}
