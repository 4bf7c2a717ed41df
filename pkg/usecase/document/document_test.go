package document_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/t-okazaki/satchel/pkg/adapter"
	"github.com/t-okazaki/satchel/pkg/model"
	"github.com/t-okazaki/satchel/pkg/repository"
	"github.com/t-okazaki/satchel/pkg/usecase/document"
)

type mockExtractor struct {
	result       *adapter.ExtractResult
	err          error
	lastFileName string
	lastData     []byte
}

func (m *mockExtractor) Extract(ctx context.Context, data []byte, fileName string) (*adapter.ExtractResult, error) {
	m.lastData = data
	m.lastFileName = fileName
	return m.result, m.err
}

type memoryRepo struct {
	repository.Repository
	docs map[model.DocumentID]*model.Document
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{docs: map[model.DocumentID]*model.Document{}}
}

func (m *memoryRepo) PutDocument(ctx context.Context, doc *model.Document) error {
	m.docs[doc.ID] = doc
	return nil
}

func (m *memoryRepo) GetDocument(ctx context.Context, id model.DocumentID) (*model.Document, error) {
	doc, ok := m.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return doc, nil
}

func (m *memoryRepo) ListDocuments(ctx context.Context) ([]*model.Document, error) {
	var docs []*model.Document
	for _, d := range m.docs {
		docs = append(docs, d)
	}
	return docs, nil
}

type memoryStorage struct {
	blobs map[string]string
}

type memoryWriter struct {
	buf     bytes.Buffer
	key     string
	storage *memoryStorage
}

func (w *memoryWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *memoryWriter) Close() error {
	w.storage.blobs[w.key] = w.buf.String()
	return nil
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{blobs: map[string]string{}}
}

func (m *memoryStorage) Put(ctx context.Context, key string) (io.WriteCloser, error) {
	return &memoryWriter{key: key, storage: m}, nil
}

func (m *memoryStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	blob, ok := m.blobs[key]
	if !ok {
		return nil, goerr.New("blob not found")
	}
	return io.NopCloser(strings.NewReader(blob)), nil
}

func writeTempPDF(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	gt.NoError(t, os.WriteFile(path, content, 0600))
	return path
}

func TestIngest(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryRepo()
	storage := newMemoryStorage()
	extractor := &mockExtractor{result: &adapter.ExtractResult{Text: "Course covers X, Y, Z.", Pages: 3}}
	uc := document.New(repo, storage, extractor)

	path := writeTempPDF(t, "Syllabus.pdf", []byte("%PDF-1.4 fake"))
	doc, err := uc.Ingest(ctx, path, "alice")
	gt.NoError(t, err)
	gt.V(t, doc).NotNil()
	gt.Equal(t, doc.FileName, "Syllabus.pdf")
	gt.Equal(t, doc.Owner, "alice")
	gt.Equal(t, doc.Pages, 3)

	gt.Equal(t, extractor.lastFileName, "Syllabus.pdf")
	gt.Equal(t, string(extractor.lastData), "%PDF-1.4 fake")

	text, err := uc.Text(ctx, doc.ID)
	gt.NoError(t, err)
	gt.Equal(t, text, "Course covers X, Y, Z.")

	stored, err := uc.Document(ctx, doc.ID)
	gt.NoError(t, err)
	gt.Equal(t, stored.FileName, "Syllabus.pdf")

	docs, err := uc.List(ctx)
	gt.NoError(t, err)
	gt.A(t, docs).Length(1)
}

func TestIngestMissingFile(t *testing.T) {
	uc := document.New(newMemoryRepo(), newMemoryStorage(), &mockExtractor{})
	_, err := uc.Ingest(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), "")
	gt.Error(t, err)
}

func TestIngestExtractionFails(t *testing.T) {
	extractor := &mockExtractor{err: goerr.New("unreadable pdf")}
	uc := document.New(newMemoryRepo(), newMemoryStorage(), extractor)

	path := writeTempPDF(t, "broken.pdf", []byte("not a pdf"))
	_, err := uc.Ingest(context.Background(), path, "")
	gt.Error(t, err)
}

func TestIngestEmptyText(t *testing.T) {
	extractor := &mockExtractor{result: &adapter.ExtractResult{Text: "", Pages: 1}}
	uc := document.New(newMemoryRepo(), newMemoryStorage(), extractor)

	path := writeTempPDF(t, "scanned.pdf", []byte("%PDF-1.4"))
	_, err := uc.Ingest(context.Background(), path, "")
	gt.Error(t, err)
}

func TestTextNotFound(t *testing.T) {
	uc := document.New(newMemoryRepo(), newMemoryStorage(), &mockExtractor{})
	_, err := uc.Text(context.Background(), "no-such-doc")
	gt.Error(t, err)
}
