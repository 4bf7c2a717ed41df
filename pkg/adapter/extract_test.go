package adapter_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/t-okazaki/satchel/pkg/adapter"
)

func TestExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Equal(t, r.Method, http.MethodPost)
		gt.Equal(t, r.URL.Path, "/extract")
		gt.Equal(t, r.Header.Get("Content-Type"), "application/octet-stream")
		gt.Equal(t, r.Header.Get("X-File-Name"), "Syllabus.pdf")

		body, err := io.ReadAll(r.Body)
		gt.NoError(t, err)
		gt.Equal(t, string(body), "%PDF-1.4 fake")

		gt.NoError(t, json.NewEncoder(w).Encode(adapter.ExtractResult{
			Text:  "Course covers X, Y, Z.",
			Pages: 3,
		}))
	}))
	defer server.Close()

	extractor := adapter.NewExtractor(server.URL)
	result, err := extractor.Extract(context.Background(), []byte("%PDF-1.4 fake"), "Syllabus.pdf")
	gt.NoError(t, err)
	gt.V(t, result).NotNil()
	gt.Equal(t, result.Text, "Course covers X, Y, Z.")
	gt.Equal(t, result.Pages, 3)
}

func TestExtractServiceError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, json.NewEncoder(w).Encode(adapter.ExtractResult{
			Error: "password protected",
		}))
	}))
	defer server.Close()

	extractor := adapter.NewExtractor(server.URL)
	_, err := extractor.Extract(context.Background(), []byte("data"), "locked.pdf")
	gt.Error(t, err)
}

func TestExtractUnreachable(t *testing.T) {
	extractor := adapter.NewExtractor("http://127.0.0.1:1")
	_, err := extractor.Extract(context.Background(), []byte("data"), "any.pdf")
	gt.Error(t, err)
}

func TestExtractBadResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	extractor := adapter.NewExtractor(server.URL)
	_, err := extractor.Extract(context.Background(), []byte("data"), "any.pdf")
	gt.Error(t, err)
}
