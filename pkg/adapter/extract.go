package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// Extractor produces plain text from an uploaded document. Extraction
// itself is an external concern; the assistant only consumes the text.
type Extractor interface {
	Extract(ctx context.Context, data []byte, fileName string) (*ExtractResult, error)
}

// ExtractResult is the extraction service output
type ExtractResult struct {
	Text  string `json:"text"`
	Pages int    `json:"pages"`
	Error string `json:"error,omitempty"`
}

// httpExtractor implements Extractor against the PDF extraction sidecar,
// a JSON-over-HTTP service
type httpExtractor struct {
	baseURL string
	client  *http.Client
}

// NewExtractor creates a client for the extraction sidecar
func NewExtractor(baseURL string) Extractor {
	return &httpExtractor{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (e *httpExtractor) Extract(ctx context.Context, data []byte, fileName string) (*ExtractResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/extract", bytes.NewReader(data))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create extract request")
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-File-Name", fileName)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call extraction service", goerr.V("file", fileName))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read extraction response")
	}

	var result ExtractResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, goerr.Wrap(err, "failed to decode extraction response")
	}

	if result.Error != "" {
		return nil, goerr.New("extraction service error", goerr.V("message", result.Error))
	}

	return &result, nil
}
