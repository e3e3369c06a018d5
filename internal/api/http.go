package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerUserAgent     = "User-Agent"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"
	clientUserAgent     = "lenslink-go/1.0.0"
)

// doRequest performs an HTTP request and handles common error cases.
// An empty token means the call is unauthenticated.
func (c *Client) doRequest(ctx context.Context, method, path, token string, body interface{}, result interface{}) error {
	reqURL := c.baseURL + path

	// Prepare request body
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	// Create request
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Set headers
	req.Header.Set(headerUserAgent, clientUserAgent)
	req.Header.Set(headerRequestID, uuid.NewString())
	if token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}
	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	return c.execute(req, result)
}

// execute runs a prepared request and decodes the response into result.
func (c *Client) execute(req *http.Request, result interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		return parseError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path, token string, result interface{}) error {
	return c.doRequest(ctx, http.MethodGet, path, token, nil, result)
}

// post performs a POST request.
func (c *Client) post(ctx context.Context, path, token string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPost, path, token, body, result)
}

// put performs a PUT request.
func (c *Client) put(ctx context.Context, path, token string, body interface{}, result interface{}) error {
	return c.doRequest(ctx, http.MethodPut, path, token, body, result)
}

// postMultipart performs a multipart POST with every file under the same
// field name, as the upload endpoint expects.
func (c *Client) postMultipart(ctx context.Context, path, token, field string, files []Upload, result interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := w.CreateFormFile(field, f.Name)
		if err != nil {
			return fmt.Errorf("failed to create form file %q: %w", f.Name, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return fmt.Errorf("failed to read file %q: %w", f.Name, err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set(headerUserAgent, clientUserAgent)
	req.Header.Set(headerRequestID, uuid.NewString())
	req.Header.Set(headerContentType, w.FormDataContentType())
	if token != "" {
		req.Header.Set(headerAuthorization, "Bearer "+token)
	}

	return c.execute(req, result)
}
