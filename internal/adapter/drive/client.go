// Package drive implements the remote image-listing collaborator against the
// Google Drive v3 files.list endpoint, authenticated with an API key only.
package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/docugallery/gallery-backend/internal/domain"
)

const defaultBaseURL = "https://www.googleapis.com/drive/v3"

// listPageSize caps a folder listing at 50 entries; the picker never needs
// more than the newest page.
const listPageSize = 50

// Client lists folder images from the Drive API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client with the default Drive API URL.
func NewClient(apiKey string, logger *slog.Logger) *Client {
	return NewClientWithURL(defaultBaseURL, apiKey, logger)
}

// NewClientWithURL creates a Client with a custom base URL (for testing).
func NewClientWithURL(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "drive"),
	}
}

// ListFolderImages returns up to 50 image entries of a folder, newest first.
// Every failure (auth, quota, not-found, network, decode) is a single error
// outcome; callers get no partial data.
func (c *Client) ListFolderImages(ctx context.Context, folderID string) ([]domain.ImageCandidate, error) {
	reqURL := c.listURL(folderID)

	c.log.DebugContext(ctx, "drive listing request", slog.String("folder_id", folderID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("drive: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, folderID)
	if err != nil {
		c.log.ErrorContext(ctx, "drive listing failed",
			slog.String("folder_id", folderID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("drive: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("drive: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp.StatusCode, body)
	}

	var list apiFileList
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("drive: decode json: %w", err)
	}

	images := mapFiles(list.Files)

	c.log.DebugContext(ctx, "drive listing response",
		slog.String("folder_id", folderID),
		slog.Int("images", len(images)),
	)

	return images, nil
}

// listURL builds the files.list query: images only, newest first, one page.
func (c *Client) listURL(folderID string) string {
	q := url.Values{}
	q.Set("q", fmt.Sprintf("'%s' in parents and mimeType contains 'image/'", folderID))
	q.Set("fields", "files(id,name,size,imageMediaMetadata(width,height))")
	q.Set("orderBy", "createdTime desc")
	q.Set("pageSize", strconv.Itoa(listPageSize))
	q.Set("key", c.apiKey)
	return c.baseURL + "/files?" + q.Encode()
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. Client errors (4xx: bad key, quota, unknown folder) never retry.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, folderID string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "drive retry", slog.String("folder_id", folderID), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(500 * time.Millisecond)

	return c.httpClient.Do(req)
}

// decodeError extracts the API error message when present.
func decodeError(status int, body []byte) error {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
		return fmt.Errorf("drive: status %d: %s", status, apiErr.Error.Message)
	}
	return fmt.Errorf("drive: unexpected status %d", status)
}

// mapFiles converts API entries into domain candidates, preserving the
// listing order the API returned.
func mapFiles(files []apiFile) []domain.ImageCandidate {
	images := make([]domain.ImageCandidate, 0, len(files))
	for _, f := range files {
		img := domain.ImageCandidate{
			ID:   f.ID,
			Name: f.Name,
		}
		if f.Size != "" {
			if size, err := strconv.ParseInt(f.Size, 10, 64); err == nil {
				img.SizeBytes = size
			}
		}
		if f.ImageMediaMetadata != nil {
			img.Width = f.ImageMediaMetadata.Width
			img.Height = f.ImageMediaMetadata.Height
		}
		images = append(images, img)
	}
	return images
}
