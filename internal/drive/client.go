package drive

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gabriel-vasile/mimetype"
	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/nattapongd/classmate/internal/logging"
)

// Client wraps the Google Drive API service
type Client struct {
	svc    *drive.Service
	logger *slog.Logger
}

// NewClient creates a Drive client on top of an authenticated HTTP
// client.
func NewClient(ctx context.Context, httpClient *http.Client, logger *slog.Logger, opts ...option.ClientOption) (*Client, error) {
	options := append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := drive.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		svc:    svc,
		logger: logging.WithService(logger, "drive"),
	}, nil
}

// FetchAttachment retrieves a file's metadata and content and encodes
// the content for transport. Two sequential remote calls: metadata
// first, then the raw bytes. Failures are per-file and recoverable;
// the caller decides whether to continue with other attachments.
func (c *Client) FetchAttachment(ctx context.Context, fileID string) (*Attachment, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	meta, err := c.svc.Files.Get(fileID).
		Context(ctx).
		Fields("id, name, mimeType, size").
		Do()
	if err != nil {
		c.logger.Warn("file metadata fetch failed", logging.Operation("fetch_attachment"), slog.String(logging.KeyFile, fileID), logging.Err(err))
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	resp, err := c.svc.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		c.logger.Warn("file download failed", logging.Operation("fetch_attachment"), slog.String(logging.KeyFile, fileID), logging.Err(err))
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}

	// Drive omits the MIME type for some files; sniff the content then.
	mimeType := meta.MimeType
	if mimeType == "" {
		mimeType = mimetype.Detect(data).String()
	}

	return &Attachment{
		Name:     meta.Name,
		MimeType: mimeType,
		Size:     meta.Size,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}
