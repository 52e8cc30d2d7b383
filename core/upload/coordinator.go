// ABOUTME: Coordinates attach-image-then-submit for create/edit forms
// ABOUTME: Upload runs asynchronously; the parent submit waits on a bounded poll

package upload

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"sync"
	"time"

	"barangay-app-client/core/domain"
	"barangay-app-client/core/interfaces"
)

const (
	// maxFileSize is the largest accepted image (10 MiB).
	maxFileSize = 10 * 1024 * 1024

	// pollInterval is how often SubmitWhenReady re-checks the upload.
	pollInterval = 100 * time.Millisecond

	// defaultMaxWait bounds the poll so a permanently stuck upload still
	// resolves to a failure instead of waiting forever.
	defaultMaxWait = 60 * time.Second
)

var (
	// ErrFileTooLarge is returned for files above the 10 MiB limit.
	ErrFileTooLarge = errors.New("Image size must be less than 10MB")

	// ErrNotImage is returned when the declared type is not an image type.
	ErrNotImage = errors.New("Please select an image file")

	// ErrUploadFailed reports an upload that completed without a result URL.
	ErrUploadFailed = errors.New("Failed to upload image. Please try again.")
)

// Uploader is the slice of the gateway the coordinator needs.
type Uploader interface {
	UploadImage(ctx context.Context, filename, contentType string, data []byte) (*domain.UploadResult, error)
}

// Pending is a snapshot of the transient per-form upload state.
type Pending struct {
	HasFile    bool
	Filename   string
	PreviewURI string
	Uploading  bool
	ResultURL  string
}

// Coordinator lets a form attach a not-yet-uploaded image, upload it in the
// background, and submit the parent entity only once the image URL is known.
// One coordinator serves one form; state is destroyed by Cancel.
type Coordinator struct {
	gw      Uploader
	logger  interfaces.Logger
	maxWait time.Duration

	mu          sync.Mutex
	gen         int
	file        []byte
	filename    string
	contentType string
	preview     string
	uploading   bool
	resultURL   string
	lastErr     error
}

// NewCoordinator creates a coordinator for a single form. maxWait bounds the
// SubmitWhenReady poll; zero selects the default of one minute.
func NewCoordinator(gw Uploader, logger interfaces.Logger, maxWait time.Duration) *Coordinator {
	if maxWait <= 0 {
		maxWait = defaultMaxWait
	}
	return &Coordinator{
		gw:      gw,
		logger:  logger,
		maxWait: maxWait,
	}
}

// SelectFile validates and stores a file for later upload. Oversized or
// non-image files are rejected with a user-visible error and no state change.
// The local preview data URI is produced asynchronously.
func (c *Coordinator) SelectFile(filename, contentType string, data []byte) error {
	if len(data) > maxFileSize {
		return ErrFileTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotImage
	}

	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.file = data
	c.filename = filename
	c.contentType = contentType
	c.preview = ""
	// Re-selecting invalidates any in-flight upload: its late result is
	// discarded by the gen check, so the uploading flag must reset here or
	// the new file could never start.
	c.uploading = false
	c.resultURL = ""
	c.lastErr = nil
	c.mu.Unlock()

	go func() {
		uri := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
		c.mu.Lock()
		if c.gen == gen {
			c.preview = uri
		}
		c.mu.Unlock()
	}()

	return nil
}

// BeginUpload starts the background upload of the selected file. A missing
// file or an upload already in flight makes this a no-op. On success the
// result URL is stored; on failure it stays empty and the error is kept for
// SubmitWhenReady's failure callback.
func (c *Coordinator) BeginUpload(ctx context.Context) {
	c.mu.Lock()
	if c.file == nil || c.uploading {
		c.mu.Unlock()
		return
	}
	c.uploading = true
	gen := c.gen
	filename, contentType, data := c.filename, c.contentType, c.file
	c.mu.Unlock()

	go func() {
		result, err := c.gw.UploadImage(ctx, filename, contentType, data)

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.gen != gen {
			// Form was cancelled or the file replaced mid-flight.
			return
		}
		c.uploading = false
		if err != nil {
			c.lastErr = err
			c.logger.Warn("Image upload failed", map[string]interface{}{
				"filename": filename,
				"error":    err.Error(),
			})
			return
		}
		c.resultURL = result.ImageURL
	}()
}

// SubmitWhenReady bridges the two independent async steps of upload and
// parent submit. With no pending file it invokes onReady immediately with
// any previously resolved URL. Otherwise it triggers the upload if idle and
// polls until the URL is known (onReady) or the upload has finished without
// one (onFailed). Exactly one of the callbacks fires, exactly once. The poll
// is bounded by the coordinator's max wait.
func (c *Coordinator) SubmitWhenReady(ctx context.Context, onReady func(imageURL string), onFailed func(err error)) {
	c.mu.Lock()
	if c.file == nil || c.resultURL != "" {
		url := c.resultURL
		c.mu.Unlock()
		onReady(url)
		return
	}
	c.mu.Unlock()

	c.BeginUpload(ctx)

	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()
		deadline := time.NewTimer(c.maxWait)
		defer deadline.Stop()

		for {
			select {
			case <-ticker.C:
				c.mu.Lock()
				url, uploading, lastErr := c.resultURL, c.uploading, c.lastErr
				c.mu.Unlock()

				if url != "" {
					onReady(url)
					return
				}
				if !uploading {
					if lastErr == nil {
						lastErr = ErrUploadFailed
					}
					onFailed(lastErr)
					return
				}
			case <-deadline.C:
				onFailed(ErrUploadFailed)
				return
			case <-ctx.Done():
				onFailed(ctx.Err())
				return
			}
		}
	}()
}

// Cancel clears the selected file, preview, and any resolved URL, returning
// the form to its no-image state. An in-flight upload result is discarded.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.file = nil
	c.filename = ""
	c.contentType = ""
	c.preview = ""
	c.uploading = false
	c.resultURL = ""
	c.lastErr = nil
}

// Snapshot returns the current transient upload state for display.
func (c *Coordinator) Snapshot() Pending {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Pending{
		HasFile:    c.file != nil,
		Filename:   c.filename,
		PreviewURI: c.preview,
		Uploading:  c.uploading,
		ResultURL:  c.resultURL,
	}
}
