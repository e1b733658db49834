package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrRejected marks a file that failed the local acceptance policy;
	// no network call was made.
	ErrRejected = errors.New("file rejected by upload policy")

	// ErrDeleteUnsupported: destroying an asset needs a signed API
	// credential, which the unsigned upload preset does not carry.
	ErrDeleteUnsupported = errors.New("delete requires signed credentials (not configured)")
)

const (
	defaultTimeout = 30 * time.Second
	maxAttempts    = 3
	retryBackoff   = 500 * time.Millisecond
)

type Config struct {
	CloudName    string
	UploadPreset string
	// BaseURL overrides the API endpoint (tests). Empty means the real
	// Cloudinary API.
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	cloudName    string
	uploadPreset string
	baseURL      string
	http         *http.Client
}

// UploadResult is the subset of the provider response we consume.
type UploadResult struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

// New builds a Client, failing fast when required credentials are absent.
func New(cfg Config) (*Client, error) {
	if cfg.CloudName == "" {
		return nil, errors.New("cloudinary: cloud name is required")
	}
	if cfg.UploadPreset == "" {
		return nil, errors.New("cloudinary: upload preset is required")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.cloudinary.com/v1_1/" + cfg.CloudName
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: timeout},
	}, nil
}

// UploadFile pushes a single attachment to the provider via the unsigned
// upload endpoint. Policy violations short-circuit with ErrRejected
// before any network I/O; transient failures (transport error or 5xx)
// are retried up to maxAttempts with a fixed backoff.
func (cl *Client) UploadFile(ctx context.Context, fh *multipart.FileHeader, folder string) (*UploadResult, error) {
	mimeType := DetectMimeType(fh.Header.Get("Content-Type"), fh.Filename)
	if ok, reason := Acceptable(fh.Size, mimeType); !ok {
		log.Printf("cloudinary: rejecting %q: %s", fh.Filename, reason)
		return nil, fmt.Errorf("%w: %s", ErrRejected, reason)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read upload %q: %w", fh.Filename, err)
	}

	publicID := newPublicID()
	body, contentType, err := cl.buildForm(fh.Filename, data, publicID, folder)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		res, err := cl.post(ctx, body, contentType)
		if err == nil {
			log.Printf("cloudinary: uploaded %q as %s", fh.Filename, res.PublicID)
			return res, nil
		}
		lastErr = err
		if !retryable(err) || attempt == maxAttempts {
			break
		}
		select {
		case <-time.After(retryBackoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	log.Printf("cloudinary: upload of %q failed: %v", fh.Filename, lastErr)
	return nil, lastErr
}

// DeleteFile is a capability stub. The unsigned flow carries no API
// secret, so destroy calls cannot be signed.
func (cl *Client) DeleteFile(ctx context.Context, publicID string) (bool, error) {
	return false, ErrDeleteUnsupported
}

// TransformedURL composes a CDN delivery URL with the given
// transformation segments. Pure string building, no network.
func (cl *Client) TransformedURL(publicID string, transforms ...string) string {
	base := "https://res.cloudinary.com/" + cl.cloudName + "/image/upload"
	if len(transforms) > 0 {
		base += "/" + strings.Join(transforms, ",")
	}
	return base + "/" + publicID
}

func (cl *Client) buildForm(filename string, data []byte, publicID, folder string) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, "", err
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("upload_preset", cl.uploadPreset); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("public_id", publicID); err != nil {
		return nil, "", err
	}
	if folder != "" {
		if err := w.WriteField("folder", folder); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// transientError wraps failures worth retrying (network error, 5xx).
type transientError struct{ err error }

func (e *transientError) Error() string { return e.err.Error() }
func (e *transientError) Unwrap() error { return e.err }

func retryable(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}

func (cl *Client) post(ctx context.Context, body *bytes.Buffer, contentType string) (*UploadResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.baseURL+"/image/upload", bytes.NewReader(body.Bytes()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := cl.http.Do(req)
	if err != nil {
		return nil, &transientError{err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, &transientError{fmt.Errorf("provider returned %d", resp.StatusCode)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}
	return &out, nil
}

// newPublicID builds a collision-resistant object id from the current
// time plus a random suffix.
func newPublicID() string {
	return fmt.Sprintf("concern_%d_%s", time.Now().UnixNano(), uuid.NewString()[:8])
}
