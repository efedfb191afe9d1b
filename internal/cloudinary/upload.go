// Package cloudinary implements the direct-to-hosting resume upload path:
// unsigned raw uploads against Cloudinary's upload endpoint, returning the
// canonical secure URL of the stored file.
package cloudinary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/dkolesn/jobtrack/internal/logging"
)

// DefaultBaseURL is the Cloudinary API root; {cloud}/raw/upload is appended.
const DefaultBaseURL = "https://api.cloudinary.com/v1_1"

var (
	nonAlnum  = regexp.MustCompile(`[^a-zA-Z0-9]`)
	resumeExt = regexp.MustCompile(`\.(pdf|txt)$`)
)

type Uploader struct {
	CloudName    string
	UploadPreset string

	// BaseURL can be pointed at a test server; empty means DefaultBaseURL.
	BaseURL string

	http *http.Client
	log  logging.Logger
	now  func() time.Time
}

func NewUploader(cloudName, uploadPreset string, log logging.Logger) *Uploader {
	return &Uploader{
		CloudName:    cloudName,
		UploadPreset: uploadPreset,
		http:         &http.Client{},
		log:          log,
		now:          time.Now,
	}
}

// PublicID derives the storage path for a file: a company folder from the
// sanitized company name and a timestamp-prefixed, extension-stripped
// filename so repeated uploads of the same file cannot collide.
func (u *Uploader) PublicID(filename, companyName string) string {
	folder := "unknown_company"
	if strings.TrimSpace(companyName) != "" {
		folder = strings.ToLower(nonAlnum.ReplaceAllString(companyName, "_"))
	}
	name := resumeExt.ReplaceAllString(filename, "")
	return fmt.Sprintf("resumes/%s/%d_%s", folder, u.now().UnixMilli(), name)
}

// Upload pushes content to the hosting service using the unsigned preset and
// returns the hosted file's secure URL. There is no retry or chunking; large
// files rely entirely on the underlying transport.
func (u *Uploader) Upload(ctx context.Context, filename string, content io.Reader, companyName string) (string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("building upload body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", fmt.Errorf("reading file: %w", err)
	}
	if err := w.WriteField("upload_preset", u.UploadPreset); err != nil {
		return "", fmt.Errorf("building upload body: %w", err)
	}
	publicID := u.PublicID(filename, companyName)
	if err := w.WriteField("public_id", publicID); err != nil {
		return "", fmt.Errorf("building upload body: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	base := u.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	endpoint := fmt.Sprintf("%s/%s/raw/upload", strings.TrimRight(base, "/"), u.CloudName)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", fmt.Errorf("building upload request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	u.log.Debug(ctx, "uploading resume", "public_id", publicID)

	resp, err := u.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload failed: %s", resp.Status)
	}

	var out struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	if out.SecureURL == "" && out.URL == "" {
		return "", fmt.Errorf("upload failed: no secure URL returned")
	}

	url := out.SecureURL
	if url == "" {
		url = out.URL
	}
	u.log.Info(ctx, "resume uploaded", "public_id", publicID, "url", url)
	return url, nil
}
