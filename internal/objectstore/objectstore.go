// Package objectstore issues upload targets against Supabase Storage
// and normalizes photo references to their canonical retrieval path.
// The service never stores object bytes itself; clients upload directly
// to the signed URL and persist the canonical path with the memory.
package objectstore

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// UploadTarget is a one-shot signed upload destination plus the public
// URL the object will be served from once uploaded.
type UploadTarget struct {
	UploadURL string `json:"uploadURL"`
	PublicURL string `json:"publicURL"`
}

// SignedUploader hands out upload targets for new objects.
type SignedUploader interface {
	CreateUploadTarget(ctx context.Context, fileName, fileType string) (*UploadTarget, error)
}

// Client talks to the Supabase Storage REST API.
type Client struct {
	http   *resty.Client
	base   string
	bucket string
}

// New builds a storage client. base is the project URL
// (https://<ref>.supabase.co) and key the service role key.
func New(base, key, bucket string) *Client {
	c := resty.New().
		SetBaseURL(strings.TrimRight(base, "/")).
		SetHeader("Authorization", "Bearer "+key).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)
	return &Client{http: c, base: strings.TrimRight(base, "/"), bucket: bucket}
}

type signResponse struct {
	URL string `json:"url"`
}

// CreateUploadTarget asks Supabase for a signed upload URL under a
// fresh date-prefixed object key that keeps the original extension.
func (c *Client) CreateUploadTarget(ctx context.Context, fileName, fileType string) (*UploadTarget, error) {
	key := objectKey(fileName)

	var out signResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		ForceContentType("application/json").
		Post(fmt.Sprintf("/storage/v1/object/upload/sign/%s/%s", c.bucket, key))
	if err != nil {
		return nil, fmt.Errorf("sign upload url: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("sign upload url: storage status %d", resp.StatusCode())
	}
	if out.URL == "" {
		return nil, fmt.Errorf("sign upload url: empty response")
	}

	return &UploadTarget{
		UploadURL: c.base + "/storage/v1" + out.URL,
		PublicURL: fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.base, c.bucket, key),
	}, nil
}

// NormalizePath canonicalizes a photo reference for persistence.
// Public URLs under the configured bucket collapse to /objects/{key};
// already-canonical /objects/ paths pass through; any other well-formed
// http(s) URL is kept as-is. Everything else is rejected.
func (c *Client) NormalizePath(raw string) (string, error) {
	return normalize(raw, c.base, c.bucket)
}

func normalize(raw, base, bucket string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("photo reference is empty")
	}
	if strings.HasPrefix(raw, "/objects/") && len(raw) > len("/objects/") {
		return raw, nil
	}
	if base != "" {
		prefix := fmt.Sprintf("%s/storage/v1/object/public/%s/", base, bucket)
		if strings.HasPrefix(raw, prefix) {
			return "/objects/" + strings.TrimPrefix(raw, prefix), nil
		}
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("photo reference must be an http(s) URL or /objects/ path")
	}
	return raw, nil
}

// objectKey builds uploads/YYYY/MM/<uuid><ext> from the client file name.
func objectKey(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	now := time.Now().UTC()
	return fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), int(now.Month()), uuid.New().String(), ext)
}
