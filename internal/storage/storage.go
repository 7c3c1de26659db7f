// Package storage forwards image uploads to an external image host.
package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const DefaultFolder = "portfolio"

var (
	ErrUploadFailed    = errors.New("failed to upload image")
	ErrDeleteFailed    = errors.New("failed to delete image")
	ErrInvalidImage    = errors.New("image data is not a supported image")
	ErrStorageDisabled = errors.New("image storage is not configured")
)

// UploadRequest is what the image host receives.
type UploadRequest struct {
	// Data is a data URI or a remote URL understood by the host.
	Data   string
	Folder string
}

// Asset is the host's description of a stored image.
type Asset struct {
	URL       string `json:"url"`
	SecureURL string `json:"secureUrl"`
	PublicID  string `json:"publicId"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

// Host is an external image hosting service.
type Host interface {
	Upload(ctx context.Context, req UploadRequest) (*Asset, error)
	// Destroy returns true only when the host confirms the image was removed.
	Destroy(ctx context.Context, publicID string) (bool, error)
}

// Adapter validates payloads and hands them to the configured Host.
type Adapter struct {
	host          Host
	defaultFolder string
}

// NewAdapter wraps host. A nil host yields an adapter that reports
// ErrStorageDisabled for every call.
func NewAdapter(host Host, defaultFolder string) *Adapter {
	folder := strings.TrimSpace(defaultFolder)
	if folder == "" {
		folder = DefaultFolder
	}
	return &Adapter{host: host, defaultFolder: folder}
}

// Enabled reports whether a host is configured.
func (a *Adapter) Enabled() bool {
	return a != nil && a.host != nil
}

// Upload forwards imageData to the host. Data URIs are decoded locally first
// and rejected when they are not an image; the probed size fills in when the
// host does not report dimensions.
func (a *Adapter) Upload(ctx context.Context, imageData, folder string) (*Asset, error) {
	if !a.Enabled() {
		return nil, ErrStorageDisabled
	}

	imageData = strings.TrimSpace(imageData)
	if imageData == "" {
		return nil, ErrInvalidImage
	}

	var probed image.Config
	if strings.HasPrefix(imageData, "data:") {
		cfg, err := probeDataURI(imageData)
		if err != nil {
			return nil, err
		}
		probed = cfg
	} else if !isRemoteURL(imageData) {
		return nil, ErrInvalidImage
	}

	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = a.defaultFolder
	}

	asset, err := a.host.Upload(ctx, UploadRequest{Data: imageData, Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	if asset == nil {
		return nil, ErrUploadFailed
	}

	if asset.Width == 0 && asset.Height == 0 {
		asset.Width = probed.Width
		asset.Height = probed.Height
	}
	return asset, nil
}

// Delete asks the host to remove publicID.
func (a *Adapter) Delete(ctx context.Context, publicID string) (bool, error) {
	if !a.Enabled() {
		return false, ErrStorageDisabled
	}

	ok, err := a.host.Destroy(ctx, strings.TrimSpace(publicID))
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}
	return ok, nil
}

// probeDataURI decodes a base64 data URI and reads the image header.
func probeDataURI(dataURI string) (image.Config, error) {
	header, payload, found := strings.Cut(dataURI, ",")
	if !found {
		return image.Config{}, ErrInvalidImage
	}

	meta := strings.ToLower(strings.TrimPrefix(header, "data:"))
	if !strings.HasPrefix(meta, "image/") || !strings.HasSuffix(meta, ";base64") {
		return image.Config{}, ErrInvalidImage
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return image.Config{}, ErrInvalidImage
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return image.Config{}, ErrInvalidImage
	}
	return cfg, nil
}

func isRemoteURL(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "https://") || strings.HasPrefix(lower, "http://")
}
