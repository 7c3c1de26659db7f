package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryHost stores images on Cloudinary.
type CloudinaryHost struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryHost builds a host from account credentials.
func NewCloudinaryHost(cloudName, apiKey, apiSecret string) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("configure cloudinary: %w", err)
	}
	return &CloudinaryHost{cld: cld}, nil
}

// Upload sends the image with automatic resource type detection and
// automatic quality and format optimisation.
func (h *CloudinaryHost) Upload(ctx context.Context, req UploadRequest) (*Asset, error) {
	result, err := h.cld.Upload.Upload(ctx, req.Data, uploader.UploadParams{
		Folder:         req.Folder,
		ResourceType:   "auto",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return nil, err
	}
	if result.Error.Message != "" {
		return nil, errors.New(result.Error.Message)
	}

	return &Asset{
		URL:       result.URL,
		SecureURL: result.SecureURL,
		PublicID:  result.PublicID,
		Width:     result.Width,
		Height:    result.Height,
	}, nil
}

// Destroy deletes an image by public id.
func (h *CloudinaryHost) Destroy(ctx context.Context, publicID string) (bool, error) {
	result, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return false, err
	}
	if result.Error.Message != "" {
		return false, errors.New(result.Error.Message)
	}
	return result.Result == "ok", nil
}
