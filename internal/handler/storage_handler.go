package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studiofolio/internal/storage"
	"go.uber.org/zap"
)

type uploadImageRequest struct {
	ImageData string `json:"imageData" binding:"required"`
	Folder    string `json:"folder"`
}

type deleteImageRequest struct {
	PublicID string `json:"publicId" binding:"required"`
}

// UploadImage forwards an encoded image to the image host.
func (a *API) UploadImage(c *gin.Context) {
	var req uploadImageRequest
	if !bindJSON(c, &req, "imageData is required") {
		return
	}

	asset, err := a.assets.Upload(c.Request.Context(), req.ImageData, req.Folder)
	if err != nil {
		a.storageError(c, err, "Failed to upload image")
		return
	}

	c.JSON(http.StatusOK, asset)
}

// DeleteImage asks the image host to remove an asset.
func (a *API) DeleteImage(c *gin.Context) {
	var req deleteImageRequest
	if !bindJSON(c, &req, "publicId is required") {
		return
	}

	ok, err := a.assets.Delete(c.Request.Context(), req.PublicID)
	if err != nil {
		a.storageError(c, err, "Failed to delete image")
		return
	}

	message := "Failed to delete image"
	if ok {
		message = "Image deleted successfully"
	} else {
		a.log.Warn("image host did not confirm deletion", zap.String("public_id", req.PublicID))
	}
	c.JSON(http.StatusOK, gin.H{"success": ok, "message": message})
}

func (a *API) storageError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, storage.ErrStorageDisabled):
		respondError(c, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, storage.ErrInvalidImage):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		a.internalError(c, err, fallback)
	}
}
