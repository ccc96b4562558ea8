package handler

import (
	"github.com/labstack/echo/v4"

	"taruvae/internal/infrastructure/storage"
	"taruvae/pkg/errors"
	"taruvae/pkg/response"
)

type UploadHandler struct {
	images *storage.ImageStorage
}

func NewUploadHandler(images *storage.ImageStorage) *UploadHandler {
	return &UploadHandler{
		images: images,
	}
}

// UploadImage accepts a multipart "image" file for the products or blogs
// folder and returns its public URL for use in the entity's image field.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	if !h.images.Available() {
		return response.Error(c, errors.Unavailable("Image storage is not configured", nil))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "products"
	}
	if folder != "products" && folder != "blogs" {
		return response.Error(c, errors.BadRequest("folder must be products or blogs", nil))
	}

	file, err := c.FormFile("image")
	if err != nil {
		return response.Error(c, errors.BadRequest("image file is required", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer src.Close()

	url, err := h.images.UploadImage(
		c.Request().Context(),
		folder,
		file.Filename,
		file.Header.Get("Content-Type"),
		src,
	)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to store image", err))
	}

	return response.Created(c, map[string]string{"url": url})
}
