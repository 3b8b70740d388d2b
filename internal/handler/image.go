package handler

import (
	"net/http"

	"github.com/dhairyapractice/Solo-leveling/internal/metrics"
	"github.com/dhairyapractice/Solo-leveling/internal/storage"
)

// ImageUploadResponse returns the public URL of an uploaded image
type ImageUploadResponse struct {
	URL string `json:"url"`
}

// HandleUploadImage accepts a multipart image and stores it in object storage
// @Summary Upload image
// @Description Uploads a badge, avatar or item image. Max 5MB, png/jpeg/gif/webp only.
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param prefix path string true "Image kind (badges, pfps or items)"
// @Param file formData file true "Image file"
// @Success 201 {object} ImageUploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/images/{prefix} [post]
func HandleUploadImage(store storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgUploadsDisabled)
			return
		}

		userID, ok := GetUserID(r, w)
		if !ok {
			return
		}
		prefix, ok := GetPathParam(r, w, "prefix")
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, storage.MaxImageSize)
		if err := r.ParseMultipartForm(storage.MaxImageSize); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgFileTooLarge)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgMissingFile)
			return
		}
		defer file.Close()

		contentType := header.Header.Get("Content-Type")
		url, err := store.UploadImage(r.Context(), userID, prefix, contentType, file)
		if err != nil {
			respondServiceError(w, r, "Upload image", err)
			return
		}

		metrics.ImagesUploaded.WithLabelValues(prefix).Inc()
		respondJSON(w, http.StatusCreated, ImageUploadResponse{URL: url})
	}
}

// DeleteImageRequest defines the request for removing an uploaded image
type DeleteImageRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// HandleDeleteImage removes a previously uploaded image by URL
// @Summary Delete image
// @Tags images
// @Accept json
// @Produce json
// @Param X-User-ID header string true "User ID"
// @Param request body DeleteImageRequest true "Image URL"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/images [delete]
func HandleDeleteImage(store storage.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgUploadsDisabled)
			return
		}

		if _, ok := GetUserID(r, w); !ok {
			return
		}

		var req DeleteImageRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Delete image"); err != nil {
			return
		}

		if err := store.DeleteImage(r.Context(), req.URL); err != nil {
			respondServiceError(w, r, "Delete image", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgImageDeleted})
	}
}
