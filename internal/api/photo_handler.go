package api

import (
	"errors"
	"net/http"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const photoFormField = "photo"

// multipartOverhead is the slack allowed on top of the image limit for form boundaries and fields.
const multipartOverhead = 1 << 20

// PhotoHandler serves progress photo uploads and downloads.
type PhotoHandler struct {
	photoService   service.PhotoService
	maxUploadBytes int64
}

func NewPhotoHandler(photoService service.PhotoService, maxUploadBytes int64) *PhotoHandler {
	return &PhotoHandler{photoService: photoService, maxUploadBytes: maxUploadBytes}
}

type PhotoURLResponse struct {
	URL string `json:"url"`
}

// UploadPhoto godoc
// @Summary Upload a progress photo
// @Description Multipart upload. The image is auto-oriented, downscaled and stored as JPEG.
// @Tags Photos
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "Image file"
// @Param takenAt formData string false "YYYY-MM-DD"
// @Param sessionId formData string false "Workout session ID"
// @Success 201 {object} domain.ProgressPhoto
// @Failure 400 {object} gin.H "Missing file or not an image"
// @Failure 413 {object} gin.H "File too large"
// @Router /photos [post]
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	if h.maxUploadBytes > 0 {
		limit := h.maxUploadBytes + multipartOverhead
		if c.Request.ContentLength > limit {
			abortWithError(c, http.StatusRequestEntityTooLarge, service.ErrPhotoTooLarge.Error())
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	}

	fileHeader, err := c.FormFile(photoFormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abortWithError(c, http.StatusRequestEntityTooLarge, service.ErrPhotoTooLarge.Error())
			return
		}
		abortWithError(c, http.StatusBadRequest, "Form field 'photo' with an image file is required.")
		return
	}

	upload := service.PhotoUpload{FileName: fileHeader.Filename}
	if raw := c.PostForm("takenAt"); raw != "" {
		takenAt, err := domain.ParseDate(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "takenAt must be YYYY-MM-DD.")
			return
		}
		upload.TakenAt = takenAt
	}
	if raw := c.PostForm("sessionId"); raw != "" {
		sessionID, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid sessionId format.")
			return
		}
		upload.SessionID = &sessionID
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, err)
		return
	}
	defer file.Close()
	upload.Body = file

	photo, err := h.photoService.UploadPhoto(c.Request.Context(), ownerID, upload)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// ListPhotos godoc
// @Summary List the caller's progress photos
// @Tags Photos
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ProgressPhoto
// @Router /photos [get]
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	photos, err := h.photoService.ListPhotos(c.Request.Context(), ownerID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if photos == nil {
		photos = []domain.ProgressPhoto{}
	}
	c.JSON(http.StatusOK, photos)
}

// GetPhotoURL godoc
// @Summary Presigned download URL for a photo
// @Tags Photos
// @Produce json
// @Security BearerAuth
// @Param photoId path string true "Photo ID"
// @Success 200 {object} PhotoURLResponse
// @Failure 404 {object} gin.H "Photo not found"
// @Router /photos/{photoId}/url [get]
func (h *PhotoHandler) GetPhotoURL(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	photoID, ok := pathObjectID(c, "photoId")
	if !ok {
		return
	}
	url, err := h.photoService.GetPhotoURL(c.Request.Context(), ownerID, photoID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, PhotoURLResponse{URL: url})
}

// DeletePhoto godoc
// @Summary Delete a progress photo
// @Tags Photos
// @Security BearerAuth
// @Param photoId path string true "Photo ID"
// @Success 204 "Deleted"
// @Failure 404 {object} gin.H "Photo not found"
// @Router /photos/{photoId} [delete]
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	ownerID, ok := requireUserID(c)
	if !ok {
		return
	}
	photoID, ok := pathObjectID(c, "photoId")
	if !ok {
		return
	}
	if err := h.photoService.DeletePhoto(c.Request.Context(), ownerID, photoID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
