package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"alcyxob/workout-tracker/internal/domain"
	"alcyxob/workout-tracker/internal/metrics"
	"alcyxob/workout-tracker/internal/repository"
	"alcyxob/workout-tracker/internal/storage"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrPhotoNotFound = errors.New("photo not found")
	ErrPhotoTooLarge = errors.New("photo exceeds the maximum upload size")
	ErrInvalidImage  = errors.New("file is not a supported image")
	ErrPhotoStorage  = errors.New("failed to store photo")
	ErrPresignFailed = errors.New("failed to generate download URL")
)

const photoContentType = "image/jpeg"

// PhotoOptions controls how uploads are normalised before storage.
type PhotoOptions struct {
	MaxDimension   int   // longest edge in pixels after downscaling
	JPEGQuality    int   // 1..100
	MaxUploadBytes int64 // size limit of the raw upload
	URLExpiry      time.Duration
}

// PhotoUpload is a raw image as received from a client.
type PhotoUpload struct {
	FileName  string
	Body      io.Reader
	TakenAt   time.Time           // zero means the upload time
	SessionID *primitive.ObjectID // optional workout session the photo belongs to
}

type PhotoService interface {
	UploadPhoto(ctx context.Context, ownerID primitive.ObjectID, upload PhotoUpload) (*domain.ProgressPhoto, error)
	ListPhotos(ctx context.Context, ownerID primitive.ObjectID) ([]domain.ProgressPhoto, error)
	GetPhotoURL(ctx context.Context, ownerID, photoID primitive.ObjectID) (string, error)
	DeletePhoto(ctx context.Context, ownerID, photoID primitive.ObjectID) error
}

type photoService struct {
	photoRepo   repository.PhotoRepository
	fileStorage storage.FileStorage
	metrics     *metrics.Manager
	opts        PhotoOptions
	now         func() time.Time
}

func NewPhotoService(
	photoRepo repository.PhotoRepository,
	fileStorage storage.FileStorage,
	metricsManager *metrics.Manager,
	opts PhotoOptions,
	now func() time.Time,
) PhotoService {
	return &photoService{
		photoRepo:   photoRepo,
		fileStorage: fileStorage,
		metrics:     metricsManager,
		opts:        opts,
		now:         now,
	}
}

// UploadPhoto auto-orients the image, fits it into MaxDimension, re-encodes it as JPEG and
// stores it. The metadata record is written only after the object upload succeeded.
func (s *photoService) UploadPhoto(ctx context.Context, ownerID primitive.ObjectID, upload PhotoUpload) (*domain.ProgressPhoto, error) {
	raw, err := io.ReadAll(io.LimitReader(upload.Body, s.opts.MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	if int64(len(raw)) > s.opts.MaxUploadBytes {
		return nil, ErrPhotoTooLarge
	}

	img, err := imaging.Decode(bytes.NewReader(raw), imaging.AutoOrientation(true))
	if err != nil {
		log.WithError(err).WithField("fileName", upload.FileName).Debug("decode upload")
		return nil, ErrInvalidImage
	}
	resized := imaging.Fit(img, s.opts.MaxDimension, s.opts.MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(s.opts.JPEGQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}

	now := s.now()
	takenAt := upload.TakenAt
	if takenAt.IsZero() {
		takenAt = now
	}
	bounds := resized.Bounds()
	photo := &domain.ProgressPhoto{
		OwnerID:     ownerID,
		SessionID:   upload.SessionID,
		S3ObjectKey: storage.ObjectKey("photos", ownerID.Hex(), ".jpg"),
		FileName:    filepath.Base(upload.FileName),
		ContentType: photoContentType,
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		Size:        int64(buf.Len()),
		TakenAt:     takenAt.UTC(),
		UploadedAt:  now.UTC(),
	}

	if err := s.fileStorage.PutObject(ctx, photo.S3ObjectKey, photoContentType, &buf, photo.Size); err != nil {
		log.WithError(err).WithField("key", photo.S3ObjectKey).Error("upload photo object")
		return nil, ErrPhotoStorage
	}

	if _, err := s.photoRepo.Create(ctx, photo); err != nil {
		// Don't leave an orphaned object behind.
		if delErr := s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey); delErr != nil {
			log.WithError(delErr).WithField("key", photo.S3ObjectKey).Warn("remove orphaned photo object")
		}
		return nil, fmt.Errorf("create photo record: %w", err)
	}

	s.metrics.CounterPhotoUploads.Inc()
	log.WithFields(log.Fields{
		"photoId": photo.ID.Hex(),
		"ownerId": ownerID.Hex(),
		"width":   photo.Width,
		"height":  photo.Height,
		"bytes":   photo.Size,
	}).Info("progress photo stored")
	return photo, nil
}

func (s *photoService) ListPhotos(ctx context.Context, ownerID primitive.ObjectID) ([]domain.ProgressPhoto, error) {
	photos, err := s.photoRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return photos, nil
}

// GetPhotoURL returns a presigned GET URL for one of the owner's photos.
func (s *photoService) GetPhotoURL(ctx context.Context, ownerID, photoID primitive.ObjectID) (string, error) {
	photo, err := s.ownedPhoto(ctx, ownerID, photoID)
	if err != nil {
		return "", err
	}
	url, err := s.fileStorage.GeneratePresignedDownloadURL(ctx, photo.S3ObjectKey, s.opts.URLExpiry)
	if err != nil {
		log.WithError(err).WithField("photoId", photoID.Hex()).Error("presign photo url")
		return "", ErrPresignFailed
	}
	return url, nil
}

// DeletePhoto removes the record first; a failing object delete only leaves an
// unreachable object behind.
func (s *photoService) DeletePhoto(ctx context.Context, ownerID, photoID primitive.ObjectID) error {
	photo, err := s.ownedPhoto(ctx, ownerID, photoID)
	if err != nil {
		return err
	}
	if err := s.photoRepo.Delete(ctx, photoID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("delete photo record: %w", err)
	}
	if err := s.fileStorage.DeleteObject(ctx, photo.S3ObjectKey); err != nil {
		log.WithError(err).WithField("key", photo.S3ObjectKey).Warn("delete photo object")
	}
	return nil
}

func (s *photoService) ownedPhoto(ctx context.Context, ownerID, photoID primitive.ObjectID) (*domain.ProgressPhoto, error) {
	photo, err := s.photoRepo.GetByID(ctx, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("get photo: %w", err)
	}
	if photo.OwnerID != ownerID {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}
