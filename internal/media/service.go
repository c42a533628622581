package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/bowboxshop/bowbox-backend/pkg/config"
	"github.com/bowboxshop/bowbox-backend/pkg/db/models"
	"github.com/bowboxshop/bowbox-backend/pkg/enums"
	pkgerrors "github.com/bowboxshop/bowbox-backend/pkg/errors"
)

var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/webp": {},
	"image/gif":  {},
}

// UploadInput is one admin-console file upload.
type UploadInput struct {
	Kind        enums.MediaKind
	FileName    string
	ContentType string
	SizeBytes   int64
	Body        io.Reader
	UploadedBy  *uuid.UUID
}

// MediaDTO is the stored-object payload returned to the admin console.
type MediaDTO struct {
	ID       uuid.UUID `json:"id"`
	URL      string    `json:"url"`
	GCSKey   string    `json:"gcs_key"`
	FileName string    `json:"file_name"`
	MimeType string    `json:"mime_type"`
}

// Service defines the behavior needed by the admin controllers.
type Service interface {
	Upload(ctx context.Context, input UploadInput) (*MediaDTO, error)
}

type objectUploader interface {
	Upload(ctx context.Context, bucket, object, contentType string, body io.Reader) (string, error)
}

type recorder interface {
	Create(ctx context.Context, record *models.Media) (*models.Media, error)
}

type service struct {
	storage objectUploader
	repo    recorder
	gcsCfg  config.GCSConfig
	maxSize int64
	now     func() time.Time
}

// ServiceParams bundles the dependencies required to build a media service.
type ServiceParams struct {
	Storage objectUploader
	Repo    recorder
	GCS     config.GCSConfig
	Media   config.MediaConfig
	Now     func() time.Time
}

// NewService constructs a media service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Storage == nil {
		return nil, fmt.Errorf("object storage client is required")
	}
	if params.Repo == nil {
		return nil, fmt.Errorf("media repository is required")
	}
	nowFn := params.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &service{
		storage: params.Storage,
		repo:    params.Repo,
		gcsCfg:  params.GCS,
		maxSize: int64(params.Media.MaxUploadMB) * 1024 * 1024,
		now:     nowFn,
	}, nil
}

// Upload streams the file to object storage and records it in the media
// table. The returned URL is publicly servable.
func (s *service) Upload(ctx context.Context, input UploadInput) (*MediaDTO, error) {
	if !input.Kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unknown media kind %q", input.Kind))
	}
	if strings.TrimSpace(input.FileName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file name is required")
	}
	if _, ok := allowedImageTypes[input.ContentType]; !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("unsupported content type %q; images only", input.ContentType))
	}
	if s.maxSize > 0 && input.SizeBytes > s.maxSize {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("file exceeds the %d MB upload limit", s.maxSize/(1024*1024)))
	}
	if input.Body == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "file body is required")
	}

	bucket := s.bucketFor(input.Kind)
	key := buildObjectKey(s.now(), input.FileName)

	url, err := s.storage.Upload(ctx, bucket, key, input.ContentType, input.Body)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "failed to upload object")
	}

	record, err := s.repo.Create(ctx, &models.Media{
		UserID:    input.UploadedBy,
		Kind:      input.Kind,
		URL:       url,
		GCSKey:    key,
		FileName:  input.FileName,
		MimeType:  input.ContentType,
		SizeBytes: input.SizeBytes,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to record upload")
	}

	return &MediaDTO{
		ID:       record.ID,
		URL:      record.URL,
		GCSKey:   record.GCSKey,
		FileName: record.FileName,
		MimeType: record.MimeType,
	}, nil
}

func (s *service) bucketFor(kind enums.MediaKind) string {
	if kind == enums.MediaKindTestimonialImage {
		return s.gcsCfg.TestimonialBucket
	}
	return s.gcsCfg.ProductBucket
}
