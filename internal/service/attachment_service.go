package service

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/TWRT/taskdeck/internal/client"
	"github.com/TWRT/taskdeck/internal/models"
	"github.com/TWRT/taskdeck/internal/preview"
	"github.com/TWRT/taskdeck/internal/repository"
	"github.com/google/uuid"
)

// ErrPreviewUnavailable means the attachment's type cannot be rendered
// inline; callers should offer the download fallback instead.
var ErrPreviewUnavailable = errors.New("preview unavailable for this file type")

type AttachmentService struct {
	api     client.AttachmentAPI
	store   client.ObjectStore
	uploads *repository.UploadRepository
}

func NewAttachmentService(
	api client.AttachmentAPI,
	store client.ObjectStore,
	uploads *repository.UploadRepository,
) *AttachmentService {
	return &AttachmentService{
		api:     api,
		store:   store,
		uploads: uploads,
	}
}

func (s *AttachmentService) List(taskId string) ([]models.Attachment, error) {
	return s.api.GetAttachments(taskId)
}

// Upload runs the three-step protocol: signed URL from the backend,
// direct PUT of the bytes to object storage, then registration of the
// attachment record. A failed PUT fails the whole operation and leaves
// no attachment record; the possibly half-written object is not
// cleaned up, the backend owns the bucket's lifecycle rules.
func (s *AttachmentService) Upload(taskId, fileName, fileType string, size int64, body io.Reader) (*models.Attachment, error) {
	target, err := s.api.CreateUploadURL(taskId, fileName, fileType)
	if err != nil {
		return nil, err
	}

	if err := s.store.Put(target.UploadURL, fileType, body, size); err != nil {
		return nil, err
	}

	attachment, err := s.api.RegisterAttachment(taskId, fileName, target.FilePath, fileType, size)
	if err != nil {
		return nil, err
	}

	if s.uploads != nil {
		// Journal failures don't undo a registered upload.
		_ = s.uploads.Create(&repository.UploadRecord{
			ID:       uuid.NewString(),
			TaskID:   taskId,
			FileName: fileName,
			FilePath: target.FilePath,
			FileSize: size,
		})
	}

	return attachment, nil
}

// UploadFile uploads a local file, deriving the MIME type from its
// extension.
func (s *AttachmentService) UploadFile(taskId, path string) (*models.Attachment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat file: %w", err)
	}

	return s.Upload(taskId, filepath.Base(path), fileTypeFor(path), info.Size(), f)
}

func fileTypeFor(path string) string {
	fileType := mime.TypeByExtension(filepath.Ext(path))
	if fileType == "" {
		return "application/octet-stream"
	}
	if i := strings.Index(fileType, ";"); i >= 0 {
		fileType = strings.TrimSpace(fileType[:i])
	}
	return fileType
}

// AttachLink registers an external hyperlink as an attachment; no
// bytes are uploaded.
func (s *AttachmentService) AttachLink(taskId, name, url string) (*models.Attachment, error) {
	return s.api.CreateLinkAttachment(taskId, name, url)
}

func (s *AttachmentService) Delete(attachmentId string) error {
	return s.api.DeleteAttachment(attachmentId)
}

// PreviewURL resolves a fresh signed URL for inline rendering. The URL
// is time-limited and must not be cached.
func (s *AttachmentService) PreviewURL(attachment models.Attachment) (string, error) {
	if !preview.Eligible(attachment.FileType) {
		return "", ErrPreviewUnavailable
	}
	return s.api.CreateDownloadURL(attachment.Id)
}

// Download streams the attachment's bytes to dst via a signed GET URL.
func (s *AttachmentService) Download(attachmentId string, dst io.Writer) (int64, error) {
	url, err := s.api.CreateDownloadURL(attachmentId)
	if err != nil {
		return 0, err
	}

	body, _, err := s.store.Get(url)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	return io.Copy(dst, body)
}

func (s *AttachmentService) RecentUploads(taskId string) ([]repository.UploadRecord, error) {
	if s.uploads == nil {
		return nil, nil
	}
	return s.uploads.GetByTask(taskId)
}
