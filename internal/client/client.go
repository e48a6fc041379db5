package client

import (
	"io"

	"github.com/TWRT/taskdeck/internal/models"
)

// TokenSource supplies a bearer token when one was not configured
// explicitly, typically from the stored session.
type TokenSource interface {
	Token() (string, error)
}

type AuthAPI interface {
	Login(email, password string) (string, *models.User, error)
	Register(name, email, password string) (string, *models.User, error)
}

type ProjectAPI interface {
	GetProjects() ([]models.Project, error)
}

type TaskAPI interface {
	GetTasks(projectId string, page, pageSize int) ([]models.Task, int, error)
	CreateTask(projectId string, task models.Task) (*models.Task, error)
	UpdateTask(taskId string, task models.Task) (*models.Task, error)
	DeleteTask(taskId string) error
}

type AttachmentAPI interface {
	GetAttachments(taskId string) ([]models.Attachment, error)
	CreateUploadURL(taskId, fileName, fileType string) (*models.UploadTarget, error)
	RegisterAttachment(taskId, fileName, filePath, fileType string, fileSize int64) (*models.Attachment, error)
	CreateLinkAttachment(taskId, name, url string) (*models.Attachment, error)
	CreateDownloadURL(attachmentId string) (string, error)
	DeleteAttachment(attachmentId string) error
}

// ObjectStore talks to object storage through signed URLs, bypassing
// the backend for the raw bytes.
type ObjectStore interface {
	Put(signedURL, contentType string, body io.Reader, size int64) error
	Get(signedURL string) (io.ReadCloser, int64, error)
}
