package backend

import (
	"net/http"
	"net/url"

	"github.com/TWRT/taskdeck/internal/models"
)

func (c *Client) GetAttachments(taskId string) ([]models.Attachment, error) {
	path := "/tasks/" + url.PathEscape(taskId) + "/attachments"

	var resp attachmentsResponse
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	attachments := make([]models.Attachment, len(resp.Attachments))
	for i, p := range resp.Attachments {
		attachments[i] = mapAttachment(p)
	}
	return attachments, nil
}

// CreateUploadURL asks the backend for a short-lived signed URL and the
// destination object name for a direct upload.
func (c *Client) CreateUploadURL(taskId, fileName, fileType string) (*models.UploadTarget, error) {
	path := "/tasks/" + url.PathEscape(taskId) + "/attachments/upload-url"

	var resp uploadURLResponse
	err := c.do(http.MethodPost, path, uploadURLRequest{
		FileName: fileName,
		FileType: fileType,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return &models.UploadTarget{
		UploadURL: resp.UploadURL,
		FilePath:  resp.FilePath,
	}, nil
}

// RegisterAttachment records an already-uploaded object as an
// attachment of the task.
func (c *Client) RegisterAttachment(taskId, fileName, filePath, fileType string, fileSize int64) (*models.Attachment, error) {
	path := "/tasks/" + url.PathEscape(taskId) + "/attachments"

	var resp attachmentResponse
	err := c.do(http.MethodPost, path, registerAttachmentRequest{
		FileName: fileName,
		FilePath: filePath,
		FileType: fileType,
		FileSize: fileSize,
	}, &resp)
	if err != nil {
		return nil, err
	}

	attachment := mapAttachment(resp.Attachment)
	return &attachment, nil
}

func (c *Client) CreateLinkAttachment(taskId, name, linkURL string) (*models.Attachment, error) {
	path := "/tasks/" + url.PathEscape(taskId) + "/attachments/link"

	var resp attachmentResponse
	err := c.do(http.MethodPost, path, linkAttachmentRequest{
		FileName: name,
		URL:      linkURL,
	}, &resp)
	if err != nil {
		return nil, err
	}

	attachment := mapAttachment(resp.Attachment)
	return &attachment, nil
}

// CreateDownloadURL fetches a fresh signed GET URL. The URL is
// time-limited, so it is requested per use and never cached.
func (c *Client) CreateDownloadURL(attachmentId string) (string, error) {
	path := "/attachments/" + url.PathEscape(attachmentId) + "/download-url"

	var resp downloadURLResponse
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.DownloadURL, nil
}

func (c *Client) DeleteAttachment(attachmentId string) error {
	path := "/attachments/" + url.PathEscape(attachmentId)
	return c.do(http.MethodDelete, path, nil, nil)
}
