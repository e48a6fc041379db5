package service

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/TWRT/taskdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttachmentAPI struct {
	uploadURLErr error
	registerErr  error

	calls      []string
	registered []string
}

func (f *fakeAttachmentAPI) GetAttachments(taskId string) ([]models.Attachment, error) {
	f.calls = append(f.calls, "list")
	return nil, nil
}

func (f *fakeAttachmentAPI) CreateUploadURL(taskId, fileName, fileType string) (*models.UploadTarget, error) {
	f.calls = append(f.calls, "upload-url")
	if f.uploadURLErr != nil {
		return nil, f.uploadURLErr
	}
	return &models.UploadTarget{
		UploadURL: "https://storage.example.com/signed/" + fileName,
		FilePath:  "tasks/" + taskId + "/" + fileName,
	}, nil
}

func (f *fakeAttachmentAPI) RegisterAttachment(taskId, fileName, filePath, fileType string, fileSize int64) (*models.Attachment, error) {
	f.calls = append(f.calls, "register")
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, filePath)
	return &models.Attachment{
		Id:       "a1",
		TaskId:   taskId,
		FileName: fileName,
		FilePath: filePath,
		FileType: fileType,
		FileSize: &fileSize,
	}, nil
}

func (f *fakeAttachmentAPI) CreateLinkAttachment(taskId, name, url string) (*models.Attachment, error) {
	f.calls = append(f.calls, "link")
	return &models.Attachment{Id: "a2", TaskId: taskId, FileName: name, FileType: models.LinkFileType, URL: url}, nil
}

func (f *fakeAttachmentAPI) CreateDownloadURL(attachmentId string) (string, error) {
	f.calls = append(f.calls, "download-url")
	return "https://storage.example.com/signed-get/" + attachmentId, nil
}

func (f *fakeAttachmentAPI) DeleteAttachment(attachmentId string) error {
	f.calls = append(f.calls, "delete")
	return nil
}

type fakeObjectStore struct {
	putErr  error
	putURLs []string
	putBody string
	content string
}

func (f *fakeObjectStore) Put(signedURL, contentType string, body io.Reader, size int64) error {
	f.putURLs = append(f.putURLs, signedURL)
	b, _ := io.ReadAll(body)
	f.putBody = string(b)
	return f.putErr
}

func (f *fakeObjectStore) Get(signedURL string) (io.ReadCloser, int64, error) {
	return io.NopCloser(strings.NewReader(f.content)), int64(len(f.content)), nil
}

func TestUploadRunsThreeStepsInOrder(t *testing.T) {
	api := &fakeAttachmentAPI{}
	store := &fakeObjectStore{}
	svc := NewAttachmentService(api, store, nil)

	attachment, err := svc.Upload("t1", "report.pdf", "application/pdf", 11, strings.NewReader("hello bytes"))
	require.NoError(t, err)

	assert.Equal(t, []string{"upload-url", "register"}, api.calls)
	assert.Equal(t, []string{"https://storage.example.com/signed/report.pdf"}, store.putURLs)
	assert.Equal(t, "hello bytes", store.putBody)
	assert.Equal(t, "tasks/t1/report.pdf", attachment.FilePath)
}

func TestUploadStopsWhenSignedURLRequestFails(t *testing.T) {
	api := &fakeAttachmentAPI{uploadURLErr: errors.New("quota exceeded")}
	store := &fakeObjectStore{}
	svc := NewAttachmentService(api, store, nil)

	_, err := svc.Upload("t1", "report.pdf", "application/pdf", 4, strings.NewReader("data"))
	require.EqualError(t, err, "quota exceeded")
	assert.Empty(t, store.putURLs, "no bytes should reach storage")
	assert.Equal(t, []string{"upload-url"}, api.calls)
}

func TestFailedStoragePutRegistersNothing(t *testing.T) {
	api := &fakeAttachmentAPI{}
	store := &fakeObjectStore{putErr: errors.New("storage upload failed with status 403")}
	svc := NewAttachmentService(api, store, nil)

	_, err := svc.Upload("t1", "report.pdf", "application/pdf", 4, strings.NewReader("data"))
	require.Error(t, err)
	assert.NotContains(t, api.calls, "register", "a failed PUT must not create an attachment record")
	assert.Empty(t, api.registered)
}

func TestRegisterFailureSurfacesError(t *testing.T) {
	api := &fakeAttachmentAPI{registerErr: errors.New("task was deleted")}
	store := &fakeObjectStore{}
	svc := NewAttachmentService(api, store, nil)

	_, err := svc.Upload("t1", "report.pdf", "application/pdf", 4, strings.NewReader("data"))
	require.EqualError(t, err, "task was deleted")
	// The orphaned object is left behind; there is no cleanup step.
	assert.Len(t, store.putURLs, 1)
}

func TestPreviewURLOnlyForEligibleTypes(t *testing.T) {
	api := &fakeAttachmentAPI{}
	svc := NewAttachmentService(api, &fakeObjectStore{}, nil)

	url, err := svc.PreviewURL(models.Attachment{Id: "a1", FileType: "image/png"})
	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/signed-get/a1", url)

	_, err = svc.PreviewURL(models.Attachment{Id: "a2", FileType: "application/zip"})
	require.ErrorIs(t, err, ErrPreviewUnavailable)

	_, err = svc.PreviewURL(models.Attachment{Id: "a3", FileType: models.LinkFileType})
	require.ErrorIs(t, err, ErrPreviewUnavailable)

	// Only the eligible attachment asked for a signed URL.
	count := 0
	for _, call := range api.calls {
		if call == "download-url" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestDownloadStreamsSignedObject(t *testing.T) {
	api := &fakeAttachmentAPI{}
	store := &fakeObjectStore{content: "file body"}
	svc := NewAttachmentService(api, store, nil)

	var buf strings.Builder
	n, err := svc.Download("a1", &buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len("file body")), n)
	assert.Equal(t, "file body", buf.String())
}

func TestFileTypeFor(t *testing.T) {
	assert.Equal(t, "application/pdf", fileTypeFor("report.pdf"))
	assert.Equal(t, "image/png", fileTypeFor("chart.png"))
	assert.Equal(t, "application/octet-stream", fileTypeFor("data.weirdext"))
	// Parameters from the mime table are stripped.
	assert.NotContains(t, fileTypeFor("notes.txt"), ";")
}
