package backend

import (
	"fmt"
	"time"

	"github.com/TWRT/taskdeck/internal/models"
)

type errorBody struct {
	Error string `json:"error"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  userPayload `json:"user"`
}

type projectPayload struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type projectsResponse struct {
	Projects []projectPayload `json:"projects"`
}

type assigneePayload struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type taskPayload struct {
	Id          string            `json:"id"`
	ProjectId   string            `json:"project_id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	StartDate   string            `json:"start_date"`
	DueDate     string            `json:"due_date"`
	Status      string            `json:"status"`
	Priority    int               `json:"priority"`
	CreatedAt   string            `json:"created_at"`
	UpdatedAt   string            `json:"updated_at"`
	Assignees   []assigneePayload `json:"assignees"`
}

type tasksResponse struct {
	Tasks []taskPayload `json:"tasks"`
	Total int           `json:"total"`
}

type taskResponse struct {
	Task taskPayload `json:"task"`
}

type taskRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	DueDate     string   `json:"due_date,omitempty"`
	Status      string   `json:"status,omitempty"`
	Priority    int      `json:"priority,omitempty"`
	Assignees   []string `json:"assignees,omitempty"`
}

type attachmentPayload struct {
	Id         string `json:"id"`
	TaskId     string `json:"task_id"`
	FileName   string `json:"file_name"`
	FilePath   string `json:"file_path"`
	FileType   string `json:"file_type"`
	FileSize   *int64 `json:"file_size"`
	URL        string `json:"url"`
	UploadedAt string `json:"uploaded_at"`
	CreatedAt  string `json:"created_at"`
}

type attachmentsResponse struct {
	Attachments []attachmentPayload `json:"attachments"`
}

type attachmentResponse struct {
	Attachment attachmentPayload `json:"attachment"`
}

type uploadURLRequest struct {
	FileName string `json:"file_name"`
	FileType string `json:"file_type"`
}

type uploadURLResponse struct {
	UploadURL string `json:"upload_url"`
	FilePath  string `json:"file_path"`
}

type registerAttachmentRequest struct {
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
	FileType string `json:"file_type"`
	FileSize int64  `json:"file_size"`
}

type linkAttachmentRequest struct {
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}

type downloadURLResponse struct {
	DownloadURL string `json:"download_url"`
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("parse date (backend): %w", err)
	}
	utc := time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
	return &utc, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// parseTimestamp is lenient: audit timestamps missing or malformed on
// the wire degrade to the zero time instead of failing the call.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}

func mapTask(p taskPayload) (models.Task, error) {
	startDate, err := parseDate(p.StartDate)
	if err != nil {
		return models.Task{}, err
	}
	dueDate, err := parseDate(p.DueDate)
	if err != nil {
		return models.Task{}, err
	}

	assignees := make([]models.Assignee, 0, len(p.Assignees))
	for _, a := range p.Assignees {
		assignees = append(assignees, models.Assignee{
			ID:    a.Id,
			Name:  a.Name,
			Email: a.Email,
		})
	}

	return models.Task{
		Id:          p.Id,
		ProjectId:   p.ProjectId,
		Name:        p.Name,
		Description: p.Description,
		StartDate:   startDate,
		DueDate:     dueDate,
		Status:      models.TaskStatus(p.Status),
		Priority:    p.Priority,
		CreatedAt:   parseTimestamp(p.CreatedAt),
		UpdatedAt:   parseTimestamp(p.UpdatedAt),
		Assignees:   assignees,
	}, nil
}

// mapAttachment reconciles the two overlapping timestamp fields the
// backend emits, preferring uploaded_at over created_at.
func mapAttachment(p attachmentPayload) models.Attachment {
	ts := p.UploadedAt
	if ts == "" {
		ts = p.CreatedAt
	}
	return models.Attachment{
		Id:         p.Id,
		TaskId:     p.TaskId,
		FileName:   p.FileName,
		FilePath:   p.FilePath,
		FileType:   p.FileType,
		FileSize:   p.FileSize,
		URL:        p.URL,
		UploadedAt: parseTimestamp(ts),
	}
}
