package service

import (
	"fmt"

	"github.com/TWRT/taskdeck/internal/client"
	"github.com/TWRT/taskdeck/internal/models"
	"github.com/TWRT/taskdeck/internal/pagination"
)

const DefaultPageSize = 10

// TaskPage is one page of a project's tasks plus the page-number
// window to render under the table.
type TaskPage struct {
	Tasks    []models.Task
	Page     int
	PageSize int
	Total    int
	Window   []pagination.Entry
}

type TaskService struct {
	tasks    client.TaskAPI
	projects client.ProjectAPI
}

func NewTaskService(tasks client.TaskAPI, projects client.ProjectAPI) *TaskService {
	return &TaskService{
		tasks:    tasks,
		projects: projects,
	}
}

func (s *TaskService) ListProjects() ([]models.Project, error) {
	return s.projects.GetProjects()
}

func (s *TaskService) ListTasks(projectId string, page, pageSize int) (*TaskPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	tasks, total, err := s.tasks.GetTasks(projectId, page, pageSize)
	if err != nil {
		return nil, err
	}

	return &TaskPage{
		Tasks:    tasks,
		Page:     page,
		PageSize: pageSize,
		Total:    total,
		Window:   pagination.Window(page, pageSize, total),
	}, nil
}

func (s *TaskService) CreateTask(projectId string, task models.Task) (*models.Task, error) {
	if task.Name == "" {
		return nil, fmt.Errorf("task name is required")
	}
	if task.Status == "" {
		task.Status = models.StatusPending
	}
	if !models.ValidStatus(task.Status) {
		return nil, fmt.Errorf("invalid status %q", task.Status)
	}
	return s.tasks.CreateTask(projectId, task)
}

func (s *TaskService) UpdateTask(taskId string, task models.Task) (*models.Task, error) {
	if task.Status != "" && !models.ValidStatus(task.Status) {
		return nil, fmt.Errorf("invalid status %q", task.Status)
	}
	return s.tasks.UpdateTask(taskId, task)
}

func (s *TaskService) DeleteTask(taskId string) error {
	return s.tasks.DeleteTask(taskId)
}
