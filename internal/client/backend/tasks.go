package backend

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/TWRT/taskdeck/internal/models"
)

// GetTasks returns one page of a project's tasks plus the total count
// across all pages.
func (c *Client) GetTasks(projectId string, page, pageSize int) ([]models.Task, int, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	path := "/projects/" + url.PathEscape(projectId) + "/tasks?" + q.Encode()

	var resp tasksResponse
	if err := c.do(http.MethodGet, path, nil, &resp); err != nil {
		return nil, 0, err
	}

	tasks := make([]models.Task, len(resp.Tasks))
	for i, p := range resp.Tasks {
		task, err := mapTask(p)
		if err != nil {
			return nil, 0, err
		}
		tasks[i] = task
	}
	return tasks, resp.Total, nil
}

func taskRequestFrom(task models.Task) taskRequest {
	assignees := make([]string, 0, len(task.Assignees))
	for _, a := range task.Assignees {
		assignees = append(assignees, a.ID)
	}
	return taskRequest{
		Name:        task.Name,
		Description: task.Description,
		StartDate:   formatDate(task.StartDate),
		DueDate:     formatDate(task.DueDate),
		Status:      string(task.Status),
		Priority:    task.Priority,
		Assignees:   assignees,
	}
}

func (c *Client) CreateTask(projectId string, task models.Task) (*models.Task, error) {
	path := "/projects/" + url.PathEscape(projectId) + "/tasks"

	var resp taskResponse
	if err := c.do(http.MethodPost, path, taskRequestFrom(task), &resp); err != nil {
		return nil, err
	}

	created, err := mapTask(resp.Task)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateTask(taskId string, task models.Task) (*models.Task, error) {
	path := "/tasks/" + url.PathEscape(taskId)

	var resp taskResponse
	if err := c.do(http.MethodPut, path, taskRequestFrom(task), &resp); err != nil {
		return nil, err
	}

	updated, err := mapTask(resp.Task)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteTask expects a 204; the empty body resolves without parsing.
func (c *Client) DeleteTask(taskId string) error {
	path := "/tasks/" + url.PathEscape(taskId)
	return c.do(http.MethodDelete, path, nil, nil)
}
