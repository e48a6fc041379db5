package service

import (
	"testing"

	"github.com/TWRT/taskdeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTaskAPI struct {
	tasks   []models.Task
	total   int
	created []models.Task

	gotPage, gotSize int
}

func (f *fakeTaskAPI) GetTasks(projectId string, page, pageSize int) ([]models.Task, int, error) {
	f.gotPage, f.gotSize = page, pageSize
	return f.tasks, f.total, nil
}

func (f *fakeTaskAPI) CreateTask(projectId string, task models.Task) (*models.Task, error) {
	f.created = append(f.created, task)
	task.Id = "t-new"
	return &task, nil
}

func (f *fakeTaskAPI) UpdateTask(taskId string, task models.Task) (*models.Task, error) {
	task.Id = taskId
	return &task, nil
}

func (f *fakeTaskAPI) DeleteTask(taskId string) error { return nil }

type fakeProjectAPI struct{}

func (fakeProjectAPI) GetProjects() ([]models.Project, error) {
	return []models.Project{{Id: "p1", Name: "Launch"}}, nil
}

func TestListTasksNormalizesPagingAndBuildsWindow(t *testing.T) {
	api := &fakeTaskAPI{total: 200}
	svc := NewTaskService(api, fakeProjectAPI{})

	page, err := svc.ListTasks("p1", 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, api.gotPage, "page is clamped to 1")
	assert.Equal(t, DefaultPageSize, api.gotSize)
	assert.Equal(t, 200, page.Total)
	require.NotEmpty(t, page.Window)
	assert.Equal(t, 1, page.Window[0].Page)
}

func TestCreateTaskDefaultsAndValidation(t *testing.T) {
	api := &fakeTaskAPI{}
	svc := NewTaskService(api, fakeProjectAPI{})

	created, err := svc.CreateTask("p1", models.Task{Name: "Ship it"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, created.Status)

	_, err = svc.CreateTask("p1", models.Task{})
	require.EqualError(t, err, "task name is required")

	_, err = svc.CreateTask("p1", models.Task{Name: "x", Status: "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")
}

func TestUpdateTaskRejectsUnknownStatus(t *testing.T) {
	svc := NewTaskService(&fakeTaskAPI{}, fakeProjectAPI{})

	_, err := svc.UpdateTask("t1", models.Task{Status: "paused"})
	require.Error(t, err)

	updated, err := svc.UpdateTask("t1", models.Task{Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "t1", updated.Id)
}
