package cli

import (
	"flag"
	"fmt"
	"time"

	"github.com/TWRT/taskdeck/internal/models"
)

func (a *App) listProjects() error {
	projects, err := a.Tasks.ListProjects()
	if err != nil {
		return err
	}
	renderProjects(a.Out, projects)
	return nil
}

func (a *App) listTasks(args []string) error {
	fs := flag.NewFlagSet("tasks", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	page := fs.Int("page", 1, "page number")
	size := fs.Int("size", 0, "page size")
	if err := parseArgs(fs, args); err != nil {
		return err
	}
	if err := wantArgs(fs.Args(), 1, "tasks <project-id> [-page N] [-size N]"); err != nil {
		return err
	}

	taskPage, err := a.Tasks.ListTasks(fs.Arg(0), *page, *size)
	if err != nil {
		return err
	}
	renderTaskPage(a.Out, taskPage)
	return nil
}

func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return &t, nil
}

func taskFlags(fs *flag.FlagSet) (name, desc, status *string, priority *int, start, due *string) {
	name = fs.String("name", "", "task name")
	desc = fs.String("desc", "", "description")
	status = fs.String("status", "", "status: pending, in-progress or completed")
	priority = fs.Int("priority", 0, "priority")
	start = fs.String("start", "", "start date (YYYY-MM-DD)")
	due = fs.String("due", "", "due date (YYYY-MM-DD)")
	return
}

func taskFromFlags(name, desc, status string, priority int, start, due string) (models.Task, error) {
	startDate, err := parseDateFlag(start)
	if err != nil {
		return models.Task{}, err
	}
	dueDate, err := parseDateFlag(due)
	if err != nil {
		return models.Task{}, err
	}
	return models.Task{
		Name:        name,
		Description: desc,
		Status:      models.TaskStatus(status),
		Priority:    priority,
		StartDate:   startDate,
		DueDate:     dueDate,
	}, nil
}

func (a *App) createTask(args []string) error {
	if err := wantArgs(args, 2, "task-create <project-id> <name> [flags]"); err != nil {
		return err
	}
	projectId, name := args[0], args[1]

	fs := flag.NewFlagSet("task-create", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	_, desc, status, priority, start, due := taskFlags(fs)
	if err := parseArgs(fs, args[2:]); err != nil {
		return err
	}

	task, err := taskFromFlags(name, *desc, *status, *priority, *start, *due)
	if err != nil {
		return err
	}

	created, err := a.Tasks.CreateTask(projectId, task)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Created task %s (%s)\n", created.Name, created.Id)
	return nil
}

func (a *App) updateTask(args []string) error {
	if err := wantArgs(args, 1, "task-update <task-id> [flags]"); err != nil {
		return err
	}
	taskId := args[0]

	fs := flag.NewFlagSet("task-update", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	name, desc, status, priority, start, due := taskFlags(fs)
	if err := parseArgs(fs, args[1:]); err != nil {
		return err
	}

	task, err := taskFromFlags(*name, *desc, *status, *priority, *start, *due)
	if err != nil {
		return err
	}

	updated, err := a.Tasks.UpdateTask(taskId, task)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.Out, "Updated task %s (%s)\n", updated.Name, updated.Id)
	return nil
}

func (a *App) deleteTask(args []string) error {
	if err := wantArgs(args, 1, "task-delete <task-id>"); err != nil {
		return err
	}

	if err := a.Tasks.DeleteTask(args[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Task deleted.")
	return nil
}

func parseArgs(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}
	return nil
}
