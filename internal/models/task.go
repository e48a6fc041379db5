package models

import "time"

type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

func ValidStatus(s TaskStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Assignee struct {
	ID    string
	Name  string
	Email string
}

type Task struct {
	Id          string
	ProjectId   string
	Name        string
	Description string
	StartDate   *time.Time
	DueDate     *time.Time
	Status      TaskStatus
	Priority    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Assignees   []Assignee
}
