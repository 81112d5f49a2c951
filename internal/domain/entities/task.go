package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TaskColumn is one of the four ordered board columns
type TaskColumn string

const (
	TaskColumnTodo       TaskColumn = "To Do"
	TaskColumnInProgress TaskColumn = "In Progress"
	TaskColumnInReview   TaskColumn = "In Review"
	TaskColumnDone       TaskColumn = "Done"
)

// ValidTaskColumn reports whether s names a board column.
func ValidTaskColumn(s string) bool {
	switch TaskColumn(s) {
	case TaskColumnTodo, TaskColumnInProgress, TaskColumnInReview, TaskColumnDone:
		return true
	}
	return false
}

// Task is a board item owned by a team. Any team member may move it to any
// column, forward or backward, and reassign it freely.
type Task struct {
	ID          uuid.UUID   `json:"id"`
	TeamID      uuid.UUID   `json:"team"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Column      TaskColumn  `json:"column"`
	Assignee    null.String `json:"assignee,omitempty"`
	Order       int         `json:"order"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Column      string `json:"column"`
	Assignee    string `json:"assignee"`
}

// TaskPatch is a partial task update; nil fields are untouched.
// Assignee set to the empty string clears the assignment.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Column      *string `json:"column"`
	Assignee    *string `json:"assignee"`
}
