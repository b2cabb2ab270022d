package database

import (
	"database/sql"
	"time"

	"podash/pkg/models"
)

// TaskRow is one exported task
type TaskRow struct {
	ID          string       `db:"id"`
	UserID      string       `db:"user_id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	TaskType    string       `db:"task_type"`
	Urgent      bool         `db:"urgent"`
	UserStatus  string       `db:"user_status"`
	POID        string       `db:"po_id"`
	PONumber    string       `db:"po_number"`
	AssignedBy  string       `db:"assigned_by"`
	Deadline    sql.NullTime `db:"deadline"`
	Created     sql.NullTime `db:"created"`
	Exported    time.Time    `db:"exported"`
}

// RowFromTask flattens t for storage
func RowFromTask(userID string, t models.Task, exported time.Time) TaskRow {
	row := TaskRow{
		ID:          t.ID,
		UserID:      userID,
		Title:       t.Title,
		Description: t.Description,
		TaskType:    t.TaskType,
		Urgent:      t.Urgent,
		UserStatus:  string(t.UserStatus),
		Exported:    exported.UTC(),
	}
	if t.PO != nil {
		row.POID = t.PO.ID
		row.PONumber = t.PO.OrderNumber
	}
	if t.AssignedBy != nil {
		row.AssignedBy = t.AssignedBy.Username
	}
	if t.TaskDeadline != nil && !t.TaskDeadline.IsZero() {
		row.Deadline = sql.NullTime{Time: t.TaskDeadline.UTC(), Valid: true}
	}
	if t.CreatedAt != nil && !t.CreatedAt.IsZero() {
		row.Created = sql.NullTime{Time: t.CreatedAt.UTC(), Valid: true}
	}
	return row
}

// Task rebuilds the task as far as the snapshot keeps it
func (r TaskRow) Task() models.Task {
	t := models.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		TaskType:    r.TaskType,
		Urgent:      r.Urgent,
		UserStatus:  models.TaskStatus(r.UserStatus),
	}
	if r.POID != "" || r.PONumber != "" {
		t.PO = &models.OrderRef{ID: r.POID, OrderNumber: r.PONumber}
	}
	if r.AssignedBy != "" {
		t.AssignedBy = &models.UserRef{Username: r.AssignedBy}
	}
	if r.Deadline.Valid {
		t.TaskDeadline = models.NewTimestamp(r.Deadline.Time)
	}
	if r.Created.Valid {
		t.CreatedAt = models.NewTimestamp(r.Created.Time)
	}
	return t
}
