package database

import (
	"database/sql"
	"fmt"
	"time"

	"podash/pkg/models"
	"podash/pkg/utils"
)

const upsertTask = `
	INSERT INTO task_snapshots (
		id, user_id, title, description, task_type, urgent, user_status,
		po_id, po_number, assigned_by, deadline, created, exported
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (id) DO UPDATE SET
		user_id = excluded.user_id,
		title = excluded.title,
		description = excluded.description,
		task_type = excluded.task_type,
		urgent = excluded.urgent,
		user_status = excluded.user_status,
		po_id = excluded.po_id,
		po_number = excluded.po_number,
		assigned_by = excluded.assigned_by,
		deadline = excluded.deadline,
		created = excluded.created,
		exported = excluded.exported
`

// SaveTasks upserts the tasks of userID in one transaction
func SaveTasks(db *sql.DB, userID string, tasks []models.Task) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(upsertTask)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, t := range tasks {
		if t.ID == "" {
			utils.Log("skipping task without id: %q", t.Title)
			continue
		}
		r := RowFromTask(userID, t, now)
		if _, err := stmt.Exec(
			r.ID, r.UserID, r.Title, r.Description, r.TaskType, r.Urgent, r.UserStatus,
			r.POID, r.PONumber, r.AssignedBy, r.Deadline, r.Created, r.Exported,
		); err != nil {
			return fmt.Errorf("failed to save task %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// LoadTasks reads back the snapshot of userID, newest first
func LoadTasks(db *sql.DB, userID string) ([]models.Task, error) {
	rows, err := db.Query(`
		SELECT id, user_id, title, description, task_type, urgent, user_status,
			po_id, po_number, assigned_by, deadline, created, exported
		FROM task_snapshots
		WHERE user_id = $1
		ORDER BY created DESC, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var r TaskRow
		var description, taskType, poID, poNumber, assignedBy sql.NullString
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.Title, &description, &taskType, &r.Urgent, &r.UserStatus,
			&poID, &poNumber, &assignedBy, &r.Deadline, &r.Created, &r.Exported,
		); err != nil {
			return nil, err
		}
		r.Description = description.String
		r.TaskType = taskType.String
		r.POID = poID.String
		r.PONumber = poNumber.String
		r.AssignedBy = assignedBy.String
		tasks = append(tasks, r.Task())
	}
	return tasks, rows.Err()
}
