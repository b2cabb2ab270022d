package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"podash/pkg/models"
	"podash/pkg/store"
	"podash/pkg/tasklist"
)

// ListTasks prints the counters and the open tasks in display order
func ListTasks(ctx context.Context, w io.Writer, st *store.Store, client store.API) error {
	tasks, err := loadTasks(ctx, st, client)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	counts := tasklist.Summarize(tasks)
	fmt.Fprintf(w, "Total: %d  Pending: %d  Completed: %d\n\n", counts.Total, counts.Pending, counts.Completed)

	display := tasklist.DisplayList(tasks)
	if len(display) == 0 {
		fmt.Fprintln(w, "No tasks assigned.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, " \tID\tTASK\tTYPE\tPO\tASSIGNED BY\tDUE")
	for _, t := range display {
		mark := statusMark(t.UserStatus)
		if t.Urgent {
			mark = urgentMark
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			mark, t.ID, t.Title, t.TaskType, t.PONumber(), assignedBy(t), due(t))
	}
	return tw.Flush()
}

// ToggleTask flips the user status of taskID, or sets it to status when
// status is not empty.
func ToggleTask(ctx context.Context, w io.Writer, st *store.Store, client store.API, taskID, status string) error {
	var next models.TaskStatus
	switch models.TaskStatus(status) {
	case models.TaskPending, models.TaskCompleted:
		next = models.TaskStatus(status)
	case "":
		tasks, err := loadTasks(ctx, st, client)
		if err != nil {
			return err
		}
		found := false
		for _, t := range tasks {
			if t.ID == taskID {
				next, found = t.UserStatus.Toggled(), true
				break
			}
		}
		if !found {
			return fmt.Errorf("task %s is not assigned to you", taskID)
		}
	default:
		return fmt.Errorf("invalid status %q: use pending or completed", status)
	}

	result, err := run(ctx, st, store.UpdateUserTaskStatus(client, taskID, next))
	if err != nil {
		return err
	}
	task := result.(store.UpdateUserStatusFulfilled).Task
	fmt.Fprintf(w, "%s %s marked as %s\n", statusMark(task.UserStatus), task.Title, task.UserStatus)
	return nil
}

func assignedBy(t models.Task) string {
	if t.AssignedBy == nil {
		return ""
	}
	return t.AssignedBy.Username
}

func due(t models.Task) string {
	if t.TaskDeadline == nil || t.TaskDeadline.IsZero() {
		return "N/A"
	}
	return t.TaskDeadline.Format("02/01/2006")
}
