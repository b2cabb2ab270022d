// Package commands implements the one-shot subcommands. Each handler runs
// its requests through the store, prints to w and returns an error instead
// of exiting so the caller decides the exit code.
package commands

import (
	"context"
	"errors"

	"github.com/fatih/color"

	"podash/pkg/models"
	"podash/pkg/store"
)

var (
	urgentMark    = color.New(color.FgRed, color.Bold).Sprint("!")
	pendingMark   = color.New(color.FgYellow).Sprint("○")
	completedMark = color.New(color.FgGreen).Sprint("✓")
)

// ErrNoUser is returned when no user id is configured or derivable
var ErrNoUser = errors.New("no user id configured: set user_id or provide a token")

func run(ctx context.Context, st *store.Store, a store.AsyncAction) (store.Action, error) {
	result := st.Run(ctx, a)
	if msg, ok := store.Rejected(result); ok {
		return result, errors.New(msg)
	}
	return result, nil
}

// loadTasks fetches the signed-in user's tasks into the store
func loadTasks(ctx context.Context, st *store.Store, client store.API) ([]models.Task, error) {
	userID := st.State().Auth.UserID
	if userID == "" {
		return nil, ErrNoUser
	}
	if _, err := run(ctx, st, store.FetchTasksAssignedToUser(client, userID)); err != nil {
		return nil, err
	}
	return st.State().Task.UserTasks, nil
}

func statusMark(s models.TaskStatus) string {
	if s == models.TaskCompleted {
		return completedMark
	}
	return pendingMark
}
