package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"podash/pkg/database"
	"podash/pkg/models"
	"podash/pkg/store"
)

// ExportTasks writes the user's tasks to filename as json or txt
func ExportTasks(ctx context.Context, w io.Writer, st *store.Store, client store.API, filename, exportType string) error {
	tasks, err := loadTasks(ctx, st, client)
	if err != nil {
		return fmt.Errorf("error loading tasks: %w", err)
	}

	var content []byte

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling tasks to JSON: %w", err)
		}
	case "txt":
		content = []byte(formatText(tasks))
	default:
		return fmt.Errorf("unknown export type: %s", exportType)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}
	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Fprintf(w, "Successfully exported %d task(s) to %s\n", len(tasks), filename)
	return nil
}

// formatText groups tasks under their due date, latest first
func formatText(tasks []models.Task) string {
	sorted := make([]models.Task, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		di, dj := sorted[i].TaskDeadline, sorted[j].TaskDeadline
		if di == nil || dj == nil {
			return dj == nil && di != nil
		}
		return di.After(dj.Time)
	})

	var lines []string
	lastDate := "\x00"
	for _, task := range sorted {
		dateStr := "No due date"
		if task.TaskDeadline != nil && !task.TaskDeadline.IsZero() {
			dateStr = task.TaskDeadline.Format("02.01.2006")
		}
		if dateStr != lastDate {
			lines = append(lines, fmt.Sprintf("\n%s:", dateStr))
			lastDate = dateStr
		}

		status := " "
		if task.IsCompleted() {
			status = "x"
		}
		line := fmt.Sprintf("- [%s] %s", status, task.Title)
		if po := task.PONumber(); po != "" {
			line += " (" + po + ")"
		}
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExportSnapshot upserts the user's tasks into the database at dsn
func ExportSnapshot(ctx context.Context, w io.Writer, st *store.Store, client store.API, dsn string) error {
	tasks, err := loadTasks(ctx, st, client)
	if err != nil {
		return fmt.Errorf("error loading tasks: %w", err)
	}

	db, err := database.Open(dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		return err
	}
	if err := database.SaveTasks(db, st.State().Auth.UserID, tasks); err != nil {
		return err
	}

	fmt.Fprintf(w, "Successfully saved %d task(s) to %s database\n", len(tasks), database.Driver(dsn))
	return nil
}
