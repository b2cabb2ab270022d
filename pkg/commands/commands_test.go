package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"podash/pkg/api"
	"podash/pkg/database"
	"podash/pkg/models"
	"podash/pkg/store"
)

func init() {
	color.NoColor = true
}

type fakeAPI struct {
	tasks    []models.Task
	order    models.Order
	statuses map[string]models.TaskStatus
	deleted  []string
}

func (f *fakeAPI) TasksForUser(ctx context.Context, userID string) ([]models.Task, error) {
	return f.tasks, nil
}

func (f *fakeAPI) UpdateUserTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (models.Task, error) {
	if f.statuses == nil {
		f.statuses = map[string]models.TaskStatus{}
	}
	f.statuses[taskID] = status
	for _, t := range f.tasks {
		if t.ID == taskID {
			t.UserStatus = status
			return t, nil
		}
	}
	return models.Task{ID: taskID, Title: taskID, UserStatus: status}, nil
}

func (f *fakeAPI) GetOrder(ctx context.Context, orderID string) (models.Order, error) {
	if orderID != f.order.ID {
		return models.Order{}, &api.APIError{StatusCode: 404, Message: "Order not found"}
	}
	return f.order, nil
}

func (f *fakeAPI) UpdateOrder(ctx context.Context, orderID string, payload models.OrderPayload) (models.Order, error) {
	return f.order, nil
}

func (f *fakeAPI) DeleteOrderProduct(ctx context.Context, orderID, productID string) error {
	f.deleted = append(f.deleted, orderID+"/"+productID)
	return nil
}

func signedIn() *store.Store {
	st := store.New(store.State{})
	st.Dispatch(store.SetCredentials{UserID: "u1", Token: "tok"})
	return st
}

func fixtureTasks() []models.Task {
	jan := models.NewTimestamp(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC))
	feb := models.NewTimestamp(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
	return []models.Task{
		{ID: "t1", Title: "Call client", CreatedAt: jan, TaskDeadline: feb},
		{ID: "t2", Title: "Ship order", Urgent: true, CreatedAt: jan, PO: &models.OrderRef{ID: "o1", OrderNumber: "PO-1"}},
		{ID: "t3", Title: "Invoice", UserStatus: models.TaskCompleted, TaskDeadline: jan},
	}
}

func TestListTasks(t *testing.T) {
	var out bytes.Buffer
	err := ListTasks(context.Background(), &out, signedIn(), &fakeAPI{tasks: fixtureTasks()})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "Total: 3  Pending: 2  Completed: 1") {
		t.Errorf("missing counters:\n%s", got)
	}
	if strings.Contains(got, "Invoice") {
		t.Errorf("completed task listed:\n%s", got)
	}
	if strings.Index(got, "Ship order") > strings.Index(got, "Call client") {
		t.Errorf("Expected urgent task first:\n%s", got)
	}
}

func TestListTasksEmptyAndNoUser(t *testing.T) {
	var out bytes.Buffer
	if err := ListTasks(context.Background(), &out, signedIn(), &fakeAPI{}); err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if !strings.Contains(out.String(), "No tasks assigned.") {
		t.Errorf("Expected empty message, got %q", out.String())
	}

	err := ListTasks(context.Background(), &out, store.New(store.State{}), &fakeAPI{})
	if err == nil || !strings.Contains(err.Error(), ErrNoUser.Error()) {
		t.Errorf("Expected ErrNoUser, got %v", err)
	}
}

func TestToggleTask(t *testing.T) {
	tests := []struct {
		name    string
		taskID  string
		status  string
		want    models.TaskStatus
		wantErr bool
	}{
		{"pending becomes completed", "t1", "", models.TaskCompleted, false},
		{"completed becomes pending", "t3", "", models.TaskPending, false},
		{"forced status", "t3", "completed", models.TaskCompleted, false},
		{"unknown task", "nope", "", "", true},
		{"invalid status", "t1", "done", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAPI{tasks: fixtureTasks()}
			var out bytes.Buffer
			err := ToggleTask(context.Background(), &out, signedIn(), fake, tt.taskID, tt.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToggleTask error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := fake.statuses[tt.taskID]; got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
			if !strings.Contains(out.String(), "marked as "+string(tt.want)) {
				t.Errorf("unexpected output %q", out.String())
			}
		})
	}
}

func TestShowOrder(t *testing.T) {
	fake := &fakeAPI{order: models.Order{
		ID: "o1", OrderNumber: "PO-1", OrderVia: "Trade India", Status: models.OrderDelayed,
		OrderDate: "2024-03-05T00:00:00Z",
		Products:  []models.Product{{ID: "p1", Name: "Valve", Price: 10, Quantity: 3}},
	}}
	var out bytes.Buffer
	if err := ShowOrder(context.Background(), &out, signedIn(), fake, "o1"); err != nil {
		t.Fatalf("ShowOrder failed: %v", err)
	}
	got := out.String()
	for _, want := range []string{"[T-I]", "delayed", "05/03/2024", "Valve", "30.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in output:\n%s", want, got)
		}
	}

	err := ShowOrder(context.Background(), &out, signedIn(), fake, "o2")
	if err == nil || !strings.Contains(err.Error(), "Order not found") {
		t.Errorf("Expected server message, got %v", err)
	}
}

func TestDeleteProduct(t *testing.T) {
	fake := &fakeAPI{}
	var out bytes.Buffer
	if err := DeleteProduct(context.Background(), &out, signedIn(), fake, "o1", "p1"); err != nil {
		t.Fatalf("DeleteProduct failed: %v", err)
	}
	if len(fake.deleted) != 1 || fake.deleted[0] != "o1/p1" {
		t.Errorf("unexpected deletes %v", fake.deleted)
	}
	if err := DeleteProduct(context.Background(), &out, signedIn(), fake, "o1", ""); err == nil {
		t.Errorf("Expected empty product id refused")
	}
}

func TestExportTasks(t *testing.T) {
	dir := t.TempDir()
	fake := &fakeAPI{tasks: fixtureTasks()}

	jsonPath := filepath.Join(dir, "out", "tasks.json")
	var out bytes.Buffer
	if err := ExportTasks(context.Background(), &out, signedIn(), fake, jsonPath, "json"); err != nil {
		t.Fatalf("json export failed: %v", err)
	}
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	var decoded []models.Task
	if err := json.Unmarshal(data, &decoded); err != nil || len(decoded) != 3 {
		t.Errorf("unexpected json export %s (%v)", data, err)
	}

	txtPath := filepath.Join(dir, "tasks.txt")
	if err := ExportTasks(context.Background(), &out, signedIn(), fake, txtPath, "txt"); err != nil {
		t.Fatalf("txt export failed: %v", err)
	}
	data, _ = os.ReadFile(txtPath)
	want := "10.02.2024:\n- [ ] Call client\n\n10.01.2024:\n- [x] Invoice\n\nNo due date:\n- [ ] Ship order (PO-1)"
	if string(data) != want {
		t.Errorf("unexpected txt export:\n%s\nwant:\n%s", data, want)
	}

	if err := ExportTasks(context.Background(), &out, signedIn(), fake, txtPath, "csv"); err == nil {
		t.Errorf("Expected unknown type error")
	}
}

func TestExportSnapshot(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "snap.db")
	var out bytes.Buffer
	if err := ExportSnapshot(context.Background(), &out, signedIn(), &fakeAPI{tasks: fixtureTasks()}, dsn); err != nil {
		t.Fatalf("ExportSnapshot failed: %v", err)
	}

	db, err := database.Open(dsn)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer db.Close()
	tasks, err := database.LoadTasks(db, "u1")
	if err != nil || len(tasks) != 3 {
		t.Errorf("Expected 3 saved tasks, got %d (%v)", len(tasks), err)
	}
	if !strings.Contains(out.String(), "sqlite3") {
		t.Errorf("unexpected output %q", out.String())
	}
}
