package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{"rfc3339", `"2024-03-05T10:20:30.123Z"`, time.Date(2024, 3, 5, 10, 20, 30, 123000000, time.UTC), false},
		{"no zone", `"2024-03-05T10:20:30"`, time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC), false},
		{"date only", `"2024-03-05"`, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), false},
		{"null", `null`, time.Time{}, false},
		{"empty", `""`, time.Time{}, false},
		{"garbage", `"yesterday"`, time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			err := json.Unmarshal([]byte(tt.input), &ts)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && !ts.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, ts.Time)
			}
		})
	}
}

func TestTimestampMarshal(t *testing.T) {
	b, err := json.Marshal(Timestamp{})
	if err != nil || string(b) != `""` {
		t.Errorf("Expected empty string for zero time, got %s (%v)", b, err)
	}

	ts := Timestamp{Time: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	b, err = json.Marshal(ts)
	if err != nil || string(b) != `"2024-01-02T03:04:05Z"` {
		t.Errorf("unexpected encoding %s (%v)", b, err)
	}
}

func TestTaskDecode(t *testing.T) {
	raw := `{"_id":"t1","taskTitle":"Ship","urgent":true,"userStatus":"completed",
		"createdAt":"2024-01-01T00:00:00Z","poId":{"_id":"o1","orderNumber":""},
		"assignedBy":{"username":"asha","employeeId":"E7"}}`

	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !task.IsCompleted() || !task.Urgent || task.Title != "Ship" {
		t.Errorf("unexpected task %+v", task)
	}
	if task.PONumber() != "PO" {
		t.Errorf("Expected placeholder PO number, got %q", task.PONumber())
	}
	if task.AssignedBy.Username != "asha" || task.CreatedAt.Year() != 2024 {
		t.Errorf("unexpected nested fields %+v", task)
	}
	if (Task{}).PONumber() != "" {
		t.Errorf("Expected empty PO number without an order")
	}
}

func TestToggled(t *testing.T) {
	tests := []struct {
		in, want TaskStatus
	}{
		{TaskCompleted, TaskPending},
		{TaskPending, TaskCompleted},
		{"", TaskCompleted},
		{"in-progress", TaskCompleted},
	}
	for _, tt := range tests {
		if got := tt.in.Toggled(); got != tt.want {
			t.Errorf("%q.Toggled() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrderStatus(t *testing.T) {
	if got := OrderRejected.Next(); got != OrderPending {
		t.Errorf("Expected rejected to wrap to pending, got %q", got)
	}
	if got := OrderStatus("bogus").Next(); got != OrderPending {
		t.Errorf("Expected unknown status to reset to pending, got %q", got)
	}
	if _, err := ParseOrderStatus("delayed"); err != nil {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := ParseOrderStatus("Delayed"); err == nil {
		t.Errorf("Expected error for wrong case")
	}
}

func TestOrderTotal(t *testing.T) {
	o := Order{Products: []Product{{Price: 2.5, Quantity: 4}, {Price: 10, Quantity: 1}}}
	if got := o.Total(); got != 20 {
		t.Errorf("Expected 20, got %v", got)
	}
}

func TestFormatDate(t *testing.T) {
	tests := map[string]string{
		"2024-03-05T10:00:00.000Z": "05/03/2024",
		"2024-12-31":               "31/12/2024",
		"":                         "N/A",
		"not a date":               "N/A",
	}
	for in, want := range tests {
		if got := FormatDate(in); got != want {
			t.Errorf("FormatDate(%q) = %q, want %q", in, got, want)
		}
	}
	if got := DateOnly("2024-03-05T10:00:00Z"); got != "2024-03-05" {
		t.Errorf("unexpected DateOnly %q", got)
	}
}

func TestReferenceDecoding(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPO   OrderRef
		wantUser UserRef
	}{
		{
			name:     "populated",
			input:    `{"poId":{"_id":"o1","orderNumber":"PO-1"},"assignedBy":{"userId":"u1","username":"asha"}}`,
			wantPO:   OrderRef{ID: "o1", OrderNumber: "PO-1"},
			wantUser: UserRef{ID: "u1", Username: "asha"},
		},
		{
			name:     "bare ids",
			input:    `{"poId":"o2","assignedBy":"u2"}`,
			wantPO:   OrderRef{ID: "o2"},
			wantUser: UserRef{ID: "u2"},
		},
		{
			name:     "user with mongo id",
			input:    `{"poId":{"_id":"o3"},"assignedBy":{"_id":"u3","employeeId":"E3"}}`,
			wantPO:   OrderRef{ID: "o3"},
			wantUser: UserRef{ID: "u3", EmployeeID: "E3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var task Task
			if err := json.Unmarshal([]byte(tt.input), &task); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if task.PO == nil || *task.PO != tt.wantPO {
				t.Errorf("Expected PO %+v, got %+v", tt.wantPO, task.PO)
			}
			if task.AssignedBy == nil || *task.AssignedBy != tt.wantUser {
				t.Errorf("Expected user %+v, got %+v", tt.wantUser, task.AssignedBy)
			}
		})
	}

	var task Task
	if err := json.Unmarshal([]byte(`{"poId":null}`), &task); err != nil || task.PO != nil {
		t.Errorf("Expected null reference to stay nil, got %+v (%v)", task.PO, err)
	}
}

func TestUnparseableDateDoesNotFailTask(t *testing.T) {
	raw := `{"_id":"t1","createdAt":"not a date","taskDeadline":"2024-05-01"}`
	var task Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if task.CreatedAt == nil || !task.CreatedAt.IsZero() {
		t.Errorf("Expected zero createdAt, got %v", task.CreatedAt)
	}
	if task.TaskDeadline.Month() != time.May {
		t.Errorf("Expected deadline kept, got %v", task.TaskDeadline)
	}
}
