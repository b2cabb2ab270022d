package models

import (
	"bytes"
	"encoding/json"
)

// TaskStatus is the assignee-side lifecycle of a task
type TaskStatus string

const (
	TaskPending   TaskStatus = "pending"
	TaskCompleted TaskStatus = "completed"
)

// Toggled flips completed to pending; any other value becomes completed
func (s TaskStatus) Toggled() TaskStatus {
	if s == TaskCompleted {
		return TaskPending
	}
	return TaskCompleted
}

// UserRef points at an employee
type UserRef struct {
	ID         string `json:"userId,omitempty"`
	Username   string `json:"username"`
	EmployeeID string `json:"employeeId"`
}

// UnmarshalJSON accepts a populated user object or a bare user id
func (u *UserRef) UnmarshalJSON(b []byte) error {
	if id, ok, err := bareID(b); ok || err != nil {
		*u = UserRef{ID: id}
		return err
	}
	type plain UserRef
	var v struct {
		plain
		MongoID string `json:"_id"`
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*u = UserRef(v.plain)
	if u.ID == "" {
		u.ID = v.MongoID
	}
	return nil
}

// OrderRef is the purchase order a task was raised from
type OrderRef struct {
	ID          string `json:"_id"`
	OrderNumber string `json:"orderNumber"`
}

// UnmarshalJSON accepts a populated order object or a bare order id
func (o *OrderRef) UnmarshalJSON(b []byte) error {
	if id, ok, err := bareID(b); ok || err != nil {
		*o = OrderRef{ID: id}
		return err
	}
	type plain OrderRef
	var v plain
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*o = OrderRef(v)
	return nil
}

// bareID reports whether b is an unpopulated reference, a JSON string id
func bareID(b []byte) (string, bool, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '"' {
		return "", false, nil
	}
	var id string
	err := json.Unmarshal(b, &id)
	return id, true, err
}

// Task is a unit of work assigned to a user
type Task struct {
	ID           string     `json:"_id"`
	Title        string     `json:"taskTitle"`
	Description  string     `json:"description"`
	TaskType     string     `json:"taskType"`
	Urgent       bool       `json:"urgent"`
	Status       string     `json:"status,omitempty"`
	UserStatus   TaskStatus `json:"userStatus"`
	TaskDeadline *Timestamp `json:"taskDeadline,omitempty"`
	CreatedAt    *Timestamp `json:"createdAt,omitempty"`
	PO           *OrderRef  `json:"poId,omitempty"`
	AssignedBy   *UserRef   `json:"assignedBy,omitempty"`
}

// IsCompleted reports whether the assignee finished the task
func (t Task) IsCompleted() bool {
	return t.UserStatus == TaskCompleted
}

// PONumber returns the display number of the originating order
func (t Task) PONumber() string {
	if t.PO == nil {
		return ""
	}
	if t.PO.OrderNumber == "" {
		return "PO"
	}
	return t.PO.OrderNumber
}
