package store

import "podash/pkg/models"

// Action is a state transition request handled by Reduce
type Action interface {
	Type() string
}

// Task slice

// ResetTask clears the task loading and error flags
type ResetTask struct{}

func (ResetTask) Type() string { return "task/resetask" }

type FetchTasksPending struct{ UserID string }

func (FetchTasksPending) Type() string { return "task/fetchTasksAssignedToUser/pending" }

type FetchTasksFulfilled struct{ Tasks []models.Task }

func (FetchTasksFulfilled) Type() string { return "task/fetchTasksAssignedToUser/fulfilled" }

type FetchTasksRejected struct{ Message string }

func (FetchTasksRejected) Type() string { return "task/fetchTasksAssignedToUser/rejected" }

type UpdateUserStatusPending struct {
	TaskID string
	Status models.TaskStatus
}

func (UpdateUserStatusPending) Type() string { return "tasks/updateUserTaskStatus/pending" }

type UpdateUserStatusFulfilled struct{ Task models.Task }

func (UpdateUserStatusFulfilled) Type() string { return "tasks/updateUserTaskStatus/fulfilled" }

type UpdateUserStatusRejected struct {
	TaskID  string
	Message string
}

func (UpdateUserStatusRejected) Type() string { return "tasks/updateUserTaskStatus/rejected" }

// Order slice

type FetchOrderPending struct{ OrderID string }

func (FetchOrderPending) Type() string { return "order/fetchOrderById/pending" }

type FetchOrderFulfilled struct{ Order models.Order }

func (FetchOrderFulfilled) Type() string { return "order/fetchOrderById/fulfilled" }

type FetchOrderRejected struct{ Message string }

func (FetchOrderRejected) Type() string { return "order/fetchOrderById/rejected" }

type UpdateOrderPending struct{ OrderID string }

func (UpdateOrderPending) Type() string { return "order/updateOrder/pending" }

type UpdateOrderFulfilled struct{ Order models.Order }

func (UpdateOrderFulfilled) Type() string { return "order/updateOrder/fulfilled" }

type UpdateOrderRejected struct{ Message string }

func (UpdateOrderRejected) Type() string { return "order/updateOrder/rejected" }

type DeleteProductPending struct {
	OrderID   string
	ProductID string
}

func (DeleteProductPending) Type() string { return "order/deleteProductFromOrder/pending" }

type DeleteProductFulfilled struct {
	OrderID   string
	ProductID string
}

func (DeleteProductFulfilled) Type() string { return "order/deleteProductFromOrder/fulfilled" }

type DeleteProductRejected struct {
	ProductID string
	Message   string
}

func (DeleteProductRejected) Type() string { return "order/deleteProductFromOrder/rejected" }

// ClearOrder drops the order being edited
type ClearOrder struct{}

func (ClearOrder) Type() string { return "order/clear" }

// Auth slice

type SetCredentials struct {
	UserID string
	Token  string
}

func (SetCredentials) Type() string { return "auth/setCredentials" }

type Logout struct{}

func (Logout) Type() string { return "auth/logout" }

// Rejected reports whether a is a rejection and returns its message
func Rejected(a Action) (string, bool) {
	switch a := a.(type) {
	case FetchTasksRejected:
		return a.Message, true
	case UpdateUserStatusRejected:
		return a.Message, true
	case FetchOrderRejected:
		return a.Message, true
	case UpdateOrderRejected:
		return a.Message, true
	case DeleteProductRejected:
		return a.Message, true
	}
	return "", false
}
