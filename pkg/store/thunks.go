package store

import (
	"context"

	"podash/pkg/api"
	"podash/pkg/models"
)

// API is the part of the backend client the thunks need
type API interface {
	TasksForUser(ctx context.Context, userID string) ([]models.Task, error)
	UpdateUserTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (models.Task, error)
	GetOrder(ctx context.Context, orderID string) (models.Order, error)
	UpdateOrder(ctx context.Context, orderID string, payload models.OrderPayload) (models.Order, error)
	DeleteOrderProduct(ctx context.Context, orderID, productID string) error
}

// AsyncAction pairs the action dispatched when a request starts with the
// request itself, which resolves to a fulfilled or rejected action.
type AsyncAction struct {
	Pending Action
	Run     func(ctx context.Context) Action
}

// Fallback messages used when the server does not explain a failure
const (
	MsgFetchTasksFailed    = "Failed to fetch tasks"
	MsgUpdateStatusFailed  = "Failed to update user task status"
	MsgFetchOrderFailed    = "Failed to fetch order"
	MsgUpdateOrderFailed   = "Failed to update order"
	MsgDeleteProductFailed = "Failed to delete product"
)

// FetchTasksAssignedToUser loads the tasks assigned to userID
func FetchTasksAssignedToUser(client API, userID string) AsyncAction {
	return AsyncAction{
		Pending: FetchTasksPending{UserID: userID},
		Run: func(ctx context.Context) Action {
			tasks, err := client.TasksForUser(ctx, userID)
			if err != nil {
				return FetchTasksRejected{Message: api.Message(err, MsgFetchTasksFailed)}
			}
			return FetchTasksFulfilled{Tasks: tasks}
		},
	}
}

// UpdateUserTaskStatus sets the assignee status of one task
func UpdateUserTaskStatus(client API, taskID string, status models.TaskStatus) AsyncAction {
	return AsyncAction{
		Pending: UpdateUserStatusPending{TaskID: taskID, Status: status},
		Run: func(ctx context.Context) Action {
			task, err := client.UpdateUserTaskStatus(ctx, taskID, status)
			if err != nil {
				return UpdateUserStatusRejected{TaskID: taskID, Message: api.Message(err, MsgUpdateStatusFailed)}
			}
			return UpdateUserStatusFulfilled{Task: task}
		},
	}
}

// FetchOrder loads an order for editing
func FetchOrder(client API, orderID string) AsyncAction {
	return AsyncAction{
		Pending: FetchOrderPending{OrderID: orderID},
		Run: func(ctx context.Context) Action {
			order, err := client.GetOrder(ctx, orderID)
			if err != nil {
				return FetchOrderRejected{Message: api.Message(err, MsgFetchOrderFailed)}
			}
			return FetchOrderFulfilled{Order: order}
		},
	}
}

// UpdateOrder submits a full order payload
func UpdateOrder(client API, orderID string, payload models.OrderPayload) AsyncAction {
	return AsyncAction{
		Pending: UpdateOrderPending{OrderID: orderID},
		Run: func(ctx context.Context) Action {
			order, err := client.UpdateOrder(ctx, orderID, payload)
			if err != nil {
				return UpdateOrderRejected{Message: api.Message(err, MsgUpdateOrderFailed)}
			}
			return UpdateOrderFulfilled{Order: order}
		},
	}
}

// DeleteProductFromOrder removes a product from an order on the server
func DeleteProductFromOrder(client API, orderID, productID string) AsyncAction {
	return AsyncAction{
		Pending: DeleteProductPending{OrderID: orderID, ProductID: productID},
		Run: func(ctx context.Context) Action {
			if err := client.DeleteOrderProduct(ctx, orderID, productID); err != nil {
				return DeleteProductRejected{ProductID: productID, Message: api.Message(err, MsgDeleteProductFailed)}
			}
			return DeleteProductFulfilled{OrderID: orderID, ProductID: productID}
		},
	}
}
