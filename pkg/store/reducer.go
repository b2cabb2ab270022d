package store

import "podash/pkg/models"

// TaskState is the task slice of the store
type TaskState struct {
	UserTasks []models.Task
	Loading   bool
	Error     string
}

// OrderState is the order slice of the store
type OrderState struct {
	Current *models.Order
	Loading bool
	Error   string
}

// AuthState holds the signed-in identity
type AuthState struct {
	UserID string
	Token  string
}

// State is the whole store
type State struct {
	Task  TaskState
	Order OrderState
	Auth  AuthState
}

// Reduce returns the state that follows s after a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ResetTask:
		s.Task.Loading = false
		s.Task.Error = ""

	case FetchTasksPending:
		s.Task.Loading = true
		s.Task.Error = ""
	case FetchTasksFulfilled:
		s.Task.Loading = false
		s.Task.Error = ""
		s.Task.UserTasks = cloneTasks(a.Tasks)
	case FetchTasksRejected:
		s.Task.Loading = false
		s.Task.Error = a.Message

	case UpdateUserStatusPending:
		// no optimistic update, the list changes once the server agrees
	case UpdateUserStatusFulfilled:
		for i, t := range s.Task.UserTasks {
			if t.ID == a.Task.ID {
				tasks := cloneTasks(s.Task.UserTasks)
				tasks[i] = a.Task
				s.Task.UserTasks = tasks
				break
			}
		}
	case UpdateUserStatusRejected:
		s.Task.Error = a.Message

	case FetchOrderPending:
		s.Order.Loading = true
		s.Order.Error = ""
	case FetchOrderFulfilled:
		order := cloneOrder(a.Order)
		s.Order.Loading = false
		s.Order.Error = ""
		s.Order.Current = &order
	case FetchOrderRejected:
		s.Order.Loading = false
		s.Order.Error = a.Message

	case UpdateOrderPending:
		s.Order.Loading = true
		s.Order.Error = ""
	case UpdateOrderFulfilled:
		s.Order.Loading = false
		s.Order.Error = ""
		if a.Order.ID != "" {
			order := cloneOrder(a.Order)
			s.Order.Current = &order
		}
	case UpdateOrderRejected:
		s.Order.Loading = false
		s.Order.Error = a.Message

	case DeleteProductPending:
		s.Order.Error = ""
	case DeleteProductFulfilled:
		if s.Order.Current != nil && s.Order.Current.ID == a.OrderID {
			order := cloneOrder(*s.Order.Current)
			for i, p := range order.Products {
				if p.ID == a.ProductID {
					order.Products = append(order.Products[:i], order.Products[i+1:]...)
					break
				}
			}
			s.Order.Current = &order
		}
	case DeleteProductRejected:
		s.Order.Error = a.Message

	case ClearOrder:
		s.Order = OrderState{}

	case SetCredentials:
		s.Auth = AuthState{UserID: a.UserID, Token: a.Token}
	case Logout:
		s.Auth = AuthState{}
		s.Task = TaskState{}
		s.Order = OrderState{}
	}
	return s
}

func cloneTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}

func cloneOrder(o models.Order) models.Order {
	products := make([]models.Product, len(o.Products))
	copy(products, o.Products)
	o.Products = products
	return o
}
