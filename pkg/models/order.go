package models

import "fmt"

// OrderStatus is the lifecycle of a purchase order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderDelayed   OrderStatus = "delayed"
	OrderRejected  OrderStatus = "rejected"
)

// OrderStatuses lists the statuses in display order
var OrderStatuses = []OrderStatus{OrderPending, OrderCompleted, OrderDelayed, OrderRejected}

// ParseOrderStatus validates s against the known statuses
func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, status := range OrderStatuses {
		if string(status) == s {
			return status, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

// Next cycles through OrderStatuses
func (s OrderStatus) Next() OrderStatus {
	for i, status := range OrderStatuses {
		if status == s {
			return OrderStatuses[(i+1)%len(OrderStatuses)]
		}
	}
	return OrderPending
}

// Product is a line item of an order. ID is empty until the order is saved.
type Product struct {
	ID       string  `json:"_id,omitempty"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Remark   string  `json:"remark,omitempty"`
}

// Total is price times quantity
func (p Product) Total() float64 {
	return p.Price * float64(p.Quantity)
}

// Order is a client purchase order
type Order struct {
	ID                    string      `json:"_id"`
	OrderNumber           string      `json:"orderNumber"`
	OrderDate             string      `json:"orderDate"`
	CreatedAt             string      `json:"createdAt"`
	ClientName            string      `json:"clientName"`
	CompanyName           string      `json:"companyName"`
	Address               string      `json:"address"`
	ZipCode               string      `json:"zipCode"`
	Contact               string      `json:"contact"`
	GSTNumber             string      `json:"gstNumber"`
	EstimatedDispatchDate string      `json:"estimatedDispatchDate"`
	OrderVia              string      `json:"orderVia,omitempty"`
	Status                OrderStatus `json:"status"`
	Products              []Product   `json:"products"`
	GeneratedBy           UserRef     `json:"generatedBy"`
	OrderThrough          UserRef     `json:"orderThrough"`
}

// Total sums the product totals
func (o Order) Total() float64 {
	var sum float64
	for _, p := range o.Products {
		sum += p.Total()
	}
	return sum
}

// OrderPayload is the body sent when updating an order
type OrderPayload struct {
	OrderNumber           string      `json:"orderNumber"`
	OrderDate             string      `json:"orderDate"`
	ClientName            string      `json:"clientName"`
	CompanyName           string      `json:"companyName"`
	Address               string      `json:"address"`
	ZipCode               string      `json:"zipCode"`
	Contact               string      `json:"contact"`
	GSTNumber             string      `json:"gstNumber"`
	EstimatedDispatchDate string      `json:"estimatedDispatchDate"`
	Status                OrderStatus `json:"status"`
	Products              []Product   `json:"products"`
	GeneratedBy           UserRef     `json:"generatedBy"`
	OrderThrough          UserRef     `json:"orderThrough"`
	CreatedAt             string      `json:"createdAt"`
}
