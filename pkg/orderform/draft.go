// Package orderform holds the local draft of an order being edited.
package orderform

import (
	"fmt"
	"strconv"
	"strings"

	"podash/pkg/models"
)

// Draft is the locally held, not yet persisted copy of an order
type Draft struct {
	OrderID               string
	OrderNumber           string
	OrderDate             string
	ClientName            string
	CompanyName           string
	Address               string
	ZipCode               string
	Contact               string
	GSTNumber             string
	EstimatedDispatchDate string
	Status                models.OrderStatus
	Products              []models.Product
	GeneratedBy           models.UserRef
	OrderThrough          models.UserRef
	CreatedAt             string
}

// Fields lists the editable header fields in form order
var Fields = []string{
	"orderNumber",
	"orderDate",
	"estimatedDispatchDate",
	"clientName",
	"companyName",
	"address",
	"zipCode",
	"contact",
	"gstNumber",
	"generatedBy.username",
	"generatedBy.employeeId",
	"orderThrough.username",
	"orderThrough.employeeId",
}

// ProductFields lists the editable product columns
var ProductFields = []string{"name", "price", "quantity", "remark"}

// NewDraft copies the editable fields of order
func NewDraft(order models.Order) *Draft {
	status := order.Status
	if status == "" {
		status = models.OrderPending
	}
	products := make([]models.Product, len(order.Products))
	copy(products, order.Products)

	return &Draft{
		OrderID:               order.ID,
		OrderNumber:           order.OrderNumber,
		OrderDate:             order.OrderDate,
		ClientName:            order.ClientName,
		CompanyName:           order.CompanyName,
		Address:               order.Address,
		ZipCode:               order.ZipCode,
		Contact:               order.Contact,
		GSTNumber:             order.GSTNumber,
		EstimatedDispatchDate: order.EstimatedDispatchDate,
		Status:                status,
		Products:              products,
		GeneratedBy:           order.GeneratedBy,
		OrderThrough:          models.UserRef{Username: order.OrderThrough.Username, EmployeeID: order.OrderThrough.EmployeeID},
		CreatedAt:             order.CreatedAt,
	}
}

// Field returns the current value of a header field
func (d *Draft) Field(name string) (string, error) {
	p, err := d.fieldPtr(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// SetField updates a header field. Nested user fields use dotted names such
// as generatedBy.username.
func (d *Draft) SetField(name, value string) error {
	if name == "status" {
		status, err := models.ParseOrderStatus(value)
		if err != nil {
			return err
		}
		d.Status = status
		return nil
	}
	p, err := d.fieldPtr(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (d *Draft) fieldPtr(name string) (*string, error) {
	switch name {
	case "orderNumber":
		return &d.OrderNumber, nil
	case "orderDate":
		return &d.OrderDate, nil
	case "estimatedDispatchDate":
		return &d.EstimatedDispatchDate, nil
	case "clientName":
		return &d.ClientName, nil
	case "companyName":
		return &d.CompanyName, nil
	case "address":
		return &d.Address, nil
	case "zipCode":
		return &d.ZipCode, nil
	case "contact":
		return &d.Contact, nil
	case "gstNumber":
		return &d.GSTNumber, nil
	case "generatedBy.username":
		return &d.GeneratedBy.Username, nil
	case "generatedBy.employeeId":
		return &d.GeneratedBy.EmployeeID, nil
	case "orderThrough.username":
		return &d.OrderThrough.Username, nil
	case "orderThrough.employeeId":
		return &d.OrderThrough.EmployeeID, nil
	}
	return nil, fmt.Errorf("unknown order field %q", name)
}

// SetProductField edits the product at index. Numeric fields that do not
// parse are stored as 0.
func (d *Draft) SetProductField(index int, field, value string) error {
	if index < 0 || index >= len(d.Products) {
		return fmt.Errorf("product index %d out of range", index)
	}
	p := &d.Products[index]
	switch field {
	case "name":
		p.Name = value
	case "remark":
		p.Remark = value
	case "price":
		p.Price = parseFloat(value)
	case "quantity":
		p.Quantity = int(parseFloat(value))
	default:
		return fmt.Errorf("unknown product field %q", field)
	}
	return nil
}

// ProductField returns a product column rendered for editing
func (d *Draft) ProductField(index int, field string) string {
	if index < 0 || index >= len(d.Products) {
		return ""
	}
	p := d.Products[index]
	switch field {
	case "name":
		return p.Name
	case "remark":
		return p.Remark
	case "price":
		return strconv.FormatFloat(p.Price, 'f', -1, 64)
	case "quantity":
		return strconv.Itoa(p.Quantity)
	}
	return ""
}

// AddProduct appends p to the draft after validation. The product has no id
// until the order is saved.
func (d *Draft) AddProduct(p models.Product) error {
	if err := CanAddProduct(p).Error(); err != nil {
		return err
	}
	p.ID = ""
	d.Products = append(d.Products, p)
	return nil
}

// RemoveProduct drops the product whose id equals id, wherever it sits.
// It reports whether a product was removed.
func (d *Draft) RemoveProduct(id string) bool {
	if id == "" {
		return false
	}
	for i, p := range d.Products {
		if p.ID == id {
			d.Products = append(d.Products[:i:i], d.Products[i+1:]...)
			return true
		}
	}
	return false
}

// Payload builds the full update body
func (d *Draft) Payload() models.OrderPayload {
	products := make([]models.Product, len(d.Products))
	copy(products, d.Products)

	return models.OrderPayload{
		OrderNumber:           d.OrderNumber,
		OrderDate:             d.OrderDate,
		ClientName:            d.ClientName,
		CompanyName:           d.CompanyName,
		Address:               d.Address,
		ZipCode:               d.ZipCode,
		Contact:               d.Contact,
		GSTNumber:             d.GSTNumber,
		EstimatedDispatchDate: d.EstimatedDispatchDate,
		Status:                d.Status,
		Products:              products,
		GeneratedBy:           d.GeneratedBy,
		OrderThrough:          d.OrderThrough,
		CreatedAt:             d.CreatedAt,
	}
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
