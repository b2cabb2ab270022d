package orderform

import (
	"fmt"
	"strings"

	"podash/pkg/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// InvalidProductReason is shown when a new product fails validation
const InvalidProductReason = "Please enter valid product details"

// CanAddProduct evaluates whether p may be appended to a draft.
// Rules:
// - Name must not be blank
// - Price must be positive
// - Quantity must be positive
func CanAddProduct(p models.Product) GuardResult {
	if strings.TrimSpace(p.Name) == "" || p.Price <= 0 || p.Quantity <= 0 {
		return GuardResult{Allowed: false, Reason: InvalidProductReason}
	}
	return GuardResult{Allowed: true}
}

// CanDeleteProduct evaluates whether a product can be deleted server side.
// Products that were never saved have no id to address.
func CanDeleteProduct(p models.Product) GuardResult {
	if p.ID == "" {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("product %q has not been saved yet", p.Name),
		}
	}
	return GuardResult{Allowed: true}
}

// CanSubmit evaluates whether a draft can be sent to the backend.
func CanSubmit(orderID string) GuardResult {
	if orderID == "" {
		return GuardResult{Allowed: false, Reason: "Invalid order selected"}
	}
	return GuardResult{Allowed: true}
}
