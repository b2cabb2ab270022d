package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"podash/pkg/badge"
	"podash/pkg/models"
	"podash/pkg/orderform"
	"podash/pkg/store"
)

var badgeColors = map[string]color.Attribute{
	"blue":   color.FgBlue,
	"green":  color.FgGreen,
	"purple": color.FgMagenta,
	"orange": color.FgHiRed,
	"pink":   color.FgHiMagenta,
	"teal":   color.FgCyan,
	"yellow": color.FgYellow,
	"gray":   color.FgWhite,
}

// ShowOrder prints an order with its source badge and products
func ShowOrder(ctx context.Context, w io.Writer, st *store.Store, client store.API, orderID string) error {
	result, err := run(ctx, st, store.FetchOrder(client, orderID))
	if err != nil {
		return fmt.Errorf("failed to load order %s: %w", orderID, err)
	}
	o := result.(store.FetchOrderFulfilled).Order

	fmt.Fprintf(w, "Order %s (%s)\n", o.OrderNumber, o.ID)
	if o.OrderVia != "" {
		b := badge.Lookup(o.OrderVia)
		fmt.Fprintf(w, "Source:   %s %s\n", color.New(badgeColors[b.Class], color.Bold).Sprintf("[%s]", b.Label), o.OrderVia)
	}
	fmt.Fprintf(w, "Status:   %s\n", o.Status)
	fmt.Fprintf(w, "Date:     %s\n", models.FormatDate(o.OrderDate))
	fmt.Fprintf(w, "Dispatch: %s\n", models.FormatDate(o.EstimatedDispatchDate))
	fmt.Fprintf(w, "Client:   %s, %s\n", o.ClientName, o.CompanyName)
	if o.GeneratedBy.Username != "" {
		fmt.Fprintf(w, "By:       %s (%s)\n", o.GeneratedBy.Username, o.GeneratedBy.EmployeeID)
	}
	fmt.Fprintln(w)

	if len(o.Products) == 0 {
		fmt.Fprintln(w, "No products.")
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tPRICE\tQTY\tTOTAL\tREMARK")
	for _, p := range o.Products {
		fmt.Fprintf(tw, "%s\t%s\t%.2f\t%d\t%.2f\t%s\n", p.ID, p.Name, p.Price, p.Quantity, p.Total(), p.Remark)
	}
	fmt.Fprintf(tw, "\t\t\t\t%.2f\t\n", o.Total())
	return tw.Flush()
}

// DeleteProduct removes a saved product from an order
func DeleteProduct(ctx context.Context, w io.Writer, st *store.Store, client store.API, orderID, productID string) error {
	if err := orderform.CanDeleteProduct(models.Product{ID: productID}).Error(); err != nil {
		return err
	}
	if _, err := run(ctx, st, store.DeleteProductFromOrder(client, orderID, productID)); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s Product %s deleted from order %s\n", completedMark, productID, orderID)
	return nil
}
