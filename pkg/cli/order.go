package cli

import (
	"github.com/spf13/cobra"

	"podash/pkg/commands"
)

// OrderCmd groups the purchase order subcommands
func OrderCmd(f *Flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Inspect and edit purchase orders",
	}
	cmd.AddCommand(orderShowCmd(f))
	cmd.AddCommand(orderDeleteProductCmd(f))
	return cmd
}

func orderShowCmd(f *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "show [order-id]",
		Short: "Show an order and its products",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(f, func(cmd *cobra.Command, args []string, app *App) error {
			return commands.ShowOrder(cmd.Context(), cmd.OutOrStdout(), app.Store, app.Client, args[0])
		}),
	}
}

func orderDeleteProductCmd(f *Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-product [order-id] [product-id]",
		Short: "Delete a saved product from an order",
		Args:  cobra.ExactArgs(2),
		RunE: withApp(f, func(cmd *cobra.Command, args []string, app *App) error {
			return commands.DeleteProduct(cmd.Context(), cmd.OutOrStdout(), app.Store, app.Client, args[0], args[1])
		}),
	}
}
