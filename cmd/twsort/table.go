package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/twsort/internal/order"
)

// newTableCmd prints the built-in class order in the format read by
// --order-file, as a starting point for custom orders.
func newTableCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the built-in class order as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return order.Encode(cmd.OutOrStdout(), order.Default())
			}

			f, err := os.Create(output)
			if err != nil {
				return fmt.Errorf("creating output file: %w", err)
			}
			if err := order.Encode(f, order.Default()); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to a file instead of stdout")
	return cmd
}
