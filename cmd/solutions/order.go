// Order command shows the next free sibling position.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

var (
	orderResourceID string
	orderParentID   string
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Inspect sibling ordering",
}

var orderNextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show the order a new node would receive",
	Long: `Next reports the sibling position the next created node gets:
under --parent for child nodes, or at the top level of --resource.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if orderParentID == "" && orderResourceID == "" {
			return fmt.Errorf("one of --parent or --resource is required")
		}
		return withService(func(svc *catalog.Service) error {
			var order int
			var err error
			if orderParentID != "" {
				order, err = svc.NextOrder(orderParentID)
			} else {
				order, err = svc.NextTopLevelOrder(orderResourceID)
			}
			if err != nil {
				return fmt.Errorf("next order: %w", err)
			}
			fmt.Println(order)
			return nil
		})
	},
}

func init() {
	orderNextCmd.Flags().StringVar(&orderParentID, "parent", "", "parent node id")
	orderNextCmd.Flags().StringVar(&orderResourceID, "resource", "", "resource id for top-level order")
	orderCmd.AddCommand(orderNextCmd)
}
