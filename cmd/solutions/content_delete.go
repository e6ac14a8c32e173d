// Content delete command removes a node and its whole subtree.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

var contentDeleteCmd = &cobra.Command{
	Use:   "delete <content-id>",
	Short: "Delete a node and its subtree",
	Long: `Delete removes the node, all of its descendants, and every question
attached to them. Children are removed before their parents so a failure
partway leaves no orphaned subtrees.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			if err := svc.DeleteSubtree(args[0]); err != nil {
				var deleteErr *catalog.DeleteError
				if errors.As(err, &deleteErr) {
					return fmt.Errorf("delete stopped at node %s: %w", deleteErr.ContentID, deleteErr.Err)
				}
				return fmt.Errorf("delete content: %w", err)
			}
			fmt.Println("Deleted content:", args[0])
			return nil
		})
	},
}
