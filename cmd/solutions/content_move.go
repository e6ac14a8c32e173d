// Content move command re-parents a node within its resource.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

var moveParentID string

var contentMoveCmd = &cobra.Command{
	Use:   "move <content-id>",
	Short: "Move a node under a new parent",
	Long: `Move re-parents the node and its whole subtree. The node is placed
last among its new siblings. Omitting --parent moves the node to the top
level of its resource. Moves across resources are rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			if err := svc.MoveContent(args[0], moveParentID); err != nil {
				return fmt.Errorf("move content: %w", err)
			}
			node, err := svc.GetNode(args[0])
			if err != nil {
				return fmt.Errorf("get content: %w", err)
			}
			return printEntity(node, func() {
				fmt.Println("Moved content:", node.ContentID)
			})
		})
	},
}

func init() {
	contentMoveCmd.Flags().StringVar(&moveParentID, "parent", "", "new parent node id (omit for top level)")
}
