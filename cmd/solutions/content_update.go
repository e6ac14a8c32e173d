// Content update command edits a node's fields in place.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

var (
	updateTitle       string
	updateNumber      string
	updatePageNumber  int
	updateDescription string
)

var contentUpdateCmd = &cobra.Command{
	Use:   "update <content-id>",
	Short: "Update a content node's fields",
	Long: `Update edits the given fields and leaves the node's placement
(parent and sibling position) untouched. Use "content move" to re-parent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			node, err := svc.GetNode(args[0])
			if err != nil {
				return fmt.Errorf("get content: %w", err)
			}
			if cmd.Flags().Changed("title") {
				node.Title = updateTitle
			}
			if cmd.Flags().Changed("number") {
				node.Number = updateNumber
			}
			if cmd.Flags().Changed("page") {
				page := updatePageNumber
				node.PageNumber = &page
			}
			if cmd.Flags().Changed("description") {
				node.Description = updateDescription
			}
			if err := svc.UpdateContent(node); err != nil {
				return fmt.Errorf("update content: %w", err)
			}
			return printEntity(node, func() {
				fmt.Println("Updated content:", node.ContentID)
			})
		})
	},
}

func init() {
	contentUpdateCmd.Flags().StringVar(&updateTitle, "title", "", "new title")
	contentUpdateCmd.Flags().StringVar(&updateNumber, "number", "", "new display number")
	contentUpdateCmd.Flags().IntVar(&updatePageNumber, "page", 0, "new page number")
	contentUpdateCmd.Flags().StringVar(&updateDescription, "description", "", "new description")
}
