// Content add command creates a node in a resource's tree.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

var (
	contentResourceID  string
	contentParentID    string
	contentType        string
	contentTitle       string
	contentNumber      string
	contentPageNumber  int
	contentDescription string
)

var contentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a content node",
	Long: `Add creates a content node under the given parent, or at the top
level of the resource when --parent is omitted. The sibling position is
allocated automatically.

Example:
  solutions content add --resource <id> --type CHAPTER --title "Chapter 1"
  solutions content add --resource <id> --parent <chapter-id> --type SECTION --title "1.1 Functions"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			node := &types.Content{
				ResourceID:  contentResourceID,
				ParentID:    contentParentID,
				Type:        contentType,
				Title:       contentTitle,
				Number:      contentNumber,
				Description: contentDescription,
			}
			if cmd.Flags().Changed("page") {
				page := contentPageNumber
				node.PageNumber = &page
			}
			id, err := svc.CreateContent(node)
			if err != nil {
				return fmt.Errorf("create content: %w", err)
			}
			return printEntity(node, func() {
				fmt.Println("Created content:", id)
			})
		})
	},
}

func init() {
	contentAddCmd.Flags().StringVar(&contentResourceID, "resource", "", "owning resource id (required)")
	contentAddCmd.Flags().StringVar(&contentParentID, "parent", "", "parent node id (omit for top level)")
	contentAddCmd.Flags().StringVar(&contentType, "type", "", "node type (CHAPTER, SECTION, PAGE, EXERCISE) (required)")
	contentAddCmd.Flags().StringVar(&contentTitle, "title", "", "node title (required)")
	contentAddCmd.Flags().StringVar(&contentNumber, "number", "", "display number, e.g. 1.2")
	contentAddCmd.Flags().IntVar(&contentPageNumber, "page", 0, "page number in the printed resource")
	contentAddCmd.Flags().StringVar(&contentDescription, "description", "", "node description")
	_ = contentAddCmd.MarkFlagRequired("resource")
	_ = contentAddCmd.MarkFlagRequired("type")
	_ = contentAddCmd.MarkFlagRequired("title")
}
