// Content commands manage the chapter, section, page, and exercise tree.
package main

import "github.com/spf13/cobra"

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage content nodes",
}

func init() {
	contentCmd.AddCommand(contentAddCmd)
	contentCmd.AddCommand(contentGetCmd)
	contentCmd.AddCommand(contentChildrenCmd)
	contentCmd.AddCommand(contentBreadcrumbCmd)
	contentCmd.AddCommand(contentUpdateCmd)
	contentCmd.AddCommand(contentMoveCmd)
	contentCmd.AddCommand(contentDeleteCmd)
	contentCmd.AddCommand(contentNextCmd)
	contentCmd.AddCommand(contentPrevCmd)
	contentCmd.AddCommand(contentTopCmd)
}
