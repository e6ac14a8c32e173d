// Content navigation commands: next and prev.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

var contentNextCmd = &cobra.Command{
	Use:   "next <content-id>",
	Short: "Show the node that follows in reading order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			node, err := svc.NextContent(args[0])
			if err != nil {
				return fmt.Errorf("next content: %w", err)
			}
			if node == nil {
				fmt.Println("(end of content)")
				return nil
			}
			return printEntity(node, func() {
				fmt.Println(contentLine(node))
			})
		})
	},
}

var contentPrevCmd = &cobra.Command{
	Use:   "prev <content-id>",
	Short: "Show the previous sibling, or the parent when there is none",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			node, err := svc.PreviousContent(args[0])
			if err != nil {
				return fmt.Errorf("previous content: %w", err)
			}
			if node == nil {
				fmt.Println("(start of content)")
				return nil
			}
			return printEntity(node, func() {
				fmt.Println(contentLine(node))
			})
		})
	},
}
