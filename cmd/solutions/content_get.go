// Content query commands: get, children, breadcrumb, top.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

var contentGetCmd = &cobra.Command{
	Use:   "get <content-id>",
	Short: "Show a content node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			node, err := svc.GetNode(args[0])
			if err != nil {
				return fmt.Errorf("get content: %w", err)
			}
			return printEntity(node, func() {
				fmt.Println(contentLine(node))
			})
		})
	},
}

var contentChildrenCmd = &cobra.Command{
	Use:   "children <content-id>",
	Short: "List a node's children with child and question counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			summaries, err := svc.GetChildren(args[0])
			if err != nil {
				return fmt.Errorf("get children: %w", err)
			}
			return printEntity(summaries, func() {
				printSummaries(summaries)
			})
		})
	},
}

var contentTopCmd = &cobra.Command{
	Use:   "top <resource-id>",
	Short: "List a resource's top-level nodes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			summaries, err := svc.ListTopLevel(args[0])
			if err != nil {
				return fmt.Errorf("list top level: %w", err)
			}
			return printEntity(summaries, func() {
				printSummaries(summaries)
			})
		})
	},
}

var contentBreadcrumbCmd = &cobra.Command{
	Use:   "breadcrumb <content-id>",
	Short: "Show the ancestor path from the root to a node",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			trail, err := svc.Breadcrumb(args[0])
			if err != nil {
				return fmt.Errorf("breadcrumb: %w", err)
			}
			return printEntity(trail, func() {
				titles := make([]string, 0, len(trail))
				for _, node := range trail {
					titles = append(titles, node.Title)
				}
				fmt.Println(strings.Join(titles, " > "))
			})
		})
	},
}

func printSummaries(summaries []catalog.ChildSummary) {
	for _, s := range summaries {
		fmt.Printf("%s  (%d children, %d questions)\n", contentLine(s.Node), s.ChildCount, s.QuestionCount)
	}
}
