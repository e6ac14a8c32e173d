// Resource commands manage textbooks, past papers, and study guides.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

var (
	resourceTitle   string
	resourceType    string
	resourceSubject string
	resourceGrade   string
)

var resourceCmd = &cobra.Command{
	Use:   "resource",
	Short: "Manage resources",
}

var resourceAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new resource",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			resource := &types.Resource{
				Title:   resourceTitle,
				Type:    resourceType,
				Subject: resourceSubject,
				Grade:   resourceGrade,
			}
			id, err := svc.CreateResource(resource)
			if err != nil {
				return fmt.Errorf("create resource: %w", err)
			}
			return printEntity(resource, func() {
				fmt.Println("Created resource:", id)
			})
		})
	},
}

var resourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all resources",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			resources, err := svc.ListResources()
			if err != nil {
				return fmt.Errorf("list resources: %w", err)
			}
			return printEntity(resources, func() {
				for _, r := range resources {
					fmt.Printf("%s  [%s] %s\n", r.ResourceID, r.Type, r.Title)
				}
			})
		})
	},
}

var resourceDeleteCmd = &cobra.Command{
	Use:   "delete <resource-id>",
	Short: "Delete a resource and its whole content tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			if err := svc.DeleteResource(args[0]); err != nil {
				return fmt.Errorf("delete resource: %w", err)
			}
			fmt.Println("Deleted resource:", args[0])
			return nil
		})
	},
}

func init() {
	resourceAddCmd.Flags().StringVar(&resourceTitle, "title", "", "resource title (required)")
	resourceAddCmd.Flags().StringVar(&resourceType, "type", types.ResourceTypeTextbook, "resource type (TEXTBOOK, PAST_PAPER, STUDY_GUIDE)")
	resourceAddCmd.Flags().StringVar(&resourceSubject, "subject", "", "subject, e.g. Mathematics")
	resourceAddCmd.Flags().StringVar(&resourceGrade, "grade", "", "grade level, e.g. 12")
	_ = resourceAddCmd.MarkFlagRequired("title")

	resourceCmd.AddCommand(resourceAddCmd)
	resourceCmd.AddCommand(resourceListCmd)
	resourceCmd.AddCommand(resourceDeleteCmd)
}
