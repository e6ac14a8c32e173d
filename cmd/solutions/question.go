// Question commands manage the exercises attached to content nodes.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
)

var questionCmd = &cobra.Command{
	Use:   "question",
	Short: "Manage questions",
}

var questionListCmd = &cobra.Command{
	Use:   "list <content-id>",
	Short: "List a content node's questions in order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			questions, err := svc.ListQuestions(args[0])
			if err != nil {
				return fmt.Errorf("list questions: %w", err)
			}
			return printEntity(questions, func() {
				for _, q := range questions {
					fmt.Println(questionLine(q))
				}
			})
		})
	},
}

var questionPublishCmd = &cobra.Command{
	Use:   "publish <question-id>",
	Short: "Publish a draft question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			if err := svc.PublishQuestion(args[0]); err != nil {
				return fmt.Errorf("publish question: %w", err)
			}
			fmt.Println("Published question:", args[0])
			return nil
		})
	},
}

var questionUnpublishCmd = &cobra.Command{
	Use:   "unpublish <question-id>",
	Short: "Move a live question back to draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			if err := svc.UnpublishQuestion(args[0]); err != nil {
				return fmt.Errorf("unpublish question: %w", err)
			}
			fmt.Println("Unpublished question:", args[0])
			return nil
		})
	},
}

var questionDeleteCmd = &cobra.Command{
	Use:   "delete <question-id>",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			if err := svc.DeleteQuestion(args[0]); err != nil {
				return fmt.Errorf("delete question: %w", err)
			}
			fmt.Println("Deleted question:", args[0])
			return nil
		})
	},
}

func init() {
	questionCmd.AddCommand(questionAddCmd)
	questionCmd.AddCommand(questionListCmd)
	questionCmd.AddCommand(questionPublishCmd)
	questionCmd.AddCommand(questionUnpublishCmd)
	questionCmd.AddCommand(questionDeleteCmd)
	questionCmd.AddCommand(questionNextCmd)
	questionCmd.AddCommand(questionPrevCmd)
	questionCmd.AddCommand(questionFirstCmd)
	questionCmd.AddCommand(questionLastCmd)
}
