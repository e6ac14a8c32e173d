// Question navigation commands: next, prev, first, last.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

// printQuestionOrEnd renders a navigation result, where a nil question
// means the walk reached the end of the resource.
func printQuestionOrEnd(q *types.Question) error {
	if q == nil {
		fmt.Println("(no more questions)")
		return nil
	}
	return printEntity(q, func() {
		fmt.Println(questionLine(q))
	})
}

var questionNextCmd = &cobra.Command{
	Use:   "next <question-id>",
	Short: "Show the question that follows in reading order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			q, err := svc.NextQuestion(args[0])
			if err != nil {
				return fmt.Errorf("next question: %w", err)
			}
			return printQuestionOrEnd(q)
		})
	},
}

var questionPrevCmd = &cobra.Command{
	Use:   "prev <question-id>",
	Short: "Show the question that precedes in reading order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			q, err := svc.PreviousQuestion(args[0])
			if err != nil {
				return fmt.Errorf("previous question: %w", err)
			}
			return printQuestionOrEnd(q)
		})
	},
}

var questionFirstCmd = &cobra.Command{
	Use:   "first <content-id>",
	Short: "Show a content node's first question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			q, err := svc.FirstQuestion(args[0])
			if err != nil {
				return fmt.Errorf("first question: %w", err)
			}
			return printQuestionOrEnd(q)
		})
	},
}

var questionLastCmd = &cobra.Command{
	Use:   "last <content-id>",
	Short: "Show a content node's last question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *catalog.Service) error {
			q, err := svc.LastQuestion(args[0])
			if err != nil {
				return fmt.Errorf("last question: %w", err)
			}
			return printQuestionOrEnd(q)
		})
	},
}
