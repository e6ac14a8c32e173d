// Question add command attaches an exercise question to a content node.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hi-yolit/solutions-sub000/pkg/catalog"
	"github.com/hi-yolit/solutions-sub000/pkg/types"
)

var (
	questionResourceID string
	questionContentID  string
	questionNumber     string
	questionType       string
	questionPayload    string
)

var questionAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a question on a content node",
	Long: `Add creates a draft question on the given content node. The body is
free-form JSON whose shape depends on the question type.

Example:
  solutions question add --resource <id> --content <page-id> --number 1.1 \
    --type MCQ --body '{"prompt":"2+2?","options":["3","4"],"answer":1}'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if questionPayload != "" && !json.Valid([]byte(questionPayload)) {
			return fmt.Errorf("invalid --body: %w", types.ErrInvalidData)
		}
		return withService(func(svc *catalog.Service) error {
			question := &types.Question{
				ResourceID:     questionResourceID,
				ContentID:      questionContentID,
				QuestionNumber: questionNumber,
				Type:           questionType,
				Content:        json.RawMessage(questionPayload),
			}
			id, err := svc.CreateQuestion(question)
			if err != nil {
				return fmt.Errorf("create question: %w", err)
			}
			return printEntity(question, func() {
				fmt.Println("Created question:", id)
			})
		})
	},
}

func init() {
	questionAddCmd.Flags().StringVar(&questionResourceID, "resource", "", "owning resource id (required)")
	questionAddCmd.Flags().StringVar(&questionContentID, "content", "", "owning content node id (required)")
	questionAddCmd.Flags().StringVar(&questionNumber, "number", "", "question number, e.g. 1.1 (required)")
	questionAddCmd.Flags().StringVar(&questionType, "type", types.QuestionTypeStructured, "question type (MCQ, STRUCTURED, TRUE_FALSE)")
	questionAddCmd.Flags().StringVar(&questionPayload, "body", "", "question body as JSON")
	_ = questionAddCmd.MarkFlagRequired("resource")
	_ = questionAddCmd.MarkFlagRequired("content")
	_ = questionAddCmd.MarkFlagRequired("number")
}
