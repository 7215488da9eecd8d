package cli

import (
	"github.com/spf13/cobra"

	"github.com/example/wam/internal/core/doable"
)

func doableCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doable",
		Short: "Create and complete doables",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new doable",
		Long: `Create a new doable.

Task doables belong to a case, so --case is required when --type is task.

Examples:
  wam doable create --title "Reply to claimant" --type email --priority high
  wam doable create --title "Request documents" --type task --priority low --case case_12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var draft doable.Draft
			draft.Title, _ = cmd.Flags().GetString("title")
			draft.Type, _ = cmd.Flags().GetString("type")
			draft.Priority, _ = cmd.Flags().GetString("priority")
			draft.CaseID, _ = cmd.Flags().GetString("case")

			if err := draft.Validate().Error(); err != nil {
				return err
			}

			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.DoableAdapter(cmd.OutOrStdout()).Create(cmd.Context(), draft)
		},
	}
	createCmd.Flags().StringP("title", "t", "", "Doable title (required)")
	createCmd.Flags().String("type", "", "Doable type: email or task (required)")
	createCmd.Flags().StringP("priority", "p", "", "Priority: high, medium or low (required)")
	createCmd.Flags().StringP("case", "c", "", "Case ID (required for tasks)")

	completeCmd := &cobra.Command{
		Use:   "complete [doable-id]",
		Short: "Mark an allocated doable as complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doableID, err := validateID(args[0], "doable")
			if err != nil {
				return err
			}
			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.BoardAdapter(cmd.OutOrStdout()).Complete(cmd.Context(), doableID)
		},
	}

	cmd.AddCommand(createCmd)
	cmd.AddCommand(completeCmd)

	return cmd
}
