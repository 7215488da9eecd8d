package cli

import (
	"github.com/spf13/cobra"
)

func usersCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List staff and allocate work to them",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")

			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.RosterAdapter(cmd.OutOrStdout()).List(cmd.Context(), search)
		},
	}
	listCmd.Flags().StringP("search", "s", "", "Filter by first, last or user name")

	doablesCmd := &cobra.Command{
		Use:   "doables [user-id]",
		Short: "Show the doables allocated to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := validateID(args[0], "user")
			if err != nil {
				return err
			}
			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.RosterAdapter(cmd.OutOrStdout()).Doables(cmd.Context(), userID)
		},
	}

	allocateCmd := &cobra.Command{
		Use:   "allocate [user-id]",
		Short: "Allocate the next available doable to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := validateID(args[0], "user")
			if err != nil {
				return err
			}
			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.RosterAdapter(cmd.OutOrStdout()).Allocate(cmd.Context(), userID)
		},
	}

	allocateCaseCmd := &cobra.Command{
		Use:   "allocate-case [user-id]",
		Short: "Allocate a whole case to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := validateID(args[0], "user")
			if err != nil {
				return err
			}
			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.RosterAdapter(cmd.OutOrStdout()).AllocateCase(cmd.Context(), userID)
		},
	}

	relatedCmd := &cobra.Command{
		Use:   "related [user-id] [case-id]",
		Short: "Allocate the remaining doables of a case to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := validateID(args[0], "user")
			if err != nil {
				return err
			}
			caseID, err := validateID(args[1], "case")
			if err != nil {
				return err
			}
			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.RosterAdapter(cmd.OutOrStdout()).AllocateRelated(cmd.Context(), userID, caseID)
		},
	}

	cmd.AddCommand(listCmd)
	cmd.AddCommand(doablesCmd)
	cmd.AddCommand(allocateCmd)
	cmd.AddCommand(allocateCaseCmd)
	cmd.AddCommand(relatedCmd)

	return cmd
}
