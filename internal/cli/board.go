package cli

import (
	"github.com/spf13/cobra"

	cliadapter "github.com/example/wam/internal/adapters/cli"
	"github.com/example/wam/internal/core/allocation"
)

func boardCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show the allocation board",
		Long: `Show every allocation, split into active and completed sections.

Examples:
  wam board                      # one row per doable
  wam board --view case          # grouped under case headings
  wam board --search email       # title, type or status contains "email"
  wam board --sort priority      # high priority first, oldest first`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			view, _ := cmd.Flags().GetString("view")
			sort, _ := cmd.Flags().GetString("sort")

			mode, err := allocation.ParseViewMode(view)
			if err != nil {
				return err
			}
			order, err := allocation.ParseSortOrder(sort)
			if err != nil {
				return err
			}

			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.BoardAdapter(cmd.OutOrStdout()).Show(cmd.Context(), cliadapter.BoardOptions{
				Query:     search,
				ViewMode:  mode,
				SortOrder: order,
			})
		},
	}

	cmd.Flags().StringP("search", "s", "", "Filter by title, type or status")
	cmd.Flags().String("view", string(allocation.ViewSingle), "Layout: single or case")
	cmd.Flags().String("sort", string(allocation.SortNone), "Ordering: none or priority")

	return cmd
}

func allocationCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allocation",
		Short: "Release allocations",
	}

	unallocateCmd := &cobra.Command{
		Use:   "unallocate [doable-id]",
		Short: "Release one doable back to the pool",
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
			return a.BoardAdapter(cmd.OutOrStdout()).Unallocate(cmd.Context(), doableID)
		},
	}

	unallocateCaseCmd := &cobra.Command{
		Use:   "unallocate-case [case-id]",
		Short: "Release every doable of a case",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			caseID, err := validateID(args[0], "case")
			if err != nil {
				return err
			}
			a, err := e.App(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return a.BoardAdapter(cmd.OutOrStdout()).UnallocateCase(cmd.Context(), caseID)
		},
	}

	cmd.AddCommand(unallocateCmd)
	cmd.AddCommand(unallocateCaseCmd)

	return cmd
}
