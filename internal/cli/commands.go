package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/tracalorie/internal/ui"
)

func atLeast(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) < n {
			return usageError("usage: tracalorie %s", usage)
		}
		return nil
	}
}

func exactly(n int, usage string) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return usageError("usage: tracalorie %s", usage)
		}
		return nil
	}
}

func parseID(cmd, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, usageError("%s: not an item id: %s", cmd, s)
	}
	return n, nil
}

func newAddCommand(rt *runtime) *cobra.Command {
	const usage = "add <calories> <name...>"
	return &cobra.Command{
		Use:   usage,
		Short: "Add a food item (name can be multiple words)",
		Args:  atLeast(2, usage),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rt.open(cmd.Context())
			if err != nil {
				return err
			}
			it, err := st.Add(cmd.Context(), strings.Join(args[1:], " "), args[0])
			if err != nil {
				return fmt.Errorf("add: %w", err)
			}
			rt.p.OK(fmt.Sprintf("added #%d %s (%s)", it.ID, it.Name, ui.Kcal(it.Calories)))
			return nil
		},
	}
}

func newEditCommand(rt *runtime) *cobra.Command {
	const usage = "edit <id> <calories> <name...>"
	return &cobra.Command{
		Use:   usage,
		Short: "Replace the name and calories of an item",
		Args:  atLeast(3, usage),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("edit", args[0])
			if err != nil {
				return err
			}
			st, err := rt.open(cmd.Context())
			if err != nil {
				return err
			}
			it, err := st.Edit(cmd.Context(), id, strings.Join(args[2:], " "), args[1])
			if err != nil {
				return fmt.Errorf("edit: %w", err)
			}
			rt.p.OK(fmt.Sprintf("updated #%d %s (%s)", it.ID, it.Name, ui.Kcal(it.Calories)))
			return nil
		},
	}
}

func newRemoveCommand(rt *runtime) *cobra.Command {
	const usage = "rm <id>"
	return &cobra.Command{
		Use:     usage,
		Aliases: []string{"delete"},
		Short:   "Remove an item by id",
		Args:    exactly(1, usage),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("rm", args[0])
			if err != nil {
				return err
			}
			st, err := rt.open(cmd.Context())
			if err != nil {
				return err
			}
			if err := st.Delete(cmd.Context(), id); err != nil {
				rt.p.Hint("Hint: run `tracalorie ls` to see item ids")
				return fmt.Errorf("rm: %w", err)
			}
			rt.p.OK(fmt.Sprintf("removed #%d", id))
			return nil
		},
	}
}

func newClearCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every item",
		Args:  exactly(0, "clear"),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rt.open(cmd.Context())
			if err != nil {
				return err
			}
			if err := st.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			rt.p.OK("cleared")
			return nil
		},
	}
}

func newListCommand(rt *runtime) *cobra.Command {
	var where string
	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List items with the calorie total",
		Args:    exactly(0, "ls [--where EXPR]"),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rt.open(cmd.Context())
			if err != nil {
				return err
			}
			all := st.Items()
			shown := all
			if where != "" {
				if shown, err = st.Filter(where); err != nil {
					return fmt.Errorf("ls: %w", err)
				}
			}
			rt.p.Panel(listLines(rt.p, all, shown, where, rt.cfg.DailyGoal))
			return nil
		},
	}
	cmd.Flags().StringVar(&where, "where", "", `filter expression, e.g. 'calories >= 500 && name contains "cake"'`)
	return cmd
}

func newTotalCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "total",
		Short: "Print the calorie total",
		Args:  exactly(0, "total"),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := rt.open(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(rt.p.Out, totalLine(rt.p, st.Total(), rt.cfg.DailyGoal))
			return nil
		},
	}
}

func newTUICommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Edit the list interactively",
		Args:  exactly(0, "tui"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt.opt.Interactive == nil {
				return fmt.Errorf("tui: no interactive frontend configured")
			}
			st, err := rt.open(cmd.Context())
			if err != nil {
				return err
			}
			if err := rt.opt.Interactive(cmd.Context(), st, rt.cfg); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}
