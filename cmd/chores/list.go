package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tgienger/chores/internal/models"
	"github.com/tgienger/chores/internal/store"
)

var (
	listAssignee string
	listPending  bool

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print chores in the order they were added",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, database, err := open()
			if err != nil {
				return err
			}
			defer database.Close()

			return printTasks(cmd.OutOrStdout(), store.New(database).Tasks(), listAssignee, listPending)
		},
	}
)

func init() {
	listCmd.Flags().StringVarP(&listAssignee, "assignee", "a", "", "only show chores for this housemate")
	listCmd.Flags().BoolVarP(&listPending, "pending", "p", false, "hide completed chores")
}

func printTasks(w io.Writer, tasks []models.Task, assignee string, pendingOnly bool) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	n := 0
	for _, t := range tasks {
		if assignee != "" && t.Assignee != assignee {
			continue
		}
		if pendingOnly && t.Completed {
			continue
		}
		check := "[ ]"
		if t.Completed {
			check = "[x]"
		}
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", check, t.Title, t.Assignee, due)
		n++
	}
	if n == 0 {
		fmt.Fprintln(tw, "No chores.")
	}
	return tw.Flush()
}
