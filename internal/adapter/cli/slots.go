package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewSlotsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Manage save slots",
	}
	cmd.AddCommand(newSlotsListCommand())
	cmd.AddCommand(newSlotsDeleteCommand())
	return cmd
}

func newSlotsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List save slots",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			infos, err := e.saves.List(cmd.Context())
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SLOT\tSIZE\tUPDATED")
			for _, info := range infos {
				fmt.Fprintf(w, "%s\t%dB\t%s\n", info.Name, info.Size, info.UpdatedAt.Format("2006-01-02 15:04:05"))
			}
			return w.Flush()
		},
	}
}

func newSlotsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <slot>",
		Short: "Delete a save slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.saves.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted slot %s\n", args[0])
			return nil
		},
	}
}
