package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the player, inventory, and machine park",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.statusUC.Player()
			if err != nil {
				return err
			}

			fmt.Printf("Player: %s  (base initialized: %v, power: %.1f)\n", resp.Name, resp.BaseInitialized, resp.Power)
			fmt.Printf("Grid: %dx%dx%d, %d cells occupied\n\n", resp.Grid.Width, resp.Grid.Height, resp.Grid.Layers, resp.Grid.Occupied)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MATERIAL\tRARITY\tQUALITY\tQTY")
			for _, line := range resp.Inventory {
				fmt.Fprintf(w, "%s\t%s\t%.2f\t%d\n", line.Material.Name, line.Material.Rarity, line.Material.Quality, line.Quantity)
			}
			w.Flush()

			if len(resp.Machines) > 0 {
				fmt.Println()
				w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "MACHINE\tBEHAVIOR\tACTIVE\tPOWER\tREADY IN")
				for _, m := range resp.Machines {
					fmt.Fprintf(w, "%s\t%s\t%v\t%.1f\t%.0fs\n", m.Name, m.Behavior, m.Active, m.Power, m.ReadyInSeconds)
				}
				w.Flush()
			}
			return nil
		},
	}
}
