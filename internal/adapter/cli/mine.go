package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cradium/internal/app/action"
)

func NewMineCommand() *cobra.Command {
	var resourceID string
	var quantity int

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "Mine a procedural material into the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.actions.Mine(action.MineRequest{ResourceID: resourceID, Quantity: quantity})
			if err != nil {
				return err
			}
			m := resp.Material
			fmt.Printf("Mined %dx %s (%s %s, quality %.2f, stone %s)\n",
				resp.Quantity, m.Name, m.Rarity, m.MaterialType, m.Quality, m.BaseStoneType)
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&resourceID, "resource", "", "Resource node being mined (enforces its cooldown)")
	cmd.Flags().IntVar(&quantity, "quantity", 1, "Units to mine")
	return cmd
}
