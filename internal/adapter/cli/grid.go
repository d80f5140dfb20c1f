package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cradium/internal/app/action"
)

func NewPlaceCommand() *cobra.Command {
	var x, y, layer int
	var material string

	cmd := &cobra.Command{
		Use:   "place",
		Short: "Place an inventory material onto the crafting grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.actions.Place(action.PlaceRequest{X: x, Y: y, Layer: layer, MaterialName: material})
			if err != nil {
				return err
			}
			fmt.Printf("Placed %s at (%d,%d,%d)\n", resp.Material.Name, x, y, layer)
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "Grid x")
	cmd.Flags().IntVar(&y, "y", 0, "Grid y")
	cmd.Flags().IntVar(&layer, "layer", 0, "Grid layer")
	cmd.Flags().StringVar(&material, "material", "", "Material name")
	_ = cmd.MarkFlagRequired("material")
	return cmd
}

func NewRemoveCommand() *cobra.Command {
	var x, y, layer int

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a grid material back into the inventory",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.actions.Remove(action.RemoveRequest{X: x, Y: y, Layer: layer})
			if err != nil {
				return err
			}
			fmt.Printf("Removed %s from (%d,%d,%d)\n", resp.Material.Name, x, y, layer)
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "Grid x")
	cmd.Flags().IntVar(&y, "y", 0, "Grid y")
	cmd.Flags().IntVar(&layer, "layer", 0, "Grid layer")
	return cmd
}
