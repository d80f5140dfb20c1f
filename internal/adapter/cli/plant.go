package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cradium/internal/app/action"
)

func NewPlantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plant",
		Short: "Manage plants",
	}
	cmd.AddCommand(newPlantAddCommand())
	cmd.AddCommand(newPlantRemoveCommand())
	return cmd
}

func newPlantAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <species>",
		Short: "Grow a new plant with rolled genetics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.actions.AddPlant(action.AddPlantRequest{Species: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("Planted %s (%s), traits %v\n", resp.Plant.Genetics.Species, resp.Plant.ID, resp.Plant.Genetics.GeneticTraits)
			return e.persist(cmd.Context())
		},
	}
}

func newPlantRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a plant by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.actions.RemovePlant(action.RemovePlantRequest{ID: args[0]}); err != nil {
				return err
			}
			fmt.Printf("Removed plant %s\n", args[0])
			return e.persist(cmd.Context())
		},
	}
}
