package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cradium/internal/app/action"
)

func NewMachineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "machine",
		Short: "Manage machines",
	}
	cmd.AddCommand(newMachineAddCommand())
	cmd.AddCommand(newMachineRemoveCommand())
	cmd.AddCommand(newMachineActivateCommand())
	return cmd
}

func newMachineAddCommand() *cobra.Command {
	var description, resourceOutput string
	var cooldown time.Duration
	var power float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Build a machine",
		Long: `Build a machine and attach it to the player.

A machine with --resource-output generates that material every time it
fires; one with only --power contributes power. Machines start inactive.

Examples:
  cradium machine add Extractor --resource-output Crystal --cooldown 30s --power -2
  cradium machine add Reactor --power 10 --cooldown 1m`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			properties := map[string]any{}
			if resourceOutput != "" {
				properties["resource_output"] = resourceOutput
			}
			resp, err := e.actions.AddMachine(action.AddMachineRequest{
				Name:        args[0],
				Description: description,
				Properties:  properties,
				Cooldown:    cooldown,
				Power:       power,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Built machine %s (%s)\n", resp.Machine.Name, resp.Machine.Behavior.Kind)
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Machine description")
	cmd.Flags().StringVar(&resourceOutput, "resource-output", "", "Material the machine generates per firing")
	cmd.Flags().DurationVar(&cooldown, "cooldown", time.Minute, "Firing cooldown")
	cmd.Flags().Float64Var(&power, "power", 0, "Signed power contribution per firing")
	return cmd
}

func newMachineRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <name>",
		Short: "Tear down a machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.actions.RemoveMachine(action.RemoveMachineRequest{Name: args[0]}); err != nil {
				return err
			}
			fmt.Printf("Removed machine %s\n", args[0])
			return e.persist(cmd.Context())
		},
	}
}

func newMachineActivateCommand() *cobra.Command {
	var off bool

	cmd := &cobra.Command{
		Use:   "activate <name>",
		Short: "Switch a machine on (or off with --off)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			err = e.actions.SetMachineActive(action.SetMachineActiveRequest{Name: args[0], Active: !off})
			if err != nil {
				return err
			}
			state := "on"
			if off {
				state = "off"
			}
			fmt.Printf("Machine %s switched %s\n", args[0], state)
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().BoolVar(&off, "off", false, "Deactivate instead")
	return cmd
}
