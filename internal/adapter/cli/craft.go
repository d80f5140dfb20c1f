package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"cradium/internal/app/action"
)

func NewCraftCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "craft <recipe>",
		Short: "Craft a recipe from inventory materials",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.actions.Craft(action.CraftRequest{RecipeName: args[0]})
			if err != nil {
				return err
			}
			fmt.Printf("Crafted %dx %s\n", resp.Quantity, resp.Recipe.Output.Name)
			return e.persist(cmd.Context())
		},
	}
}

func NewRecipeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Manage recipes",
	}
	cmd.AddCommand(newRecipeListCommand())
	cmd.AddCommand(newRecipeCreateCommand())
	cmd.AddCommand(newRecipeDeleteCommand())
	return cmd
}

func newRecipeListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered recipes",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RECIPE\tOUTPUT\tQTY\tLAYERS\tBUILD TIME")
			for _, r := range e.actions.Recipes.List() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", r.Name, r.Output.Name, r.OutputQuantity, r.RequiredLayers, r.BuildTime)
			}
			return w.Flush()
		},
	}
}

func newRecipeCreateCommand() *cobra.Command {
	var inputs map[string]int
	var output string
	var outputQty, layers int
	var buildTime time.Duration

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Register a new recipe",
		Long: `Register a new recipe.

Examples:
  cradium recipe create "Iron Plate" --input Iron=3 --input Wood=2 --output "Iron Plate"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.actions.CreateRecipe(action.CreateRecipeRequest{
				Name:           args[0],
				Inputs:         inputs,
				OutputName:     output,
				OutputQuantity: outputQty,
				RequiredLayers: layers,
				BuildTime:      buildTime,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Registered recipe %s -> %dx %s\n", resp.Recipe.Name, resp.Recipe.OutputQuantity, resp.Recipe.Output.Name)
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().StringToIntVar(&inputs, "input", nil, "Input as material=quantity (repeatable)")
	cmd.Flags().StringVar(&output, "output", "", "Output material name")
	cmd.Flags().IntVar(&outputQty, "output-quantity", 1, "Output quantity")
	cmd.Flags().IntVar(&layers, "layers", 1, "Required grid layers")
	cmd.Flags().DurationVar(&buildTime, "build-time", 0, "Build time")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func newRecipeDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.actions.DeleteRecipe(action.DeleteRecipeRequest{RecipeName: args[0]}); err != nil {
				return err
			}
			fmt.Printf("Deleted recipe %s\n", args[0])
			return e.persist(cmd.Context())
		},
	}
}
