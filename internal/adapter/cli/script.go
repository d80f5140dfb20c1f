package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cradium/internal/app/action"
)

func NewScriptCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "script",
		Short: "Manage and run player scripts",
	}
	cmd.AddCommand(newScriptCreateCommand())
	cmd.AddCommand(newScriptEditCommand())
	cmd.AddCommand(newScriptDeleteCommand())
	cmd.AddCommand(newScriptRunCommand())
	return cmd
}

func readScriptSource(inline, file string) (string, error) {
	if file == "" {
		return inline, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("read script file: %w", err)
	}
	return string(data), nil
}

func newScriptCreateCommand() *cobra.Command {
	var content, file string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			source, err := readScriptSource(content, file)
			if err != nil {
				return err
			}
			resp, err := e.actions.CreateScript(action.CreateScriptRequest{Name: args[0], Content: source})
			if err != nil {
				return err
			}
			fmt.Printf("Created script %s\n", resp.Script.Name)
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Inline script source")
	cmd.Flags().StringVar(&file, "file", "", "Read script source from file")
	return cmd
}

func newScriptEditCommand() *cobra.Command {
	var content, file string

	cmd := &cobra.Command{
		Use:   "edit <name>",
		Short: "Replace a script's source",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			source, err := readScriptSource(content, file)
			if err != nil {
				return err
			}
			if err := e.actions.EditScript(action.EditScriptRequest{Name: args[0], Content: source}); err != nil {
				return err
			}
			fmt.Printf("Updated script %s\n", args[0])
			return e.persist(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&content, "content", "", "Inline script source")
	cmd.Flags().StringVar(&file, "file", "", "Read script source from file")
	return cmd
}

func newScriptDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a script",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			if err := e.actions.DeleteScript(action.DeleteScriptRequest{Name: args[0]}); err != nil {
				return err
			}
			fmt.Printf("Deleted script %s\n", args[0])
			return e.persist(cmd.Context())
		},
	}
}

func newScriptRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <name>",
		Short: "Run a script through the bounded interpreter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd.Context())
			if err != nil {
				return err
			}
			defer e.close()

			resp, err := e.actions.RunScript(cmd.Context(), action.RunScriptRequest{Name: args[0]})
			if resp.Output != "" {
				fmt.Print(resp.Output)
			}
			return err
		},
	}
}
