// Package cli is the console shell. Every command loads the working
// save slot, applies the player's action through the same use cases
// the HTTP shell exposes, and writes the slot back.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	gormrepo "cradium/internal/adapter/repo/gorm"
	"cradium/internal/adapter/repo/memory"
	"cradium/internal/adapter/scriptrunner/execrunner"
	"cradium/internal/app/action"
	"cradium/internal/app/ports"
	"cradium/internal/app/savegame"
	"cradium/internal/app/session"
	"cradium/internal/app/status"
	"cradium/internal/domain/crafting"
	"cradium/internal/infrastructure/config"
)

var (
	configPath string
	slotName   string
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cradium",
		Short: "Cradium console - mine, craft, and automate from the terminal",
		Long: `Cradium console drives the crafting engine against a named save slot.

Examples:
  cradium status
  cradium mine --resource node-7
  cradium place --x 2 --y 3 --layer 0 --material Iron
  cradium craft "Iron Plate"
  cradium machine add Extractor --resource-output Crystal --cooldown 30s
  cradium slots list`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&slotName, "slot", "default", "Save slot to play in")

	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewMineCommand())
	rootCmd.AddCommand(NewPlaceCommand())
	rootCmd.AddCommand(NewRemoveCommand())
	rootCmd.AddCommand(NewCraftCommand())
	rootCmd.AddCommand(NewRecipeCommand())
	rootCmd.AddCommand(NewMachineCommand())
	rootCmd.AddCommand(NewScriptCommand())
	rootCmd.AddCommand(NewPlantCommand())
	rootCmd.AddCommand(NewSlotsCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// env wires the engine for a single command invocation.
type env struct {
	cfg      *config.Config
	slots    ports.SaveSlotRepository
	holder   *session.Holder
	actions  action.UseCase
	saves    savegame.UseCase
	statusUC status.UseCase
	close    func()
}

func newEnv(ctx context.Context) (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	e := &env{cfg: cfg, close: func() {}}
	switch cfg.Database.Type {
	case "memory":
		e.slots = memory.NewSlotRepo()
	default:
		db, err := gormrepo.Open(gormrepo.Options{
			Type: cfg.Database.Type,
			URL:  cfg.Database.URL,
			Path: cfg.Database.Path,
		})
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		e.slots = gormrepo.NewSlotRepo(db)
		e.close = func() { _ = gormrepo.Close(db) }
	}

	catalog := crafting.NewCatalog()
	recipes := crafting.NewRecipeRegistry()
	if cfg.Game.SeedFile != "" {
		if err := crafting.LoadSeedFile(cfg.Game.SeedFile, catalog, recipes); err != nil {
			e.close()
			return nil, fmt.Errorf("load seed file: %w", err)
		}
	}

	e.holder = session.NewHolder(crafting.NewPlayer(cfg.Game.PlayerName))
	e.saves = savegame.UseCase{State: e.holder, Slots: e.slots, Materials: catalog, Recipes: recipes}
	if err := e.saves.Load(ctx, slotName); err != nil && !errors.Is(err, ports.ErrNotFound) {
		e.close()
		return nil, fmt.Errorf("load slot %q: %w", slotName, err)
	}

	e.actions = action.UseCase{
		State:     e.holder,
		Materials: catalog,
		Recipes:   recipes,
		Runner:    execrunner.New(cfg.Scripts.Interpreter, cfg.Scripts.Timeout),
	}
	e.statusUC = status.UseCase{State: e.holder}
	return e, nil
}

// persist writes the working slot back.
func (e *env) persist(ctx context.Context) error {
	return e.saves.Save(ctx, slotName)
}
