package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	httpadapter "cradium/internal/adapter/http"
	metricsinmem "cradium/internal/adapter/metrics/inmemory"
	gormrepo "cradium/internal/adapter/repo/gorm"
	"cradium/internal/adapter/repo/memory"
	"cradium/internal/adapter/scriptrunner/execrunner"
	"cradium/internal/adapter/ws"
	"cradium/internal/app/action"
	"cradium/internal/app/automation"
	"cradium/internal/app/ports"
	"cradium/internal/app/savegame"
	"cradium/internal/app/session"
	"cradium/internal/app/status"
	"cradium/internal/domain/crafting"
	"cradium/internal/infrastructure/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

const autosaveSlot = "autosave"

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	slots, closeDB := mustBuildSlotRepo(cfg)
	defer closeDB()

	catalog := crafting.NewCatalog()
	recipes := crafting.NewRecipeRegistry()
	if cfg.Game.SeedFile != "" {
		if err := crafting.LoadSeedFile(cfg.Game.SeedFile, catalog, recipes); err != nil {
			log.Fatalf("load seed file: %v", err)
		}
		log.Printf("seeded %d materials, %d recipes from %s", catalog.Len(), len(recipes.List()), cfg.Game.SeedFile)
	}

	holder := session.NewHolder(crafting.NewPlayer(cfg.Game.PlayerName))
	saves := savegame.UseCase{State: holder, Slots: slots, Materials: catalog, Recipes: recipes}
	if err := saves.Load(context.Background(), autosaveSlot); err != nil {
		if !errors.Is(err, ports.ErrNotFound) {
			log.Fatalf("load autosave: %v", err)
		}
		log.Printf("no autosave, starting fresh as %s", cfg.Game.PlayerName)
	}

	kpiRecorder := metricsinmem.NewRecorder()
	tickUC := automation.UseCase{
		State:     holder,
		Materials: catalog,
		Metrics:   kpiRecorder,
		Now:       time.Now,
	}

	h := httpadapter.Handler{
		ActionUC: action.UseCase{
			State:     holder,
			Materials: catalog,
			Recipes:   recipes,
			Runner:    execrunner.New(cfg.Scripts.Interpreter, cfg.Scripts.Timeout),
			Metrics:   kpiRecorder,
			Now:       time.Now,
		},
		AutomationUC: tickUC,
		SavegameUC:   saves,
		StatusUC:     status.UseCase{State: holder, Now: time.Now},
		KPI:          kpiRecorder,
	}

	hub := startPulseHub(cfg.Server.PulseAddr)
	go runTicker(tickUC, saves, cfg.Automation.TickInterval, hub)

	s := server.Default(server.WithHostPorts(cfg.Server.Addr))
	h.RegisterRoutes(s)

	log.Printf("cradium server listening on %s", cfg.Server.Addr)
	s.Spin()
}

func mustBuildSlotRepo(cfg *config.Config) (ports.SaveSlotRepository, func()) {
	if cfg.Database.Type == "memory" {
		return memory.NewSlotRepo(), func() {}
	}
	db, err := gormrepo.Open(gormrepo.Options{
		Type: cfg.Database.Type,
		URL:  cfg.Database.URL,
		Path: cfg.Database.Path,
	})
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	return gormrepo.NewSlotRepo(db), func() { _ = gormrepo.Close(db) }
}

func startPulseHub(addr string) *ws.Hub {
	if addr == "" {
		return nil
	}
	hub := ws.NewHub()
	go hub.Run()
	go func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWs(hub, w, r)
		})
		log.Printf("pulse hub listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("pulse hub stopped: %v", err)
		}
	}()
	return hub
}

func runTicker(tickUC automation.UseCase, saves savegame.UseCase, interval time.Duration, hub *ws.Hub) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		result, err := tickUC.Tick()
		if err != nil {
			log.Printf("tick: %v", err)
			continue
		}
		if len(result.Fired) == 0 {
			continue
		}
		log.Printf("tick: %d machines fired, power %.1f", len(result.Fired), result.TotalPower)
		if hub != nil {
			hub.BroadcastPulse("tick", result)
		}
		if err := saves.Save(context.Background(), autosaveSlot); err != nil {
			log.Printf("autosave: %v", err)
		}
	}
}
