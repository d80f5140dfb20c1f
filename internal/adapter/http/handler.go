package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cradium/internal/app/action"
	"cradium/internal/app/automation"
	"cradium/internal/app/ports"
	"cradium/internal/app/savegame"
	"cradium/internal/app/status"
	"cradium/internal/domain/crafting"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Handler struct {
	ActionUC     action.UseCase
	AutomationUC automation.UseCase
	SavegameUC   savegame.UseCase
	StatusUC     status.UseCase
	KPI          kpiSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	api := s.Group("/api")
	api.GET("/status", h.status)
	api.GET("/grid", h.grid)
	api.POST("/base/init", h.initializeBase)

	api.POST("/mine", h.mine)
	api.POST("/grid/place", h.place)
	api.POST("/grid/remove", h.remove)
	api.POST("/craft", h.craft)

	api.GET("/recipes", h.listRecipes)
	api.POST("/recipes", h.createRecipe)
	api.DELETE("/recipes/:name", h.deleteRecipe)

	api.POST("/machines", h.addMachine)
	api.DELETE("/machines/:name", h.removeMachine)
	api.POST("/machines/:name/active", h.setMachineActive)

	api.POST("/scripts", h.createScript)
	api.PUT("/scripts/:name", h.editScript)
	api.DELETE("/scripts/:name", h.deleteScript)
	api.POST("/scripts/:name/run", h.runScript)

	api.POST("/plants", h.addPlant)
	api.DELETE("/plants/:id", h.removePlant)

	api.GET("/saves", h.listSaves)
	api.POST("/saves/:slot", h.save)
	api.POST("/saves/:slot/load", h.load)
	api.DELETE("/saves/:slot", h.deleteSave)

	s.GET("/ops/kpi", h.kpi)
}

func (h Handler) status(_ context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Player()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) grid(_ context.Context, ctx *app.RequestContext) {
	resp, err := h.StatusUC.Grid()
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) initializeBase(_ context.Context, ctx *app.RequestContext) {
	if err := h.ActionUC.InitializeBase(); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"base_initialized": true})
}

type mineRequest struct {
	ResourceID string `json:"resource_id,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
}

func (h Handler) mine(_ context.Context, ctx *app.RequestContext) {
	var body mineRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Mine(action.MineRequest{ResourceID: body.ResourceID, Quantity: body.Quantity})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type placeRequest struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Layer    int    `json:"layer"`
	Material string `json:"material"`
}

func (h Handler) place(_ context.Context, ctx *app.RequestContext) {
	var body placeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Place(action.PlaceRequest{X: body.X, Y: body.Y, Layer: body.Layer, MaterialName: body.Material})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type removeRequest struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Layer int `json:"layer"`
}

func (h Handler) remove(_ context.Context, ctx *app.RequestContext) {
	var body removeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Remove(action.RemoveRequest{X: body.X, Y: body.Y, Layer: body.Layer})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type craftRequest struct {
	Recipe string `json:"recipe"`
}

func (h Handler) craft(_ context.Context, ctx *app.RequestContext) {
	var body craftRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.Craft(action.CraftRequest{RecipeName: body.Recipe})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) listRecipes(_ context.Context, ctx *app.RequestContext) {
	ctx.JSON(consts.StatusOK, map[string]any{"recipes": h.ActionUC.Recipes.List()})
}

type createRecipeRequest struct {
	Name           string         `json:"name"`
	Inputs         map[string]int `json:"inputs"`
	Output         string         `json:"output"`
	OutputQuantity int            `json:"output_quantity,omitempty"`
	RequiredLayers int            `json:"required_layers,omitempty"`
	BuildSeconds   float64        `json:"build_seconds,omitempty"`
}

func (h Handler) createRecipe(_ context.Context, ctx *app.RequestContext) {
	var body createRecipeRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.CreateRecipe(action.CreateRecipeRequest{
		Name:           body.Name,
		Inputs:         body.Inputs,
		OutputName:     body.Output,
		OutputQuantity: body.OutputQuantity,
		RequiredLayers: body.RequiredLayers,
		BuildTime:      time.Duration(body.BuildSeconds * float64(time.Second)),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) deleteRecipe(_ context.Context, ctx *app.RequestContext) {
	if err := h.ActionUC.DeleteRecipe(action.DeleteRecipeRequest{RecipeName: ctx.Param("name")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"deleted": true})
}

type addMachineRequest struct {
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	Properties      map[string]any `json:"properties,omitempty"`
	CooldownSeconds float64        `json:"cooldown_seconds,omitempty"`
	Power           float64        `json:"power,omitempty"`
}

func (h Handler) addMachine(_ context.Context, ctx *app.RequestContext) {
	var body addMachineRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.AddMachine(action.AddMachineRequest{
		Name:        body.Name,
		Description: body.Description,
		Properties:  body.Properties,
		Cooldown:    time.Duration(body.CooldownSeconds * float64(time.Second)),
		Power:       body.Power,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) removeMachine(_ context.Context, ctx *app.RequestContext) {
	if err := h.ActionUC.RemoveMachine(action.RemoveMachineRequest{Name: ctx.Param("name")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"removed": true})
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func (h Handler) setMachineActive(_ context.Context, ctx *app.RequestContext) {
	var body setActiveRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	err := h.ActionUC.SetMachineActive(action.SetMachineActiveRequest{Name: ctx.Param("name"), Active: body.Active})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"active": body.Active})
}

type scriptRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

func (h Handler) createScript(_ context.Context, ctx *app.RequestContext) {
	var body scriptRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.CreateScript(action.CreateScriptRequest{Name: body.Name, Content: body.Content})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) editScript(_ context.Context, ctx *app.RequestContext) {
	var body scriptRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	err := h.ActionUC.EditScript(action.EditScriptRequest{Name: ctx.Param("name"), Content: body.Content})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"updated": true})
}

func (h Handler) deleteScript(_ context.Context, ctx *app.RequestContext) {
	if err := h.ActionUC.DeleteScript(action.DeleteScriptRequest{Name: ctx.Param("name")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"deleted": true})
}

func (h Handler) runScript(c context.Context, ctx *app.RequestContext) {
	resp, err := h.ActionUC.RunScript(c, action.RunScriptRequest{Name: ctx.Param("name")})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type addPlantRequest struct {
	Species string `json:"species"`
}

func (h Handler) addPlant(_ context.Context, ctx *app.RequestContext) {
	var body addPlantRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ActionUC.AddPlant(action.AddPlantRequest{Species: body.Species})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusCreated, resp)
}

func (h Handler) removePlant(_ context.Context, ctx *app.RequestContext) {
	if err := h.ActionUC.RemovePlant(action.RemovePlantRequest{ID: ctx.Param("id")}); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"removed": true})
}

func (h Handler) listSaves(c context.Context, ctx *app.RequestContext) {
	infos, err := h.SavegameUC.List(c)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]any{"slots": infos})
}

func (h Handler) save(c context.Context, ctx *app.RequestContext) {
	slot := ctx.Param("slot")
	if err := h.SavegameUC.Save(c, slot); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"saved": slot})
}

func (h Handler) load(c context.Context, ctx *app.RequestContext) {
	slot := ctx.Param("slot")
	if err := h.SavegameUC.Load(c, slot); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]string{"loaded": slot})
}

func (h Handler) deleteSave(c context.Context, ctx *app.RequestContext) {
	if err := h.SavegameUC.Delete(c, ctx.Param("slot")); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, map[string]bool{"deleted": true})
}

type kpiSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) kpi(_ context.Context, ctx *app.RequestContext) {
	if h.KPI == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "kpi recorder not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.KPI.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, action.ErrInvalidRequest),
		errors.Is(err, savegame.ErrInvalidSlotName),
		errors.Is(err, crafting.ErrInvalidRecipe),
		errors.Is(err, crafting.ErrInvalidPosition):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, crafting.ErrMaterialNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "material_not_found", err.Error())
	case errors.Is(err, crafting.ErrRecipeNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "recipe_not_found", err.Error())
	case errors.Is(err, crafting.ErrPositionEmpty):
		writeErrorBody(ctx, consts.StatusNotFound, "position_empty", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, crafting.ErrPositionOccupied):
		writeErrorBody(ctx, consts.StatusConflict, "position_occupied", err.Error())
	case errors.Is(err, crafting.ErrInsufficientQuantity):
		writeErrorBody(ctx, consts.StatusConflict, "insufficient_quantity", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	case errors.Is(err, crafting.ErrScriptFailure):
		writeErrorBody(ctx, consts.StatusUnprocessableEntity, "script_failure", err.Error())
	case errors.Is(err, crafting.ErrSerialization):
		writeErrorBody(ctx, consts.StatusInternalServerError, "serialization_error", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
