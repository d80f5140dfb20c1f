package action

import (
	"context"
	"fmt"
	"strings"

	"cradium/internal/app/ports"
	"cradium/internal/domain/crafting"
)

type CreateScriptRequest struct {
	Name    string
	Content string
}

type CreateScriptResponse struct {
	Script *crafting.Script `json:"script"`
}

func (u UseCase) CreateScript(req CreateScriptRequest) (CreateScriptResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return CreateScriptResponse{}, ErrInvalidRequest
	}
	script := crafting.NewScript(req.Name, u.now())
	if req.Content != "" {
		script.Update(req.Content, u.now())
	}
	err := u.State.With(func(p *crafting.Player) error {
		if _, exists := p.FindScript(req.Name); exists {
			return fmt.Errorf("script %q: %w", req.Name, ports.ErrConflict)
		}
		p.AddScript(script)
		p.Objects.Add("scripts", script.ID)
		return nil
	})
	u.observe("create_script", err)
	if err != nil {
		return CreateScriptResponse{}, err
	}
	return CreateScriptResponse{Script: script}, nil
}

type EditScriptRequest struct {
	Name    string
	Content string
}

func (u UseCase) EditScript(req EditScriptRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return ErrInvalidRequest
	}
	err := u.State.With(func(p *crafting.Player) error {
		script, ok := p.FindScript(req.Name)
		if !ok {
			return fmt.Errorf("script %q: %w", req.Name, ports.ErrNotFound)
		}
		script.Update(req.Content, u.now())
		return nil
	})
	u.observe("edit_script", err)
	return err
}

type DeleteScriptRequest struct {
	Name string
}

func (u UseCase) DeleteScript(req DeleteScriptRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return ErrInvalidRequest
	}
	err := u.State.With(func(p *crafting.Player) error {
		script, ok := p.FindScript(req.Name)
		if !ok {
			return fmt.Errorf("script %q: %w", req.Name, ports.ErrNotFound)
		}
		p.RemoveScript(req.Name)
		p.Objects.Remove("scripts", script.ID)
		return nil
	})
	u.observe("delete_script", err)
	return err
}

type RunScriptRequest struct {
	Name string
}

type RunScriptResponse struct {
	Output string `json:"output"`
}

// RunScript hands the script source to the bounded runner. The source
// is copied out under the session guard so execution does not hold the
// engine lock.
func (u UseCase) RunScript(ctx context.Context, req RunScriptRequest) (RunScriptResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		return RunScriptResponse{}, ErrInvalidRequest
	}
	var source string
	err := u.State.With(func(p *crafting.Player) error {
		script, ok := p.FindScript(req.Name)
		if !ok {
			return fmt.Errorf("script %q: %w", req.Name, ports.ErrNotFound)
		}
		source = script.Content
		return nil
	})
	if err != nil {
		u.observe("run_script", err)
		return RunScriptResponse{}, err
	}
	output, err := u.Runner.Run(ctx, source)
	u.observe("run_script", err)
	if err != nil {
		return RunScriptResponse{Output: output}, err
	}
	return RunScriptResponse{Output: output}, nil
}
