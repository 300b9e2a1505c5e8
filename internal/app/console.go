package app

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"noise-rooms/internal/commands"
	"noise-rooms/internal/config"
	"noise-rooms/internal/debug"
	"noise-rooms/internal/geometry"
	"noise-rooms/internal/material"
)

func (a *App) registerCommands() {
	a.Commands.Register("help", "help", nil, a.cmdHelp)
	a.Commands.Register("set", "set <room>.<object>.<field> <value> | <r> <g> <b>", nil, a.cmdSet)
	a.Commands.Register("get", "get <room>.<object>.<field>", nil, a.cmdGet)

	params := commands.NewFlagSet("params")
	room := params.String("room", "", "only list this room (room1, room2, room3)")
	a.Commands.Register("params", "params [-room roomN]", params, func(args []string) error {
		defer func() { *room = "" }()
		return a.cmdParams(*room)
	})

	fps := commands.NewFlagSet("fps")
	mem := fps.Bool("mem", false, "toggle the heap counter instead of FPS")
	save := fps.Bool("save", false, "persist to the config file")
	a.Commands.Register("fps", "fps [-mem] [-save] on|off", fps, func(args []string) error {
		// Flag values persist between parses.
		defer func() { *mem, *save = false, false }()
		return a.cmdFPS(args, *mem, *save)
	})

	a.Commands.Register("where", "where", nil, a.cmdWhere)
	a.Commands.Register("goto", "goto <1|2|3>", nil, a.cmdGoto)
	a.Commands.Register("reload", "reload", nil, func([]string) error {
		if err := a.reloadShaders(); err != nil {
			return fmt.Errorf("reload: kept the running shaders")
		}
		return nil
	})
}

func (a *App) cmdHelp([]string) error {
	for _, name := range a.Commands.Names() {
		usage, _ := a.Commands.Usage(name)
		a.log.Log(usage)
	}
	return nil
}

func (a *App) cmdSet(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("set: want a path and a value")
	}
	f, err := a.Store.Lookup(args[0])
	if err != nil {
		return err
	}
	// Quoted color values arrive as one word.
	values := strings.Fields(strings.Join(args[1:], " "))
	switch f.Kind {
	case material.Float:
		v, err := parseFloats(values, 1)
		if err != nil {
			return fmt.Errorf("set %s: %w", args[0], err)
		}
		f.SetFloat(v[0])
	case material.Int:
		if len(values) != 1 {
			return fmt.Errorf("set %s: want 1 value, got %d", args[0], len(values))
		}
		v, err := strconv.ParseInt(values[0], 10, 32)
		if err != nil {
			return fmt.Errorf("set %s: %w", args[0], err)
		}
		f.SetInt(int32(v))
	case material.Color:
		v, err := parseFloats(values, 3)
		if err != nil {
			return fmt.Errorf("set %s: %w", args[0], err)
		}
		f.SetColor([3]float32(v))
	}
	a.log.Logf("%s = %s", args[0], f)
	return nil
}

func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) != n {
		return nil, fmt.Errorf("want %d value(s), got %d", n, len(args))
	}
	out := make([]float32, n)
	for i, s := range args {
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(v) {
			return nil, fmt.Errorf("%q is not a number", s)
		}
		out[i] = float32(v)
	}
	return out, nil
}

func (a *App) cmdGet(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("get: want one path")
	}
	f, err := a.Store.Lookup(args[0])
	if err != nil {
		return err
	}
	a.log.Logf("%s = %s (%s, %g..%g, uniform %s)", args[0], f, f.Kind, f.Min, f.Max, f.Uniform)
	return nil
}

func (a *App) cmdParams(room string) error {
	n := 0
	for _, p := range a.Store.Paths() {
		if room != "" && !strings.HasPrefix(p, room+".") {
			continue
		}
		f, err := a.Store.Lookup(p)
		if err != nil {
			return err
		}
		a.log.Logf("%s = %s", p, f)
		n++
	}
	if n == 0 {
		return fmt.Errorf("params: no parameters for %q", room)
	}
	return nil
}

func (a *App) cmdFPS(args []string, mem, save bool) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return fmt.Errorf("fps: want on or off")
	}
	on := args[0] == "on"
	if mem {
		a.HUD.SetShowMemAlloc(on)
		a.cfg.Debug.ShowMemAlloc = on
	} else {
		a.HUD.SetShowFPS(on)
		a.cfg.Debug.ShowFPS = on
	}
	if !save {
		return nil
	}
	if a.cfgPath == "" {
		return fmt.Errorf("fps: no config file to save to")
	}
	if err := config.Save(a.cfgPath, a.cfg); err != nil {
		return fmt.Errorf("fps: %w", err)
	}
	a.log.Logf("saved %s", a.cfgPath)
	return nil
}

func (a *App) cmdWhere([]string) error {
	p := a.Camera.Position
	room, _ := geometry.RoomAt(p.X())
	a.log.Logf("position (%.2f, %.2f, %.2f) yaw %.1f pitch %.1f, %s, mode %s",
		p.X(), p.Y(), p.Z(), a.Camera.Yaw, a.Camera.Pitch, debug.RoomLabel(room), a.Camera.Mode())
	return nil
}

func (a *App) cmdGoto(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("goto: want a room number")
	}
	n, err := strconv.Atoi(strings.TrimPrefix(args[0], "room"))
	if err != nil {
		return fmt.Errorf("goto: %w", err)
	}
	c, ok := geometry.RoomCenter(n)
	if !ok {
		return fmt.Errorf("goto: no room %d", n)
	}
	a.Camera.Teleport(mgl32.Vec3(c))
	a.log.Logf("teleported to room %d", n)
	return nil
}
