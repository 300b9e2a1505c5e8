package main

import (
	"flag"
	"fmt"
	"os"

	"noise-rooms/internal/app"
	"noise-rooms/internal/config"
	"noise-rooms/internal/gpu/rlgpu"
	"noise-rooms/internal/logger"
	"noise-rooms/internal/shaders"
)

func main() {
	cfgPath := flag.String("config", config.DefaultPath, "viewer config file (YAML)")
	shaderDir := flag.String("shaders", "", "load shader sources from this directory instead of the embedded set")
	watch := flag.Bool("watch", false, "recompile shaders when files under -shaders change")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *shaderDir != "" {
		cfg.Shaders.Dir = *shaderDir
		cfg.Shaders.Watch = cfg.Shaders.Watch || *watch
	}

	log := logger.New(cfg.LogPath)
	log.SetMirror(os.Stderr)
	if err := run(cfg, *cfgPath, log); err != nil {
		log.Log(err.Error())
		os.Exit(1)
	}
}

func run(cfg config.Config, cfgPath string, log *logger.Logger) error {
	platform := app.NewRaylib(cfg.Window)
	a, err := app.New(platform, rlgpu.New(), shaders.New(cfg.Shaders.Dir), log, cfg, cfgPath)
	if err != nil {
		return err
	}
	if cfg.Shaders.Dir != "" && cfg.Shaders.Watch {
		w, err := shaders.Watch(cfg.Shaders.Dir, log)
		if err != nil {
			return err
		}
		defer w.Close()
		a.WatchShaders(w)
	}
	if err := platform.Open(); err != nil {
		return err
	}
	if err := a.Run(); err != nil {
		platform.Close()
		return err
	}
	return nil
}
