package main

import (
	"context"
	"embed"
	"flag"
	"log"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"styr/internal/bootstrap"
	"styr/internal/config"
	"styr/internal/dialog"
	"styr/internal/gateway"
	"styr/internal/logging"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger, err := logging.New(os.Stderr, logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	store, err := bootstrap.OpenStore(context.Background(), cfg, logger)
	if err != nil {
		log.Fatalf("open base directory store: %v", err)
	}

	app := NewApp(store, logger)
	picker := dialog.NewWailsPicker(app.Context, dialog.Options{
		Title:            cfg.Dialog.Title,
		DefaultDirectory: cfg.Dialog.DefaultDirectory,
	})
	api := gateway.NewAPI(store, picker, logger)
	store.Subscribe(gateway.NewEventEmitter(app.Context))

	err = wails.Run(&options.App{
		Title:  "styr",
		Width:  800,
		Height: 600,
		Linux: &linux.Options{
			WebviewGpuPolicy: linux.WebviewGpuPolicyOnDemand,
		},
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 102, G: 126, B: 234, A: 1},
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind:             []interface{}{api},
	})

	if err != nil {
		logger.Error("wails run failed", "error", err)
		_ = store.Close()
		os.Exit(1)
	}
}
