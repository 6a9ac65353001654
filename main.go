package main

import (
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	gormlogger "gorm.io/gorm/logger"

	"navshell/internal/browser"
	"navshell/internal/config"
	"navshell/internal/database"
	"navshell/internal/services"
	"navshell/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	if err := utils.LoadEnv(); err != nil {
		fmt.Println("Error loading .env:", err)
	}
	cfg := config.Load("")
	log := logger.NewDefaultLogger()

	db, err := database.Init(database.Config{
		Path:     cfg.DBPath(),
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	var dbClose func() error
	if sqlDB, err := db.DB(); err == nil {
		dbClose = sqlDB.Close
	}

	svc := services.NewServices(cfg, db, log)
	tabs := browser.NewManager(browser.NewFrontendSurface, svc.History, config.DefaultHomePage)
	app := NewApp(svc, tabs, dbClose)

	logLevel := logger.INFO
	if config.IsDevelopment() {
		logLevel = logger.DEBUG
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "NavShell",
		Width:  1024,
		Height: 768,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "NavShell",
		},
		BackgroundColour: &options.RGBA{R: 255, G: 255, B: 255, A: 1},
		Logger:           log,
		LogLevel:         logLevel,
		OnStartup:        app.startup,
		OnShutdown:       app.shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
