package main

import (
	"context"
	"embed"
	"fmt"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"gorm.io/gorm/logger"

	"knowledgechat/internal/database"
	"knowledgechat/internal/monitor"
	"knowledgechat/internal/services"
	"knowledgechat/internal/utils"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	utils.LoadEnv()

	db, err := database.Init(database.Config{
		Path:     "knowledgechat.db",
		LogLevel: logger.Warn,
	})
	if err != nil {
		fmt.Println("Error opening database:", err)
		return
	}

	monitorLogger := monitor.NewLogger()

	//Create each service
	keyringService := services.NewKeyringService()
	dbService := services.NewDbServices(db, "snapshots")
	assetService := services.NewAssetService("assets")
	idCardService := services.NewIDCardService(dbService.Users)
	stockService := services.NewStockService(dbService.Users)
	socialService := services.NewSocialService(dbService.Users)
	emailService := services.NewEmailService(dbService.Users)
	appStoreService := services.NewAppStoreService()
	voiceService := services.NewVoiceService()

	if startErr := keyringService.Startup(); startErr != nil {
		fmt.Println("Error starting keyring service:", startErr)
	}

	var generator services.StudioGenerator
	if g, genErr := newStudioGenerator(context.Background(), keyringService); genErr != nil {
		fmt.Println("Error creating studio client:", genErr)
	} else {
		generator = g
	}
	chatService := services.NewChatService(generator, monitorLogger, dbService.Settings, dbService.Deployments)

	videoService := services.NewVideoService(newVideoClient(keyringService), monitorLogger)

	app := NewApp(monitorLogger, chatService)

	if sqlDB, dbErr := db.DB(); dbErr == nil {
		app.dbClose = sqlDB.Close
	}

	// Create application with options
	err = wails.Run(&options.App{
		Title:  "Knowledge Chat",
		Width:  1280,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: false,
			WebviewGpuPolicy:    linux.WebviewGpuPolicyAlways,
			ProgramName:         "Knowledge Chat",
		},
		BackgroundColour: &options.RGBA{R: 5, G: 7, B: 10, A: 1},
		OnStartup: func(ctx context.Context) {
			if startErr := dbService.StartDbServices(ctx); startErr != nil {
				fmt.Println("Error starting database services:", startErr)
			}
			if startErr := assetService.Startup(ctx); startErr != nil {
				fmt.Println("Error starting asset service:", startErr)
			}
			idCardService.Startup(ctx)
			stockService.Startup(ctx)
			socialService.Startup(ctx)
			emailService.Startup(ctx)
			appStoreService.Startup(ctx)
			voiceService.Startup(ctx)
			videoService.Startup(ctx)

			if startErr := chatService.Startup(ctx); startErr != nil {
				fmt.Println("Error starting chat service:", startErr)
			}

			app.startup(ctx)
		},
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
			chatService,
			dbService.Users,
			dbService.Settings,
			dbService.Deployments,
			keyringService,
			assetService,
			idCardService,
			stockService,
			socialService,
			emailService,
			appStoreService,
			voiceService,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
