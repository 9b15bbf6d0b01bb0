package main

import (
	"trip-cms/pkg/config"
	app "trip-cms/services/trip/internal/app"

	_ "trip-cms/services/trip/docs" // Swagger docs
)

// @title           Trip CMS API
// @version         1.0
// @description     Create, edit and browse trip posts with their photo galleries

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := application.Run(); err != nil {
		panic(err)
	}

	application.Wait()

	if err := application.Shutdown(); err != nil {
		panic(err)
	}
}
