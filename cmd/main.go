package main

import (
	"fmt"
	"log"
	"net/http"

	"sql-console/configs"
	"sql-console/internal/console"
	"sql-console/internal/web"
)

func App(conf *configs.Config) http.Handler {
	router := http.NewServeMux()

	// repositories
	consoleRepository := console.NewRepository()

	// services
	consoleService := console.NewService(consoleRepository, conf.BrowseRowLimit)

	// controllers
	console.NewController(router, console.ControllerDeps{
		Service: consoleService,
	})

	web.NewController(router, web.ControllerDeps{
		Config: conf,
	})

	return router
}

func main() {
	conf := configs.LoadConfig()
	app := App(conf)

	server := http.Server{
		Addr:    conf.ListenAddr,
		Handler: app,
	}
	fmt.Printf("Server is listening on %s\n", conf.ListenAddr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
