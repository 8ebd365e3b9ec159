package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/invitetrackhq/invite-tracker-api/api/handlers"
	"github.com/invitetrackhq/invite-tracker-api/config"
)

func main() {
	a := handlers.App{}
	a.Config = *config.New()

	err := a.Initialize() //initialize database, tracker services and router
	if err != nil {
		log.Fatal(err)
	}

	// warm invite snapshots before the event socket accepts traffic
	if err := a.Tracker.Bootstrap(context.Background(), a.Config.SpaceIDs); err != nil {
		zap.S().With(err).Error("failed to bootstrap invite snapshots")
	}

	port := os.Getenv("PORT")
	baseURL := os.Getenv("BASE_URL")
	zap.S().Infow("invite-tracker-api is up and running",
		"port", port,
		"url", baseURL,
	)
	log.Fatal(http.ListenAndServe(fmt.Sprintf(":%v", port), a.Router))
}
