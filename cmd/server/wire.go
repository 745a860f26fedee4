//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"feed_demo/internal/app"
	"feed_demo/internal/config"
	"feed_demo/internal/http"
	"feed_demo/internal/http/controller"
	"feed_demo/internal/logging"
	"feed_demo/internal/metrics"
	"feed_demo/internal/queue/rabbitmq"
	"feed_demo/internal/service/feed"
	"feed_demo/internal/sse"
	"feed_demo/internal/store"
)

func InitializeApp() (*app.App, error) {
	wire.Build(
		config.New,
		logging.New,
		store.NewStore,
		feed.LoadStore,
		metrics.New,
		sse.NewHub,
		feed.NewService,
		controller.NewHandler,
		http.NewRouter,
		rabbitmq.NewConsumer,
		rabbitmq.NewPublisher,
		app.NewApp,
	)
	return &app.App{}, nil
}
