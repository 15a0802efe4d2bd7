//go:build wireinject
// +build wireinject

package main

import (
	"Crux/config"
	"Crux/dao"
	"Crux/dao/cache"
	"Crux/handler"
	"Crux/pkg/client"
	"Crux/pkg/database"
	"Crux/pkg/server"
	"Crux/service"
	"Crux/socket"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		socket.NewHub,
		wire.Bind(new(service.Bus), new(*socket.Hub)),

		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.CommentsHandler), "*"),
		wire.Struct(new(handler.NotificationHandler), "*"),
		wire.Struct(new(handler.WSHandler), "*"),

		server.NewGinEngine,
		wire.Struct(new(server.Handlers), "*"),
		wire.Struct(new(server.AppProvider), "*"),
	)
	return nil
}
