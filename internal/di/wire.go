//go:build wireinject
// +build wireinject

package di

import (
	"FinTab/pkg/config"
	"FinTab/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire generates the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Foundation
		ProvideLogger,
		ProvideMetrics,

		// Input pipeline
		ProvideLineSource,
		ProvideTableLoader,

		// Publishing
		ProvideKafkaProducer,
		ProvidePublisher,
		ProvideLogPublisher,

		// Cache
		ProvideCache,

		// Application
		ProvideApp,
	)
	return &server.App{}, nil
}
