package main

import (
	"github.com/rios0rios0/buf-breaking/internal"
	"github.com/rios0rios0/buf-breaking/internal/infrastructure/controllers"
	"go.uber.org/dig"
)

func injectApp() (*controllers.BreakingController, *internal.AppInternal) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get the root controller and AppInternal
	var breakingController *controllers.BreakingController
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(bc *controllers.BreakingController, ai *internal.AppInternal) {
		breakingController = bc
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return breakingController, appInternal
}
