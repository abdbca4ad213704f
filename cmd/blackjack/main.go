package main

import (
	"context"
	"log"

	"blackjack/internal/app"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	if err := application.Run(ctx); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
}
