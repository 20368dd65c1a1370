// posctl herramienta de operación: migraciones, datos semilla y gestión de usuarios.
//
// Uso:
//
//	go run ./cmd/posctl migrate
//	go run ./cmd/posctl seed
//	go run ./cmd/posctl users list
//	go run ./cmd/posctl users deactivate 3
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
