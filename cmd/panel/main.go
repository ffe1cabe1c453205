package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// @title       eldercare-panel
// @version     1.0
// @description Panel de administración del servicio de monitoreo de adultos mayores.
// @BasePath    /
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr, runOptions{}))
}
