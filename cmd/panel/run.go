package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"eldercare-panel/internal/app"
	"eldercare-panel/internal/config"
	"eldercare-panel/internal/domain/validation"
	"eldercare-panel/internal/platform/logger"
	"eldercare-panel/internal/ports/token"
)

const usage = `usage: panel [global flags] <command> [flags]

commands:
  login      -email E -password P      inicia sesión y guarda el token
  logout                               borra el token local
  status                               muestra si hay sesión y quién es
  refresh                              renueva el token guardado
  register   -email E -password P ...  da de alta un usuario (no inicia sesión)
  persons    list|get|by-user|create|update|delete
  events     list|get|create|update|delete
  devices    list|get|by-person|activate|deactivate|delete
  alerts     list|get|critical
  serve      [-addr :8080]             levanta el panel HTTP local

global flags:
`

// runOptions permite inyectar dependencias en tests.
type runOptions struct {
	Tokens token.Store
	Log    logger.Logger
}

type cli struct {
	app    *app.App
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts runOptions) int {
	cfg := config.Load()

	global := flag.NewFlagSet("panel", flag.ContinueOnError)
	global.SetOutput(stderr)
	global.Usage = func() {
		fmt.Fprint(stderr, usage)
		global.PrintDefaults()
	}
	global.StringVar(&cfg.APIBaseURL, "api", cfg.APIBaseURL, "base URL del backend")
	global.StringVar(&cfg.Token.Driver, "token-driver", cfg.Token.Driver, "memory|file|redis|postgres|sqlite")
	global.StringVar(&cfg.Token.File, "token-file", cfg.Token.File, "ruta del token (driver file)")
	global.DurationVar(&cfg.HTTPTimeout, "timeout", cfg.HTTPTimeout, "timeout de cada request al backend")
	global.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug|info|warn|error")

	if err := global.Parse(args); err != nil {
		return 2
	}
	rest := global.Args()
	if len(rest) == 0 {
		global.Usage()
		return 2
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")

	log := opts.Log
	if log == nil {
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.LogLevel),
			Format: logger.ParseFormat(cfg.LogFormat),
			App:    cfg.AppName,
			Out:    stderr,
		})
	}

	a, err := app.Build(ctx, cfg, app.Options{Tokens: opts.Tokens, Log: log})
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("close failed", map[string]any{"error": err})
		}
	}()

	c := &cli{app: a, stdout: stdout, stderr: stderr}

	cmd, cmdArgs := rest[0], rest[1:]
	switch cmd {
	case "login":
		err = c.login(ctx, cmdArgs)
	case "logout":
		err = c.logout(ctx)
	case "status":
		err = c.status(ctx)
	case "refresh":
		err = c.refresh(ctx)
	case "register":
		err = c.register(ctx, cmdArgs)
	case "persons":
		err = c.persons(ctx, cmdArgs)
	case "events":
		err = c.events(ctx, cmdArgs)
	case "devices":
		err = c.devices(ctx, cmdArgs)
	case "alerts":
		err = c.alerts(ctx, cmdArgs)
	case "serve":
		err = c.serve(ctx, cmdArgs)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		global.Usage()
		return 2
	}

	if err != nil {
		c.printError(err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}
	return 0
}

var errUsage = errors.New("invalid usage")

func (c *cli) printJSON(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (c *cli) printError(err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		for _, fe := range vErr.Fields {
			fmt.Fprintf(c.stderr, "%s: %s\n", fe.Field, fe.Message)
		}
		return
	}
	fmt.Fprintln(c.stderr, "error:", err)
}

func (c *cli) serve(ctx context.Context, args []string) error {
	fs := newFlagSet("serve", c.stderr)
	addr := fs.String("addr", c.app.Config.HTTPAddr, "dirección de escucha")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           c.app.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      c.app.Config.HTTPTimeout + 5*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.app.Log.Info("panel listening", map[string]any{"addr": *addr, "api": c.app.Config.APIBaseURL})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

// envOr permite pasar secretos por env en lugar de flags.
func envOr(val, key string) string {
	if val != "" {
		return val
	}
	return os.Getenv(key)
}
