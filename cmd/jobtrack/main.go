package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/dkolesn/jobtrack/internal/cli"
	"github.com/dkolesn/jobtrack/internal/config"
	"github.com/dkolesn/jobtrack/internal/logging"
)

func main() {
	// Optional .env file; settings in the real environment win.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		log.Fatal("jobtrack is interactive and needs a terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.NewText(os.Stderr, cfg.Verbose)
	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}
