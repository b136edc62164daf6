package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lmedina-dev/tastebite-backend/pkg/config"
	"github.com/lmedina-dev/tastebite-backend/pkg/db"
	"github.com/lmedina-dev/tastebite-backend/pkg/logger"
	"github.com/lmedina-dev/tastebite-backend/pkg/migrate"
)

const usage = `usage: migrate [-dir path] <command> [args]

Commands mirror goose: up, up-by-one, up-to VERSION, down, down-to VERSION,
redo, reset, status, version, create NAME [sql|go], fix.`

func main() {
	logg := logger.New(logger.Options{ServiceName: "migrate"})
	ctx := context.Background()

	dir := flag.String("dir", migrate.DefaultDir, "directory with migration files")
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	client, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to connect to database", err)
		os.Exit(1)
	}
	defer client.Close()

	sqlDB, err := client.DB().DB()
	if err != nil {
		logg.Error(ctx, "failed to unwrap sql.DB", err)
		os.Exit(1)
	}

	command := args[0]
	if err := migrate.Run(ctx, sqlDB, migrate.GooseDialect(cfg.DB), *dir, command, args[1:]...); err != nil {
		logg.Error(ctx, "migration command failed", err)
		os.Exit(1)
	}

	logg.Info(logg.WithField(ctx, "command", command), "migration command complete")
}
