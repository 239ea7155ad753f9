package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/Derda24/wodenstockai-sub000/internal/config"
	"github.com/Derda24/wodenstockai-sub000/internal/repository"
	"github.com/Derda24/wodenstockai-sub000/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op int
	var n int
	var rosterPath string

	flag.IntVar(&op, "op", 0, "operation to run (1: insert random baristas, 2: import roster CSV)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&rosterPath, "roster", "", "path to the roster CSV file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect; ping explicitly so a bad DSN fails here
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case 1:
		if n <= 0 {
			slog.Error("please provide a valid barista count")
			return
		}
		inserted, err := seed.InsertRandomBaristas(repo, n, cfg.Email.UserDomain)
		if err != nil {
			slog.Error("failed to insert baristas", slog.String("error", err.Error()), slog.Int("inserted", inserted))
			return
		}
		slog.Info("baristas inserted", slog.Int("count", inserted))
	case 2:
		if rosterPath == "" {
			slog.Error("please provide -roster with the CSV path")
			return
		}
		inserted, err := seed.ImportRosterCSV(repo, rosterPath)
		if err != nil {
			slog.Error("roster import failed", slog.String("error", err.Error()), slog.Int("inserted", inserted))
			return
		}
		slog.Info("roster imported", slog.Int("count", inserted))
	default:
		slog.Error("no operation specified, use -op 1 or -op 2")
	}
}
