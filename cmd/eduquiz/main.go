package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eduquiz/internal/cli"
	"eduquiz/internal/config"
	"eduquiz/internal/hangman"
	"eduquiz/internal/history"
	"eduquiz/internal/identity"
	"eduquiz/internal/kvstore"
	"eduquiz/internal/quiz"
)

func main() {
	cfg := config.Load()

	flag.StringVar(&cfg.Store, "store", cfg.Store, "storage backend: memory, sqlite, postgres, mysql, redis or mongo")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	flag.StringVar(&cfg.DBURL, "db-url", cfg.DBURL, "postgres or mysql connection string")
	flag.StringVar(&cfg.KeyPrefix, "prefix", cfg.KeyPrefix, "key namespace inside the store")
	flag.StringVar(&cfg.BankPath, "bank", cfg.BankPath, "question bank JSON file (built-in bank when empty)")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose logging")
	flag.Parse()

	config.SetVerbose(cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	bank := quiz.DefaultBank()
	if cfg.BankPath != "" {
		loaded, err := quiz.LoadBankFile(cfg.BankPath)
		if err != nil {
			return err
		}
		bank = loaded
	}
	config.VerboseLog("eduquiz: %d questions loaded", bank.Len())

	openCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	backend, err := kvstore.Open(openCtx, cfg.StoreOptions())
	cancel()
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Store, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Printf("eduquiz: closing store: %v", err)
		}
	}()
	config.VerboseLog("eduquiz: using %s store with prefix %q", cfg.Store, cfg.KeyPrefix)

	store := kvstore.WithPrefix(backend, cfg.KeyPrefix)

	loadCtx, cancel := context.WithTimeout(ctx, cfg.StoreTimeout)
	manager, err := identity.NewManager(loadCtx, store)
	cancel()
	if err != nil {
		return err
	}

	return cli.Run(ctx, os.Stdin, os.Stdout, cli.App{
		Archive:  history.NewArchive(store),
		Identity: manager,
		Bank:     bank,
		Words:    hangman.DefaultWords(),
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
		Timeout:  cfg.StoreTimeout,
	})
}
