package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/orderdeck/orderdeck/config"
	"github.com/orderdeck/orderdeck/internal/application"
	pginfra "github.com/orderdeck/orderdeck/internal/infrastructure/postgres"
	"github.com/orderdeck/orderdeck/pkg/helpers"
)

// seed is the CLI entry to the reset/seed tooling. Same three modes as the
// dev reset endpoint:
//
//	seed -account=<id>   wipe and reseed that account's orders
//	seed -user=<id>      purge everything except that user and its account
//	seed -wipe           purge all data
func main() {
	accountID := flag.String("account", "", "account id to reseed with demo orders")
	userID := flag.String("user", "", "user id to keep while purging everything else")
	wipe := flag.Bool("wipe", false, "purge all data")
	flag.Parse()

	if *accountID == "" && *userID == "" && !*wipe {
		flag.Usage()
		log.Fatal("one of -account, -user or -wipe is required")
	}

	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := application.NewSeedService(
		pginfra.NewUserRepository(pool),
		pginfra.NewAccountRepository(pool),
		pginfra.NewOrderRepository(pool),
		pginfra.NewMaintenanceRepository(pool),
		cfg.IsDevelopment(),
		logger,
	)

	res, err := svc.Reset(ctx, *accountID, *userID)
	if err != nil {
		log.Fatalf("reset failed: %v", err)
	}
	fmt.Printf("mode=%s ordersCreated=%d\n", res.Mode, res.OrdersCreated)
}
