package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-tenant-user-api/internal/core/config"
	"go-tenant-user-api/internal/core/database"
	"go-tenant-user-api/internal/core/logger"
	"go-tenant-user-api/internal/seeder"
)

// Seeds one tenant database. The tenant is whatever the configured DSN
// points at; provisioning tooling runs this once per tenant.
func main() {
	dsn := flag.String("dsn", "", "override the configured tenant DSN")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	if *dsn != "" {
		cfg.DB.DSN = *dsn
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		log.Fatal("db open", zap.Error(err))
	}

	adminPassword := cfg.Seed.AdminPassword
	if adminPassword == "" {
		log.Fatal("seed.adminpassword must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	s := seeder.NewDatabaseTenantSeeder(seeder.AdminAccount{
		Name:     cfg.Seed.AdminName,
		Email:    cfg.Seed.AdminEmail,
		Password: adminPassword,
	}, log)

	if err := s.Run(ctx, db); err != nil {
		log.Fatal("tenant seed FAILED", zap.Error(err))
	}
	log.Info("tenant seed done", zap.String("dsn_driver", cfg.DB.Driver))
}
