package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jsb2092/fashion-coordinator-sub000/internal/config"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/gencache"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/people"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/supplies"
	"github.com/jsb2092/fashion-coordinator-sub000/internal/wardrobe"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// small pool sized for a managed pooler in front of Postgres
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// simple protocol for PgBouncer transaction-mode compatibility:
	// prepared statements hang connections on subsequent queries
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	personRepo := people.NewRepository(db)
	itemRepo := wardrobe.NewRepository(db)
	supplyRepo := supplies.NewRepository(db)
	cacheRepo := gencache.NewRepository(db)

	services, err := InitializeServices(personRepo)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if !cfg.IsProduction() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	server := &Server{
		db:         db,
		config:     cfg,
		personRepo: personRepo,
		itemRepo:   itemRepo,
		supplyRepo: supplyRepo,
		cacheRepo:  cacheRepo,
		services:   services,
		router:     router,
	}

	RegisterRoutes(router, server)

	return server, nil
}
