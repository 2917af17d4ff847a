package main

import (
	"context"
	"log"

	"github.com/QTMarketing/lama-cms/internal/bootstrap"
	"github.com/QTMarketing/lama-cms/internal/config"
	"github.com/QTMarketing/lama-cms/internal/server"
	"github.com/QTMarketing/lama-cms/pkg/database"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Seed the first admin account when configured
	if err := container.AuthService.EnsureDefaultAdmin(context.Background()); err != nil {
		log.Printf("Warning: failed to seed default admin: %v", err)
	}

	// 5. Start Background Services
	go func() {
		log.Println("Background: Starting Scheduler Service...")
		container.SchedulerService.Run(context.Background())
	}()

	// 6. Initialize Server
	srv := server.New(cfg, container)

	// 7. Run Server
	log.Fatal(srv.Run())
}
