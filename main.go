package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fighter-arena/config"
	"fighter-arena/handlers"
	"fighter-arena/services"
	"fighter-arena/storage"
	"fighter-arena/store"

	"github.com/go-co-op/gocron/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	db, err := store.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fighters := store.NewFighterStore(db)
	contests := store.NewContestStore(db)

	// 🖼️ Image uploads stay off until R2 credentials are provided
	var images storage.ImageUploader
	if r2 := cfg.R2.Storage(); r2.Enabled() {
		r2Store, err := storage.NewR2Store(ctx, r2)
		if err != nil {
			log.Fatal("failed to initialize R2 client: ", err)
		}
		images = r2Store
		log.Printf("✅ R2 image storage enabled (bucket %s)", r2.Bucket)
	} else {
		log.Println("⚠️  R2 not configured, image uploads disabled")
	}

	var sched gocron.Scheduler
	if cfg.PurgeInterval > 0 {
		retention := services.NewRetentionService(fighters, contests, cfg.PurgeRetention)
		sched, err = retention.StartPurgeScheduler(ctx, cfg.PurgeInterval)
		if err != nil {
			log.Fatal("failed to start purge scheduler: ", err)
		}
		log.Printf("✅ Purge scheduler running (every %s, retention %s)", cfg.PurgeInterval, cfg.PurgeRetention)
	}

	app := handlers.NewApp(handlers.AppOptions{
		BodyLimit:      cfg.BodyLimit(),
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceToken:   cfg.ServiceToken,
		AccessLog:      true,
	}, handlers.Services{
		Fighters: services.NewFighterService(fighters, images),
		Contests: services.NewContestService(fighters, contests),
		Health:   services.NewHealthService(db),
	})

	go func() {
		if err := app.Listen(cfg.Addr()); err != nil {
			log.Printf("Server error: %v", err)
			stop()
		}
	}()

	log.Printf("✅ Server running on http://localhost%s", cfg.Addr())
	log.Printf("✅ CORS configured for origins: %v", cfg.AllowedOrigins)
	if cfg.ServiceToken != "" {
		log.Println("✅ Service token enforced on /api")
	}

	<-ctx.Done()
	log.Println("Shutting down server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if sched != nil {
		if err := sched.Shutdown(); err != nil {
			log.Printf("[Scheduler] Shutdown error: %v", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Println("✅ Shutdown complete")
}
