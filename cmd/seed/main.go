package main

import (
	"context"
	"flag"

	_ "github.com/joho/godotenv/autoload"

	"startconnect/internal/cache"
	"startconnect/internal/config"
	"startconnect/internal/database"
	"startconnect/internal/database/migration"
	"startconnect/internal/logger"
	"startconnect/internal/repository/postgres"
	"startconnect/internal/seed"
	"startconnect/internal/service"
)

func main() {
	centers := flag.Int("centers", 25, "number of fake centers to create")
	lat := flag.Float64("lat", 48.8566, "latitude to scatter centers around")
	lng := flag.Float64("lng", 2.3522, "longitude to scatter centers around")
	spread := flag.Float64("spread-km", 15, "max distance from the coordinate")
	randSeed := flag.Uint64("seed", 0, "faker seed, 0 for random")
	flag.Parse()

	cfg := config.Load()
	loc := logger.LoadLocation(cfg.TimeZone)
	log := logger.Setup(cfg.LogLevel, loc)
	ctx := context.Background()

	db, err := database.NewPostgres(ctx, cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	tx := postgres.NewTxManager(db)
	s := seed.New(
		service.NewHobbyService(tx, postgres.NewHobbyPostgres(db)),
		service.NewCenterService(postgres.NewCenterPostgres(db), postgres.NewBookingPostgres(db), cache.Noop{}, loc),
		log,
	)
	if _, err := s.Run(ctx, seed.Options{
		Centers:   *centers,
		Latitude:  *lat,
		Longitude: *lng,
		SpreadKm:  *spread,
		Seed:      *randSeed,
	}); err != nil {
		log.WithError(err).Fatal("seed failed")
	}
}
