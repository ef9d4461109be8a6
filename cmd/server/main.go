package main // Entry point package

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/svlesiv/fyyur/internal/booking"
	"github.com/svlesiv/fyyur/internal/config"
	"github.com/svlesiv/fyyur/internal/database"
	"github.com/svlesiv/fyyur/internal/handler"
	"github.com/svlesiv/fyyur/internal/middleware"
	"github.com/svlesiv/fyyur/internal/queue"
	"github.com/svlesiv/fyyur/internal/repository"
	"github.com/svlesiv/fyyur/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly
	cfg := config.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if cfg.Debug() {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	venues := repository.NewVenueRepo(db)
	artists := repository.NewArtistRepo(db)
	shows := repository.NewShowRepo(db)
	albums := repository.NewAlbumRepo(db)
	songs := repository.NewSongRepo(db)

	public := &handler.PublicHandler{
		VenueRepo:  venues,
		ArtistRepo: artists,
		ShowRepo:   shows,
		AlbumRepo:  albums,
		SongRepo:   songs,
		Secret:     cfg.SecretKey,
	}
	bookings := &handler.BookingHandler{
		VenueRepo:  venues,
		ArtistRepo: artists,
		ShowRepo:   shows,
		AlbumRepo:  albums,
		SongRepo:   songs,
		Checker:    booking.NewChecker(shows, venues),
		Events:     queue.NewPublisher(cfg.AMQPURL, log),
		Secret:     cfg.SecretKey,
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	e.Use(middleware.RequestLogger(log))

	// Redis is optional; without it the limiter passes requests through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable, rate limiting disabled")
	}
	e.Use(middleware.RateLimit(config.LoadRateLimitConfig(), rdb))

	router.RegisterPublic(e, public)
	router.RegisterBooking(e, bookings)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
