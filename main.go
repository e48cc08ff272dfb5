package main

import (
	"net/http"
	"time"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	appConfig "melodex/config"
	"melodex/handlers"
	"melodex/lyrics"
	appSentry "melodex/sentry"
	"melodex/spotify"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
	appConfig.NewConfig()
	configureLogging()
	appSentry.Init()

	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func configureLogging() {
	log.SetFormatter(&nested.Formatter{
		HideKeys:        true,
		TimestampFormat: time.RFC3339,
	})

	level, err := log.ParseLevel(appConfig.Config.Options.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
}

func run() error {
	catalog, err := spotify.New(appConfig.Config.Spotify.ClientID, appConfig.Config.Spotify.ClientSecret)
	if err != nil {
		return err
	}

	manager := handlers.NewManager(catalog, lyrics.New())

	router := gin.Default()
	router.Use(appSentry.GetSentryGin())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	router.GET("/spotify/search/tracks", manager.SearchTracks)
	router.GET("/spotify/search/albums", manager.SearchAlbums)
	router.GET("/spotify/tracks/:id", manager.GetTrack)
	router.GET("/spotify/albums/:id", manager.GetAlbum)
	router.GET("/spotify/resolve", manager.Resolve)
	router.GET("/lyrics/search", manager.SearchLyrics)

	port := appConfig.Config.Options.Port
	if port == "" {
		port = "8080"
	}
	log.Infof("Starting server on :%s", port)
	return http.ListenAndServe(":"+port, router)
}
