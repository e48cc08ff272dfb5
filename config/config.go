package config

import (
	"os"
	"strconv"
)

type ConfigStruct struct {
	Spotify SpotifyConfig
	Options Options
}

type SpotifyConfig struct {
	ClientID     string
	ClientSecret string
	SearchLimit  int
}

type Options struct {
	Port     string
	LogLevel string
}

var Config *ConfigStruct

func NewConfig() {
	config := &ConfigStruct{
		Spotify: SpotifyConfig{
			ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
			SearchLimit:  getSearchLimit(),
		},
		Options: Options{
			Port:     os.Getenv("PORT"),
			LogLevel: os.Getenv("LOG_LEVEL"),
		},
	}

	Config = config
}

func getSearchLimit() int {
	limitStr := os.Getenv("SPOTIFY_SEARCH_LIMIT")
	if limitStr == "" {
		return 20
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		return 20
	}
	if limit > 50 {
		return 50 // Cap at 50 for API and performance reasons
	}
	return limit
}
