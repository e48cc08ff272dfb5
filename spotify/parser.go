package spotify

import (
	"errors"
	"strings"

	log "github.com/sirupsen/logrus"
)

// SpotifyRequest is a share URL resolved to a typed catalog ID. At most one
// field is set; both empty means the URL pointed at an unsupported kind.
type SpotifyRequest struct {
	TrackID string
	AlbumID string
}

func ParseSpotifyURL(url string) (SpotifyRequest, error) {
	if strings.HasPrefix(url, "https://open.spotify.com/") {
		parts := strings.Split(url, "/")
		if len(parts) < 5 {
			log.Warnf("Invalid Spotify URL format (too few parts): %s", url)
			return SpotifyRequest{}, errors.New("invalid Spotify URL")
		}

		request := SpotifyRequest{}

		// Strip query parameters from ID (e.g., ?si=tracking_id)
		id := strings.Split(parts[4], "?")[0]

		switch parts[3] {
		case "track":
			request.TrackID = id
			log.Tracef("Parsed Spotify track URL: %s", id)
		case "album":
			request.AlbumID = id
			log.Tracef("Parsed Spotify album URL: %s", id)
		}

		return request, nil
	}

	log.Warnf("URL does not start with https://open.spotify.com/: %s", url)
	return SpotifyRequest{}, errors.New("invalid Spotify URL")
}
