// Package handlers translates HTTP requests from the router into catalog
// calls and shapes the JSON payloads returned to callers.
package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"melodex/config"
	"melodex/lyrics"
	appSentry "melodex/sentry"
	"melodex/spotify"
)

// Catalog is the slice of the Spotify client the HTTP layer depends on.
type Catalog interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]spotify.Track, error)
	SearchAlbums(ctx context.Context, query string, limit int) ([]spotify.Album, error)
	GetTrackDetails(ctx context.Context, trackID string) *spotify.Track
	GetAlbumDetails(ctx context.Context, albumID string) *spotify.Album
}

type LyricsSearcher interface {
	Search(ctx context.Context, track, artist string) (*lyrics.SearchResult, error)
}

var _ Catalog = (*spotify.Client)(nil)
var _ LyricsSearcher = (*lyrics.Client)(nil)

type Manager struct {
	Catalog Catalog
	Lyrics  LyricsSearcher
}

func NewManager(catalog Catalog, lyricsClient LyricsSearcher) *Manager {
	return &Manager{
		Catalog: catalog,
		Lyrics:  lyricsClient,
	}
}

func (manager *Manager) SearchTracks(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	tracks, err := manager.Catalog.SearchTracks(c.Request.Context(), query, parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "spotify search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (manager *Manager) SearchAlbums(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	albums, err := manager.Catalog.SearchAlbums(c.Request.Context(), query, parseLimit(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "spotify search failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"albums": albums})
}

func (manager *Manager) GetTrack(c *gin.Context) {
	track := manager.Catalog.GetTrackDetails(c.Request.Context(), c.Param("id"))
	if track == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
		return
	}

	c.JSON(http.StatusOK, track)
}

func (manager *Manager) GetAlbum(c *gin.Context) {
	album := manager.Catalog.GetAlbumDetails(c.Request.Context(), c.Param("id"))
	if album == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
		return
	}

	c.JSON(http.StatusOK, album)
}

// Resolve turns an open.spotify.com share link into the matching detail
// payload so clients can paste URLs straight from the Spotify app.
func (manager *Manager) Resolve(c *gin.Context) {
	rawURL := c.Query("url")
	if rawURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url parameter is required"})
		return
	}

	request, err := spotify.ParseSpotifyURL(rawURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid Spotify URL"})
		return
	}

	switch {
	case request.TrackID != "":
		track := manager.Catalog.GetTrackDetails(c.Request.Context(), request.TrackID)
		if track == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "track not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"type": "track", "track": track})
	case request.AlbumID != "":
		album := manager.Catalog.GetAlbumDetails(c.Request.Context(), request.AlbumID)
		if album == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "album not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"type": "album", "album": album})
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported Spotify URL"})
	}
}

func (manager *Manager) SearchLyrics(c *gin.Context) {
	track := c.Query("track")
	if track == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "track parameter is required"})
		return
	}

	result, err := manager.Lyrics.Search(c.Request.Context(), track, c.Query("artist"))
	if err != nil {
		log.Errorf("Lyrics search failed for '%s': %v", track, err)
		appSentry.ReportError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lyrics search failed"})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no lyrics found"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// parseLimit reads the limit query param, falling back to the configured
// search limit. Values past the provider page maximum clamp to 50.
func parseLimit(c *gin.Context) int {
	limit := config.Config.Spotify.SearchLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}
	if limit > 50 {
		return 50
	}
	return limit
}
