package spotify

import (
	"context"
	"errors"
	"fmt"

	sentry "github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	spotifyclient "github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

const (
	// DefaultSearchLimit applies when a caller passes a non-positive limit.
	DefaultSearchLimit = 20

	// albumPageSize is the provider's maximum page size for album tracks.
	albumPageSize = 50

	// maxAlbumTracks bounds album pagination; no page request is ever
	// issued at an offset past this ceiling.
	maxAlbumTracks = 1000
)

// ErrMissingCredentials is returned by New when either credential is empty.
var ErrMissingCredentials = errors.New("spotify credentials not configured: set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET")

type Client struct {
	sp *spotifyclient.Client
}

// New builds a catalog client from a client-credentials pair. The token
// exchange is deferred to the first request, so construction never touches
// the network.
func New(clientID, clientSecret string) (*Client, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	config := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	httpClient := config.Client(context.Background())

	return &Client{sp: spotifyclient.New(httpClient)}, nil
}

// SearchTracks runs a free-text track search and returns at most limit
// results in provider order. Provider failures propagate to the caller.
func (c *Client) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	log.Tracef("Searching Spotify tracks: %q (limit: %d)", query, limit)

	span := sentry.StartSpan(ctx, "spotify.search_tracks")
	span.Description = "Search tracks on Spotify API"
	span.SetTag("query", query)
	defer span.Finish()

	results, err := c.sp.Search(ctx, query, spotifyclient.SearchTypeTrack, spotifyclient.Limit(limit))
	if err != nil {
		log.Errorf("Spotify track search failed for %q: %v", query, err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, fmt.Errorf("spotify track search: %w", err)
	}

	tracks := []Track{}
	if results.Tracks != nil {
		tracks = make([]Track, 0, len(results.Tracks.Tracks))
		for _, item := range results.Tracks.Tracks {
			tracks = append(tracks, trackFromFull(item))
		}
	}

	log.Debugf("Spotify track search for %q returned %d results", query, len(tracks))
	span.Status = sentry.SpanStatusOK
	span.SetData("results_count", len(tracks))
	return tracks, nil
}

// SearchAlbums runs a free-text album search and returns at most limit
// results in provider order, without track listings.
func (c *Client) SearchAlbums(ctx context.Context, query string, limit int) ([]Album, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	log.Tracef("Searching Spotify albums: %q (limit: %d)", query, limit)

	span := sentry.StartSpan(ctx, "spotify.search_albums")
	span.Description = "Search albums on Spotify API"
	span.SetTag("query", query)
	defer span.Finish()

	results, err := c.sp.Search(ctx, query, spotifyclient.SearchTypeAlbum, spotifyclient.Limit(limit))
	if err != nil {
		log.Errorf("Spotify album search failed for %q: %v", query, err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil, fmt.Errorf("spotify album search: %w", err)
	}

	albums := []Album{}
	if results.Albums != nil {
		albums = make([]Album, 0, len(results.Albums.Albums))
		for _, item := range results.Albums.Albums {
			albums = append(albums, albumFromSimple(item))
		}
	}

	log.Debugf("Spotify album search for %q returned %d results", query, len(albums))
	span.Status = sentry.SpanStatusOK
	span.SetData("results_count", len(albums))
	return albums, nil
}

// GetTrackDetails fetches a single track. It returns nil when the lookup
// fails for any reason; a missing track and a provider outage are
// indistinguishable to callers.
func (c *Client) GetTrackDetails(ctx context.Context, trackID string) *Track {
	log.Tracef("Fetching track from Spotify API: %s", trackID)

	span := sentry.StartSpan(ctx, "spotify.get_track_details")
	span.Description = "Get track from Spotify API"
	span.SetTag("track_id", trackID)
	defer span.Finish()

	full, err := c.sp.GetTrack(ctx, spotifyclient.ID(trackID))
	if err != nil {
		log.Errorf("Failed to fetch Spotify track %s: %v", trackID, err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil
	}

	track := trackFromFull(*full)
	log.Debugf("Successfully fetched Spotify track: '%s' by %s", track.Name, track.Artist)
	span.Status = sentry.SpanStatusOK
	return &track
}

// GetAlbumDetails fetches an album with its complete track listing,
// following the provider's pagination until exhausted. It returns nil when
// any fetch fails, including a continuation page.
func (c *Client) GetAlbumDetails(ctx context.Context, albumID string) *Album {
	log.Tracef("Fetching album from Spotify API: %s", albumID)

	span := sentry.StartSpan(ctx, "spotify.get_album_details")
	span.Description = "Get album with full track listing from Spotify API"
	span.SetTag("album_id", albumID)
	defer span.Finish()

	album, err := c.sp.GetAlbum(ctx, spotifyclient.ID(albumID))
	if err != nil {
		log.Errorf("Failed to fetch Spotify album %s: %v", albumID, err)
		sentry.CaptureException(err)
		span.Status = sentry.SpanStatusInternalError
		return nil
	}

	tracks := make([]Track, 0, int(album.Tracks.Total))
	for _, item := range album.Tracks.Tracks {
		tracks = append(tracks, trackFromAlbumPage(item, album))
	}

	// The detail response embeds only the first page of tracks (50 max);
	// walk the rest while the provider advertises a next page.
	if album.Tracks.Next != "" {
		offset := len(tracks)
		for {
			page, err := c.sp.GetAlbumTracks(ctx, spotifyclient.ID(albumID),
				spotifyclient.Limit(albumPageSize), spotifyclient.Offset(offset))
			if err != nil {
				log.Errorf("Failed to fetch album tracks at offset %d for %s: %v", offset, albumID, err)
				sentry.CaptureException(err)
				span.Status = sentry.SpanStatusInternalError
				return nil
			}

			if len(page.Tracks) == 0 {
				break
			}
			for _, item := range page.Tracks {
				tracks = append(tracks, trackFromAlbumPage(item, album))
			}
			if page.Next == "" {
				break
			}

			offset += albumPageSize
			if offset >= maxAlbumTracks {
				msg := fmt.Sprintf("Album %s exceeds the %d track pagination ceiling, truncating", albumID, maxAlbumTracks)
				sentry.CaptureMessage(msg)
				log.Warn(msg)
				break
			}
		}
	}

	result := albumFromSimple(album.SimpleAlbum)
	result.Tracks = tracks

	log.Debugf("Successfully fetched Spotify album: '%s' with %d tracks", result.Name, len(result.Tracks))
	span.Status = sentry.SpanStatusOK
	span.SetData("tracks_count", len(result.Tracks))
	return &result
}
