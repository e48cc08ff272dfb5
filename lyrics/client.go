package lyrics

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const defaultBaseURL = "https://lrclib.net"

type SearchResult struct {
	ID           int    `json:"id"`
	TrackName    string `json:"trackName"`
	ArtistName   string `json:"artistName"`
	AlbumName    string `json:"albumName"`
	PlainLyrics  string `json:"plainLyrics"`
	SyncedLyrics string `json:"syncedLyrics"`
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func New() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: defaultBaseURL,
	}
}

var timestampPattern = regexp.MustCompile(`\[\d+:\d+\.\d+\]`)

// Search returns the first lrclib match for a track, or nil when nothing
// matches. Synced lyrics are flattened to plain text when the provider has
// no plain variant.
func (c *Client) Search(ctx context.Context, track, artist string) (*SearchResult, error) {
	params := url.Values{}
	params.Set("track_name", track)
	if artist != "" {
		params.Set("artist_name", artist)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lrclib API returned status %d", resp.StatusCode)
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, err
	}

	if len(results) == 0 {
		log.Debugf("No lyrics found for '%s' by '%s'", track, artist)
		return nil, nil
	}

	res := results[0]
	if res.PlainLyrics == "" && res.SyncedLyrics != "" {
		res.PlainLyrics = strings.TrimSpace(timestampPattern.ReplaceAllString(res.SyncedLyrics, ""))
	}

	log.Debugf("Found lyrics for '%s' by '%s'", res.TrackName, res.ArtistName)
	return &res, nil
}
