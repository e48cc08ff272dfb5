package spotify

import (
	"strings"

	spotifyclient "github.com/zmb3/spotify/v2"
)

// Track is the flattened record returned for catalog tracks. Fields mirror
// the JSON shape consumed by clients of this service.
type Track struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Artists      []string `json:"artists"`
	Artist       string   `json:"artist"`
	AlbumArtists []string `json:"album_artists,omitempty"`
	AlbumArtist  string   `json:"album_artist,omitempty"`
	Album        string   `json:"album"`
	AlbumID      string   `json:"album_id"`
	DurationMS   int      `json:"duration_ms"`
	TrackNumber  int      `json:"track_number"`
	ExternalURL  string   `json:"external_url"`
	PreviewURL   string   `json:"preview_url,omitempty"`
	AlbumArt     string   `json:"album_art,omitempty"`
	ReleaseDate  string   `json:"release_date"`
}

// Album is the flattened record for catalog albums. Tracks is populated
// only by GetAlbumDetails; search results leave it empty.
type Album struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Artist      string   `json:"artist"`
	ReleaseDate string   `json:"release_date"`
	TotalTracks int      `json:"total_tracks"`
	AlbumArt    string   `json:"album_art,omitempty"`
	ExternalURL string   `json:"external_url"`
	Tracks      []Track  `json:"tracks,omitempty"`
}

func flattenArtists(artists []spotifyclient.SimpleArtist) []string {
	names := make([]string, 0, len(artists))
	for _, artist := range artists {
		names = append(names, artist.Name)
	}
	return names
}

// The provider sorts image lists widest first.
func firstImageURL(images []spotifyclient.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func trackNumberOrDefault(n spotifyclient.Numeric) int {
	if n <= 0 {
		return 1
	}
	return int(n)
}

func trackFromFull(t spotifyclient.FullTrack) Track {
	artists := flattenArtists(t.Artists)
	albumArtists := flattenArtists(t.Album.Artists)

	return Track{
		ID:           string(t.ID),
		Name:         t.Name,
		Artists:      artists,
		Artist:       strings.Join(artists, ", "),
		AlbumArtists: albumArtists,
		AlbumArtist:  strings.Join(albumArtists, ", "),
		Album:        t.Album.Name,
		AlbumID:      string(t.Album.ID),
		DurationMS:   int(t.Duration),
		TrackNumber:  trackNumberOrDefault(t.TrackNumber),
		ExternalURL:  t.ExternalURLs["spotify"],
		PreviewURL:   t.PreviewURL,
		AlbumArt:     firstImageURL(t.Album.Images),
		ReleaseDate:  t.Album.ReleaseDate,
	}
}

// Continuation pages carry bare tracks without an album object, so the
// parent album supplies the album-level fields.
func trackFromAlbumPage(t spotifyclient.SimpleTrack, album *spotifyclient.FullAlbum) Track {
	artists := flattenArtists(t.Artists)
	albumArtists := flattenArtists(album.Artists)

	return Track{
		ID:           string(t.ID),
		Name:         t.Name,
		Artists:      artists,
		Artist:       strings.Join(artists, ", "),
		AlbumArtists: albumArtists,
		AlbumArtist:  strings.Join(albumArtists, ", "),
		Album:        album.Name,
		AlbumID:      string(album.ID),
		DurationMS:   int(t.Duration),
		TrackNumber:  trackNumberOrDefault(t.TrackNumber),
		ExternalURL:  t.ExternalURLs["spotify"],
		PreviewURL:   t.PreviewURL,
		AlbumArt:     firstImageURL(album.Images),
		ReleaseDate:  album.ReleaseDate,
	}
}

func albumFromSimple(a spotifyclient.SimpleAlbum) Album {
	artists := flattenArtists(a.Artists)

	return Album{
		ID:          string(a.ID),
		Name:        a.Name,
		Artists:     artists,
		Artist:      strings.Join(artists, ", "),
		ReleaseDate: a.ReleaseDate,
		TotalTracks: int(a.TotalTracks),
		AlbumArt:    firstImageURL(a.Images),
		ExternalURL: a.ExternalURLs["spotify"],
	}
}
