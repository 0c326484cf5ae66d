// Package normalize maps the upstream catalog payloads into the internal
// view-model types. Every function here is pure: no I/O, no errors on
// missing optional fields, documented defaults instead ("" for strings,
// 0 for a missing year). List outputs preserve input order.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"vinylapi/internal/entity"
	"vinylapi/internal/platform/discogs"
	"vinylapi/internal/platform/spotify"
)

// SplitArtistTitle splits a combined "Artist - Album" string on the first
// " - " occurrence. When no delimiter is present the whole string is kept
// as the artist and the album is empty. This is a documented heuristic of
// the search source's title encoding, not a reliable parse.
func SplitArtistTitle(s string) (artist, album string) {
	idx := strings.Index(s, " - ")
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx+3:]
}

// ParseYear parses a 4-digit year string. 0 is the sentinel for missing or
// unparseable input everywhere in this codebase.
func ParseYear(s string) int {
	year, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || year < 0 {
		return 0
	}
	return year
}

// YearFromDate extracts the year from a "YYYY-MM-DD" (or bare "YYYY")
// release date.
func YearFromDate(date string) int {
	if date == "" {
		return 0
	}
	return ParseYear(strings.SplitN(date, "-", 2)[0])
}

// FormatDuration renders a track duration in milliseconds as "m:ss" with
// zero-padded seconds. 174728 → "2:55", 60000 → "1:00".
func FormatDuration(ms int) string {
	if ms < 0 {
		ms = 0
	}
	total := ms / 1000
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// MembershipSet builds an O(1)-lookup set of wishlisted external ids.
func MembershipSet(externalIDs []string) map[string]struct{} {
	set := make(map[string]struct{}, len(externalIDs))
	for _, id := range externalIDs {
		set[id] = struct{}{}
	}
	return set
}

// ArtistName resolves the full-name / abbreviated-alias precedence: the
// full name wins, the alias is used only when the name is empty.
func ArtistName(name, anv string) string {
	if name != "" {
		return name
	}
	return anv
}

// DiscogsSearchResult maps one /database/search row to a CatalogAlbum,
// applying the artist/title split heuristic.
func DiscogsSearchResult(r discogs.SearchResult) entity.CatalogAlbum {
	artist, album := SplitArtistTitle(r.Title)
	return entity.CatalogAlbum{
		ID:          strconv.Itoa(r.ID),
		Name:        album,
		Artist:      artist,
		Year:        ParseYear(r.Year),
		ImageURL:    r.Thumb,
		ExternalURL: r.URI,
		Source:      "discogs",
	}
}

// DiscogsSearchResults maps a result page in input order.
func DiscogsSearchResults(results []discogs.SearchResult) []entity.CatalogAlbum {
	albums := make([]entity.CatalogAlbum, len(results))
	for i, r := range results {
		albums[i] = DiscogsSearchResult(r)
	}
	return albums
}

// DiscogsRelease maps /releases/{id} to a VinylRelease.
func DiscogsRelease(r *discogs.Release) entity.VinylRelease {
	release := entity.VinylRelease{
		ID:      strconv.Itoa(r.ID),
		Title:   r.Title,
		Year:    r.Year,
		Genres:  r.Genres,
		Notes:   r.Notes,
		Country: r.Country,
	}
	for _, a := range r.Artists {
		release.Artists = append(release.Artists, entity.Artist{Name: ArtistName(a.Name, a.ANV), ANV: a.ANV})
	}
	for _, img := range r.Images {
		release.Images = append(release.Images, entity.Image{URL: img.ResourceURL})
	}
	for _, t := range r.Tracklist {
		release.Tracklist = append(release.Tracklist, entity.ReleaseTrack{Position: t.Position, Title: t.Title})
	}
	for _, v := range r.Videos {
		release.Videos = append(release.Videos, entity.Video{URI: v.URI, Title: v.Title})
	}
	return release
}

// DiscogsPricing maps marketplace stats to a PricingSummary. A nil input or
// a blocked listing yields nil: pricing absent.
func DiscogsPricing(stats *discogs.MarketplaceStats) *entity.PricingSummary {
	if stats == nil || stats.BlockedFromSale {
		return nil
	}
	summary := &entity.PricingSummary{NumForSale: stats.NumForSale}
	if stats.LowestPrice != nil {
		summary.LowestPrice = &entity.Price{
			Value:    stats.LowestPrice.Value,
			Currency: stats.LowestPrice.Currency,
		}
	}
	return summary
}

// DiscogsCollection maps the user-collection page to CatalogAlbums.
func DiscogsCollection(page *discogs.CollectionPage) []entity.CatalogAlbum {
	albums := make([]entity.CatalogAlbum, len(page.Releases))
	for i, r := range page.Releases {
		info := r.BasicInformation
		album := entity.CatalogAlbum{
			ID:       strconv.Itoa(r.ID),
			Name:     info.Title,
			Year:     info.Year,
			ImageURL: info.Cover,
			Source:   "discogs",
		}
		if album.ImageURL == "" {
			album.ImageURL = info.Thumb
		}
		if len(info.Artists) > 0 {
			album.Artist = ArtistName(info.Artists[0].Name, info.Artists[0].ANV)
		}
		albums[i] = album
	}
	return albums
}

// DiscogsCollectionValue maps /collection/value.
func DiscogsCollectionValue(v *discogs.CollectionValue) entity.CollectionValue {
	return entity.CollectionValue{
		Minimum: v.Minimum,
		Median:  v.Median,
		Maximum: v.Maximum,
	}
}

// SpotifyAlbum maps an album search item to a CatalogAlbum. The first image
// and first artist win; missing values become "".
func SpotifyAlbum(a spotify.Album) entity.CatalogAlbum {
	album := entity.CatalogAlbum{
		ID:          a.ID,
		Name:        a.Name,
		Year:        YearFromDate(a.ReleaseDate),
		ExternalURL: a.ExternalURLs.Spotify,
		Source:      "spotify",
	}
	if len(a.Artists) > 0 {
		album.Artist = a.Artists[0].Name
	}
	if len(a.Images) > 0 {
		album.ImageURL = a.Images[0].URL
	}
	return album
}

// SpotifyAlbums maps a search page in input order.
func SpotifyAlbums(items []spotify.Album) []entity.CatalogAlbum {
	albums := make([]entity.CatalogAlbum, len(items))
	for i, a := range items {
		albums[i] = SpotifyAlbum(a)
	}
	return albums
}

// SpotifyTracks maps album tracks preserving order.
func SpotifyTracks(items []spotify.TrackItem) []entity.Track {
	tracks := make([]entity.Track, len(items))
	for i, t := range items {
		tracks[i] = entity.Track{
			TrackNumber: t.TrackNumber,
			Name:        t.Name,
			DurationMS:  t.DurationMS,
		}
	}
	return tracks
}
