package catalog

import (
	"fmt"
	"sort"

	"github.com/tunaapi/tuna/db"
)

// RelatedArtist is the short form of an artist returned by RelatedArtists.
type RelatedArtist struct {
	ID   int
	Name string
}

// GenreRank is a genre with its number of song tags.
type GenreRank struct {
	ID          int
	Description string
	SongCount   int
}

// MostCommonGenre returns the genre tagged most often across the artist's
// songs, the lowest genre id winning ties. It returns nil with no error if
// none of the artist's songs are tagged.
func (c *Catalog) MostCommonGenre(artistID int) (*db.Genre, error) {
	if _, err := c.store.GetArtist(artistID); err != nil {
		return nil, err
	}
	counts, err := c.store.CountArtistGenres(artistID)
	if err != nil {
		return nil, err
	}
	genreID, ok := mostCommon(counts)
	if !ok {
		return nil, nil //nolint:nilnil // no tags is not an error
	}
	genre, err := c.store.GetGenre(genreID)
	if err != nil {
		return nil, fmt.Errorf("most common genre of artist %d: %w", artistID, err)
	}
	return genre, nil
}

// RelatedArtists returns the other artists whose most common genre is the same
// as the given artist's, ordered by id. An artist without a most common genre
// has no related artists.
func (c *Catalog) RelatedArtists(artistID int) ([]*RelatedArtist, error) {
	if _, err := c.store.GetArtist(artistID); err != nil {
		return nil, err
	}
	counts, err := c.store.CountAllArtistGenres()
	if err != nil {
		return nil, err
	}

	byArtist := map[int][]db.GenreCount{}
	for _, count := range counts {
		byArtist[count.ArtistID] = append(byArtist[count.ArtistID], db.GenreCount{
			GenreID: count.GenreID,
			Count:   count.Count,
		})
	}

	related := []*RelatedArtist{}
	target, ok := mostCommon(byArtist[artistID])
	if !ok {
		return related, nil
	}
	var ids []int
	for otherID, otherCounts := range byArtist {
		if otherID == artistID {
			continue
		}
		if genreID, ok := mostCommon(otherCounts); ok && genreID == target {
			ids = append(ids, otherID)
		}
	}
	if len(ids) == 0 {
		return related, nil
	}
	sort.Ints(ids)

	artists, err := c.store.GetArtistsByID(ids)
	if err != nil {
		return nil, err
	}
	for _, artist := range artists {
		related = append(related, &RelatedArtist{ID: artist.ID, Name: artist.Name})
	}
	sort.Slice(related, func(i, j int) bool {
		return related[i].ID < related[j].ID
	})
	return related, nil
}

// PopularGenres returns the genres with at least one tag, the most tagged
// first, then by id. Every tag counts, so a song tagged twice with a genre
// counts twice.
func (c *Catalog) PopularGenres() ([]*GenreRank, error) {
	genres, err := c.store.CountGenreTags()
	if err != nil {
		return nil, err
	}
	ranks := make([]*GenreRank, 0, len(genres))
	for _, genre := range genres {
		if genre.SongCount == 0 {
			continue
		}
		ranks = append(ranks, &GenreRank{
			ID:          genre.ID,
			Description: genre.Description,
			SongCount:   genre.SongCount,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].SongCount != ranks[j].SongCount {
			return ranks[i].SongCount > ranks[j].SongCount
		}
		return ranks[i].ID < ranks[j].ID
	})
	return ranks, nil
}

// mostCommon returns the genre with the highest count, the lowest genre id
// winning ties. ok is false when there are no counts.
func mostCommon(counts []db.GenreCount) (genreID int, ok bool) {
	best := db.GenreCount{}
	for _, count := range counts {
		if count.Count <= 0 {
			continue
		}
		if !ok || count.Count > best.Count || (count.Count == best.Count && count.GenreID < best.GenreID) {
			best = count
			ok = true
		}
	}
	return best.GenreID, ok
}
