// Package catalog computes the derived views of the music catalog: artists
// with their songs, songs and genres with their tags, related artists and
// popular genres. Everything is recomputed from the store on each call.
package catalog

import (
	"fmt"

	"github.com/tunaapi/tuna/db"
)

// Store is the storage the catalog reads from. *db.DB implements it.
//
// Missing rows are reported as errors wrapping db.ErrNotFound. The count
// methods must order their results as documented on db.DB, but the catalog
// doesn't rely on it for correctness.
type Store interface {
	GetArtist(id int) (*db.Artist, error)
	GetSong(id int) (*db.Song, error)
	GetGenre(id int) (*db.Genre, error)

	GetArtistsByID(ids []int) ([]*db.Artist, error)
	GetSongsByArtist(artistID int) ([]*db.Song, error)
	GetSongsByGenre(genreID int) ([]*db.Song, error)
	GetGenresBySongs(songIDs []int) (map[int][]*db.Genre, error)

	CountArtistGenres(artistID int) ([]db.GenreCount, error)
	CountAllArtistGenres() ([]db.ArtistGenreCount, error)
	CountGenreTags() ([]*db.Genre, error)
}

type Catalog struct {
	store Store
}

func New(store Store) *Catalog {
	return &Catalog{store: store}
}

// ArtistView is an artist with their songs, ordered by id. Artist.SongCount
// is set.
type ArtistView struct {
	*db.Artist
	Songs []*SongView
}

// SongView is a song with one genre per tag.
type SongView struct {
	*db.Song
	Genres []*db.Genre
}

// GenreView is a genre with one song per tag.
type GenreView struct {
	*db.Genre
	Songs []*db.Song
}

func (c *Catalog) ArtistWithSongs(artistID int) (*ArtistView, error) {
	artist, err := c.store.GetArtist(artistID)
	if err != nil {
		return nil, err
	}
	songs, err := c.store.GetSongsByArtist(artistID)
	if err != nil {
		return nil, err
	}
	songViews, err := c.songViews(songs)
	if err != nil {
		return nil, err
	}
	artist.SongCount = len(songs)
	return &ArtistView{
		Artist: artist,
		Songs:  songViews,
	}, nil
}

func (c *Catalog) SongWithGenres(songID int) (*SongView, error) {
	song, err := c.store.GetSong(songID)
	if err != nil {
		return nil, err
	}
	views, err := c.songViews([]*db.Song{song})
	if err != nil {
		return nil, err
	}
	return views[0], nil
}

func (c *Catalog) GenreWithSongs(genreID int) (*GenreView, error) {
	genre, err := c.store.GetGenre(genreID)
	if err != nil {
		return nil, err
	}
	songs, err := c.store.GetSongsByGenre(genreID)
	if err != nil {
		return nil, err
	}
	return &GenreView{Genre: genre, Songs: songs}, nil
}

// songViews attaches genres to songs with a single lookup for all of them.
func (c *Catalog) songViews(songs []*db.Song) ([]*SongView, error) {
	ids := make([]int, 0, len(songs))
	for _, song := range songs {
		ids = append(ids, song.ID)
	}
	genres, err := c.store.GetGenresBySongs(ids)
	if err != nil {
		return nil, fmt.Errorf("genres of songs: %w", err)
	}
	views := make([]*SongView, 0, len(songs))
	for _, song := range songs {
		songGenres := genres[song.ID]
		if songGenres == nil {
			songGenres = []*db.Genre{}
		}
		views = append(views, &SongView{Song: song, Genres: songGenres})
	}
	return views, nil
}
