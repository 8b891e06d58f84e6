//nolint:thelper
package mockdb

import (
	"fmt"
	"testing"

	"github.com/tunaapi/tuna/db"
)

type MockDB struct {
	t  testing.TB
	db *db.DB
}

// New returns a migrated in-memory catalog which is closed when the test ends.
func New(tb testing.TB) *MockDB {
	tb.Helper()

	dbc, err := db.NewMock()
	if err != nil {
		tb.Fatalf("create db: %v", err)
	}
	tb.Cleanup(func() {
		if err := dbc.Close(); err != nil {
			tb.Fatalf("close db: %v", err)
		}
	})

	if err := dbc.Migrate(); err != nil {
		tb.Fatalf("migrate db: %v", err)
	}
	dbc.LogMode(false)

	return &MockDB{t: tb, db: dbc}
}

func (m *MockDB) DB() *db.DB { return m.db }

func (m *MockDB) AddArtist(name string) *db.Artist {
	m.t.Helper()

	artist := &db.Artist{Name: name, Age: 30, Bio: fmt.Sprintf("bio of %s", name)}
	if err := m.db.CreateArtist(artist); err != nil {
		m.t.Fatalf("create artist %q: %v", name, err)
	}
	return artist
}

func (m *MockDB) AddSong(artist *db.Artist, title string) *db.Song {
	m.t.Helper()

	song := &db.Song{Title: title, Album: fmt.Sprintf("album of %s", artist.Name), Length: 180, ArtistID: artist.ID}
	if err := m.db.CreateSong(song); err != nil {
		m.t.Fatalf("create song %q: %v", title, err)
	}
	return song
}

func (m *MockDB) AddGenre(description string) *db.Genre {
	m.t.Helper()

	genre := &db.Genre{Description: description}
	if err := m.db.CreateGenre(genre); err != nil {
		m.t.Fatalf("create genre %q: %v", description, err)
	}
	return genre
}

// Tag tags song with each of genres, once per occurrence. Passing a genre
// twice tags the song with it twice.
func (m *MockDB) Tag(song *db.Song, genres ...*db.Genre) {
	m.t.Helper()

	for _, genre := range genres {
		if err := m.db.CreateSongGenre(&db.SongGenre{SongID: song.ID, GenreID: genre.ID}); err != nil {
			m.t.Fatalf("tag song %q with %q: %v", song.Title, genre.Description, err)
		}
	}
}

// AddItems creates a small catalog: artists "artist-0" to "artist-2" with
// three songs each, genres "genre-0" to "genre-2", and each artist's songs
// tagged with the genre of the same number.
func (m *MockDB) AddItems() {
	m.t.Helper()

	var genres []*db.Genre
	for g := 0; g < 3; g++ {
		genres = append(genres, m.AddGenre(fmt.Sprintf("genre-%d", g)))
	}
	for ar := 0; ar < 3; ar++ {
		artist := m.AddArtist(fmt.Sprintf("artist-%d", ar))
		for s := 0; s < 3; s++ {
			song := m.AddSong(artist, fmt.Sprintf("title-%d-%d", ar, s))
			m.Tag(song, genres[ar])
		}
	}
}
