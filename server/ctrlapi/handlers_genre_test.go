package ctrlapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeCreateGenre(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	rr := s.do(t, http.MethodPost, "/genres", `{"description": "Jazz"}`)
	expectJSON(t, rr, http.StatusCreated, `{"id": 1, "description": "Jazz"}`, false)
	require.Equal(t, "/genres/1", rr.Header().Get("Location"))

	expectError(t, s.do(t, http.MethodPost, "/genres", `{}`), http.StatusBadRequest, "description")

	s.do(t, http.MethodPost, "/genres", `{"description": "Rock"}`)
	expectJSON(t, s.do(t, http.MethodGet, "/genres", ""), http.StatusOK,
		`[{"id": 1, "description": "Jazz"}, {"id": 2, "description": "Rock"}]`, false)
}

func TestServeGetGenre(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	jazz := s.AddGenre("Jazz")
	artist := s.AddArtist("Miles")
	first := s.AddSong(artist, "So What")
	s.AddSong(artist, "Untagged")
	third := s.AddSong(artist, "Blue in Green")
	s.Tag(third, jazz)
	s.Tag(first, jazz)

	expectJSON(t, s.do(t, http.MethodGet, "/genres/1", ""), http.StatusOK, `{
		"id": 1, "description": "Jazz",
		"songs": [
			{"id": 3, "title": "Blue in Green", "artist_id": 1, "album": "album of Miles", "length": 180},
			{"id": 1, "title": "So What", "artist_id": 1, "album": "album of Miles", "length": 180}
		]
	}`, false)

	expectError(t, s.do(t, http.MethodGet, "/genres/2", ""), http.StatusNotFound, "genre 2")
}

func TestServeUpdateGenre(t *testing.T) {
	t.Parallel()
	s := makeServer(t)
	s.AddGenre("Jaz")

	expectJSON(t, s.do(t, http.MethodPut, "/genres/1", `{"description": "Jazz"}`), http.StatusOK,
		`{"id": 1, "description": "Jazz"}`, false)
	expectError(t, s.do(t, http.MethodPut, "/genres/2", `{"description": "Rock"}`), http.StatusNotFound)
}

func TestServeDeleteGenre(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	jazz := s.AddGenre("Jazz")
	rock := s.AddGenre("Rock")
	s.Tag(s.AddSong(s.AddArtist("Miles"), "So What"), jazz, rock)

	require.Equal(t, http.StatusNoContent, s.do(t, http.MethodDelete, "/genres/1", "").Code)
	expectError(t, s.do(t, http.MethodGet, "/genres/1", ""), http.StatusNotFound)
	expectJSON(t, s.do(t, http.MethodGet, "/songs/1", ""), http.StatusOK, `{
		"id": 1, "title": "So What", "artist_id": 1, "album": "album of Miles", "length": 180,
		"genres": [{"id": 2, "description": "Rock"}]
	}`, false)
}

func TestServeGetPopularGenres(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	jazz := s.AddGenre("Jazz")
	rock := s.AddGenre("Rock")
	s.AddGenre("Polka")
	blues := s.AddGenre("Blues")
	artist := s.AddArtist("a")
	for i := 0; i < 5; i++ {
		s.Tag(s.AddSong(artist, "jazz song"), jazz)
	}
	for i := 0; i < 3; i++ {
		s.Tag(s.AddSong(artist, "rock song"), rock)
	}
	s.Tag(s.AddSong(artist, "blues song"), blues, blues, blues)

	expectJSON(t, s.do(t, http.MethodGet, "/genres/popular", ""), http.StatusOK, `[
		{"id": 1, "description": "Jazz", "song_count": 5},
		{"id": 2, "description": "Rock", "song_count": 3},
		{"id": 4, "description": "Blues", "song_count": 3}
	]`, false)
}

func TestServeGetPopularGenresEmpty(t *testing.T) {
	t.Parallel()
	s := makeServer(t)
	s.AddGenre("Polka")

	expectJSON(t, s.do(t, http.MethodGet, "/genres/popular", ""), http.StatusOK, `[]`, false)
}
