package ctrlapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestServeCreateArtist(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	rr := s.do(t, http.MethodPost, "/artists", `{"name": "Miles", "age": 65, "bio": "trumpet"}`)
	expectJSON(t, rr, http.StatusCreated, `{"id": 1, "name": "Miles", "age": 65, "bio": "trumpet"}`, false)
	require.Equal(t, "/artists/1", rr.Header().Get("Location"))

	expectJSON(t, s.do(t, http.MethodGet, "/artists", ""), http.StatusOK,
		`[{"id": 1, "name": "Miles", "age": 65, "bio": "trumpet"}]`, false)
}

func TestServeCreateArtistBadPayload(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	cases := []struct {
		name  string
		body  string
		parts []string
	}{
		{"missing fields", `{"name": "Miles"}`, []string{`\"age\"`, `\"bio\"`}},
		{"null field", `{"name": "Miles", "age": null, "bio": "b"}`, []string{`\"age\"`}},
		{"negative age", `{"name": "Miles", "age": -1, "bio": "b"}`, []string{"age"}},
		{"age past max int", `{"name": "Miles", "age": 9223372036854775808, "bio": "b"}`, []string{"age", "too large"}},
		{"age past max uint", `{"name": "Miles", "age": 18446744073709551615, "bio": "b"}`, []string{"age", "too large"}},
		{"age past uint64", `{"name": "Miles", "age": 18446744073709551616, "bio": "b"}`, []string{"age", "too large"}},
		{"fractional age", `{"name": "Miles", "age": 1.5, "bio": "b"}`, []string{"age"}},
		{"string age", `{"name": "Miles", "age": "65", "bio": "b"}`, []string{"age"}},
		{"number name", `{"name": 5, "age": 65, "bio": "b"}`, []string{"name"}},
		{"not an object", `[1, 2]`, []string{"json"}},
		{"malformed", `{"name": `, []string{"json"}},
		{"empty", ``, []string{"json"}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			rr := s.do(t, http.MethodPost, "/artists", tc.body)
			expectError(t, rr, http.StatusBadRequest, tc.parts...)
		})
	}

	expectJSON(t, s.do(t, http.MethodGet, "/artists", ""), http.StatusOK, `[]`, false)
}

func TestServeGetArtist(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	jazz := s.AddGenre("Jazz")
	bebop := s.AddGenre("Bebop")
	miles := s.AddArtist("Miles")
	s.Tag(s.AddSong(miles, "So What"), jazz, jazz)
	s.AddSong(miles, "Untagged")
	s.Tag(s.AddSong(miles, "Donna Lee"), bebop)

	expectJSON(t, s.do(t, http.MethodGet, "/artists/1", ""), http.StatusOK, `{
		"id": 1, "name": "Miles", "age": 30, "bio": "bio of Miles",
		"song_count": 3,
		"songs": [
			{"id": 1, "title": "So What", "artist_id": 1, "album": "album of Miles", "length": 180,
			 "genres": [{"id": 1, "description": "Jazz"}, {"id": 1, "description": "Jazz"}]},
			{"id": 2, "title": "Untagged", "artist_id": 1, "album": "album of Miles", "length": 180,
			 "genres": []},
			{"id": 3, "title": "Donna Lee", "artist_id": 1, "album": "album of Miles", "length": 180,
			 "genres": [{"id": 2, "description": "Bebop"}]}
		]
	}`, false)

	expectError(t, s.do(t, http.MethodGet, "/artists/2", ""), http.StatusNotFound, "artist 2")
}

func TestServeUpdateArtist(t *testing.T) {
	t.Parallel()
	s := makeServer(t)
	s.AddArtist("Miles")

	rr := s.do(t, http.MethodPut, "/artists/1", `{"name": "Miles Davis", "age": 65, "bio": "trumpet"}`)
	expectJSON(t, rr, http.StatusOK, `{"id": 1, "name": "Miles Davis", "age": 65, "bio": "trumpet"}`, false)

	expectJSON(t, s.do(t, http.MethodGet, "/artists/1", ""), http.StatusOK, `{
		"id": 1, "name": "Miles Davis", "age": 65, "bio": "trumpet", "song_count": 0, "songs": []
	}`, false)

	rr = s.do(t, http.MethodPut, "/artists/9", `{"name": "x", "age": 1, "bio": "y"}`)
	expectError(t, rr, http.StatusNotFound, "artist 9")

	rr = s.do(t, http.MethodPut, "/artists/1", `{"name": "only a name"}`)
	expectError(t, rr, http.StatusBadRequest, "age", "bio")
}

func TestServeDeleteArtist(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	jazz := s.AddGenre("Jazz")
	miles := s.AddArtist("Miles")
	monk := s.AddArtist("Monk")
	s.Tag(s.AddSong(miles, "So What"), jazz)
	s.Tag(s.AddSong(monk, "Round Midnight"), jazz)

	rr := s.do(t, http.MethodDelete, "/artists/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Empty(t, rr.Body.String())

	expectError(t, s.do(t, http.MethodGet, "/artists/1", ""), http.StatusNotFound)
	expectError(t, s.do(t, http.MethodDelete, "/artists/1", ""), http.StatusNotFound)
	expectJSON(t, s.do(t, http.MethodGet, "/songs", ""), http.StatusOK,
		`[{"id": 2, "title": "Round Midnight", "artist_id": 2, "album": "album of Monk", "length": 180}]`, false)
	expectJSON(t, s.do(t, http.MethodGet, "/songgenres", ""), http.StatusOK,
		`[{"id": 2, "song": 2, "genre": 1}]`, false)
}

func TestServeGetRelatedArtists(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	jazz := s.AddGenre("Jazz")
	rock := s.AddGenre("Rock")
	miles := s.AddArtist("Miles")
	monk := s.AddArtist("Monk")
	queen := s.AddArtist("Queen")
	coltrane := s.AddArtist("Coltrane")
	s.AddArtist("Untagged")
	s.Tag(s.AddSong(miles, "So What"), jazz, jazz, rock)
	s.Tag(s.AddSong(monk, "Round Midnight"), jazz)
	s.Tag(s.AddSong(queen, "Bohemian Rhapsody"), rock)
	s.Tag(s.AddSong(coltrane, "Giant Steps"), jazz)

	expectJSON(t, s.do(t, http.MethodGet, "/artists/1/related", ""), http.StatusOK,
		`[{"id": 2, "name": "Monk"}, {"id": 4, "name": "Coltrane"}]`, false)
	expectJSON(t, s.do(t, http.MethodGet, "/artists/3/related", ""), http.StatusOK, `[]`, false)
	expectJSON(t, s.do(t, http.MethodGet, "/artists/5/related", ""), http.StatusOK, `[]`, false)
	expectError(t, s.do(t, http.MethodGet, "/artists/6/related", ""), http.StatusNotFound)
}

func TestServeGetArtistGenre(t *testing.T) {
	t.Parallel()
	s := makeServer(t)

	jazz := s.AddGenre("Jazz")
	bebop := s.AddGenre("Bebop")
	miles := s.AddArtist("Miles")
	s.AddArtist("Untagged")
	s.Tag(s.AddSong(miles, "So What"), jazz, jazz)
	s.Tag(s.AddSong(miles, "Donna Lee"), bebop)

	expectJSON(t, s.do(t, http.MethodGet, "/artists/1/genre", ""), http.StatusOK,
		`{"id": 1, "description": "Jazz"}`, false)
	expectJSON(t, s.do(t, http.MethodGet, "/artists/2/genre", ""), http.StatusOK, `null`, false)
	expectError(t, s.do(t, http.MethodGet, "/artists/3/genre", ""), http.StatusNotFound)
}
