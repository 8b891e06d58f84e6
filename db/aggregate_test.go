package db_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tunaapi/tuna/db"
	"github.com/tunaapi/tuna/mockdb"
)

func TestCountArtistGenres(t *testing.T) {
	t.Parallel()
	m := mockdb.New(t)
	dbc := m.DB()

	jazz := m.AddGenre("jazz")
	bebop := m.AddGenre("bebop")
	miles := m.AddArtist("miles")
	m.Tag(m.AddSong(miles, "so what"), jazz, jazz)
	m.Tag(m.AddSong(miles, "donna lee"), bebop)

	counts, err := dbc.CountArtistGenres(miles.ID)
	require.NoError(t, err)
	require.Equal(t, []db.GenreCount{
		{GenreID: jazz.ID, Count: 2},
		{GenreID: bebop.ID, Count: 1},
	}, counts)

	untagged := m.AddArtist("untagged")
	m.AddSong(untagged, "silence")
	counts, err = dbc.CountArtistGenres(untagged.ID)
	require.NoError(t, err)
	require.Empty(t, counts)
}

func TestCountArtistGenresTies(t *testing.T) {
	t.Parallel()
	m := mockdb.New(t)
	dbc := m.DB()

	first := m.AddGenre("first")
	second := m.AddGenre("second")
	artist := m.AddArtist("a")
	m.Tag(m.AddSong(artist, "s"), second, first)

	counts, err := dbc.CountArtistGenres(artist.ID)
	require.NoError(t, err)
	require.Equal(t, []db.GenreCount{
		{GenreID: first.ID, Count: 1},
		{GenreID: second.ID, Count: 1},
	}, counts)
}

func TestCountAllArtistGenres(t *testing.T) {
	t.Parallel()
	m := mockdb.New(t)
	dbc := m.DB()

	jazz := m.AddGenre("jazz")
	rock := m.AddGenre("rock")
	a := m.AddArtist("a")
	b := m.AddArtist("b")
	m.AddArtist("untagged")
	m.Tag(m.AddSong(a, "a1"), rock)
	m.Tag(m.AddSong(a, "a2"), jazz, jazz)
	m.Tag(m.AddSong(b, "b1"), rock)

	counts, err := dbc.CountAllArtistGenres()
	require.NoError(t, err)
	require.Equal(t, []db.ArtistGenreCount{
		{ArtistID: a.ID, GenreID: jazz.ID, Count: 2},
		{ArtistID: a.ID, GenreID: rock.ID, Count: 1},
		{ArtistID: b.ID, GenreID: rock.ID, Count: 1},
	}, counts)
}

func TestCountGenreTags(t *testing.T) {
	t.Parallel()
	m := mockdb.New(t)
	dbc := m.DB()

	rock := m.AddGenre("rock")
	jazz := m.AddGenre("jazz")
	m.AddGenre("polka")
	artist := m.AddArtist("a")
	for i := 0; i < 5; i++ {
		m.Tag(m.AddSong(artist, "jazz song"), jazz)
	}
	rockSong := m.AddSong(artist, "rock song")
	m.Tag(rockSong, rock, rock, rock)

	genres, err := dbc.CountGenreTags()
	require.NoError(t, err)
	require.Len(t, genres, 2)
	require.Equal(t, "jazz", genres[0].Description)
	require.Equal(t, 5, genres[0].SongCount)
	require.Equal(t, "rock", genres[1].Description)
	require.Equal(t, 3, genres[1].SongCount)
}

func TestGetGenresBySongs(t *testing.T) {
	t.Parallel()
	m := mockdb.New(t)
	dbc := m.DB()

	artist := m.AddArtist("a")
	jazz := m.AddGenre("jazz")
	rock := m.AddGenre("rock")
	tagged := m.AddSong(artist, "tagged")
	untagged := m.AddSong(artist, "untagged")
	m.Tag(tagged, rock, jazz, rock)

	genres, err := dbc.GetGenresBySongs([]int{tagged.ID, untagged.ID})
	require.NoError(t, err)
	require.Len(t, genres, 1)
	require.Equal(t, []*db.Genre{
		{ID: rock.ID, Description: "rock"},
		{ID: jazz.ID, Description: "jazz"},
		{ID: rock.ID, Description: "rock"},
	}, genres[tagged.ID])

	genres, err = dbc.GetGenresBySongs(nil)
	require.NoError(t, err)
	require.Empty(t, genres)
}

func TestGetArtistsByID(t *testing.T) {
	t.Parallel()
	m := mockdb.New(t)
	dbc := m.DB()

	a := m.AddArtist("a")
	m.AddArtist("b")
	c := m.AddArtist("c")

	artists, err := dbc.GetArtistsByID([]int{a.ID, c.ID, c.ID + 10})
	require.NoError(t, err)
	require.Len(t, artists, 2)
	require.Equal(t, "a", artists[0].Name)
	require.Equal(t, "c", artists[1].Name)

	artists, err = dbc.GetArtistsByID(nil)
	require.NoError(t, err)
	require.Empty(t, artists)
}
