package spec

import (
	"github.com/tunaapi/tuna/catalog"
	"github.com/tunaapi/tuna/db"
)

func NewArtist(a *db.Artist) *Artist {
	return &Artist{
		ID:   a.ID,
		Name: a.Name,
		Age:  a.Age,
		Bio:  a.Bio,
	}
}

func NewArtists(artists []*db.Artist) []*Artist {
	ret := make([]*Artist, 0, len(artists))
	for _, a := range artists {
		ret = append(ret, NewArtist(a))
	}
	return ret
}

func NewArtistWithSongs(view *catalog.ArtistView) *ArtistWithSongs {
	ret := &ArtistWithSongs{
		Artist:    *NewArtist(view.Artist),
		SongCount: view.SongCount,
		Songs:     make([]*SongWithGenres, 0, len(view.Songs)),
	}
	for _, song := range view.Songs {
		ret.Songs = append(ret.Songs, NewSongWithGenres(song))
	}
	return ret
}

func NewRelatedArtists(related []*catalog.RelatedArtist) []*RelatedArtist {
	ret := make([]*RelatedArtist, 0, len(related))
	for _, r := range related {
		ret = append(ret, &RelatedArtist{ID: r.ID, Name: r.Name})
	}
	return ret
}

func NewSong(s *db.Song) *Song {
	return &Song{
		ID:       s.ID,
		Title:    s.Title,
		ArtistID: s.ArtistID,
		Album:    s.Album,
		Length:   s.Length,
	}
}

func NewSongs(songs []*db.Song) []*Song {
	ret := make([]*Song, 0, len(songs))
	for _, s := range songs {
		ret = append(ret, NewSong(s))
	}
	return ret
}

func NewSongWithGenres(view *catalog.SongView) *SongWithGenres {
	return &SongWithGenres{
		Song:   *NewSong(view.Song),
		Genres: NewGenres(view.Genres),
	}
}

func NewGenre(g *db.Genre) *Genre {
	return &Genre{
		ID:          g.ID,
		Description: g.Description,
	}
}

func NewGenres(genres []*db.Genre) []*Genre {
	ret := make([]*Genre, 0, len(genres))
	for _, g := range genres {
		ret = append(ret, NewGenre(g))
	}
	return ret
}

func NewGenreWithSongs(view *catalog.GenreView) *GenreWithSongs {
	return &GenreWithSongs{
		Genre: *NewGenre(view.Genre),
		Songs: NewSongs(view.Songs),
	}
}

func NewPopularGenres(ranks []*catalog.GenreRank) []*PopularGenre {
	ret := make([]*PopularGenre, 0, len(ranks))
	for _, r := range ranks {
		ret = append(ret, &PopularGenre{
			ID:          r.ID,
			Description: r.Description,
			SongCount:   r.SongCount,
		})
	}
	return ret
}

func NewSongGenre(sg *db.SongGenre) *SongGenre {
	return &SongGenre{
		ID:    sg.ID,
		Song:  sg.SongID,
		Genre: sg.GenreID,
	}
}

func NewSongGenres(songGenres []*db.SongGenre) []*SongGenre {
	ret := make([]*SongGenre, 0, len(songGenres))
	for _, sg := range songGenres {
		ret = append(ret, NewSongGenre(sg))
	}
	return ret
}
