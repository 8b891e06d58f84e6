// Package db provides database helpers and models
//
//nolint:lll // struct tags get very long and can't be split
package db

import (
	"strings"

	"github.com/rainycape/unidecode"
)

type Artist struct {
	ID        int    `gorm:"primary_key"`
	Name      string `gorm:"not null; index"`
	Age       int    `gorm:"not null"`
	Bio       string `gorm:"not null" sql:"type:text"`
	SongCount int    `sql:"-"`
}

type Song struct {
	ID        int    `gorm:"primary_key"`
	Title     string `gorm:"not null; index"`
	TitleUDec string `gorm:"not null; default:''"`
	Album     string `gorm:"not null"`
	AlbumUDec string `gorm:"not null; default:''"`
	Length    int    `gorm:"not null"`
	ArtistID  int    `gorm:"not null; index" sql:"type:int REFERENCES artists(id) ON DELETE CASCADE"`
}

// BeforeSave keeps the transliterated columns in step with title and album.
// They are what the song filters match against.
func (s *Song) BeforeSave() error {
	s.TitleUDec = decoded(s.Title)
	s.AlbumUDec = decoded(s.Album)
	return nil
}

type Genre struct {
	ID          int    `gorm:"primary_key"`
	Description string `gorm:"not null"`
	SongCount   int    `sql:"-"`
}

// SongGenre tags a song with a genre. The same pair may be tagged more than
// once, and each row counts separately.
type SongGenre struct {
	ID      int `gorm:"primary_key"`
	SongID  int `gorm:"not null; index:idx_song_genres_song_id" sql:"type:int REFERENCES songs(id) ON DELETE CASCADE"`
	GenreID int `gorm:"not null; index:idx_song_genres_genre_id" sql:"type:int REFERENCES genres(id) ON DELETE CASCADE"`
}

// decoded is the lower case ascii form of in. "Beyoncé" and "BEYONCE" both
// decode to "beyonce".
func decoded(in string) string {
	return strings.ToLower(unidecode.Unidecode(in))
}
