package db

import "fmt"

// GenreCount is the number of tags of one genre.
type GenreCount struct {
	GenreID int
	Count   int `gorm:"column:tag_count"`
}

// ArtistGenreCount is the number of tags of one genre across one artist's
// songs.
type ArtistGenreCount struct {
	ArtistID int
	GenreID  int
	Count    int `gorm:"column:tag_count"`
}

// CountArtistGenres counts the tags of each genre across the artist's songs,
// ordered by count descending then genre id ascending. An artist with no
// tagged songs gets an empty slice.
func (db *DB) CountArtistGenres(artistID int) ([]GenreCount, error) {
	counts := []GenreCount{}
	err := db.
		Table("song_genres").
		Select("song_genres.genre_id, count(song_genres.id) AS tag_count").
		Joins("JOIN songs ON songs.id=song_genres.song_id").
		Where("songs.artist_id=?", artistID).
		Group("song_genres.genre_id").
		Order("tag_count DESC, song_genres.genre_id").
		Scan(&counts).
		Error
	if err != nil {
		return nil, fmt.Errorf("count genres of artist %d: %w", artistID, err)
	}
	return counts, nil
}

// CountAllArtistGenres is CountArtistGenres for every artist in one query,
// ordered by artist id, then count descending, then genre id.
func (db *DB) CountAllArtistGenres() ([]ArtistGenreCount, error) {
	counts := []ArtistGenreCount{}
	err := db.
		Table("song_genres").
		Select("songs.artist_id, song_genres.genre_id, count(song_genres.id) AS tag_count").
		Joins("JOIN songs ON songs.id=song_genres.song_id").
		Group("songs.artist_id, song_genres.genre_id").
		Order("songs.artist_id, tag_count DESC, song_genres.genre_id").
		Scan(&counts).
		Error
	if err != nil {
		return nil, fmt.Errorf("count genres of artists: %w", err)
	}
	return counts, nil
}

// CountGenreTags returns every genre with at least one tag, with SongCount set
// to its number of tags. Ordered by SongCount descending then id.
func (db *DB) CountGenreTags() ([]*Genre, error) {
	genres := []*Genre{}
	err := db.
		Select("genres.*, count(song_genres.id) AS song_count").
		Joins("JOIN song_genres ON song_genres.genre_id=genres.id").
		Group("genres.id").
		Order("song_count DESC, genres.id").
		Find(&genres).
		Error
	if err != nil {
		return nil, fmt.Errorf("count genre tags: %w", err)
	}
	return genres, nil
}
