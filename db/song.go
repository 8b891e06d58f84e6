package db

import (
	"fmt"
	"strings"

	"github.com/jinzhu/gorm"
)

// SongFilter narrows ListSongs. Zero values don't filter.
type SongFilter struct {
	// Title and Album match as substrings, ignoring case and accents
	Title string
	Album string
	// MinLength and MaxLength are inclusive bounds in seconds, and may be
	// fractional
	MinLength *float64
	MaxLength *float64
}

func (db *DB) ListSongs(filter SongFilter) ([]*Song, error) {
	q := db.DB
	if filter.Title != "" {
		q = q.Where("title_u_dec LIKE ? ESCAPE '!'", contains(filter.Title))
	}
	if filter.Album != "" {
		q = q.Where("album_u_dec LIKE ? ESCAPE '!'", contains(filter.Album))
	}
	if filter.MinLength != nil {
		q = q.Where("length >= ?", *filter.MinLength)
	}
	if filter.MaxLength != nil {
		q = q.Where("length <= ?", *filter.MaxLength)
	}
	var songs []*Song
	if err := q.Order("id").Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("find songs: %w", err)
	}
	return songs, nil
}

func (db *DB) GetSong(id int) (*Song, error) {
	var song Song
	if err := db.First(&song, id).Error; err != nil {
		return nil, notFound("song", id, err)
	}
	return &song, nil
}

// GetSongsByArtist returns the artist's songs ordered by id.
func (db *DB) GetSongsByArtist(artistID int) ([]*Song, error) {
	songs := []*Song{}
	err := db.
		Where("artist_id=?", artistID).
		Order("id").
		Find(&songs).
		Error
	if err != nil {
		return nil, fmt.Errorf("find songs of artist %d: %w", artistID, err)
	}
	return songs, nil
}

// GetSongsByGenre returns one song per tag of the genre, in the order the tags
// were created. A song tagged twice is returned twice.
func (db *DB) GetSongsByGenre(genreID int) ([]*Song, error) {
	songs := []*Song{}
	err := db.
		Select("songs.*").
		Joins("JOIN song_genres ON song_genres.song_id=songs.id").
		Where("song_genres.genre_id=?", genreID).
		Order("song_genres.id").
		Find(&songs).
		Error
	if err != nil {
		return nil, fmt.Errorf("find songs of genre %d: %w", genreID, err)
	}
	return songs, nil
}

func (db *DB) CreateSong(song *Song) error {
	song.ID = 0
	return db.withTx(func(tx *gorm.DB) error {
		if err := exists(tx, Artist{}, "artist", song.ArtistID); err != nil {
			return err
		}
		if err := tx.Create(song).Error; err != nil {
			return fmt.Errorf("create song: %w", err)
		}
		return nil
	})
}

// UpdateSong replaces every field of the song with song.ID. The song may move
// to another existing artist.
func (db *DB) UpdateSong(song *Song) error {
	return db.withTx(func(tx *gorm.DB) error {
		if err := tx.First(&Song{}, song.ID).Error; err != nil {
			return notFound("song", song.ID, err)
		}
		if err := exists(tx, Artist{}, "artist", song.ArtistID); err != nil {
			return err
		}
		if err := tx.Save(song).Error; err != nil {
			return fmt.Errorf("save song %d: %w", song.ID, err)
		}
		return nil
	})
}

// DeleteSong deletes a song and its genre tags.
func (db *DB) DeleteSong(id int) error {
	return db.withTx(func(tx *gorm.DB) error {
		if err := tx.First(&Song{}, id).Error; err != nil {
			return notFound("song", id, err)
		}
		if err := tx.Where("song_id=?", id).Delete(SongGenre{}).Error; err != nil {
			return fmt.Errorf("step delete song genres: %w", err)
		}
		if err := tx.Delete(&Song{ID: id}).Error; err != nil {
			return fmt.Errorf("step delete song: %w", err)
		}
		return nil
	})
}

// likeEscaper quotes LIKE wildcards. '!' is the escape character since a
// backslash is itself special inside mysql string literals.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func contains(query string) string {
	return fmt.Sprintf("%%%s%%", likeEscaper.Replace(decoded(query)))
}
