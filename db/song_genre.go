package db

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

// SongGenreFilter narrows ListSongGenres to tags of any of the given songs
// and any of the given genres. Empty lists don't filter.
type SongGenreFilter struct {
	SongIDs  []int
	GenreIDs []int
}

func (db *DB) ListSongGenres(filter SongGenreFilter) ([]*SongGenre, error) {
	q := db.DB
	if len(filter.SongIDs) > 0 {
		q = q.Where("song_id IN (?)", filter.SongIDs)
	}
	if len(filter.GenreIDs) > 0 {
		q = q.Where("genre_id IN (?)", filter.GenreIDs)
	}
	var songGenres []*SongGenre
	if err := q.Order("id").Find(&songGenres).Error; err != nil {
		return nil, fmt.Errorf("find song genres: %w", err)
	}
	return songGenres, nil
}

func (db *DB) GetSongGenre(id int) (*SongGenre, error) {
	var songGenre SongGenre
	if err := db.First(&songGenre, id).Error; err != nil {
		return nil, notFound("song genre", id, err)
	}
	return &songGenre, nil
}

// CreateSongGenre tags a song with a genre. Both must exist.
func (db *DB) CreateSongGenre(songGenre *SongGenre) error {
	songGenre.ID = 0
	return db.withTx(func(tx *gorm.DB) error {
		if err := exists(tx, Song{}, "song", songGenre.SongID); err != nil {
			return err
		}
		if err := exists(tx, Genre{}, "genre", songGenre.GenreID); err != nil {
			return err
		}
		if err := tx.Create(songGenre).Error; err != nil {
			return fmt.Errorf("create song genre: %w", err)
		}
		return nil
	})
}

func (db *DB) DeleteSongGenre(id int) error {
	step := db.Where("id=?", id).Delete(SongGenre{})
	if err := step.Error; err != nil {
		return fmt.Errorf("delete song genre %d: %w", id, err)
	}
	if step.RowsAffected == 0 {
		return fmt.Errorf("song genre %d: %w", id, ErrNotFound)
	}
	return nil
}
