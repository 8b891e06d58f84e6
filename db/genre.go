package db

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

func (db *DB) ListGenres() ([]*Genre, error) {
	var genres []*Genre
	if err := db.Order("id").Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("find genres: %w", err)
	}
	return genres, nil
}

func (db *DB) GetGenre(id int) (*Genre, error) {
	var genre Genre
	if err := db.First(&genre, id).Error; err != nil {
		return nil, notFound("genre", id, err)
	}
	return &genre, nil
}

// GetGenresBySongs maps each song id to the genres it's tagged with, one entry
// per tag in the order the tags were created. Songs without tags have no key.
func (db *DB) GetGenresBySongs(songIDs []int) (map[int][]*Genre, error) {
	genres := make(map[int][]*Genre, len(songIDs))
	err := db.inChunks(songIDs, func(chunk []int) error {
		var rows []struct {
			SongID      int
			GenreID     int
			Description string
		}
		err := db.
			Table("song_genres").
			Select("song_genres.song_id, genres.id AS genre_id, genres.description").
			Joins("JOIN genres ON genres.id=song_genres.genre_id").
			Where("song_genres.song_id IN (?)", chunk).
			Order("song_genres.id").
			Scan(&rows).
			Error
		if err != nil {
			return err
		}
		for _, row := range rows {
			genres[row.SongID] = append(genres[row.SongID], &Genre{
				ID:          row.GenreID,
				Description: row.Description,
			})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find genres of songs: %w", err)
	}
	return genres, nil
}

func (db *DB) CreateGenre(genre *Genre) error {
	genre.ID = 0
	if err := db.Create(genre).Error; err != nil {
		return fmt.Errorf("create genre: %w", err)
	}
	return nil
}

func (db *DB) UpdateGenre(genre *Genre) error {
	return db.withTx(func(tx *gorm.DB) error {
		if err := tx.First(&Genre{}, genre.ID).Error; err != nil {
			return notFound("genre", genre.ID, err)
		}
		if err := tx.Save(genre).Error; err != nil {
			return fmt.Errorf("save genre %d: %w", genre.ID, err)
		}
		return nil
	})
}

// DeleteGenre deletes a genre and every tag of it.
func (db *DB) DeleteGenre(id int) error {
	return db.withTx(func(tx *gorm.DB) error {
		if err := tx.First(&Genre{}, id).Error; err != nil {
			return notFound("genre", id, err)
		}
		if err := tx.Where("genre_id=?", id).Delete(SongGenre{}).Error; err != nil {
			return fmt.Errorf("step delete song genres: %w", err)
		}
		if err := tx.Delete(&Genre{ID: id}).Error; err != nil {
			return fmt.Errorf("step delete genre: %w", err)
		}
		return nil
	})
}
