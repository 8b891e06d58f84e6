package db

import (
	"fmt"

	"github.com/jinzhu/gorm"
)

func (db *DB) ListArtists() ([]*Artist, error) {
	var artists []*Artist
	if err := db.Order("id").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("find artists: %w", err)
	}
	return artists, nil
}

func (db *DB) GetArtist(id int) (*Artist, error) {
	var artist Artist
	if err := db.First(&artist, id).Error; err != nil {
		return nil, notFound("artist", id, err)
	}
	return &artist, nil
}

// GetArtistsByID returns the artists with the given ids ordered by id. Unknown
// ids are skipped.
func (db *DB) GetArtistsByID(ids []int) ([]*Artist, error) {
	artists := []*Artist{}
	if len(ids) == 0 {
		return artists, nil
	}
	err := db.inChunks(ids, func(chunk []int) error {
		var found []*Artist
		if err := db.Where("id IN (?)", chunk).Order("id").Find(&found).Error; err != nil {
			return err
		}
		artists = append(artists, found...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find artists by id: %w", err)
	}
	return artists, nil
}

func (db *DB) CreateArtist(artist *Artist) error {
	artist.ID = 0
	if err := db.Create(artist).Error; err != nil {
		return fmt.Errorf("create artist: %w", err)
	}
	return nil
}

// UpdateArtist replaces every field of the artist with artist.ID.
func (db *DB) UpdateArtist(artist *Artist) error {
	return db.withTx(func(tx *gorm.DB) error {
		if err := tx.First(&Artist{}, artist.ID).Error; err != nil {
			return notFound("artist", artist.ID, err)
		}
		if err := tx.Save(artist).Error; err != nil {
			return fmt.Errorf("save artist %d: %w", artist.ID, err)
		}
		return nil
	})
}

// DeleteArtist deletes an artist, their songs, and the songs' genre tags.
func (db *DB) DeleteArtist(id int) error {
	return db.withTx(func(tx *gorm.DB) error {
		if err := tx.First(&Artist{}, id).Error; err != nil {
			return notFound("artist", id, err)
		}
		step := tx.
			Where("song_id IN (SELECT id FROM songs WHERE artist_id=?)", id).
			Delete(SongGenre{})
		if err := step.Error; err != nil {
			return fmt.Errorf("step delete song genres: %w", err)
		}
		step = tx.
			Where("artist_id=?", id).
			Delete(Song{})
		if err := step.Error; err != nil {
			return fmt.Errorf("step delete songs: %w", err)
		}
		if err := tx.Delete(&Artist{ID: id}).Error; err != nil {
			return fmt.Errorf("step delete artist: %w", err)
		}
		return nil
	})
}

// https://sqlite.org/limits.html
const chunkSize = 999

// inChunks calls cb with ids split so that an IN (?) never binds more
// variables than sqlite allows.
func (db *DB) inChunks(ids []int, cb func([]int) error) error {
	for i := 0; i < len(ids); i += chunkSize {
		end := i + chunkSize
		if end > len(ids) {
			end = len(ids)
		}
		if err := cb(ids[i:end]); err != nil {
			return err
		}
	}
	return nil
}

// exists returns a ReferenceError if there is no row of model with id.
func exists(tx *gorm.DB, model interface{}, entity string, id int) error {
	var count int
	if err := tx.Model(model).Where("id=?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check %s %d: %w", entity, id, err)
	}
	if count == 0 {
		return &ReferenceError{Entity: entity, ID: id}
	}
	return nil
}
