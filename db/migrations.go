package db

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"gopkg.in/gormigrate.v1"
)

func (db *DB) Migrate() error {
	options := &gormigrate.Options{
		TableName:      "migrations",
		IDColumnName:   "id",
		IDColumnSize:   255,
		UseTransaction: false,
	}

	// $ date '+%Y%m%d%H%M'
	migrations := []*gormigrate.Migration{
		construct("202607061412", migrateInitSchema),
		construct("202607201833", migrateSongGenreIDX),
		construct("202609021127", migrateSongUDec),
	}

	return gormigrate.
		New(db.DB, options, migrations).
		Migrate()
}

func construct(id string, f func(*gorm.DB) error) *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(db *gorm.DB) error {
			tx := db.Begin()
			if err := f(tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("%q: %w", id, err)
			}
			if err := tx.Commit().Error; err != nil {
				return fmt.Errorf("%q: commit: %w", id, err)
			}
			logrus.WithField("migration", id).Info("migration finished")
			return nil
		},
		Rollback: func(*gorm.DB) error {
			return nil
		},
	}
}

func migrateInitSchema(tx *gorm.DB) error {
	return tx.AutoMigrate(
		Artist{},
		Song{},
		Genre{},
		SongGenre{},
	).
		Error
}

func migrateSongGenreIDX(tx *gorm.DB) error {
	// covers the per artist genre counts, which join on song_id and group by
	// genre_id
	return tx.
		Model(SongGenre{}).
		AddIndex("idx_song_genres_song_id_genre_id", "song_id", "genre_id").
		Error
}

// migrateSongUDec fills the transliterated columns for songs created before
// they existed. AutoMigrate only adds the columns.
func migrateSongUDec(tx *gorm.DB) error {
	step := tx.AutoMigrate(
		Song{},
	)
	if err := step.Error; err != nil {
		return fmt.Errorf("step auto migrate: %w", err)
	}

	var songs []*Song
	if err := tx.Where("title_u_dec='' OR album_u_dec=''").Find(&songs).Error; err != nil {
		return fmt.Errorf("step find songs: %w", err)
	}
	for _, song := range songs {
		step = tx.
			Model(song).
			UpdateColumns(map[string]interface{}{
				"title_u_dec": decoded(song.Title),
				"album_u_dec": decoded(song.Album),
			})
		if err := step.Error; err != nil {
			return fmt.Errorf("step decode song %d: %w", song.ID, err)
		}
	}
	return nil
}
