package db

import (
	"errors"
	"fmt"

	"github.com/jinzhu/gorm"
)

var ErrNotFound = errors.New("not found")

// ReferenceError is returned when a row would point to a parent that does not
// exist, eg. a song with an unknown artist.
type ReferenceError struct {
	Entity string
	ID     int
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s %d does not exist", e.Entity, e.ID)
}

// notFound translates gorm's record not found into ErrNotFound so callers
// don't need to import gorm.
func notFound(entity string, id int, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return fmt.Errorf("find %s %d: %w", entity, id, err)
}
