package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidStrings rejects guitars without strings.
	ErrInvalidStrings = errors.New("number of strings must be positive")
	// ErrInvalidPickups rejects a negative pickup count.
	ErrInvalidPickups = errors.New("number of pickups must not be negative")
)

// Instrument is the root of the joined-table hierarchy. Every subtype shares its ID.
type Instrument struct {
	ID               int64
	CreatedDate      time.Time
	LastModifiedDate time.Time
}

func (i Instrument) IsNew() bool { return i.ID == 0 }

// Guitar extends Instrument with a string count.
type Guitar struct {
	Instrument
	NumberOfStrings int
}

func (g Guitar) Validate() error {
	if g.NumberOfStrings <= 0 {
		return ErrInvalidStrings
	}
	return nil
}

// ElectricGuitar extends Guitar with a pickup count.
type ElectricGuitar struct {
	Guitar
	NumberOfPickups int
}

func (e ElectricGuitar) Validate() error {
	if err := e.Guitar.Validate(); err != nil {
		return err
	}
	if e.NumberOfPickups < 0 {
		return ErrInvalidPickups
	}
	return nil
}

// Equal compares identity only; unsaved guitars are never equal.
func (e *ElectricGuitar) Equal(other *ElectricGuitar) bool {
	if e == nil || other == nil {
		return false
	}
	return e.ID != 0 && e.ID == other.ID
}
