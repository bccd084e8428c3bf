package postgres

import (
	"time"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
)

type instrumentRecord struct {
	ID               int64     `gorm:"primaryKey"`
	CreatedDate      time.Time `gorm:"autoCreateTime"`
	LastModifiedDate time.Time `gorm:"autoUpdateTime"`
}

func (instrumentRecord) TableName() string { return "instrument" }

type guitarRecord struct {
	ID              int64 `gorm:"primaryKey;autoIncrement:false"`
	NumberOfStrings int   `gorm:"not null"`
}

func (guitarRecord) TableName() string { return "guitar" }

type electricGuitarRecord struct {
	ID              int64 `gorm:"primaryKey;autoIncrement:false"`
	NumberOfPickups int   `gorm:"not null"`
}

func (electricGuitarRecord) TableName() string { return "electric_guitar" }

// electricGuitarRow is one electric guitar assembled from its three table rows.
type electricGuitarRow struct {
	ID               int64
	CreatedDate      time.Time
	LastModifiedDate time.Time
	NumberOfStrings  int
	NumberOfPickups  int
}

func (r electricGuitarRow) toDomain() *domain.ElectricGuitar {
	return &domain.ElectricGuitar{
		Guitar: domain.Guitar{
			Instrument: domain.Instrument{
				ID:               r.ID,
				CreatedDate:      r.CreatedDate,
				LastModifiedDate: r.LastModifiedDate,
			},
			NumberOfStrings: r.NumberOfStrings,
		},
		NumberOfPickups: r.NumberOfPickups,
	}
}
