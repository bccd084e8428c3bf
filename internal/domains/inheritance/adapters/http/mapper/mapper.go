package mapper

import (
	"time"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
)

// ElectricGuitarRequest is accepted by electric guitar create and update.
type ElectricGuitarRequest struct {
	NumberOfStrings int `json:"numberOfStrings" binding:"required,min=1"`
	NumberOfPickups int `json:"numberOfPickups" binding:"min=0"`
}

// ElectricGuitar is returned for electric guitar lookups.
type ElectricGuitar struct {
	ID               int64     `json:"id"`
	NumberOfStrings  int       `json:"numberOfStrings"`
	NumberOfPickups  int       `json:"numberOfPickups"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

func ToDomainElectricGuitar(id int64, req ElectricGuitarRequest) *domain.ElectricGuitar {
	return &domain.ElectricGuitar{
		Guitar: domain.Guitar{
			Instrument:      domain.Instrument{ID: id},
			NumberOfStrings: req.NumberOfStrings,
		},
		NumberOfPickups: req.NumberOfPickups,
	}
}

func FromDomainElectricGuitar(g *domain.ElectricGuitar) ElectricGuitar {
	if g == nil {
		return ElectricGuitar{}
	}
	return ElectricGuitar{
		ID:               g.ID,
		NumberOfStrings:  g.NumberOfStrings,
		NumberOfPickups:  g.NumberOfPickups,
		CreatedDate:      g.CreatedDate,
		LastModifiedDate: g.LastModifiedDate,
	}
}
