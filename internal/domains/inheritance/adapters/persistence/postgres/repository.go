package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/inheritance/ports"
	"github.com/Apurer/go-persistence-examples/internal/shared/paging"
)

var _ ports.ElectricGuitarRepository = (*Repository)(nil)

var electricGuitarColumns = map[string]string{
	"id":              "i.id",
	"createdDate":     "i.created_date",
	"numberOfStrings": "g.number_of_strings",
	"numberOfPickups": "eg.number_of_pickups",
}

// Repository maps electric guitars onto the instrument, guitar and electric_guitar tables.
// Writes span all three tables in one transaction.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ensureDB() error {
	if r.db == nil {
		return errors.New("postgres electric guitar repository not configured")
	}
	return nil
}

func (r *Repository) Save(ctx context.Context, guitar *domain.ElectricGuitar) (*domain.ElectricGuitar, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	if guitar == nil {
		return nil, errors.New("electric guitar is nil")
	}
	var saved *domain.ElectricGuitar
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id := guitar.ID
		if id == 0 {
			instrument := instrumentRecord{}
			if err := tx.Create(&instrument).Error; err != nil {
				return err
			}
			id = instrument.ID
			if err := tx.Create(&guitarRecord{ID: id, NumberOfStrings: guitar.NumberOfStrings}).Error; err != nil {
				return err
			}
			if err := tx.Create(&electricGuitarRecord{ID: id, NumberOfPickups: guitar.NumberOfPickups}).Error; err != nil {
				return err
			}
		} else if err := update(tx, guitar); err != nil {
			return err
		}
		var err error
		saved, err = load(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func update(tx *gorm.DB, guitar *domain.ElectricGuitar) error {
	result := tx.Model(&instrumentRecord{}).Where("id = ?", guitar.ID).Update("last_modified_date", time.Now())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	if err := tx.Model(&guitarRecord{}).Where("id = ?", guitar.ID).
		Update("number_of_strings", guitar.NumberOfStrings).Error; err != nil {
		return err
	}
	result = tx.Model(&electricGuitarRecord{}).Where("id = ?", guitar.ID).Update("number_of_pickups", guitar.NumberOfPickups)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func joined(db *gorm.DB) *gorm.DB {
	return db.Table("electric_guitar AS eg").
		Select("i.id, i.created_date, i.last_modified_date, g.number_of_strings, eg.number_of_pickups").
		Joins("JOIN guitar AS g ON g.id = eg.id").
		Joins("JOIN instrument AS i ON i.id = eg.id")
}

func load(db *gorm.DB, id int64) (*domain.ElectricGuitar, error) {
	var rows []electricGuitarRow
	if err := joined(db).Where("eg.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ports.ErrNotFound
	}
	return rows[0].toDomain(), nil
}

func (r *Repository) FindByID(ctx context.Context, id int64) (*domain.ElectricGuitar, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	return load(r.db.WithContext(ctx), id)
}

func (r *Repository) FindAll(ctx context.Context, pageable paging.Pageable) (paging.Page[*domain.ElectricGuitar], error) {
	if err := r.ensureDB(); err != nil {
		return paging.Page[*domain.ElectricGuitar]{}, err
	}
	orderClause, err := pageable.OrderClause(electricGuitarColumns)
	if err != nil {
		return paging.Page[*domain.ElectricGuitar]{}, err
	}
	total, err := r.Count(ctx)
	if err != nil {
		return paging.Page[*domain.ElectricGuitar]{}, err
	}
	p := pageable.Normalize()
	query := joined(r.db.WithContext(ctx))
	if orderClause != "" {
		query = query.Order(orderClause)
	}
	var rows []electricGuitarRow
	if err := query.Order("i.id").Limit(p.PageSize).Offset(p.Offset()).Scan(&rows).Error; err != nil {
		return paging.Page[*domain.ElectricGuitar]{}, err
	}
	items := make([]*domain.ElectricGuitar, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return paging.NewPage(items, p, total), nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	if err := r.ensureDB(); err != nil {
		return 0, err
	}
	var total int64
	if err := r.db.WithContext(ctx).Model(&electricGuitarRecord{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// DeleteByID removes the subtype rows before the instrument row.
func (r *Repository) DeleteByID(ctx context.Context, id int64) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&electricGuitarRecord{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ports.ErrNotFound
		}
		if err := tx.Where("id = ?", id).Delete(&guitarRecord{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&instrumentRecord{}).Error
	})
}
