package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"
	"github.com/Apurer/go-persistence-examples/internal/domains/wordpress/ports"
)

var (
	_ ports.TermRepository     = (*TermRepository)(nil)
	_ ports.TermMetaRepository = (*TermMetaRepository)(nil)
)

func ensureDB(db *gorm.DB, name string) error {
	if db == nil {
		return errors.New("postgres " + name + " repository not configured")
	}
	return nil
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.ErrNotFound
	}
	return err
}

// TermRepository persists wp_terms rows using GORM.
type TermRepository struct {
	db *gorm.DB
}

func NewTermRepository(db *gorm.DB) *TermRepository {
	return &TermRepository{db: db}
}

func (r *TermRepository) Save(ctx context.Context, term *domain.Term) (*domain.Term, error) {
	if err := ensureDB(r.db, "term"); err != nil {
		return nil, err
	}
	if term == nil {
		return nil, errors.New("term is nil")
	}
	record := toTermRecord(term)
	db := r.db.WithContext(ctx)
	if record.ID == 0 {
		if err := db.Create(&record).Error; err != nil {
			return nil, err
		}
		return record.toDomain(), nil
	}
	result := db.Model(&termRecord{}).Where("term_id = ?", record.ID).Updates(map[string]any{
		"name":       record.Name,
		"slug":       record.Slug,
		"term_group": record.TermGroup,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ports.ErrNotFound
	}
	return record.toDomain(), nil
}

func (r *TermRepository) GetByID(ctx context.Context, id int64) (*domain.Term, error) {
	if err := ensureDB(r.db, "term"); err != nil {
		return nil, err
	}
	var record termRecord
	if err := r.db.WithContext(ctx).First(&record, "term_id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

// TermMetaRepository persists wp_termmeta rows using GORM. The term itself is never written through it.
type TermMetaRepository struct {
	db *gorm.DB
}

func NewTermMetaRepository(db *gorm.DB) *TermMetaRepository {
	return &TermMetaRepository{db: db}
}

func (r *TermMetaRepository) Save(ctx context.Context, meta *domain.TermMeta) (*domain.TermMeta, error) {
	if err := ensureDB(r.db, "term meta"); err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, errors.New("term meta is nil")
	}
	record := toTermMetaRecord(meta)
	db := r.db.WithContext(ctx)
	if record.ID == 0 {
		if err := db.Omit("Term").Create(&record).Error; err != nil {
			return nil, err
		}
	} else {
		result := db.Model(&termMetaRecord{}).Where("meta_id = ?", record.ID).Updates(map[string]any{
			"term_id":    record.TermID,
			"meta_key":   record.Meta.MetaKey,
			"meta_value": record.Meta.MetaValue,
		})
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ports.ErrNotFound
		}
	}
	return r.GetByID(ctx, record.ID)
}

func (r *TermMetaRepository) GetByID(ctx context.Context, id int64) (*domain.TermMeta, error) {
	if err := ensureDB(r.db, "term meta"); err != nil {
		return nil, err
	}
	var record termMetaRecord
	if err := r.db.WithContext(ctx).Preload("Term").First(&record, "meta_id = ?", id).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return record.toDomain(), nil
}

func (r *TermMetaRepository) ListByTerm(ctx context.Context, termID int64) ([]*domain.TermMeta, error) {
	if err := ensureDB(r.db, "term meta"); err != nil {
		return nil, err
	}
	var records []termMetaRecord
	if err := r.db.WithContext(ctx).Preload("Term").Where("term_id = ?", termID).Order("meta_id").Find(&records).Error; err != nil {
		return nil, err
	}
	metas := make([]*domain.TermMeta, 0, len(records))
	for i := range records {
		metas = append(metas, records[i].toDomain())
	}
	return metas, nil
}

func (r *TermMetaRepository) Delete(ctx context.Context, id int64) error {
	if err := ensureDB(r.db, "term meta"); err != nil {
		return err
	}
	result := r.db.WithContext(ctx).Delete(&termMetaRecord{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ports.ErrNotFound
	}
	return nil
}
