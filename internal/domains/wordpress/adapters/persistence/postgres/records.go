package postgres

import "github.com/Apurer/go-persistence-examples/internal/domains/wordpress/domain"

type termRecord struct {
	ID        int64  `gorm:"column:term_id;primaryKey"`
	Name      string `gorm:"size:200;index"`
	Slug      string `gorm:"size:200;index"`
	TermGroup int64
}

func (termRecord) TableName() string { return "wp_terms" }

func toTermRecord(term *domain.Term) termRecord {
	return termRecord{ID: term.ID, Name: term.Name, Slug: term.Slug, TermGroup: term.TermGroup}
}

func (r termRecord) toDomain() *domain.Term {
	return &domain.Term{ID: r.ID, Name: r.Name, Slug: r.Slug, TermGroup: r.TermGroup}
}

type metaColumns struct {
	MetaKey   string `gorm:"column:meta_key;size:255;index"`
	MetaValue string `gorm:"column:meta_value;type:text"`
}

type termMetaRecord struct {
	ID     int64       `gorm:"column:meta_id;primaryKey"`
	TermID int64       `gorm:"column:term_id;index"`
	Term   *termRecord `gorm:"foreignKey:TermID;references:ID;constraint:OnDelete:CASCADE"`
	Meta   metaColumns `gorm:"embedded"`
}

func (termMetaRecord) TableName() string { return "wp_termmeta" }

func toTermMetaRecord(meta *domain.TermMeta) termMetaRecord {
	return termMetaRecord{
		ID:     meta.ID,
		TermID: meta.TermID(),
		Meta:   metaColumns{MetaKey: meta.MetaKey, MetaValue: meta.MetaValue},
	}
}

func (r termMetaRecord) toDomain() *domain.TermMeta {
	meta := &domain.TermMeta{
		ID:   r.ID,
		Meta: domain.Meta{MetaKey: r.Meta.MetaKey, MetaValue: r.Meta.MetaValue},
	}
	if r.Term != nil {
		meta.Term = r.Term.toDomain()
	} else if r.TermID != 0 {
		meta.Term = &domain.Term{ID: r.TermID}
	}
	return meta
}
