package domain

import "time"

// BaseEntity carries the identity and audit columns shared by order entities.
// A zero ID marks an entity that has not been persisted yet.
type BaseEntity struct {
	ID               int64
	CreatedDate      time.Time
	LastModifiedDate time.Time
}

// IsNew reports whether the entity still lacks a persistent identity.
func (e BaseEntity) IsNew() bool {
	return e.ID == 0
}

// SameIdentity reports whether both entities are persisted and share an ID.
func (e BaseEntity) SameIdentity(other BaseEntity) bool {
	return e.ID != 0 && e.ID == other.ID
}
