package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseSimple
	UserID     uuid.UUID `db:"user_id"`
	PropertyID uuid.UUID `db:"property_id"`
	Rating     int       `db:"rating"` // 1-5
	Comment    *string   `db:"comment"`
}

type ReviewWithUser struct {
	Review
	UserName string `db:"user_name"`
}
