package db_models

import (
	"database/sql/driver"
	"fmt"

	"github.com/lib/pq"
)

// JSONB stores a JSON document verbatim in a jsonb column. The stored bytes
// round-trip untouched, which keeps persisted plans byte-faithful to what the
// pipeline produced.
type JSONB []byte

func (JSONB) GormDataType() string {
	return "jsonb"
}

func (j JSONB) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSONB) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
	case []byte:
		*j = append((*j)[:0], v...)
	case string:
		*j = JSONB(v)
	default:
		return fmt.Errorf("unsupported jsonb source type %T", value)
	}
	return nil
}

func (j JSONB) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONB) UnmarshalJSON(data []byte) error {
	*j = append((*j)[:0], data...)
	return nil
}

// Trip is a persisted trip record: the generated plan, the original user
// selection kept for redisplay and regeneration, and the creator identity.
// Plans are immutable once created; there is no update path. Location and
// BudgetTips are denormalized from the plan so the list view never decodes
// the full document.
type Trip struct {
	BaseModel
	OwnerID       string `gorm:"index"`
	OwnerEmail    string
	Location      string
	TripPlan      JSONB          `gorm:"type:jsonb"`
	UserSelection JSONB          `gorm:"type:jsonb"`
	BudgetTips    pq.StringArray `gorm:"type:text[]"`
}
