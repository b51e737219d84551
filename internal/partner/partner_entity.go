package partner

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PhoneNumbers is stored as jsonb, but older rows were written as a
// Postgres text-array literal. Scan accepts both so callers always see
// an ordered []string.
type PhoneNumbers []string

func (p PhoneNumbers) Value() (driver.Value, error) {
	b, err := json.Marshal([]string(p))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *PhoneNumbers) Scan(value any) error {
	if value == nil {
		*p = PhoneNumbers{}
		return nil
	}

	var raw string
	switch v := value.(type) {
	case []byte:
		raw = string(v)
	case string:
		raw = v
	default:
		return fmt.Errorf("unsupported phone_numbers type %T", value)
	}

	var numbers []string
	if err := json.Unmarshal([]byte(raw), &numbers); err == nil {
		*p = numbers
		return nil
	}

	// Fallback: Postgres array literal, e.g. {9876543210,"+91 11 2345"}
	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		inner := strings.TrimSuffix(strings.TrimPrefix(raw, "{"), "}")
		if inner == "" {
			*p = PhoneNumbers{}
			return nil
		}
		parts := strings.Split(inner, ",")
		numbers = make([]string, 0, len(parts))
		for _, part := range parts {
			numbers = append(numbers, strings.Trim(strings.TrimSpace(part), `"`))
		}
		*p = numbers
		return nil
	}

	return fmt.Errorf("cannot decode phone_numbers value %q", raw)
}

type Partner struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string       `gorm:"type:varchar(255);not null"`
	PhoneNumbers PhoneNumbers `gorm:"type:jsonb;not null"`
	City         string       `gorm:"type:varchar(100);not null"`
	State        string       `gorm:"type:varchar(100);not null"`
	PinCode      string       `gorm:"type:varchar(10);not null"`
	Address      string       `gorm:"type:text;not null"`
	Email        string       `gorm:"type:varchar(255);not null"`
	UniqueCode   string       `gorm:"type:varchar(16);not null;uniqueIndex:uq_partners_unique_code"`
	AdminNotes   *string      `gorm:"type:text"`
	CreatedAt    time.Time    `gorm:"not null;default:now()"`
}

func (Partner) TableName() string {
	return "partners"
}
