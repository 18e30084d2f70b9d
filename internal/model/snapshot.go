package model

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/leolimasa/leolang/internal/serializer"
	"github.com/leolimasa/leolang/lang/lexer"
)

// Snapshot is a stored token stream of a named source
type Snapshot struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string    `json:"name" gorm:"not null;uniqueIndex:idx_snapshots_name_digest"`
	Digest     string    `json:"digest" gorm:"not null;uniqueIndex:idx_snapshots_name_digest"`
	Source     string    `json:"source" gorm:"type:text;not null"`
	Layout     bool      `json:"layout"`
	Tokens     TokenList `json:"tokens" gorm:"type:jsonb"`
	TokenCount int       `json:"token_count"`
	ErrorCount int       `json:"error_count"`
	CreatedAt  time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt  time.Time `json:"updated_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for Snapshot
func (Snapshot) TableName() string {
	return "snapshots"
}

// TokenList is a token stream stored as JSONB
type TokenList []lexer.Token

// Value implements the driver.Valuer interface for TokenList
func (l TokenList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	var buf bytes.Buffer
	if err := serializer.Encode("json", l, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Scan implements the sql.Scanner interface for TokenList
func (l *TokenList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	tokens, err := serializer.Decode("json", data)
	if err != nil {
		return err
	}
	*l = tokens
	return nil
}

func (l TokenList) MarshalJSON() ([]byte, error) {
	return json.Marshal(serializer.ToRecords(l))
}

func (l *TokenList) UnmarshalJSON(data []byte) error {
	return l.Scan(data)
}
