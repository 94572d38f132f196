package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleAuditor UserRole = "auditor"
	RoleClient  UserRole = "client"
)

// StringList: jsonb kolonunda saklanan string listesi (lokasyon id'leri,
// soru seçenekleri vs.)
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("StringList için beklenmeyen tip: %T", value)
	}
}

type User struct {
	ID           string   `gorm:"primaryKey;size:36" json:"id"`
	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Role         UserRole `gorm:"size:20;not null" json:"role"`
	// Auditor ve client rolleri sadece atanmış lokasyonlara erişebilir.
	// Admin için boş bırakılır (tüm lokasyonlar).
	AssignedLocations StringList `gorm:"type:jsonb" json:"assignedLocations"`
	CreatedAt         time.Time  `json:"-"`
	UpdatedAt         time.Time  `json:"-"`
}
