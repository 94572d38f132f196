package models

import "time"

// Location: Sayım yapılan depo/mağaza. İsim, kayıt genelinde
// (büyük/küçük harf duyarsız) benzersiz olmak zorunda.
type Location struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"not null;default:true" json:"active"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
