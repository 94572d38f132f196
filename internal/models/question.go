package models

import "time"

type QuestionType string

const (
	QuestionText    QuestionType = "text"
	QuestionNumber  QuestionType = "number"
	QuestionBoolean QuestionType = "boolean"
	QuestionSelect  QuestionType = "select"
)

// Question: Sayım sırasında lokasyon başına doldurulan anket sorusu.
type Question struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	Text      string       `gorm:"size:255;not null" json:"text"`
	Type      QuestionType `gorm:"size:20;not null" json:"type"`
	Required  bool         `gorm:"not null;default:false" json:"required"`
	Options   StringList   `gorm:"type:jsonb" json:"options,omitempty"` // sadece select tipinde
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"-"`
}

// QuestionnaireAnswer: (soru, lokasyon) çifti başına tek cevap;
// ikinci gönderim üzerine yazar.
type QuestionnaireAnswer struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	QuestionID string    `gorm:"size:36;index" json:"questionId"`
	LocationID string    `gorm:"size:36;index" json:"locationId"`
	Answer     string    `gorm:"size:1000" json:"answer"`
	AnsweredBy string    `gorm:"size:100" json:"answeredBy"`
	AnsweredOn time.Time `json:"answeredOn"`
}
