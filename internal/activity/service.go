// Package activity: "son işlemler" paneli için tutulan aktivite kaydı.
package activity

import (
	"log"

	"sayim-backend/internal/models"
	"sayim-backend/internal/storage"
)

type LogOptions struct {
	UserName    string
	Action      models.ActivityAction
	EntityType  string
	Description string
}

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Write: aktivite kaydı asıl işlemi bloklamaz; yazılamazsa loglanıp
// geçilir.
func (s *Service) Write(opts LogOptions) {
	entry := models.ActivityLog{
		UserName:    opts.UserName,
		Action:      opts.Action,
		EntityType:  opts.EntityType,
		Description: opts.Description,
	}
	if err := s.store.AppendActivity(entry); err != nil {
		log.Printf("aktivite kaydı yazılamadı: %v", err)
	}
}

func (s *Service) Recent(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.store.RecentActivity(limit)
}
