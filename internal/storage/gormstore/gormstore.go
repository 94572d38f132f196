// Package gormstore: Postgres üzerinde GORM ile çalışan persistence.
// Item master, kapanış stoğu ve sayım defteri aynı kayıt tipini
// kullandığı için üç ayrı tablo adıyla map'lenir.
package gormstore

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sayim-backend/internal/models"
)

const (
	tblItemMaster   = "item_master"
	tblClosingStock = "closing_stock"
	tblAudited      = "audited_items"
)

type Store struct {
	db *gorm.DB
}

func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	// Envanter tabloları aynı modeli üç farklı tablo adıyla kullanıyor
	for _, tbl := range []string{tblItemMaster, tblClosingStock, tblAudited} {
		if err := db.Table(tbl).AutoMigrate(&models.InventoryItem{}); err != nil {
			return nil, fmt.Errorf("%s migrate edilemedi: %w", tbl, err)
		}
	}

	err = db.AutoMigrate(
		&models.Location{},
		&models.User{},
		&models.Question{},
		&models.QuestionnaireAnswer{},
		&models.ActivityLog{},
	)
	if err != nil {
		return nil, fmt.Errorf("AutoMigrate hatası: %w", err)
	}

	// Sayım defterinde (item_id, location) çifti başına tek satır.
	// ON CONFLICT upsert'i bu index'e dayanıyor.
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_audited_items_key ON audited_items(item_id, location)",
	).Error; err != nil {
		return nil, fmt.Errorf("audited_items index oluşturulamadı: %w", err)
	}
	// Anket cevapları (question_id, location_id) çifti başına tek satır
	if err := db.Exec(
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_answers_key ON questionnaire_answers(question_id, location_id)",
	).Error; err != nil {
		return nil, fmt.Errorf("questionnaire_answers index oluşturulamadı: %w", err)
	}

	log.Println("Veritabanı bağlantısı başarılı. Migration tamamlandı.")
	return &Store{db: db}, nil
}

func (s *Store) items(tbl string) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Table(tbl).Order("id").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("%s okunamadı: %w", tbl, err)
	}
	return items, nil
}

// replaceItems: tabloyu tek transaction içinde boşaltıp yeniden doldurur.
// Okuyucular yarım değiştirilmiş katalog görmez.
func (s *Store) replaceItems(tbl string, items []models.InventoryItem) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM " + tbl).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]models.InventoryItem, len(items))
		copy(rows, items)
		for i := range rows {
			rows[i].ID = 0
		}
		return tx.Table(tbl).CreateInBatches(rows, 500).Error
	})
	if err != nil {
		return fmt.Errorf("%s güncellenemedi: %w", tbl, err)
	}
	return nil
}

func (s *Store) ItemMaster() ([]models.InventoryItem, error) { return s.items(tblItemMaster) }

func (s *Store) SetItemMaster(items []models.InventoryItem) error {
	return s.replaceItems(tblItemMaster, items)
}

func (s *Store) ClosingStock() ([]models.InventoryItem, error) { return s.items(tblClosingStock) }

func (s *Store) SetClosingStock(items []models.InventoryItem) error {
	return s.replaceItems(tblClosingStock, items)
}

func (s *Store) AuditedItems() ([]models.InventoryItem, error) { return s.items(tblAudited) }

func (s *Store) SetAuditedItems(items []models.InventoryItem) error {
	return s.replaceItems(tblAudited, items)
}

func (s *Store) UpsertAuditedItem(item models.InventoryItem) error {
	item.ID = 0
	err := s.db.Table(tblAudited).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "item_id"}, {Name: "location"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"sku", "name", "category", "system_quantity",
			"physical_quantity", "status", "last_audited", "counted_by", "updated_at",
		}),
	}).Create(&item).Error
	if err != nil {
		return fmt.Errorf("sayım kaydı yazılamadı: %w", err)
	}
	return nil
}

func (s *Store) Locations() ([]models.Location, error) {
	var locations []models.Location
	if err := s.db.Order("name").Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("lokasyonlar okunamadı: %w", err)
	}
	return locations, nil
}

func (s *Store) SetLocations(locations []models.Location) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM locations").Error; err != nil {
			return err
		}
		if len(locations) == 0 {
			return nil
		}
		return tx.Create(&locations).Error
	})
	if err != nil {
		return fmt.Errorf("lokasyonlar güncellenemedi: %w", err)
	}
	return nil
}

func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("created_at").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("kullanıcılar okunamadı: %w", err)
	}
	return users, nil
}

func (s *Store) SetUsers(users []models.User) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM users").Error; err != nil {
			return err
		}
		if len(users) == 0 {
			return nil
		}
		return tx.Create(&users).Error
	})
	if err != nil {
		return fmt.Errorf("kullanıcılar güncellenemedi: %w", err)
	}
	return nil
}

func (s *Store) Questions() ([]models.Question, error) {
	var questions []models.Question
	if err := s.db.Order("created_at").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("sorular okunamadı: %w", err)
	}
	return questions, nil
}

func (s *Store) SetQuestions(questions []models.Question) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM questions").Error; err != nil {
			return err
		}
		if len(questions) == 0 {
			return nil
		}
		return tx.Create(&questions).Error
	})
	if err != nil {
		return fmt.Errorf("sorular güncellenemedi: %w", err)
	}
	return nil
}

func (s *Store) QuestionnaireAnswers() ([]models.QuestionnaireAnswer, error) {
	var answers []models.QuestionnaireAnswer
	if err := s.db.Order("answered_on DESC").Find(&answers).Error; err != nil {
		return nil, fmt.Errorf("anket cevapları okunamadı: %w", err)
	}
	return answers, nil
}

func (s *Store) SetQuestionnaireAnswers(answers []models.QuestionnaireAnswer) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM questionnaire_answers").Error; err != nil {
			return err
		}
		if len(answers) == 0 {
			return nil
		}
		rows := make([]models.QuestionnaireAnswer, len(answers))
		copy(rows, answers)
		for i := range rows {
			rows[i].ID = 0
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("anket cevapları güncellenemedi: %w", err)
	}
	return nil
}

func (s *Store) AppendActivity(entry models.ActivityLog) error {
	entry.ID = 0
	if err := s.db.Create(&entry).Error; err != nil {
		return fmt.Errorf("aktivite kaydı yazılamadı: %w", err)
	}
	return nil
}

func (s *Store) RecentActivity(limit int) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	if err := s.db.Order("created_at DESC").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("aktivite kayıtları okunamadı: %w", err)
	}
	return entries, nil
}

func (s *Store) ClearInventoryData() error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, tbl := range []string{tblItemMaster, tblClosingStock, tblAudited, "questionnaire_answers"} {
			if err := tx.Exec("DELETE FROM " + tbl).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("envanter verisi temizlenemedi: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
