// Package badgerstore: cihaz üstü (dosya tabanlı) persistence.
// Her tablo tek bir anahtar altında JSON olarak saklanır; tüm
// mutasyonlar tek Update transaction'ı içinde çalışır.
package badgerstore

import (
	"encoding/json"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"

	"sayim-backend/internal/models"
)

const (
	keyItemMaster   = "item_master"
	keyClosingStock = "closing_stock"
	keyAudited      = "audited_items"
	keyLocations    = "locations"
	keyUsers        = "users"
	keyQuestions    = "questions"
	keyAnswers      = "questionnaire_answers"
	keyActivity     = "activity_log"
)

type Store struct {
	db *badger.DB
}

func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badger açılamadı: %w", err)
	}
	return &Store{db: db}, nil
}

func getList[T any](db *badger.DB, key string) ([]T, error) {
	var out []T
	err := db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &out)
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s okunamadı: %w", key, err)
	}
	return out, nil
}

func setList[T any](db *badger.DB, key string, list []T) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	err = db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("%s yazılamadı: %w", key, err)
	}
	return nil
}

func (s *Store) ItemMaster() ([]models.InventoryItem, error) {
	return getList[models.InventoryItem](s.db, keyItemMaster)
}

func (s *Store) SetItemMaster(items []models.InventoryItem) error {
	return setList(s.db, keyItemMaster, items)
}

func (s *Store) ClosingStock() ([]models.InventoryItem, error) {
	return getList[models.InventoryItem](s.db, keyClosingStock)
}

func (s *Store) SetClosingStock(items []models.InventoryItem) error {
	return setList(s.db, keyClosingStock, items)
}

func (s *Store) AuditedItems() ([]models.InventoryItem, error) {
	return getList[models.InventoryItem](s.db, keyAudited)
}

func (s *Store) SetAuditedItems(items []models.InventoryItem) error {
	return setList(s.db, keyAudited, items)
}

func (s *Store) UpsertAuditedItem(item models.InventoryItem) error {
	// Oku-değiştir-yaz tek transaction içinde
	err := s.db.Update(func(txn *badger.Txn) error {
		var list []models.InventoryItem
		it, err := txn.Get([]byte(keyAudited))
		if err == nil {
			if err := it.Value(func(val []byte) error {
				return json.Unmarshal(val, &list)
			}); err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		found := false
		for i := range list {
			if list[i].Key() == item.Key() {
				item.ID = list[i].ID
				list[i] = item
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}

		data, err := json.Marshal(list)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyAudited), data)
	})
	if err != nil {
		return fmt.Errorf("sayım kaydı yazılamadı: %w", err)
	}
	return nil
}

func (s *Store) Locations() ([]models.Location, error) {
	return getList[models.Location](s.db, keyLocations)
}

func (s *Store) SetLocations(locations []models.Location) error {
	return setList(s.db, keyLocations, locations)
}

func (s *Store) Users() ([]models.User, error) {
	return getList[models.User](s.db, keyUsers)
}

func (s *Store) SetUsers(users []models.User) error {
	return setList(s.db, keyUsers, users)
}

func (s *Store) Questions() ([]models.Question, error) {
	return getList[models.Question](s.db, keyQuestions)
}

func (s *Store) SetQuestions(questions []models.Question) error {
	return setList(s.db, keyQuestions, questions)
}

func (s *Store) QuestionnaireAnswers() ([]models.QuestionnaireAnswer, error) {
	return getList[models.QuestionnaireAnswer](s.db, keyAnswers)
}

func (s *Store) SetQuestionnaireAnswers(answers []models.QuestionnaireAnswer) error {
	return setList(s.db, keyAnswers, answers)
}

func (s *Store) AppendActivity(entry models.ActivityLog) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		var list []models.ActivityLog
		it, err := txn.Get([]byte(keyActivity))
		if err == nil {
			if err := it.Value(func(val []byte) error {
				return json.Unmarshal(val, &list)
			}); err != nil {
				return err
			}
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		entry.ID = uint(len(list) + 1)
		list = append(list, entry)

		data, err := json.Marshal(list)
		if err != nil {
			return err
		}
		return txn.Set([]byte(keyActivity), data)
	})
	if err != nil {
		return fmt.Errorf("aktivite kaydı yazılamadı: %w", err)
	}
	return nil
}

func (s *Store) RecentActivity(limit int) ([]models.ActivityLog, error) {
	list, err := getList[models.ActivityLog](s.db, keyActivity)
	if err != nil {
		return nil, err
	}
	out := make([]models.ActivityLog, 0, limit)
	for i := len(list) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

func (s *Store) ClearInventoryData() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, key := range []string{keyItemMaster, keyClosingStock, keyAudited, keyAnswers} {
			if err := txn.Delete([]byte(key)); err != nil {
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
	return s.db.Close()
}
