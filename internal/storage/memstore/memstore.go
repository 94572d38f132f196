// Package memstore: testler ve demo modu için bellek içi store.
// Toplu değişimler slice'ı komple takas eder, okuyucular asla yarım
// değiştirilmiş tablo görmez.
package memstore

import (
	"sync"

	"sayim-backend/internal/models"
)

type Store struct {
	mu sync.RWMutex

	itemMaster   []models.InventoryItem
	closingStock []models.InventoryItem
	audited      []models.InventoryItem
	locations    []models.Location
	users        []models.User
	questions    []models.Question
	answers      []models.QuestionnaireAnswer
	activity     []models.ActivityLog
	nextActID    uint
}

func New() *Store {
	return &Store{nextActID: 1}
}

func copyItems(src []models.InventoryItem) []models.InventoryItem {
	dst := make([]models.InventoryItem, len(src))
	copy(dst, src)
	return dst
}

func (s *Store) ItemMaster() ([]models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.itemMaster), nil
}

func (s *Store) SetItemMaster(items []models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemMaster = copyItems(items)
	return nil
}

func (s *Store) ClosingStock() ([]models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.closingStock), nil
}

func (s *Store) SetClosingStock(items []models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closingStock = copyItems(items)
	return nil
}

func (s *Store) AuditedItems() ([]models.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyItems(s.audited), nil
}

func (s *Store) SetAuditedItems(items []models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audited = copyItems(items)
	return nil
}

func (s *Store) UpsertAuditedItem(item models.InventoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.audited {
		if s.audited[i].Key() == item.Key() {
			item.ID = s.audited[i].ID
			s.audited[i] = item
			return nil
		}
	}
	s.audited = append(s.audited, item)
	return nil
}

func (s *Store) Locations() ([]models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dst := make([]models.Location, len(s.locations))
	copy(dst, s.locations)
	return dst, nil
}

func (s *Store) SetLocations(locations []models.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations = make([]models.Location, len(locations))
	copy(s.locations, locations)
	return nil
}

func (s *Store) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dst := make([]models.User, len(s.users))
	copy(dst, s.users)
	return dst, nil
}

func (s *Store) SetUsers(users []models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make([]models.User, len(users))
	copy(s.users, users)
	return nil
}

func (s *Store) Questions() ([]models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dst := make([]models.Question, len(s.questions))
	copy(dst, s.questions)
	return dst, nil
}

func (s *Store) SetQuestions(questions []models.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = make([]models.Question, len(questions))
	copy(s.questions, questions)
	return nil
}

func (s *Store) QuestionnaireAnswers() ([]models.QuestionnaireAnswer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dst := make([]models.QuestionnaireAnswer, len(s.answers))
	copy(dst, s.answers)
	return dst, nil
}

func (s *Store) SetQuestionnaireAnswers(answers []models.QuestionnaireAnswer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = make([]models.QuestionnaireAnswer, len(answers))
	copy(s.answers, answers)
	return nil
}

func (s *Store) AppendActivity(entry models.ActivityLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry.ID = s.nextActID
	s.nextActID++
	s.activity = append(s.activity, entry)
	return nil
}

func (s *Store) RecentActivity(limit int) ([]models.ActivityLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// En yeni kayıt başta
	out := make([]models.ActivityLog, 0, limit)
	for i := len(s.activity) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.activity[i])
	}
	return out, nil
}

func (s *Store) ClearInventoryData() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.itemMaster = nil
	s.closingStock = nil
	s.audited = nil
	s.answers = nil
	return nil
}

func (s *Store) Close() error { return nil }
