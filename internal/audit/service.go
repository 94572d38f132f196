// Package audit: sayım defteri. Fiziksel sayım gözlemleri tek upsert
// yolundan yazılır ve durum her dokunuşta reconcile motoruyla yeniden
// hesaplanır.
package audit

import (
	"time"

	"sayim-backend/internal/inventory"
	"sayim-backend/internal/models"
	"sayim-backend/internal/reconcile"
	"sayim-backend/internal/storage"
)

type Service struct {
	store   storage.Store
	catalog *inventory.Service
}

func NewService(store storage.Store, catalog *inventory.Service) *Service {
	return &Service{store: store, catalog: catalog}
}

// Upsert: anahtar başına tek sayım kaydı. Sistem miktarı katalogdan
// çözülür; katalogda olmayan ürün için sayım açılamaz. İkinci dokunuş
// kaydın üzerine yazar, yeni satır eklemez.
func (s *Service) Upsert(key models.ItemKey, physicalQuantity int, countedBy string) (models.InventoryItem, error) {
	master, ok, err := s.catalog.FindByKey(key)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if !ok {
		return models.InventoryItem{}, inventory.ErrRecordNotFound
	}

	rec, exists, err := s.find(key)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if !exists {
		rec = master
	}

	now := time.Now()
	rec.SystemQuantity = master.SystemQuantity
	rec.PhysicalQuantity = physicalQuantity
	rec.Status = reconcile.ComputeStatus(master.SystemQuantity, physicalQuantity)
	rec.LastAudited = &now
	if countedBy != "" {
		rec.CountedBy = countedBy
	}

	if err := s.store.UpsertAuditedItem(rec); err != nil {
		return models.InventoryItem{}, err
	}
	return rec, nil
}

// ScanIncrement: barkod akışı. Her okutma sayılan miktarı 1 artırır;
// açık miktarla üzerine yazan Upsert'ten farkı budur ve iki giriş
// noktası bilerek ayrı tutulur.
func (s *Service) ScanIncrement(barcode, location, countedBy string) (models.InventoryItem, error) {
	master, ok, err := s.catalog.Find(barcode, location)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if !ok {
		return models.InventoryItem{}, inventory.ErrItemNotFound
	}

	current := 0
	if rec, exists, err := s.find(master.Key()); err != nil {
		return models.InventoryItem{}, err
	} else if exists {
		current = rec.PhysicalQuantity
	}

	return s.Upsert(master.Key(), current+1, countedBy)
}

// AddItemToAudit: arama-ve-ekle akışı; açık miktarla üzerine yazar.
func (s *Service) AddItemToAudit(item models.InventoryItem, quantity int, countedBy string) (models.InventoryItem, error) {
	return s.Upsert(item.Key(), quantity, countedBy)
}

func (s *Service) Items() ([]models.InventoryItem, error) {
	return s.store.AuditedItems()
}

func (s *Service) Summary() (reconcile.Summary, error) {
	catalog, err := s.catalog.Items()
	if err != nil {
		return reconcile.Summary{}, err
	}
	audited, err := s.store.AuditedItems()
	if err != nil {
		return reconcile.Summary{}, err
	}
	return reconcile.Summarize(catalog, audited), nil
}

func (s *Service) SummaryByLocation(locationName string) (reconcile.Summary, error) {
	catalog, err := s.catalog.Items()
	if err != nil {
		return reconcile.Summary{}, err
	}
	audited, err := s.store.AuditedItems()
	if err != nil {
		return reconcile.Summary{}, err
	}
	return reconcile.SummarizeByLocation(locationName, catalog, audited), nil
}

func (s *Service) find(key models.ItemKey) (models.InventoryItem, bool, error) {
	items, err := s.store.AuditedItems()
	if err != nil {
		return models.InventoryItem{}, false, err
	}
	for _, item := range items {
		if item.Key() == key {
			return item, true, nil
		}
	}
	return models.InventoryItem{}, false, nil
}
