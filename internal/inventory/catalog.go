package inventory

import (
	"errors"
	"fmt"
	"strings"

	"sayim-backend/internal/models"
	"sayim-backend/internal/storage"
)

var (
	// ErrRecordNotFound: sayım hedefi ürün kataloğunda yok
	ErrRecordNotFound = errors.New("kayıt ürün kataloğunda bulunamadı")
	// ErrItemNotFound: barkod verilen lokasyonda eşleşmedi
	ErrItemNotFound = errors.New("barkod bu lokasyonda eşleşmedi")
)

// Katalog importunda boş lokasyon bu değere düşer
const DefaultLocation = "Default"

// Kapanış stoğu katalogda olmayan bir ürün getirirse kategori bu
// placeholder ile açılır
const defaultCategory = "Genel"

// Service: item master (katalog) ve kapanış stoğu işlemleri. Sayım
// motoru katalogdan sadece okur; buradaki mutasyonlar yalnızca import
// akışlarından gelir.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Items() ([]models.InventoryItem, error) {
	return s.store.ItemMaster()
}

// ReplaceItemMaster: önceki kataloğu atıp yenisini kurar. Boş lokasyon
// "Default" olur; miktar alanları import katmanında zaten 0'a düşmüş
// durumda. (ItemID, Location) çifti için benzersizlik zorlanmaz,
// aramalarda ilk eşleşme kazanır.
func (s *Service) ReplaceItemMaster(records []models.InventoryItem) (int, error) {
	items := make([]models.InventoryItem, 0, len(records))
	for _, rec := range records {
		if rec.Location == "" {
			rec.Location = DefaultLocation
		}
		rec.PhysicalQuantity = 0
		rec.Status = ""
		rec.LastAudited = nil
		items = append(items, rec)
	}

	if err := s.store.SetItemMaster(items); err != nil {
		return 0, fmt.Errorf("katalog güncellenemedi: %w", err)
	}
	return len(items), nil
}

// Find: ItemID veya SKU ile ilk eşleşen katalog kaydı. Lokasyon
// verilmişse onunla da filtrelenir. Bulunamama hata değildir.
func (s *Service) Find(identifier, location string) (models.InventoryItem, bool, error) {
	items, err := s.store.ItemMaster()
	if err != nil {
		return models.InventoryItem{}, false, err
	}
	for _, item := range items {
		if item.ItemID != identifier && item.SKU != identifier {
			continue
		}
		if location != "" && item.Location != location {
			continue
		}
		return item, true, nil
	}
	return models.InventoryItem{}, false, nil
}

// FindByKey: tam (ItemID, Location) anahtarıyla arama; sayım upsert'i
// sistem miktarını buradan çözer.
func (s *Service) FindByKey(key models.ItemKey) (models.InventoryItem, bool, error) {
	items, err := s.store.ItemMaster()
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

// Search: ItemID, SKU, isim ve kategori üzerinde büyük/küçük harf
// duyarsız substring araması. İki karakterden kısa sorgu boş sonuç
// döndürür; bu bir performans kestirmesi değil, yarım tuşlamalarda
// ekranı boğmamak için sözleşmenin parçası.
func (s *Service) Search(query string) ([]models.InventoryItem, error) {
	if len(query) < 2 {
		return []models.InventoryItem{}, nil
	}

	items, err := s.store.ItemMaster()
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	matches := make([]models.InventoryItem, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.ItemID), q) ||
			strings.Contains(strings.ToLower(item.SKU), q) ||
			strings.Contains(strings.ToLower(item.Name), q) ||
			strings.Contains(strings.ToLower(item.Category), q) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// MergeClosingStock: kapanış stoğunu kataloğa işler. Anahtar eşleşirse
// sadece sistem miktarı güncellenir; eşleşmezse katalog yeni kayıtla
// büyür. Katalog importu kataloğu küçültebilir ama stok verisi
// büyütemez; stok importu ise sadece büyütür, bu ayrım korunmalı.
//
// forcedLocation boş değilse her satırın lokasyonu onunla ezilir:
// tek lokasyona kısıtlı bir auditor hangi dosyayı yüklerse yüklesin
// veri kendi lokasyonuna yazılır.
func (s *Service) MergeClosingStock(records []models.InventoryItem, forcedLocation string) (updated, added int, err error) {
	master, err := s.store.ItemMaster()
	if err != nil {
		return 0, 0, err
	}

	stock := make([]models.InventoryItem, 0, len(records))
	for _, rec := range records {
		if forcedLocation != "" {
			rec.Location = forcedLocation
		}
		if rec.Location == "" {
			rec.Location = DefaultLocation
		}
		stock = append(stock, rec)
	}

	for _, rec := range stock {
		idx := -1
		for i := range master {
			if master[i].Key() == rec.Key() {
				idx = i
				break
			}
		}
		if idx >= 0 {
			master[idx].SystemQuantity = rec.SystemQuantity
			updated++
			continue
		}

		// Katalogda olmayan ürün: placeholder alanlarla yeni kayıt
		newItem := rec
		if newItem.Name == "" {
			newItem.Name = newItem.SKU
		}
		if newItem.Category == "" {
			newItem.Category = defaultCategory
		}
		newItem.PhysicalQuantity = 0
		newItem.Status = ""
		newItem.LastAudited = nil
		master = append(master, newItem)
		added++
	}

	if err := s.store.SetItemMaster(master); err != nil {
		return 0, 0, fmt.Errorf("katalog güncellenemedi: %w", err)
	}
	if err := s.store.SetClosingStock(stock); err != nil {
		return 0, 0, fmt.Errorf("kapanış stoğu kaydedilemedi: %w", err)
	}
	return updated, added, nil
}

// ClearAll: item master + kapanış stoğu + sayım defteri + anket
// cevapları tek adımda sıfırlanır.
func (s *Service) ClearAll() error {
	return s.store.ClearInventoryData()
}
