// Package location: sayım lokasyonları (depo/mağaza) kayıt defteri.
package location

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"sayim-backend/internal/models"
	"sayim-backend/internal/storage"
)

var (
	ErrNotFound = errors.New("lokasyon bulunamadı")
	// ErrDuplicateName: isim büyük/küçük harf duyarsız benzersiz
	ErrDuplicateName = errors.New("bu isimde bir lokasyon zaten var")
	// ErrInUse: katalogda bu lokasyonu referanslayan kayıt var
	ErrInUse = errors.New("lokasyon envanter kayıtları tarafından kullanılıyor")
)

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// List: activeOnly verilirse pasif lokasyonlar elenir. Pasiflik çekirdek
// tarafında yazmayı engellemez; sadece hedef seçici listelerini süzer.
func (s *Service) List(activeOnly bool) ([]models.Location, error) {
	locations, err := s.store.Locations()
	if err != nil {
		return nil, err
	}
	if !activeOnly {
		return locations, nil
	}
	out := make([]models.Location, 0, len(locations))
	for _, loc := range locations {
		if loc.Active {
			out = append(out, loc)
		}
	}
	return out, nil
}

func (s *Service) Get(id string) (models.Location, error) {
	locations, err := s.store.Locations()
	if err != nil {
		return models.Location{}, err
	}
	for _, loc := range locations {
		if loc.ID == id {
			return loc, nil
		}
	}
	return models.Location{}, ErrNotFound
}

func (s *Service) Add(name, description string, active bool) (models.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Location{}, fmt.Errorf("lokasyon adı boş olamaz")
	}

	locations, err := s.store.Locations()
	if err != nil {
		return models.Location{}, err
	}
	if nameTaken(locations, name, "") {
		return models.Location{}, ErrDuplicateName
	}

	loc := models.Location{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Active:      active,
	}
	locations = append(locations, loc)
	if err := s.store.SetLocations(locations); err != nil {
		return models.Location{}, err
	}
	return loc, nil
}

func (s *Service) Update(updated models.Location) (models.Location, error) {
	updated.Name = strings.TrimSpace(updated.Name)

	locations, err := s.store.Locations()
	if err != nil {
		return models.Location{}, err
	}
	// Kendi id'si hariç isim çakışması kontrolü
	if nameTaken(locations, updated.Name, updated.ID) {
		return models.Location{}, ErrDuplicateName
	}

	for i := range locations {
		if locations[i].ID == updated.ID {
			locations[i].Name = updated.Name
			locations[i].Description = updated.Description
			locations[i].Active = updated.Active
			if err := s.store.SetLocations(locations); err != nil {
				return models.Location{}, err
			}
			return locations[i], nil
		}
	}
	return models.Location{}, ErrNotFound
}

// Delete: referans bütünlüğü koruması. Kontrol isim üzerinden yapılır
// çünkü envanter kayıtları lokasyonu id ile değil isimle taşır; bu
// dolaylama bilerek korunuyor.
func (s *Service) Delete(id string) error {
	locations, err := s.store.Locations()
	if err != nil {
		return err
	}

	idx := -1
	for i := range locations {
		if locations[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	master, err := s.store.ItemMaster()
	if err != nil {
		return err
	}
	for _, item := range master {
		if item.Location == locations[idx].Name {
			return ErrInUse
		}
	}

	locations = append(locations[:idx], locations[idx+1:]...)
	return s.store.SetLocations(locations)
}

func nameTaken(locations []models.Location, name, excludeID string) bool {
	for _, loc := range locations {
		if loc.ID == excludeID {
			continue
		}
		if strings.EqualFold(loc.Name, name) {
			return true
		}
	}
	return false
}
