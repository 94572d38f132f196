package location

import (
	"errors"
	"testing"

	"sayim-backend/internal/models"
	"sayim-backend/internal/storage/memstore"
)

func TestAddAssignsID(t *testing.T) {
	svc := NewService(memstore.New())

	loc, err := svc.Add("Depo A", "Ana depo", true)
	if err != nil {
		t.Fatalf("Add hata döndü: %v", err)
	}
	if loc.ID == "" {
		t.Error("yeni lokasyona id atanmalıydı")
	}

	other, _ := svc.Add("Depo B", "", true)
	if other.ID == loc.ID {
		t.Error("id'ler benzersiz olmalı")
	}
}

func TestAddDuplicateNameCaseInsensitive(t *testing.T) {
	svc := NewService(memstore.New())
	if _, err := svc.Add("Warehouse A", "", true); err != nil {
		t.Fatalf("ilk ekleme hata döndü: %v", err)
	}

	_, err := svc.Add("warehouse a", "", true)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("ErrDuplicateName bekleniyordu, %v geldi", err)
	}
}

func TestUpdateExcludesOwnID(t *testing.T) {
	svc := NewService(memstore.New())
	loc, _ := svc.Add("Depo A", "", true)
	svc.Add("Depo B", "", true)

	// Kendi ismini (farklı büyüklükle) korumak çakışma değildir
	loc.Name = "DEPO A"
	loc.Description = "güncel"
	updated, err := svc.Update(loc)
	if err != nil {
		t.Fatalf("Update hata döndü: %v", err)
	}
	if updated.Name != "DEPO A" || updated.Description != "güncel" {
		t.Errorf("güncelleme uygulanmadı: %+v", updated)
	}

	// Başka kaydın ismine geçmek çakışmadır
	loc.Name = "depo b"
	if _, err := svc.Update(loc); !errors.Is(err, ErrDuplicateName) {
		t.Errorf("ErrDuplicateName bekleniyordu, %v geldi", err)
	}
}

func TestDeleteGuard(t *testing.T) {
	store := memstore.New()
	svc := NewService(store)
	loc, _ := svc.Add("Warehouse A", "", true)

	store.SetItemMaster([]models.InventoryItem{
		{ItemID: "1001", SKU: "ITEM1001", Location: "Warehouse A"},
	})

	if err := svc.Delete(loc.ID); !errors.Is(err, ErrInUse) {
		t.Errorf("ErrInUse bekleniyordu, %v geldi", err)
	}

	// Referanslar kalkınca silme başarılı olmalı
	store.SetItemMaster(nil)
	if err := svc.Delete(loc.ID); err != nil {
		t.Errorf("referanssız silme başarılı olmalıydı: %v", err)
	}

	locations, _ := svc.List(false)
	if len(locations) != 0 {
		t.Errorf("lokasyon silinmeliydi, %d kayıt var", len(locations))
	}
}

func TestDeleteUnknown(t *testing.T) {
	svc := NewService(memstore.New())
	if err := svc.Delete("yok"); !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNotFound bekleniyordu, %v geldi", err)
	}
}

func TestListActiveOnly(t *testing.T) {
	svc := NewService(memstore.New())
	svc.Add("Depo A", "", true)
	passive, _ := svc.Add("Depo B", "", true)
	passive.Active = false
	svc.Update(passive)

	all, _ := svc.List(false)
	if len(all) != 2 {
		t.Fatalf("2 lokasyon bekleniyordu, %d geldi", len(all))
	}

	active, _ := svc.List(true)
	if len(active) != 1 || active[0].Name != "Depo A" {
		t.Errorf("sadece aktif lokasyon dönmeliydi: %+v", active)
	}
}
