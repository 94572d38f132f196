package memstore

import (
	"testing"

	"sayim-backend/internal/models"
)

func TestUpsertAuditedItemInsertsThenUpdates(t *testing.T) {
	s := New()

	rec := models.InventoryItem{ItemID: "A-1", SKU: "111", Location: "Depo", PhysicalQuantity: 3}
	if err := s.UpsertAuditedItem(rec); err != nil {
		t.Fatal(err)
	}

	rec.PhysicalQuantity = 7
	if err := s.UpsertAuditedItem(rec); err != nil {
		t.Fatal(err)
	}

	audited, err := s.AuditedItems()
	if err != nil {
		t.Fatal(err)
	}
	if len(audited) != 1 {
		t.Fatalf("1 kayıt bekleniyordu, %d bulundu", len(audited))
	}
	if audited[0].PhysicalQuantity != 7 {
		t.Errorf("PhysicalQuantity = %d, beklenen 7", audited[0].PhysicalQuantity)
	}
}

func TestUpsertAuditedItemSeparatesByLocation(t *testing.T) {
	s := New()

	if err := s.UpsertAuditedItem(models.InventoryItem{ItemID: "A-1", Location: "Depo", PhysicalQuantity: 2}); err != nil {
		t.Fatal(err)
	}
	if err := s.UpsertAuditedItem(models.InventoryItem{ItemID: "A-1", Location: "Mağaza", PhysicalQuantity: 5}); err != nil {
		t.Fatal(err)
	}

	audited, _ := s.AuditedItems()
	if len(audited) != 2 {
		t.Fatalf("Aynı ürünün farklı lokasyonları ayrı kayıt olmalı, %d bulundu", len(audited))
	}
}

func TestClearInventoryDataPreservesRegistries(t *testing.T) {
	s := New()

	_ = s.SetItemMaster([]models.InventoryItem{{ItemID: "A-1"}})
	_ = s.SetClosingStock([]models.InventoryItem{{ItemID: "A-1"}})
	_ = s.UpsertAuditedItem(models.InventoryItem{ItemID: "A-1", Location: "Depo"})
	_ = s.SetLocations([]models.Location{{ID: "loc-1", Name: "Depo"}})
	_ = s.SetUsers([]models.User{{ID: "u-1", Name: "Ayşe"}})
	_ = s.SetQuestions([]models.Question{{ID: "q-1", Text: "Raf düzeni uygun mu?"}})
	_ = s.SetQuestionnaireAnswers([]models.QuestionnaireAnswer{{QuestionID: "q-1", LocationID: "loc-1"}})

	if err := s.ClearInventoryData(); err != nil {
		t.Fatal(err)
	}

	master, _ := s.ItemMaster()
	closing, _ := s.ClosingStock()
	audited, _ := s.AuditedItems()
	answers, _ := s.QuestionnaireAnswers()
	if len(master)+len(closing)+len(audited)+len(answers) != 0 {
		t.Error("Sayım verileri temizlenmeliydi")
	}

	locations, _ := s.Locations()
	users, _ := s.Users()
	questions, _ := s.Questions()
	if len(locations) != 1 || len(users) != 1 || len(questions) != 1 {
		t.Error("Lokasyon, kullanıcı ve soru kayıtları korunmalıydı")
	}
}

func TestRecentActivityNewestFirst(t *testing.T) {
	s := New()

	_ = s.AppendActivity(models.ActivityLog{Action: models.ActivityImport})
	_ = s.AppendActivity(models.ActivityLog{Action: models.ActivityScan})
	_ = s.AppendActivity(models.ActivityLog{Action: models.ActivityCount})

	entries, err := s.RecentActivity(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("2 kayıt bekleniyordu, %d bulundu", len(entries))
	}
	if entries[0].Action != models.ActivityCount || entries[1].Action != models.ActivityScan {
		t.Error("Kayıtlar en yeniden eskiye sıralanmalı")
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := New()
	_ = s.SetItemMaster([]models.InventoryItem{{ItemID: "A-1", Name: "Su"}})

	items, _ := s.ItemMaster()
	items[0].Name = "Değişti"

	again, _ := s.ItemMaster()
	if again[0].Name != "Su" {
		t.Error("Okuyucu kendi kopyasını değiştirince store etkilenmemeli")
	}
}
