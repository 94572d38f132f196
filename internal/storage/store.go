package storage

import "sayim-backend/internal/models"

// Store: Çekirdeğin tek persistence sözleşmesi. Her tablo için get/set,
// sayım kaydı için tek satırlık upsert, artı toplu envanter sıfırlama.
// Arkada Postgres, gömülü Badger ya da bellek içi store olabilir;
// servisler sadece bu arayüze bağımlıdır.
type Store interface {
	ItemMaster() ([]models.InventoryItem, error)
	SetItemMaster(items []models.InventoryItem) error

	ClosingStock() ([]models.InventoryItem, error)
	SetClosingStock(items []models.InventoryItem) error

	AuditedItems() ([]models.InventoryItem, error)
	SetAuditedItems(items []models.InventoryItem) error
	// UpsertAuditedItem: (ItemID, Location) çifti başına tek kayıt;
	// varsa üzerine yazar, yoksa ekler.
	UpsertAuditedItem(item models.InventoryItem) error

	Locations() ([]models.Location, error)
	SetLocations(locations []models.Location) error

	Users() ([]models.User, error)
	SetUsers(users []models.User) error

	Questions() ([]models.Question, error)
	SetQuestions(questions []models.Question) error

	QuestionnaireAnswers() ([]models.QuestionnaireAnswer, error)
	SetQuestionnaireAnswers(answers []models.QuestionnaireAnswer) error

	AppendActivity(entry models.ActivityLog) error
	RecentActivity(limit int) ([]models.ActivityLog, error)

	// ClearInventoryData: item master + kapanış stoğu + sayım defteri +
	// anket cevaplarını tek adımda boşaltır. Lokasyonlar, kullanıcılar
	// ve soru tanımları korunur. Çağırana yarım silinmiş ara durum
	// görünmemeli.
	ClearInventoryData() error

	Close() error
}
