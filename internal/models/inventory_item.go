package models

import "time"

type AuditStatus string

const (
	StatusPending     AuditStatus = "pending"
	StatusMatched     AuditStatus = "matched"
	StatusDiscrepancy AuditStatus = "discrepancy"
)

// ItemKey: Bir envanter kaydının bileşik anahtarı. Aynı ürün birden
// fazla lokasyonda bulunabilir, bu yüzden ItemID tek başına benzersiz
// değildir. Lokasyon her zaman isimle referanslanır, id ile değil.
type ItemKey struct {
	ItemID   string
	Location string
}

// InventoryItem: Hem ürün kataloğu (item master), hem kapanış stoğu,
// hem de sayım defteri aynı kayıt tipini kullanır. Sayım defterindeki
// kayıtlarda PhysicalQuantity, Status ve LastAudited dolu olur.
type InventoryItem struct {
	ID               uint        `gorm:"primaryKey" json:"-"`
	ItemID           string      `gorm:"size:50;index" json:"id"`
	SKU              string      `gorm:"size:50;index" json:"sku"`
	Name             string      `gorm:"size:150" json:"name"`
	Category         string      `gorm:"size:100" json:"category"`
	Location         string      `gorm:"size:100;index" json:"location"`
	SystemQuantity   int         `gorm:"not null;default:0" json:"systemQuantity"`
	PhysicalQuantity int         `gorm:"not null;default:0" json:"physicalQuantity"`
	Status           AuditStatus `gorm:"size:20" json:"status,omitempty"`
	LastAudited      *time.Time  `json:"lastAudited,omitempty"`
	CountedBy        string      `gorm:"size:100" json:"countedBy,omitempty"`
	CreatedAt        time.Time   `json:"-"`
	UpdatedAt        time.Time   `json:"-"`
}

func (i InventoryItem) Key() ItemKey {
	return ItemKey{ItemID: i.ItemID, Location: i.Location}
}
