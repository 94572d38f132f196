// Package reconcile: sistem miktarı ile sayılan miktarı karşılaştıran
// saf motor. Store'a veya başka bir pakete bağımlılığı yoktur.
package reconcile

import "sayim-backend/internal/models"

// Summary: bir katalog kesiti için toplam sayım durumu.
// Değişmezler: AuditedItems + PendingItems == TotalItems,
// Matched + Discrepancies == AuditedItems.
type Summary struct {
	TotalItems    int `json:"totalItems"`
	AuditedItems  int `json:"auditedItems"`
	PendingItems  int `json:"pendingItems"`
	Matched       int `json:"matched"`
	Discrepancies int `json:"discrepancies"`
}

// ComputeStatus: tam eşitlik kontrolü. Tolerans bandı yok, yuvarlama
// yok; miktarlar tam sayı.
func ComputeStatus(systemQty, physicalQty int) models.AuditStatus {
	if physicalQty == systemQty {
		return models.StatusMatched
	}
	return models.StatusDiscrepancy
}

// Summarize: katalog kesitini sayım defterine karşı toplar. Defterde
// karşılığı olmayan katalog satırı pending sayılır. Aynı anahtar için
// birden fazla defter kaydı varsa ilk kayıt kazanır.
func Summarize(catalog, audited []models.InventoryItem) Summary {
	byKey := make(map[models.ItemKey]models.InventoryItem, len(audited))
	for _, item := range audited {
		key := item.Key()
		if _, ok := byKey[key]; !ok {
			byKey[key] = item
		}
	}

	sum := Summary{TotalItems: len(catalog)}
	for _, item := range catalog {
		rec, ok := byKey[item.Key()]
		if !ok {
			sum.PendingItems++
			continue
		}
		sum.AuditedItems++
		if rec.Status == models.StatusMatched {
			sum.Matched++
		} else {
			sum.Discrepancies++
		}
	}
	return sum
}

// SummarizeByLocation: her iki kesiti de lokasyon adına göre filtreleyip
// toplar.
func SummarizeByLocation(locationName string, catalog, audited []models.InventoryItem) Summary {
	return Summarize(
		filterByLocation(catalog, locationName),
		filterByLocation(audited, locationName),
	)
}

func filterByLocation(items []models.InventoryItem, locationName string) []models.InventoryItem {
	out := make([]models.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Location == locationName {
			out = append(out, item)
		}
	}
	return out
}
