// Package report: sayım sonuçlarının dışa aktarımı. Mutabakat tablosu
// ve fark listesi CSV olarak üretilir, panel özeti JSON döner.
package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"sayim-backend/internal/audit"
	"sayim-backend/internal/inventory"
	"sayim-backend/internal/models"
)

type Service struct {
	catalog *inventory.Service
	audits  *audit.Service
}

func NewService(catalog *inventory.Service, audits *audit.Service) *Service {
	return &Service{catalog: catalog, audits: audits}
}

var reconciliationHeader = []string{
	"itemId", "sku", "name", "category", "location",
	"systemQuantity", "physicalQuantity", "difference", "status", "lastAudited", "countedBy",
}

// ReconciliationCSV: katalogdaki her satır için sayım durumunu içeren
// tam mutabakat dökümü. Sayılmamış satırlar pending olarak yazılır.
func (s *Service) ReconciliationCSV(locationName string) ([]byte, error) {
	rows, err := s.rows(locationName)
	if err != nil {
		return nil, err
	}
	return writeCSV(rows, func(r reportRow) bool { return true })
}

// DiscrepancyCSV: sadece farklı çıkan satırlar.
func (s *Service) DiscrepancyCSV(locationName string) ([]byte, error) {
	rows, err := s.rows(locationName)
	if err != nil {
		return nil, err
	}
	return writeCSV(rows, func(r reportRow) bool {
		return r.status == models.StatusDiscrepancy
	})
}

type reportRow struct {
	item        models.InventoryItem
	physical    int
	status      models.AuditStatus
	lastAudited *time.Time
	countedBy   string
}

func (s *Service) rows(locationName string) ([]reportRow, error) {
	catalog, err := s.catalog.Items()
	if err != nil {
		return nil, err
	}
	audited, err := s.audits.Items()
	if err != nil {
		return nil, err
	}

	byKey := make(map[models.ItemKey]models.InventoryItem, len(audited))
	for _, rec := range audited {
		if _, ok := byKey[rec.Key()]; !ok {
			byKey[rec.Key()] = rec
		}
	}

	rows := make([]reportRow, 0, len(catalog))
	for _, item := range catalog {
		if locationName != "" && !strings.EqualFold(item.Location, locationName) {
			continue
		}
		row := reportRow{item: item, status: models.StatusPending}
		if rec, ok := byKey[item.Key()]; ok {
			row.physical = rec.PhysicalQuantity
			row.status = rec.Status
			row.lastAudited = rec.LastAudited
			row.countedBy = rec.CountedBy
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func writeCSV(rows []reportRow, include func(reportRow) bool) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(reconciliationHeader); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if !include(r) {
			continue
		}
		lastAudited := ""
		if r.lastAudited != nil {
			lastAudited = r.lastAudited.Format(time.RFC3339)
		}
		record := []string{
			r.item.ItemID,
			r.item.SKU,
			r.item.Name,
			r.item.Category,
			r.item.Location,
			strconv.Itoa(r.item.SystemQuantity),
			strconv.Itoa(r.physical),
			strconv.Itoa(r.physical - r.item.SystemQuantity),
			string(r.status),
			lastAudited,
			r.countedBy,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
