// Package importer: item master ve kapanış stoğu yüklemelerinde
// kullanılan virgülle ayrılmış metin formatını çözümler.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sayim-backend/internal/models"
)

// ErrBadImport: bozuk içe aktarma verisi. Kurtarılabilir; kullanıcıya
// gösterilir, sistem durumu değişmez.
var ErrBadImport = errors.New("içe aktarma verisi çözümlenemedi")

// Kolon takma adları (büyük/küçük harf duyarsız)
var columnAliases = map[string]string{
	"id":                "itemId",
	"itemid":            "itemId",
	"item_id":           "itemId",
	"identifier":        "itemId",
	"sku":               "sku",
	"barcode":           "sku",
	"name":              "name",
	"item_name":         "name",
	"product_name":      "name",
	"category":          "category",
	"location":          "location",
	"systemquantity":    "systemQuantity",
	"system_quantity":   "systemQuantity",
	"quantity":          "systemQuantity",
	"physicalquantity":  "physicalQuantity",
	"physical_quantity": "physicalQuantity",
}

// Parse: başlık satırlı CSV'yi envanter kayıtlarına çevirir.
// Tırnaklı alanlar (virgül içeren) desteklenir. SKU'su çözülemeyen
// satırlar sessizce atlanır. Sadece başlık içeren ya da boş veri sıfır
// kayıt döndürür, hata değil.
func Parse(r io.Reader) ([]models.InventoryItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImport, err)
	}
	if len(rows) == 0 {
		return []models.InventoryItem{}, nil
	}

	// Başlık satırını kanonik kolon adlarına map'le
	columns := make(map[int]string, len(rows[0]))
	for i, header := range rows[0] {
		key := strings.ToLower(strings.TrimSpace(header))
		if canonical, ok := columnAliases[key]; ok {
			columns[i] = canonical
		}
	}

	items := make([]models.InventoryItem, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		var item models.InventoryItem
		for i, value := range row {
			value = strings.TrimSpace(value)
			switch columns[i] {
			case "itemId":
				item.ItemID = value
			case "sku":
				item.SKU = value
			case "name":
				item.Name = value
			case "category":
				item.Category = value
			case "location":
				item.Location = value
			case "systemQuantity":
				item.SystemQuantity = parseQuantity(value)
			case "physicalQuantity":
				item.PhysicalQuantity = parseQuantity(value)
			}
		}

		// SKU çözülemezse ItemID'ye düş; o da yoksa satırı at
		if item.SKU == "" {
			item.SKU = item.ItemID
		}
		if item.SKU == "" {
			continue
		}
		if item.ItemID == "" {
			item.ItemID = item.SKU
		}

		items = append(items, item)
	}

	return items, nil
}

func ParseString(data string) ([]models.InventoryItem, error) {
	return Parse(strings.NewReader(data))
}

func isEmptyRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// parseQuantity: miktarlar tam sayı; "12.0" gibi ondalık yazılmış
// değerler tam sayıya indirgenir, çözülemeyen değer 0 olur. Negatif
// miktar kabul edilmez.
func parseQuantity(value string) int {
	qty, err := strconv.Atoi(value)
	if err != nil {
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil {
			return 0
		}
		qty = int(f)
	}
	if qty < 0 {
		return 0
	}
	return qty
}
