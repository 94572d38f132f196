package importer

import (
	"errors"
	"testing"
)

func TestParseBasic(t *testing.T) {
	csv := "id,sku,name,category,location,systemQuantity\n" +
		"1001,ITEM1001,Laptop,Elektronik,Depo A,25\n" +
		"1002,ITEM1002,Sandalye,Mobilya,Depo B,15\n"

	items, err := ParseString(csv)
	if err != nil {
		t.Fatalf("ParseString hata döndü: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("2 kayıt bekleniyordu, %d geldi", len(items))
	}
	if items[0].ItemID != "1001" || items[0].SKU != "ITEM1001" || items[0].SystemQuantity != 25 {
		t.Errorf("ilk kayıt yanlış çözümlendi: %+v", items[0])
	}
	if items[1].Location != "Depo B" {
		t.Errorf("lokasyon yanlış: %q", items[1].Location)
	}
}

func TestParseHeaderAliases(t *testing.T) {
	csv := "ITEM_ID,Barcode,Product_Name,system_quantity,physical_quantity\n" +
		"2001,BC2001,Klavye,50,48\n"

	items, err := ParseString(csv)
	if err != nil {
		t.Fatalf("ParseString hata döndü: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("1 kayıt bekleniyordu, %d geldi", len(items))
	}
	item := items[0]
	if item.ItemID != "2001" || item.SKU != "BC2001" || item.Name != "Klavye" {
		t.Errorf("takma adlı kolonlar çözümlenemedi: %+v", item)
	}
	if item.SystemQuantity != 50 || item.PhysicalQuantity != 48 {
		t.Errorf("miktar kolonları yanlış: %+v", item)
	}
}

func TestParseQuotedComma(t *testing.T) {
	csv := "sku,name,location\n" +
		`ITEM1,"Monitör, 27 inç",Depo A` + "\n"

	items, err := ParseString(csv)
	if err != nil {
		t.Fatalf("ParseString hata döndü: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("1 kayıt bekleniyordu, %d geldi", len(items))
	}
	if items[0].Name != "Monitör, 27 inç" {
		t.Errorf("tırnaklı alan yanlış: %q", items[0].Name)
	}
}

func TestParseRowsWithoutSKUDropped(t *testing.T) {
	csv := "id,sku,name\n" +
		"1001,ITEM1001,Laptop\n" +
		",,İsimsiz\n" + // ne sku ne id: atlanmalı
		"1003,,Klavye\n" // sku yok ama id var: id'ye düşer

	items, err := ParseString(csv)
	if err != nil {
		t.Fatalf("ParseString hata döndü: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("2 kayıt bekleniyordu, %d geldi", len(items))
	}
	if items[1].SKU != "1003" {
		t.Errorf("sku, id'ye düşmeliydi: %+v", items[1])
	}
}

func TestParseHeaderOnly(t *testing.T) {
	items, err := ParseString("id,sku,name,location\n")
	if err != nil {
		t.Fatalf("başlık-tek dosya hata döndürmemeli: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("sıfır kayıt bekleniyordu, %d geldi", len(items))
	}
}

func TestParseEmpty(t *testing.T) {
	items, err := ParseString("")
	if err != nil {
		t.Fatalf("boş veri hata döndürmemeli: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("sıfır kayıt bekleniyordu, %d geldi", len(items))
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := ParseString("sku,name\n\"kapanmamış,alan\n")
	if err == nil {
		t.Fatal("bozuk CSV için hata bekleniyordu")
	}
	if !errors.Is(err, ErrBadImport) {
		t.Errorf("ErrBadImport bekleniyordu, %v geldi", err)
	}
}

func TestParseQuantityTolerance(t *testing.T) {
	csv := "sku,quantity\nA,12.0\nB,abc\nC,-5\n"

	items, err := ParseString(csv)
	if err != nil {
		t.Fatalf("ParseString hata döndü: %v", err)
	}
	if items[0].SystemQuantity != 12 {
		t.Errorf("ondalık miktar 12'ye inmeliydi, %d geldi", items[0].SystemQuantity)
	}
	if items[1].SystemQuantity != 0 {
		t.Errorf("çözülemeyen miktar 0 olmalıydı, %d geldi", items[1].SystemQuantity)
	}
	if items[2].SystemQuantity != 0 {
		t.Errorf("negatif miktar 0 olmalıydı, %d geldi", items[2].SystemQuantity)
	}
}
