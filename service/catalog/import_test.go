package catalog

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	catalogEntity "mobilia.GO/model/entity/catalog"
	catalogRepo "mobilia.GO/model/repository/catalog"
)

func importTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&catalogEntity.Product{},
		&catalogEntity.ProductImage{},
		&catalogEntity.ColorOption{},
		&catalogEntity.ProductSize{},
		&catalogEntity.Variant{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

const importFixture = `[
  {
    "sku": "LUND-01",
    "name": "Sillón Lund",
    "category": "sillones",
    "price": 499,
    "image": "lund-base.jpg",
    "images": ["lund-base.jpg", "lund-side.jpg"],
    "colors": [{"name": "Negro", "hex": "#111"}, {"name": "Roble", "hex": "#b5803c"}],
    "sizes": ["S", "M"],
    "variants": [
      {"sku": "LUND-01-NS", "price": 499, "stock": 2, "attributes": {"Color": "Negro", "Talla": "S"}},
      {"sku": "LUND-01-RM", "price": 549, "stock": 5, "attributes": {"Acabado": "Roble", "Size": "M"}}
    ]
  },
  {
    "sku": "JARRON-02",
    "name": "Jarrón Ume",
    "price": 25,
    "stock": 8
  }
]`

func TestImportCatalogJSON_CreatesAndMaps(t *testing.T) {
	db := importTestDB(t)

	res, err := ImportCatalogJSON(db, strings.NewReader(importFixture))
	if err != nil {
		t.Fatalf("ImportCatalogJSON: %v", err)
	}
	if res.Created != 2 || res.Updated != 0 || res.Skipped != 0 {
		t.Errorf("result: %+v, want 2 created", res)
	}

	repo := catalogRepo.GetCatalogRepository(db)
	entity, err := repo.FindBySKU("LUND-01")
	if err != nil {
		t.Fatalf("FindBySKU: %v", err)
	}
	p := ViewProduct(entity)
	if len(p.Variants) != 2 || len(p.Colors) != 2 || len(p.Sizes) != 2 {
		t.Fatalf("associations: %d variants %d colors %d sizes", len(p.Variants), len(p.Colors), len(p.Sizes))
	}

	// The imported catalog resolves end to end.
	v := FindVariant(&p, &ColorOption{Name: "roble"}, "m")
	if v == nil || v.SKU != "LUND-01-RM" {
		t.Errorf("resolution after import: got %v", v)
	}

	bare, err := repo.FindBySKU("JARRON-02")
	if err != nil {
		t.Fatalf("FindBySKU bare: %v", err)
	}
	if bare.Stock == nil || *bare.Stock != 8 {
		t.Errorf("product-level stock: %v, want 8", bare.Stock)
	}
}

func TestImportCatalogJSON_UpsertReplacesAssociations(t *testing.T) {
	db := importTestDB(t)
	if _, err := ImportCatalogJSON(db, strings.NewReader(importFixture)); err != nil {
		t.Fatalf("first import: %v", err)
	}

	second := `[{"sku": "LUND-01", "name": "Sillón Lund v2", "price": 450,
		"variants": [{"sku": "LUND-01-NS", "price": 450, "stock": 1, "attributes": {"Color": "Negro", "Talla": "S"}}]}]`
	res, err := ImportCatalogJSON(db, strings.NewReader(second))
	if err != nil {
		t.Fatalf("second import: %v", err)
	}
	if res.Updated != 1 || res.Created != 0 {
		t.Errorf("result: %+v, want 1 updated", res)
	}

	entity, err := catalogRepo.GetCatalogRepository(db).FindBySKU("LUND-01")
	if err != nil {
		t.Fatalf("FindBySKU: %v", err)
	}
	if entity.Name != "Sillón Lund v2" || entity.BasePrice != 450 {
		t.Errorf("base fields not updated: %+v", entity)
	}
	if len(entity.Variants) != 1 {
		t.Errorf("variants not replaced: got %d, want 1", len(entity.Variants))
	}
	if len(entity.Colors) != 0 || len(entity.Sizes) != 0 {
		t.Errorf("stale associations survived: %d colors %d sizes", len(entity.Colors), len(entity.Sizes))
	}
}

func TestImportCatalogJSON_WarningsAndSkips(t *testing.T) {
	db := importTestDB(t)

	payload := `[
	  {"name": "sin sku", "price": 10},
	  {"sku": "DUP-01", "name": "Dup", "price": 10, "variants": [
	    {"sku": "A", "attributes": {"Color": "Negro", "Talla": "M"}},
	    {"sku": "B", "attributes": {"color": "negro", "Size": "M"}}
	  ]}
	]`
	res, err := ImportCatalogJSON(db, strings.NewReader(payload))
	if err != nil {
		t.Fatalf("ImportCatalogJSON: %v", err)
	}
	if res.Skipped != 1 || res.Created != 1 {
		t.Errorf("result: %+v, want 1 skipped, 1 created", res)
	}

	foundDup := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "duplicates color+size") {
			foundDup = true
		}
	}
	if !foundDup {
		t.Errorf("no duplicate-variant warning in %v", res.Warnings)
	}
}

func TestImportCatalogJSON_MalformedFile(t *testing.T) {
	db := importTestDB(t)
	if _, err := ImportCatalogJSON(db, strings.NewReader("{not json")); err == nil {
		t.Error("malformed file accepted")
	}
}
