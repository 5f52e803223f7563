package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mobilia.GO/core/cache"
	catalogEntity "mobilia.GO/model/entity/catalog"
	catalogService "mobilia.GO/service/catalog"
)

func catalogTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&catalogEntity.Product{}, &catalogEntity.ProductImage{},
		&catalogEntity.ColorOption{}, &catalogEntity.ProductSize{},
		&catalogEntity.Variant{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func catalogTestServer(t *testing.T, db *gorm.DB) *echo.Echo {
	// response cache is process-global; start each test clean
	cache.GetInstance().DeleteByTag(catalogService.CacheTag)
	e := echo.New()
	RegisterCatalogRoutes(e.Group("/api"), db)
	return e
}

func seedCatalog(t *testing.T, db *gorm.DB) []catalogEntity.Product {
	products := []catalogEntity.Product{
		{
			SKU: "MESA-RIGA", Name: "Mesa Riga", Category: "mesas",
			BasePrice: 349, BaseImage: "riga.jpg", IsActive: 1,
			Colors: []catalogEntity.ColorOption{{Name: "Roble", Hex: "#b58a54", Position: 0}},
			Sizes:  []catalogEntity.ProductSize{{Label: "120cm", Position: 0}, {Label: "160cm", Position: 1}},
			Variants: []catalogEntity.Variant{
				{Price: 349, Stock: 5, Attributes: datatypes.JSONMap{"Color": "Roble", "Talla": "120cm"}},
				{Price: 399, Stock: 2, Attributes: datatypes.JSONMap{"Color": "Roble", "Talla": "160cm"}},
			},
		},
		{
			SKU: "SILLA-OLMO", Name: "Silla Olmo", Category: "sillas",
			BasePrice: 89, BaseImage: "olmo.jpg", IsActive: 1,
		},
		{
			SKU: "ARCHIVADA", Name: "Retirada", Category: "mesas",
			BasePrice: 10, IsActive: 0,
		},
	}
	for i := range products {
		if err := db.Create(&products[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return products
}

func TestCatalogAPI_List(t *testing.T) {
	db := catalogTestDB(t)
	seedCatalog(t, db)
	e := catalogTestServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Items      []catalogService.Product `json:"items"`
		TotalCount int                      `json:"total_count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// inactive products are excluded
	if resp.TotalCount != 2 {
		t.Errorf("total_count = %d, want 2", resp.TotalCount)
	}
}

func TestCatalogAPI_List_CategoryFilter(t *testing.T) {
	db := catalogTestDB(t)
	seedCatalog(t, db)
	e := catalogTestServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=sillas", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	var resp struct {
		Items []catalogService.Product `json:"items"`
	}
	json.NewDecoder(rec.Body).Decode(&resp)
	if len(resp.Items) != 1 || resp.Items[0].SKU != "SILLA-OLMO" {
		t.Errorf("items = %+v, want only SILLA-OLMO", resp.Items)
	}
}

func TestCatalogAPI_Product(t *testing.T) {
	db := catalogTestDB(t)
	seeded := seedCatalog(t, db)
	e := catalogTestServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products/"+strconv.FormatUint(uint64(seeded[0].EntityID), 10), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var p catalogService.Product
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.Name != "Mesa Riga" {
		t.Errorf("name = %q", p.Name)
	}
	if len(p.Variants) != 2 || len(p.Colors) != 1 || len(p.Sizes) != 2 {
		t.Errorf("variants/colors/sizes = %d/%d/%d, want 2/1/2", len(p.Variants), len(p.Colors), len(p.Sizes))
	}
}

func TestCatalogAPI_Product_CachedSecondRead(t *testing.T) {
	db := catalogTestDB(t)
	seeded := seedCatalog(t, db)
	e := catalogTestServer(t, db)
	path := "/api/products/" + strconv.FormatUint(uint64(seeded[0].EntityID), 10)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	first := rec.Body.String()

	// delete the row; the cached body must still be served
	db.Delete(&catalogEntity.Product{}, seeded[0].EntityID)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK || rec.Body.String() != first {
		t.Errorf("second read not served from cache (status %d)", rec.Code)
	}
}

func TestCatalogAPI_Product_NotFound(t *testing.T) {
	db := catalogTestDB(t)
	e := catalogTestServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products/9999", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestCatalogAPI_Search_RequiresQuery(t *testing.T) {
	db := catalogTestDB(t)
	e := catalogTestServer(t, db)

	req := httptest.NewRequest(http.MethodGet, "/api/products/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
