package graphql

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogEntity "mobilia.GO/model/entity/catalog"
)

func graphqlTestDB(t *testing.T) *gorm.DB {
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
	p := catalogEntity.Product{
		SKU: "BANCO-NORD", Name: "Banco Nord", Category: "bancos",
		BasePrice: 149, BaseImage: "nord.jpg", IsActive: 1,
		Colors: []catalogEntity.ColorOption{{Name: "Natural", Hex: "#e0c9a6"}},
		Variants: []catalogEntity.Variant{
			{Price: 149, Stock: 3, Attributes: datatypes.JSONMap{"Acabado": "Natural", "Medida": "90cm"}},
		},
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	return db
}

func execQuery(t *testing.T, e *echo.Echo, query string) map[string]interface{} {
	body, _ := json.Marshal(map[string]interface{}{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("graphql status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data   map[string]interface{}   `json:"data"`
		Errors []map[string]interface{} `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Errors) > 0 {
		t.Fatalf("graphql errors: %v", resp.Errors)
	}
	return resp.Data
}

func TestGraphQL_Products(t *testing.T) {
	e := echo.New()
	RegisterGraphQLRoutes(e, graphqlTestDB(t))

	data := execQuery(t, e, `query { products { items { id sku name price colors { name hex } variants { id price stock color size } } totalCount } }`)
	products := data["products"].(map[string]interface{})
	if products["totalCount"] != float64(1) {
		t.Errorf("totalCount = %v, want 1", products["totalCount"])
	}
	items := products["items"].([]interface{})
	item := items[0].(map[string]interface{})
	if item["sku"] != "BANCO-NORD" {
		t.Errorf("sku = %v", item["sku"])
	}
	variants := item["variants"].([]interface{})
	v := variants[0].(map[string]interface{})
	// synonym keys resolve: Acabado -> color, Medida -> size
	if v["color"] != "Natural" || v["size"] != "90cm" {
		t.Errorf("variant color/size = %v/%v, want Natural/90cm", v["color"], v["size"])
	}
}

func TestGraphQL_ProductByID(t *testing.T) {
	db := graphqlTestDB(t)
	e := echo.New()
	RegisterGraphQLRoutes(e, db)

	var seeded catalogEntity.Product
	db.First(&seeded)

	data := execQuery(t, e, `query { product(id: "`+jsonNumber(seeded.EntityID)+`") { name category } }`)
	product, ok := data["product"].(map[string]interface{})
	if !ok {
		t.Fatal("product is null")
	}
	if product["name"] != "Banco Nord" || product["category"] != "bancos" {
		t.Errorf("product = %v", product)
	}

	data = execQuery(t, e, `query { product(id: "9999") { name } }`)
	if data["product"] != nil {
		t.Errorf("missing product = %v, want null", data["product"])
	}
}

func jsonNumber(id uint) string {
	b, _ := json.Marshal(id)
	return string(b)
}
