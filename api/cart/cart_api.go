package cart

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mobilia.GO/api"
	"mobilia.GO/config"
	"mobilia.GO/core/auth"
	cartEntity "mobilia.GO/model/entity/cart"
	cartRepo "mobilia.GO/model/repository/cart"
	catalogRepo "mobilia.GO/model/repository/catalog"
	catalogService "mobilia.GO/service/catalog"
)

func init() {
	api.RegisterModule(RegisterCartRoutes)
}

// serverItem is the wire shape of a persisted cart line. Price snapshots are
// serialized as strings; option labels keep their storefront names.
type serverItem struct {
	ID                  uint              `json:"id"`
	VariantID           *uint             `json:"variant_id"`
	FixedProductName    string            `json:"fixed_product_name"`
	UnitPriceSnapshot   string            `json:"unit_price_snapshot"`
	Quantity            int               `json:"quantity"`
	FixedImageSnapshot  string            `json:"fixed_image_snapshot"`
	FixedVariantOptions map[string]string `json:"fixed_variant_options"`
}

func toServerItem(it cartEntity.CartItem) serverItem {
	opts := map[string]string{}
	if it.OptionColor != "" {
		opts["Color"] = it.OptionColor
	}
	if it.OptionSize != "" {
		opts["Talla"] = it.OptionSize
	}
	return serverItem{
		ID:                  it.ItemID,
		VariantID:           it.VariantID,
		FixedProductName:    it.FixedProductName,
		UnitPriceSnapshot:   strconv.FormatFloat(it.UnitPriceSnapshot, 'f', 2, 64),
		Quantity:            it.Quantity,
		FixedImageSnapshot:  it.FixedImageSnapshot,
		FixedVariantOptions: opts,
	}
}

const snapshotCacheTTL = 60 * time.Second

// Snapshot caching is Redis-only; without Redis every GET hits the DB.
func snapshotCacheKey(customerID uint) string {
	return fmt.Sprintf("cart:snapshot:%d", customerID)
}

func cachedSnapshot(customerID uint) ([]byte, bool) {
	if config.RedisClient == nil {
		return nil, false
	}
	body, err := config.RedisClient.Get(config.RedisCtx(), snapshotCacheKey(customerID)).Bytes()
	return body, err == nil
}

func storeSnapshot(customerID uint, body []byte) {
	if config.RedisClient != nil {
		config.RedisClient.Set(config.RedisCtx(), snapshotCacheKey(customerID), body, snapshotCacheTTL)
	}
}

func invalidateSnapshot(customerID uint) {
	if config.RedisClient != nil {
		config.RedisClient.Del(config.RedisCtx(), snapshotCacheKey(customerID))
	}
}

func RegisterCartRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/cart")
	repo := cartRepo.GetCartRepository(db)
	products := catalogRepo.GetCatalogRepository(db)

	// GET /api/cart – full snapshot of the customer's persisted cart
	g.GET("", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		if body, ok := cachedSnapshot(customerID); ok {
			return c.JSONBlob(http.StatusOK, body)
		}
		items, err := repo.FindByCustomer(customerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		out := make([]serverItem, 0, len(items))
		var total float64
		for _, it := range items {
			out = append(out, toServerItem(it))
			total += it.UnitPriceSnapshot * float64(it.Quantity)
		}
		body, err := json.Marshal(echo.Map{
			"items":       out,
			"grand_total": strconv.FormatFloat(total, 'f', 2, 64),
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		storeSnapshot(customerID, body)
		return c.JSONBlob(http.StatusOK, body)
	})

	// POST /api/cart/items – add a variant line (merges on merge_key)
	g.POST("/items", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		var body struct {
			VariantID uint `json:"variant_id"`
			Quantity  int  `json:"quantity"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.VariantID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "variant_id is required"})
		}
		if body.Quantity <= 0 {
			body.Quantity = 1
		}

		entity, parent, err := products.FindVariantByID(body.VariantID)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "variant not found"})
		}
		variant := catalogService.ViewVariant(entity)
		product := catalogService.ViewProduct(parent)

		image := product.Image
		if variant.Image != "" {
			image = variant.Image
		}
		variantID := variant.ID
		colorName, _ := catalogService.ResolveColorAttribute(&variant)
		sizeLabel, _ := catalogService.ResolveSizeAttribute(&variant)
		item := cartEntity.CartItem{
			CustomerID:         customerID,
			VariantID:          &variantID,
			MergeKey:           strconv.FormatUint(uint64(variant.ID), 10),
			FixedProductName:   product.Name,
			UnitPriceSnapshot:  catalogService.DisplayPrice(&product, &variant),
			Quantity:           body.Quantity,
			FixedImageSnapshot: image,
			OptionColor:        colorName,
			OptionSize:         sizeLabel,
		}
		saved, err := repo.AddItem(item)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateSnapshot(customerID)
		return c.JSON(http.StatusOK, toServerItem(*saved))
	})

	// PATCH /api/cart/items/:id – adjust quantity by delta, drop at zero
	g.PATCH("/items/:id", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}
		var body struct {
			Delta int `json:"delta"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		updated, err := repo.UpdateQuantity(customerID, uint(itemID), body.Delta)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateSnapshot(customerID)
		if updated == nil {
			return c.JSON(http.StatusOK, echo.Map{"removed": true})
		}
		return c.JSON(http.StatusOK, toServerItem(*updated))
	})

	// DELETE /api/cart/items/:id
	g.DELETE("/items/:id", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		itemID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid item id"})
		}
		if err := repo.Remove(customerID, uint(itemID)); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateSnapshot(customerID)
		return c.JSON(http.StatusOK, echo.Map{"removed": true})
	})

	// DELETE /api/cart – clear everything
	g.DELETE("", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		if err := repo.Clear(customerID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		invalidateSnapshot(customerID)
		return c.JSON(http.StatusOK, echo.Map{"cleared": true})
	})
}
