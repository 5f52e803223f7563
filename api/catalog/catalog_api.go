package catalog

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
	"mobilia.GO/core/cache"
	catalogEntity "mobilia.GO/model/entity/catalog"
	catalogRepo "mobilia.GO/model/repository/catalog"
	catalogService "mobilia.GO/service/catalog"
	searchService "mobilia.GO/service/search"
)

const listCacheTTL = 300 // seconds

func init() {
	api.RegisterModule(RegisterCatalogRoutes)
}

func RegisterCatalogRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/products")
	repo := catalogRepo.GetCatalogRepository(db)

	// GET /api/products?category=&page_size=&current_page=
	g.GET("", func(c echo.Context) error {
		category := c.QueryParam("category")
		pageSize := intParam(c, "page_size", 20)
		currentPage := intParam(c, "current_page", 1)

		cacheKey := fmt.Sprintf("catalog:list:%s:%d:%d", category, pageSize, currentPage)
		if body, ok := cachedResponse(cacheKey); ok {
			return c.JSONBlob(http.StatusOK, body)
		}

		products, err := listProducts(repo, category)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		total := len(products)
		page := paginate(products, pageSize, currentPage)
		payload := echo.Map{
			"items":        page,
			"total_count":  total,
			"page_size":    pageSize,
			"current_page": currentPage,
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		storeResponse(cacheKey, body)
		return c.JSONBlob(http.StatusOK, body)
	})

	// GET /api/products/search?q=&category=&page_size=&current_page=
	g.GET("/search", func(c echo.Context) error {
		query := c.QueryParam("q")
		if query == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "q parameter is required"})
		}
		pageSize := intParam(c, "page_size", 20)
		currentPage := intParam(c, "current_page", 1)

		res, err := searchService.GetService().Search(c.Request().Context(), query, pageSize, currentPage, c.QueryParam("category"))
		if err != nil {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
		}
		entities, err := repo.FindByIDs(res.IDs)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"items":        catalogService.ViewProducts(entities),
			"total_count":  res.Total,
			"page_size":    pageSize,
			"current_page": currentPage,
		})
	})

	// GET /api/products/:id
	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid product id"})
		}

		cacheKey := fmt.Sprintf("catalog:product:%d", id)
		if body, ok := cachedResponse(cacheKey); ok {
			return c.JSONBlob(http.StatusOK, body)
		}

		entity, err := repo.FindByID(uint(id))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
		}
		body, err := json.Marshal(catalogService.ViewProduct(entity))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		storeResponse(cacheKey, body)
		return c.JSONBlob(http.StatusOK, body)
	})
}

func listProducts(repo *catalogRepo.CatalogRepository, category string) ([]catalogService.Product, error) {
	var (
		entities []catalogEntity.Product
		err      error
	)
	if category != "" {
		entities, err = repo.FindByCategory(category)
	} else {
		entities, err = repo.FindAll()
	}
	if err != nil {
		return nil, err
	}
	return catalogService.ViewProducts(entities), nil
}

func paginate(products []catalogService.Product, pageSize, currentPage int) []catalogService.Product {
	if pageSize <= 0 {
		pageSize = 20
	}
	if currentPage <= 0 {
		currentPage = 1
	}
	start := (currentPage - 1) * pageSize
	if start >= len(products) {
		return []catalogService.Product{}
	}
	end := start + pageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

func intParam(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// cachedResponse checks Redis first, then the in-process cache.
func cachedResponse(key string) ([]byte, bool) {
	if config.RedisClient != nil {
		if body, err := config.RedisClient.Get(config.RedisCtx(), key).Bytes(); err == nil {
			return body, true
		}
	}
	if v, ok := cache.GetInstance().Get(key); ok {
		if body, ok := v.([]byte); ok {
			return body, true
		}
	}
	return nil, false
}

// storeResponse writes to both layers; Redis failures are ignored.
func storeResponse(key string, body []byte) {
	if config.RedisClient != nil {
		config.RedisClient.Set(config.RedisCtx(), key, body, time.Duration(listCacheTTL)*time.Second)
	}
	cache.GetInstance().Set(key, body, listCacheTTL, []string{catalogService.CacheTag})
}
