package media

import (
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mobilia.GO/api"
	"mobilia.GO/config"
	mediaService "mobilia.GO/service/media"
)

func init() {
	api.RegisterRoute(RegisterMediaRoutes)
}

func RegisterMediaRoutes(e *echo.Echo, db *gorm.DB) {
	// GET /media/catalog/:file?size=thumb|medium|large
	// Without size the original file is served as-is.
	e.GET("/media/catalog/:file", func(c echo.Context) error {
		config.LoadAppConfig()
		file := c.Param("file")
		size := c.QueryParam("size")

		if size == "" {
			path := config.AppConfig.MediaDir + "/" + file
			if _, err := os.Stat(path); err != nil {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
			}
			return c.File(path)
		}
		if !mediaService.ValidPreset(size) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown size preset"})
		}

		body, err := mediaService.Derivative(config.AppConfig.MediaDir, file, size)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "media not found"})
		}
		c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		return c.Blob(http.StatusOK, "image/webp", body)
	})
}
