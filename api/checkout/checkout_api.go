package checkout

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"mobilia.GO/api"
	"mobilia.GO/config"
	"mobilia.GO/core/auth"
	salesRepo "mobilia.GO/model/repository/sales"
	checkoutService "mobilia.GO/service/checkout"
)

func init() {
	api.RegisterModule(RegisterCheckoutRoutes)
}

func RegisterCheckoutRoutes(apiGroup *echo.Group, db *gorm.DB) {
	orders := salesRepo.NewOrderRepository(db)

	// POST /api/checkout – place an order from the persisted cart
	apiGroup.POST("/checkout", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		config.LoadAppConfig()
		order, err := checkoutService.PlaceOrder(db, customerID, config.AppConfig.Currency)
		if err != nil {
			if errors.Is(err, checkoutService.ErrEmptyCart) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "cart is empty"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"increment_id": order.IncrementID,
			"grand_total":  strconv.FormatFloat(order.GrandTotal, 'f', 2, 64),
			"currency":     order.Currency,
			"status":       order.Status,
		})
	})

	// GET /api/orders – order history for the customer
	apiGroup.GET("/orders", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		list, err := orders.FindByCustomer(customerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": list, "total_count": len(list)})
	})

	// GET /api/orders/:increment_id
	apiGroup.GET("/orders/:increment_id", func(c echo.Context) error {
		customerID, ok := auth.CustomerID(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		order, err := orders.FindByIncrementID(c.Param("increment_id"))
		if err != nil || order.CustomerID != customerID {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		return c.JSON(http.StatusOK, order)
	})
}
