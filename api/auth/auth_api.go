package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"mobilia.GO/api"
	coreAuth "mobilia.GO/core/auth"
	customerEntity "mobilia.GO/model/entity/customer"
	customerRepo "mobilia.GO/model/repository/customer"
)

func init() {
	api.RegisterModule(RegisterAuthRoutes)
}

func RegisterAuthRoutes(apiGroup *echo.Group, db *gorm.DB) {
	g := apiGroup.Group("/auth")
	repo := customerRepo.NewCustomerRepository(db)

	// POST /api/auth/register
	g.POST("/register", func(c echo.Context) error {
		var body struct {
			Email     string  `json:"email"`
			Password  string  `json:"password"`
			Firstname *string `json:"firstname"`
			Lastname  *string `json:"lastname"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		body.Email = strings.ToLower(strings.TrimSpace(body.Email))
		if body.Email == "" || !strings.Contains(body.Email, "@") {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "valid email is required"})
		}
		if len(body.Password) < 8 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "password must be at least 8 characters"})
		}
		if existing, _ := repo.FindByEmail(body.Email); existing != nil {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already registered"})
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		cust := customerEntity.Customer{
			Email:        body.Email,
			PasswordHash: string(hash),
			Firstname:    body.Firstname,
			Lastname:     body.Lastname,
		}
		if err := repo.Create(&cust); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{"customer_id": cust.CustomerID, "email": cust.Email})
	})

	// POST /api/auth/login
	g.POST("/login", func(c echo.Context) error {
		var body struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		body.Email = strings.ToLower(strings.TrimSpace(body.Email))

		cust, err := repo.FindByEmail(body.Email)
		if err != nil || cust.IsActive == 0 {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		if bcrypt.CompareHashAndPassword([]byte(cust.PasswordHash), []byte(body.Password)) != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		token, err := coreAuth.IssueSession(repo, cust.CustomerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"token": token, "customer_id": cust.CustomerID})
	})

	// POST /api/auth/logout – revokes the current session's jti
	g.POST("/logout", func(c echo.Context) error {
		jti, ok := c.Get(coreAuth.CtxSessionJTI).(string)
		if !ok || jti == "" {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "authentication required"})
		}
		if err := coreAuth.RevokeSession(repo, jti); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"logged_out": true})
	})
}
