package handler

import (
    "context"              // provides context with cancellation for DB calls
    "database/sql"         // SQL database interactions
    "net/http"             // HTTP status codes and primitives
    "strings"              // string manipulation utilities
    "time"                 // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/hotel-room-booking/internal/config"     // app configuration
    "github.com/iliyamo/hotel-room-booking/internal/repository" // DB repositories
    "github.com/iliyamo/hotel-room-booking/internal/utils"      // helper functions (hashing, token issuing)
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg       config.Config
	Customers *repository.CustomerRepo
	Admins    *repository.AdminRepo
}

func NewAuthHandler(cfg config.Config, cu *repository.CustomerRepo, ad *repository.AdminRepo) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Customers: cu, Admins: ad}
}

// ----- DTOs -----

type registerReq struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type userPart struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
	Admin     bool   `json:"admin"`
}
type authResp struct {
	User   userPart  `json:"user"`
	Access tokenPart `json:"access"`
}

// Register: create a customer account. Unlike login, registration never
// grants the admin capability; that only happens through the admin console.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "first_name/last_name/email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Customers.Create(ctx, req.FirstName, req.LastName, req.Email, req.Password, req.Phone, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrEmailExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create customer failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"user": userPart{ID: uid, FirstName: req.FirstName, Email: req.Email, Admin: false},
	})
}

// Login: verify credentials and return a session token. The admin
// capability is resolved here by checking the SystemAdmin table, so a
// freshly granted admin picks up the capability at the next login.
// Unknown email and wrong password both answer "invalid credentials".
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Customers.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.Password, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	admin, err := h.Admins.IsAdmin(ctx, u.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.MemberID, u.FirstName, admin, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		User:   userPart{ID: u.MemberID, FirstName: u.FirstName, Email: u.Email, Admin: admin},
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Logout: sessions are stateless bearer tokens, so there is nothing to
// revoke server-side. Always answers 204 so clients can clear state
// unconditionally.
func (h *AuthHandler) Logout(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// Me: simple protected endpoint echoing the caller's identity claims.
func (h *AuthHandler) Me(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"user_id": c.Get("user_id"),
		"name":    c.Get("name"),
		"admin":   c.Get("admin"),
	})
}
