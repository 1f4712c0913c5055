package handlers

import (
	"crypto/subtle"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/quochoi227/ai-english-app/internal/config"
	"github.com/quochoi227/ai-english-app/internal/models"
	"github.com/quochoi227/ai-english-app/utils"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60 // 7 days

// publicPaths never require the session cookie.
var publicPaths = []string{"/login", "/api/auth/login"}

// AccessGate runs before every route. Static assets, public paths, and any
// path with a file extension pass through; everything else needs the session
// cookie to match the configured secret. With no secret configured the gate
// is disabled entirely.
func (h *Handler) AccessGate(c *fiber.Ctx) error {
	path := c.Path()

	if strings.HasPrefix(path, "/static") || strings.Contains(path, ".") || isPublicPath(path) {
		return c.Next()
	}

	if !h.cfg.GateEnabled() {
		return c.Next()
	}

	cookie := c.Cookies(config.SessionCookieName)
	if subtle.ConstantTimeCompare([]byte(cookie), []byte(h.cfg.SessionSecret)) != 1 {
		return c.Redirect("/login?redirect="+url.QueryEscape(path), fiber.StatusFound)
	}

	return c.Next()
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if path == p {
			return true
		}
	}
	return false
}

// Login checks the submitted password and, on success, mints the session
// cookie. The cookie value is the shared secret itself, not a per-session
// token: the boundary is "knows the password".
func (h *Handler) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	if h.cfg.AppPassword == "" || h.cfg.SessionSecret == "" {
		config.Logger.Error("login rejected: APP_PASSWORD or SECRET_SIGNATURE is not configured")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Lỗi cấu hình server. Vui lòng liên hệ quản trị viên.")
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AppPassword)) != 1 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Mật khẩu không đúng")
	}

	c.Cookie(&fiber.Cookie{
		Name:     config.SessionCookieName,
		Value:    h.cfg.SessionSecret,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HTTPOnly: true,
		Secure:   h.cfg.IsProduction(),
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(fiber.Map{
		"success": true,
	})
}
