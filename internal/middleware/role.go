package middleware // middleware provides shared request processing for handlers

import (
    "net/http" // http package defines standard HTTP status codes
    "github.com/labstack/echo/v4" // echo provides middleware chaining and context
)

// RequireAdmin returns a middleware function that enforces that the
// authenticated user carries the admin capability.  The capability
// corresponds to the boolean "admin" claim minted at login when the
// customer's email is present in the SystemAdmin table.  If the flag
// is missing or false, the request is aborted with a 403 Forbidden
// response.  It assumes a previous middleware has extracted the claim
// into the context under the key "admin".
func RequireAdmin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // Retrieve the admin flag from context.  It should have
            // been stored by JWTAuth middleware as a bool.  If not
            // present or of wrong type, treat as missing.
            v := c.Get("admin")
            admin, ok := v.(bool)
            if !ok || !admin {
                // If the capability is missing, return 403
                return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
            }
            // Otherwise call the next handler in the chain
            return next(c)
        }
    }
}
