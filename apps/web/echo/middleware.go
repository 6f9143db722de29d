package echoweb

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

// The caller's role and profile id are resolved once here and passed down;
// session mechanics live upstream (reverse proxy / identity service), this
// adapter only trusts its assertions.
const (
	callerRoleHeader    = "X-Role"
	callerProfileHeader = "X-Profile-Id"

	callerRoleKey    = "callerRole"
	callerProfileKey = "callerProfile"

	flashCookie = "flash"
)

func callerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			ctx.Set(callerRoleKey, ctx.Request().Header.Get(callerRoleHeader))
			if id, err := strconv.Atoi(ctx.Request().Header.Get(callerProfileHeader)); err == nil {
				ctx.Set(callerProfileKey, id)
			}
			return next(ctx)
		}
	}
}

func callerRole(ctx echo.Context) string {
	role, _ := ctx.Get(callerRoleKey).(string)
	return role
}

func callerProfileID(ctx echo.Context) int {
	id, _ := ctx.Get(callerProfileKey).(int)
	return id
}

// flashRedirect stores message in the flash cookie and sends the browser to
// location, the post/redirect/get flow the form endpoints follow.
func flashRedirect(ctx echo.Context, location, message string) error {
	ctx.SetCookie(&http.Cookie{
		Name:  flashCookie,
		Value: url.QueryEscape(message),
		Path:  "/",
	})
	return ctx.Redirect(http.StatusSeeOther, location)
}
