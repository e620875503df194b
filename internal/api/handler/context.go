package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/deenanswers/qa-system/internal/api/middleware"
	"github.com/deenanswers/qa-system/internal/core/ports"
)

// ctxIdentity extracts the verified claims injected by the Auth middleware.
// Behind OptionalAuth the claims may be absent; all fields come back empty
// then and the service layer decides what an empty subject means.
func ctxIdentity(c echo.Context) ports.Identity {
	subject, _ := c.Get(middleware.KeySubject).(string)
	email, _ := c.Get(middleware.KeyEmail).(string)
	name, _ := c.Get(middleware.KeyName).(string)
	picture, _ := c.Get(middleware.KeyPicture).(string)

	return ports.Identity{
		Subject:  subject,
		Email:    email,
		Name:     name,
		ImageURL: picture,
	}
}

// ctxSubject returns just the caller's identity subject, empty when anonymous.
func ctxSubject(c echo.Context) string {
	subject, _ := c.Get(middleware.KeySubject).(string)
	return subject
}
