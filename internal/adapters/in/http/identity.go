package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

const (
	UserIDHeader = "X-Telegram-User-Id"
	UserIDQuery  = "uid"

	userIDKey = "eda.user_id"
)

// Identity resolves the caller from the messenger user id the mini-app sends.
type Identity struct {
	superAdmins map[int64]struct{}
}

func NewIdentity(superAdminIDs []int64) Identity {
	admins := make(map[int64]struct{}, len(superAdminIDs))
	for _, id := range superAdminIDs {
		admins[id] = struct{}{}
	}
	return Identity{superAdmins: admins}
}

func (i Identity) IsSuperAdmin(userID int64) bool {
	_, ok := i.superAdmins[userID]
	return ok
}

// RequireUser rejects requests without a positive user id with 401.
func (i Identity) RequireUser(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := parseUserID(c)
		if !ok {
			return newError(http.StatusUnauthorized, msgUserIDRequired)
		}
		c.Set(userIDKey, userID)
		return next(c)
	}
}

// RequireSuperAdmin additionally rejects callers outside the super admin list with 403.
func (i Identity) RequireSuperAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return i.RequireUser(func(c echo.Context) error {
		if !i.IsSuperAdmin(UserID(c)) {
			return newError(http.StatusForbidden, msgForbidden)
		}
		return next(c)
	})
}

// UserID returns the caller set by RequireUser, or 0.
func UserID(c echo.Context) int64 {
	id, _ := c.Get(userIDKey).(int64)
	return id
}

func parseUserID(c echo.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
	if raw == "" {
		raw = strings.TrimSpace(c.QueryParam(UserIDQuery))
	}
	if raw == "" {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ParseSuperAdminIDs reads a comma separated id list, skipping blanks and junk.
func ParseSuperAdminIDs(raw string) []int64 {
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err == nil && id > 0 {
			ids = append(ids, id)
		}
	}
	return ids
}
