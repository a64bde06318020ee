package middleware

import (
	"strconv"

	"qa-forum/repositories"

	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

// ResolvePageSize picks the effective page size: the user's stored
// preference wins, then a request-supplied override, then the system
// default. Invalid or out-of-range values fall through to the next source.
func ResolvePageSize(storedPreference *int, queryParam string, defaultSize int) int {
	if storedPreference != nil && validPageSize(*storedPreference) {
		return *storedPreference
	}

	if queryParam != "" {
		if override, err := strconv.Atoi(queryParam); err == nil && validPageSize(override) {
			return override
		}
	}

	return defaultSize
}

func validPageSize(size int) bool {
	return size > 0 && size <= maxPageSize
}

// PageSizeMiddleware resolves the effective page size per request and stores
// it in the gin context under "page_size". It must run after auth resolution
// so the viewer's stored preference is visible.
func PageSizeMiddleware(userRepo repositories.UserRepository, defaultSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		var storedPreference *int

		if viewerID := ViewerID(c); viewerID != nil {
			if user, err := userRepo.GetByID(*viewerID); err == nil && user.Profile != nil {
				storedPreference = user.Profile.PageSizePreference
			}
		}

		c.Set("page_size", ResolvePageSize(storedPreference, c.Query("page-size"), defaultSize))

		c.Next()
	}
}

// PageSize reads the resolved page size; defaultSize covers routes that do
// not run PageSizeMiddleware.
func PageSize(c *gin.Context, defaultSize int) int {
	value, exists := c.Get("page_size")
	if !exists {
		return defaultSize
	}
	size, ok := value.(int)
	if !ok {
		return defaultSize
	}
	return size
}
