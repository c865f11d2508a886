package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Seolivier/smart-broadband-3-server/pkg/utils"
)

// OriginGate enforces the origin allow-list before any handler runs.
// A request without an Origin header is trusted so curl and server-to-server
// calls keep working; a request carrying an origin that is not on the list is
// rejected here, before any storage access.
func OriginGate(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			allowed[origin] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}
		if _, ok := allowed[origin]; !ok {
			utils.LogWarn("Rejected request from disallowed origin", map[string]interface{}{
				"origin": origin,
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			})
			utils.RespondWithError(c, http.StatusForbidden, "Origin not allowed")
			return
		}
		c.Next()
	}
}
