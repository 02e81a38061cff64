package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/vidaplus/clinic-api/pkg/httputil"
)

// ErrorHandler logs and serializes errors that handlers attached to the gin
// context without writing a response themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		for _, e := range c.Errors {
			log.Error().
				Err(e.Err).
				Str("request_id", c.GetString(ContextRequestID)).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}

		if !c.Writer.Written() {
			httputil.RespondWithError(c, c.Errors.Last().Err)
		}
	}
}
