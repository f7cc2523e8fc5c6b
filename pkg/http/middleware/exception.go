package middleware

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/log"
)

// ExceptionMiddleware recovers panics into a 500 response. Stack traces
// go to the log, never to the client.
func ExceptionMiddleware(c *fiber.Ctx) error {
	defer func() {
		if err := recover(); err != nil {
			log.Errorf("panic: %v\n%s", err, debug.Stack())
			_ = http.WithRepErr(c, http.InternalError, c.Path())
		}
	}()

	return c.Next()
}
