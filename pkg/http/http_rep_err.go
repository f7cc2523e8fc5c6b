package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rentfold/rentfold/pkg/log"
)

type ResponseErr struct {
	ErrCode int    `json:"code"`
	ErrMsg  string `json:"error"`
	Path    string `json:"path,omitempty"`
}

// WithRepErr writes an ApiError onto the response with its HTTP status.
func WithRepErr(c *fiber.Ctx, apiErr *ApiError, path string) error {
	return c.Status(apiErr.Status).JSON(ResponseErr{
		ErrCode: apiErr.Code,
		ErrMsg:  apiErr.Msg,
		Path:    path,
	})
}

// WithRepErrMsg writes a custom message with the given ApiError's status and code.
func WithRepErrMsg(c *fiber.Ctx, apiErr *ApiError, msg string, path string) error {
	return c.Status(apiErr.Status).JSON(ResponseErr{
		ErrCode: apiErr.Code,
		ErrMsg:  msg,
		Path:    path,
	})
}

// WithError maps a service error to the response. Unknown errors are logged
// and reported as a generic internal failure, never leaked to the caller.
func WithError(c *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return WithRepErr(c, apiErr, c.Path())
	}
	log.Errorw("unexpected error", "path", c.Path(), "error", err)
	return WithRepErr(c, InternalError, c.Path())
}
