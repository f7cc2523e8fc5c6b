// Copyright 2025 Rentfold Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

import (
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Code   int    `json:"code"`
	Detail any    `json:"detail,omitempty"`
	Msg    string `json:"msg"`
}

// WithRepJSON returns a 200 envelope with detail.
func WithRepJSON(c *fiber.Ctx, detail any) error {
	return c.Status(Success.Status).JSON(Response{
		Code:   Success.Code,
		Detail: detail,
		Msg:    Success.Msg,
	})
}

// WithRepCreated returns a 201 envelope with detail.
func WithRepCreated(c *fiber.Ctx, detail any) error {
	return c.Status(Created.Status).JSON(Response{
		Code:   Created.Code,
		Detail: detail,
		Msg:    Created.Msg,
	})
}

// WithRepMsg returns a success envelope with a custom message and no detail.
func WithRepMsg(c *fiber.Ctx, msg string) error {
	return c.Status(Success.Status).JSON(Response{
		Code: Success.Code,
		Msg:  msg,
	})
}

// WithRepNotDetail returns the bare success envelope.
func WithRepNotDetail(c *fiber.Ctx) error {
	return c.Status(Success.Status).JSON(Response{
		Code: Success.Code,
		Msg:  Success.Msg,
	})
}
