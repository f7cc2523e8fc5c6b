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

import "github.com/gofiber/fiber/v2"

// ApiError pairs a business code with the HTTP status it travels on.
// Services return these as errors; the router maps them onto the response.
type ApiError struct {
	Status int
	Code   int
	Msg    string
}

func (e *ApiError) Error() string {
	return e.Msg
}

// WithMsg returns a copy with a custom message, keeping status and code.
func (e *ApiError) WithMsg(msg string) *ApiError {
	cp := *e
	cp.Msg = msg
	return &cp
}

var (
	// 400
	BadRequest          = failed(fiber.StatusBadRequest, 4000, "Bad request")
	CompanyNameRequired = failed(fiber.StatusBadRequest, 4001, "Company name is required")
	InviteEmailRequired = failed(fiber.StatusBadRequest, 4002, "Email is required")
	InvalidInviteRole   = failed(fiber.StatusBadRequest, 4003, "Role must be 'staff' or 'tenant'")

	// 401
	Unauthorized         = failed(fiber.StatusUnauthorized, 4401, "Unauthorized")
	AuthorizationEmpty   = failed(fiber.StatusUnauthorized, 4404, "Authorization is empty")
	InvalidToken         = failed(fiber.StatusUnauthorized, 4405, "Invalid token")
	TokenBeEmpty         = failed(fiber.StatusUnauthorized, 4406, "Token cannot be empty")
	TokenExpired         = failed(fiber.StatusUnauthorized, 4407, "Token is expired")
	TokenFormatIncorrect = failed(fiber.StatusUnauthorized, 4408, "Token format is incorrect")
	IncorrectCredentials = failed(fiber.StatusUnauthorized, 4409, "Invalid email or password")

	// 403
	Forbidden           = failed(fiber.StatusForbidden, 4030, "Forbidden: insufficient permissions")
	ProfileNotFound     = failed(fiber.StatusForbidden, 4031, "User profile not found. Please complete registration")
	NoCompanyMembership = failed(fiber.StatusForbidden, 4032, "No company membership found")
	CompanyMismatch     = failed(fiber.StatusForbidden, 4033, "Access denied")
	InviteEmailMismatch = failed(fiber.StatusForbidden, 4034, "This invite was sent to a different email address")

	// 404
	NotFound         = failed(fiber.StatusNotFound, 4004, "Not found")
	InviteNotFound   = failed(fiber.StatusNotFound, 4040, "Invite not found, expired, or already used")
	PropertyNotFound = failed(fiber.StatusNotFound, 4041, "Property not found")
	TenantNotFound   = failed(fiber.StatusNotFound, 4042, "Tenant not found")

	// 409
	Conflict          = failed(fiber.StatusConflict, 4090, "Conflict")
	AlreadyOwnCompany = failed(fiber.StatusConflict, 4091, "You already own a company")
	DuplicateInvite   = failed(fiber.StatusConflict, 4092, "An active invite already exists for this email")
	AlreadyMember     = failed(fiber.StatusConflict, 4093, "This user is already a member of your company")
	UserAlreadyExist  = failed(fiber.StatusConflict, 4094, "A user with this email already exists")

	// 500
	InternalError = failed(fiber.StatusInternalServerError, 5000, "Internal error, please contact the administrator")
)

var (
	Success = success(fiber.StatusOK, 200, "Request Success")
	Created = success(fiber.StatusCreated, 201, "Created")
)

func failed(status, code int, msg string) *ApiError {
	return &ApiError{
		Status: status,
		Code:   code,
		Msg:    msg,
	}
}

func success(status, code int, msg string) *ApiError {
	return &ApiError{
		Status: status,
		Code:   code,
		Msg:    msg,
	}
}
