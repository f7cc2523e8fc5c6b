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

package model

import "time"

// Role is the closed set of membership roles.
type Role string

const (
	RoleOwner  Role = "owner"  // full control, can invite/revoke/create
	RoleStaff  Role = "staff"  // can view members and invites
	RoleTenant Role = "tenant" // no administrative access
)

// Valid reports whether r is a known membership role.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleStaff, RoleTenant:
		return true
	}
	return false
}

// Assignable reports whether r may be granted via invite.
// Owner is only ever assigned at company creation.
func (r Role) Assignable() bool {
	return r == RoleStaff || r == RoleTenant
}

// MemberStatus is the closed set of membership states.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInvited  MemberStatus = "invited"
	MemberStatusDisabled MemberStatus = "disabled"
)

// CompanyMember links a user to a company with a role and status.
// At most one row exists per (company, user) pair.
type CompanyMember struct {
	BaseModel
	CompanyId string       `gorm:"column:company_id;uniqueIndex:idx_company_user" json:"companyId"`
	UserId    string       `gorm:"column:user_id;uniqueIndex:idx_company_user" json:"userId"`
	Role      Role         `gorm:"column:role" json:"role"`
	Status    MemberStatus `gorm:"column:status" json:"status"`
}

func (CompanyMember) TableName() string {
	return "company_users"
}

// MembershipInfo is a membership joined with its company, as returned
// by the profile endpoints.
type MembershipInfo struct {
	CompanyId   string       `json:"companyId"`
	CompanyName string       `json:"companyName"`
	Role        Role         `json:"role"`
	Status      MemberStatus `json:"status"`
}

// MemberInfo is a membership joined with its user, as returned by the
// member listing endpoint.
type MemberInfo struct {
	UserId    string       `json:"userId"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	AvatarUrl string       `json:"avatarUrl"`
	Role      Role         `json:"role"`
	Status    MemberStatus `json:"status"`
	JoinedAt  time.Time    `json:"joinedAt"`
}
