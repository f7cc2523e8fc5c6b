package model

import "time"

// InviteStatus is the closed set of invite states. Expiry is derived from
// expires_at at read time; stored status may lag behind.
type InviteStatus string

const (
	InviteStatusPending  InviteStatus = "pending"
	InviteStatusAccepted InviteStatus = "accepted"
	InviteStatusExpired  InviteStatus = "expired"
	InviteStatusRevoked  InviteStatus = "revoked"
)

// InviteDefaultTTL is how long a fresh invite stays acceptable.
const InviteDefaultTTL = 7 * 24 * time.Hour

// Invite is a time-limited, single-use grant allowing a specific email to
// join a specific company with a specific role.
type Invite struct {
	BaseModel
	InviteId  string       `gorm:"column:invite_id;uniqueIndex" json:"inviteId"`
	CompanyId string       `gorm:"column:company_id;index" json:"companyId"`
	Email     string       `gorm:"column:email;index" json:"email"` // stored lowercased
	Role      Role         `gorm:"column:role" json:"role"`
	Token     string       `gorm:"column:token;uniqueIndex" json:"token"`
	Status    InviteStatus `gorm:"column:status" json:"status"`
	ExpiresAt time.Time    `gorm:"column:expires_at" json:"expiresAt"`
	CreatedBy string       `gorm:"column:created_by" json:"createdBy"`
}

func (Invite) TableName() string {
	return "invites"
}

// Expired reports whether the invite is past its expiry, regardless of
// stored status.
func (i *Invite) Expired(now time.Time) bool {
	return !i.ExpiresAt.After(now)
}

type CreateInviteReq struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// InviteWithCreator is an invite joined with the issuing user's name.
type InviteWithCreator struct {
	Invite
	CreatedByName string `json:"createdByName"`
}
