package model

type User struct {
	BaseModel
	UserId       string `gorm:"column:user_id;uniqueIndex" json:"userId"`
	Subject      string `gorm:"column:subject;uniqueIndex" json:"-"` // external identity subject
	Email        string `gorm:"column:email;uniqueIndex" json:"email"`
	Name         string `gorm:"column:name" json:"name"`
	AvatarUrl    string `gorm:"column:avatar_url" json:"avatarUrl"`
	PasswordHash string `gorm:"column:password_hash" json:"-"` // local-auth variant only
}

func (User) TableName() string {
	return "users"
}

type Register struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResp struct {
	UserInfo UserInfo          `json:"userInfo"`
	Token    map[string]string `json:"token"`
}

type UserInfo struct {
	UserId    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarUrl string `json:"avatarUrl"`
}

type UpdateProfileReq struct {
	Name      string `json:"name"`
	AvatarUrl string `json:"avatarUrl"`
}

// Identity is a verified external identity, as yielded by the token verifier.
type Identity struct {
	Subject string
	Email   string
	Name    string
}

// CurrentUser is the resolved request identity: the local user plus the
// current active company membership, if any.
type CurrentUser struct {
	UserId    string
	Subject   string
	Email     string
	Name      string
	AvatarUrl string
	CompanyId string
	Role      Role
}

// HasProfile reports whether the identity maps to a local user record.
func (u *CurrentUser) HasProfile() bool {
	return u != nil && u.UserId != ""
}

// HasCompany reports whether an active membership was resolved.
func (u *CurrentUser) HasCompany() bool {
	return u != nil && u.CompanyId != ""
}

// ProfileResp is the /auth/me payload: the user plus all memberships.
type ProfileResp struct {
	User        UserInfo         `json:"user"`
	Memberships []MembershipInfo `json:"memberships"`
}
