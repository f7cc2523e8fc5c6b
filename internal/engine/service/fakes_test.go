package service

import (
	"sort"
	"strings"
	"time"

	"github.com/rentfold/rentfold/internal/engine/model"
	"gorm.io/gorm"
)

// In-memory repositories backing the service tests. They mirror the
// storage guarantees the SQL layer provides: unique subjects and emails,
// one membership row per (company, user), one pending invite per
// (company, email), and the guarded pending->accepted transition.

type fakeUserRepo struct {
	users []*model.User
}

func (f *fakeUserRepo) AddUser(u *model.User) error {
	for _, ex := range f.users {
		if ex.Subject == u.Subject || ex.Email == u.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *u
	f.users = append(f.users, &cp)
	return nil
}

func (f *fakeUserRepo) GetUserBySubject(subject string) (*model.User, error) {
	for _, u := range f.users {
		if u.Subject == subject {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByUserId(userId string) (*model.User, error) {
	for _, u := range f.users {
		if u.UserId == userId {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(userId string, updates map[string]any) error {
	for _, u := range f.users {
		if u.UserId == userId {
			if v, ok := updates["name"].(string); ok {
				u.Name = v
			}
			if v, ok := updates["avatar_url"].(string); ok {
				u.AvatarUrl = v
			}
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type fakeMemberRepo struct {
	members  []*model.CompanyMember
	userRepo *fakeUserRepo
	names    map[string]string // companyId -> name
}

func (f *fakeMemberRepo) FirstActiveByUser(userId string) (*model.CompanyMember, error) {
	var first *model.CompanyMember
	for _, m := range f.members {
		if m.UserId != userId || m.Status != model.MemberStatusActive {
			continue
		}
		if first == nil || m.CreatedAt.Before(first.CreatedAt) {
			first = m
		}
	}
	if first == nil {
		return nil, nil
	}
	cp := *first
	return &cp, nil
}

func (f *fakeMemberRepo) ListMembershipsByUser(userId string) ([]model.MembershipInfo, error) {
	var out []model.MembershipInfo
	for _, m := range f.members {
		if m.UserId != userId {
			continue
		}
		out = append(out, model.MembershipInfo{
			CompanyId:   m.CompanyId,
			CompanyName: f.names[m.CompanyId],
			Role:        m.Role,
			Status:      m.Status,
		})
	}
	return out, nil
}

// any owner row blocks, whatever its status (matches the SQL count)
func (f *fakeMemberRepo) HasOwnerMembership(userId string) (bool, error) {
	for _, m := range f.members {
		if m.UserId == userId && m.Role == model.RoleOwner {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) HasActiveMemberByEmail(companyId, email string) (bool, error) {
	for _, m := range f.members {
		if m.CompanyId != companyId || m.Status != model.MemberStatusActive {
			continue
		}
		if u, err := f.userRepo.GetUserByUserId(m.UserId); err == nil &&
			strings.EqualFold(u.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeMemberRepo) ListMembers(companyId string) ([]model.MemberInfo, error) {
	var out []model.MemberInfo
	for _, m := range f.members {
		if m.CompanyId != companyId {
			continue
		}
		info := model.MemberInfo{
			UserId:   m.UserId,
			Role:     m.Role,
			Status:   m.Status,
			JoinedAt: m.CreatedAt,
		}
		if u, err := f.userRepo.GetUserByUserId(m.UserId); err == nil {
			info.Email = u.Email
			info.Name = u.Name
			info.AvatarUrl = u.AvatarUrl
		}
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

func (f *fakeMemberRepo) Upsert(m *model.CompanyMember) error {
	for _, ex := range f.members {
		if ex.CompanyId == m.CompanyId && ex.UserId == m.UserId {
			ex.Role = m.Role
			ex.Status = m.Status
			return nil
		}
	}
	cp := *m
	cp.CreatedAt = time.Now()
	f.members = append(f.members, &cp)
	return nil
}

type fakeCompanyRepo struct {
	companies  []*model.Company
	memberRepo *fakeMemberRepo
}

func (f *fakeCompanyRepo) CreateWithOwner(company *model.Company, ownerUserId string) error {
	cp := *company
	f.companies = append(f.companies, &cp)
	if f.memberRepo.names == nil {
		f.memberRepo.names = map[string]string{}
	}
	f.memberRepo.names[company.CompanyId] = company.Name
	return f.memberRepo.Upsert(&model.CompanyMember{
		CompanyId: company.CompanyId,
		UserId:    ownerUserId,
		Role:      model.RoleOwner,
		Status:    model.MemberStatusActive,
	})
}

func (f *fakeCompanyRepo) GetByCompanyId(companyId string) (*model.Company, error) {
	for _, c := range f.companies {
		if c.CompanyId == companyId {
			cp := *c
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCompanyRepo) ListByUser(userId string) ([]model.CompanyWithRole, error) {
	var out []model.CompanyWithRole
	for _, m := range f.memberRepo.members {
		if m.UserId != userId || m.Status != model.MemberStatusActive {
			continue
		}
		if c, err := f.GetByCompanyId(m.CompanyId); err == nil {
			out = append(out, model.CompanyWithRole{CompanyId: c.CompanyId, Name: c.Name, Role: m.Role})
		}
	}
	return out, nil
}

type fakeInviteRepo struct {
	invites    []*model.Invite
	memberRepo *fakeMemberRepo
}

func (f *fakeInviteRepo) Create(inv *model.Invite) error {
	for _, ex := range f.invites {
		if ex.CompanyId == inv.CompanyId && ex.Email == inv.Email &&
			ex.Status == model.InviteStatusPending {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *inv
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	f.invites = append(f.invites, &cp)
	return nil
}

func (f *fakeInviteRepo) HasPendingByCompanyEmail(companyId, email string) (bool, error) {
	for _, inv := range f.invites {
		if inv.CompanyId == companyId && inv.Email == email &&
			inv.Status == model.InviteStatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeInviteRepo) GetAcceptableByToken(token string, now time.Time) (*model.Invite, error) {
	for _, inv := range f.invites {
		if inv.Token == token && inv.Status == model.InviteStatusPending && !inv.Expired(now) {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeInviteRepo) ListAcceptableByEmail(email string, now time.Time) ([]model.Invite, error) {
	var out []model.Invite
	for _, inv := range f.invites {
		if inv.Email == email && inv.Status == model.InviteStatusPending && !inv.Expired(now) {
			out = append(out, *inv)
		}
	}
	return out, nil
}

// newest first, like the SQL listing
func (f *fakeInviteRepo) ListByCompany(companyId string) ([]model.InviteWithCreator, error) {
	var out []model.InviteWithCreator
	for _, inv := range f.invites {
		if inv.CompanyId == companyId {
			out = append(out, model.InviteWithCreator{Invite: *inv})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeInviteRepo) Accept(inv *model.Invite, userId string) error {
	for _, ex := range f.invites {
		if ex.InviteId != inv.InviteId {
			continue
		}
		if ex.Status != model.InviteStatusPending {
			return gorm.ErrRecordNotFound
		}
		if err := f.memberRepo.Upsert(&model.CompanyMember{
			CompanyId: ex.CompanyId,
			UserId:    userId,
			Role:      ex.Role,
			Status:    model.MemberStatusActive,
		}); err != nil {
			return err
		}
		ex.Status = model.InviteStatusAccepted
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeInviteRepo) Revoke(inviteId, companyId string) (bool, error) {
	for _, ex := range f.invites {
		if ex.InviteId == inviteId && ex.CompanyId == companyId &&
			ex.Status == model.InviteStatusPending {
			ex.Status = model.InviteStatusRevoked
			return true, nil
		}
	}
	return false, nil
}

type fakePropertyRepo struct {
	properties []*model.Property
}

func (f *fakePropertyRepo) AddProperty(p *model.Property) error {
	cp := *p
	f.properties = append(f.properties, &cp)
	return nil
}

func (f *fakePropertyRepo) ListByCompany(companyId string) ([]model.Property, error) {
	var out []model.Property
	for _, p := range f.properties {
		if p.CompanyId == companyId {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePropertyRepo) BelongsToCompany(propertyId, companyId string) (bool, error) {
	for _, p := range f.properties {
		if p.PropertyId == propertyId && p.CompanyId == companyId {
			return true, nil
		}
	}
	return false, nil
}

type fakeTenantRepo struct {
	tenants []*model.TenantRecord
}

func (f *fakeTenantRepo) AddTenant(t *model.TenantRecord) error {
	cp := *t
	f.tenants = append(f.tenants, &cp)
	return nil
}

func (f *fakeTenantRepo) ListByCompany(companyId string) ([]model.TenantWithProperty, error) {
	var out []model.TenantWithProperty
	for _, t := range f.tenants {
		if t.CompanyId == companyId {
			out = append(out, model.TenantWithProperty{TenantRecord: *t})
		}
	}
	return out, nil
}

func (f *fakeTenantRepo) BelongsToCompany(tenantId, companyId string) (*model.TenantRecord, error) {
	for _, t := range f.tenants {
		if t.TenantId == tenantId && t.CompanyId == companyId {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

type fakePaymentRepo struct {
	payments []*model.Payment
}

func (f *fakePaymentRepo) AddPayment(p *model.Payment) error {
	cp := *p
	f.payments = append(f.payments, &cp)
	return nil
}

func (f *fakePaymentRepo) ListByCompany(companyId string) ([]model.Payment, error) {
	var out []model.Payment
	for _, p := range f.payments {
		if p.CompanyId == companyId {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentId > out[j].PaymentId })
	return out, nil
}

// newFakeRepos wires the fakes together the way bootstrap wires the real ones.
func newFakeRepos() (*fakeUserRepo, *fakeMemberRepo, *fakeCompanyRepo, *fakeInviteRepo) {
	userRepo := &fakeUserRepo{}
	memberRepo := &fakeMemberRepo{userRepo: userRepo, names: map[string]string{}}
	companyRepo := &fakeCompanyRepo{memberRepo: memberRepo}
	inviteRepo := &fakeInviteRepo{memberRepo: memberRepo}
	return userRepo, memberRepo, companyRepo, inviteRepo
}
