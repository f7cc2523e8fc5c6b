package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/rentfold/rentfold/internal/engine/consts"
	"github.com/rentfold/rentfold/internal/engine/model"
	"github.com/rentfold/rentfold/pkg/cache"
	"github.com/rentfold/rentfold/pkg/database"
	"github.com/rentfold/rentfold/pkg/log"
)

type IUserRepository interface {
	AddUser(u *model.User) error
	GetUserBySubject(subject string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByUserId(userId string) (*model.User, error)
	UpdateUser(userId string, updates map[string]any) error
}

type UserRepo struct {
	db        database.IDatabase
	cache     cache.ICache
	userModel *model.User
}

func NewUserRepo(db database.IDatabase, cache cache.ICache) IUserRepository {
	return &UserRepo{
		db:        db,
		cache:     cache,
		userModel: &model.User{},
	}
}

func (ur *UserRepo) AddUser(u *model.User) error {
	return ur.db.Database().Create(u).Error
}

// GetUserBySubject resolves a user by external subject. This runs on every
// authenticated request, so positive hits are cached.
func (ur *UserRepo) GetUserBySubject(subject string) (*model.User, error) {
	ctx := context.Background()
	key := consts.UserSubjectKey + subject
	u := &model.User{}

	if ur.cache != nil {
		userStr, err := ur.cache.Get(ctx, key).Result()
		if err == nil && userStr != "" {
			if err := sonic.UnmarshalString(userStr, u); err != nil {
				log.Errorw("failed to unmarshal cached user", "subject", subject, "error", err)
			} else {
				return u, nil
			}
		}
	}

	err := ur.db.Database().Table(ur.userModel.TableName()).
		Where("subject = ?", subject).First(u).Error
	if err != nil {
		return nil, err
	}

	if ur.cache != nil {
		userJson, err := sonic.MarshalString(u)
		if err != nil {
			log.Errorw("failed to marshal user", "subject", subject, "error", err)
		} else {
			if err := ur.cache.Set(ctx, key, userJson, time.Hour).Err(); err != nil {
				log.Errorw("failed to cache user", "subject", subject, "error", err)
			}
		}
	}

	return u, nil
}

func (ur *UserRepo) GetUserByEmail(email string) (*model.User, error) {
	u := &model.User{}
	err := ur.db.Database().Table(ur.userModel.TableName()).
		Where("email = ?", email).First(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (ur *UserRepo) GetUserByUserId(userId string) (*model.User, error) {
	u := &model.User{}
	err := ur.db.Database().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).First(u).Error
	if err != nil {
		return nil, err
	}
	return u, nil
}

// UpdateUser updates profile fields (user_id, subject, email cannot change)
// and drops the subject cache entry.
func (ur *UserRepo) UpdateUser(userId string, updates map[string]any) error {
	u, err := ur.GetUserByUserId(userId)
	if err != nil {
		return fmt.Errorf("get user failed: %w", err)
	}

	delete(updates, "user_id")
	delete(updates, "subject")
	delete(updates, "email")
	if err := ur.db.Database().Table(ur.userModel.TableName()).
		Where("user_id = ?", userId).Updates(updates).Error; err != nil {
		return err
	}

	if ur.cache != nil {
		key := consts.UserSubjectKey + u.Subject
		if err := ur.cache.Del(context.Background(), key).Err(); err != nil {
			log.Warnw("failed to invalidate user cache", "userId", userId, "error", err)
		}
	}

	return nil
}
