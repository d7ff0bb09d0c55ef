package userrepo

import (
	"context"
	"errors"
	"strings"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, user *identity.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("user", "username or email already exists", err)
		}
		return err
	}

	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*identity.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormUserRepository) Taken(ctx context.Context, username, email string) (bool, bool, error) {
	var rows []struct {
		Username string
		Email    string
	}
	if err := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Select("username", "email").
		Where("username = ? OR LOWER(email) = LOWER(?)", username, email).
		Find(&rows).Error; err != nil {
		return false, false, err
	}

	var usernameTaken, emailTaken bool
	for _, row := range rows {
		usernameTaken = usernameTaken || row.Username == username
		emailTaken = emailTaken || strings.EqualFold(row.Email, email)
	}
	return usernameTaken, emailTaken, nil
}

func (r *GormUserRepository) Lock(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var dto UserDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&dto, "id = ?", id.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewObjectNotFoundError("user", id.String())
	}
	return err
}
