package identity

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

const (
	MaxUsernameLength = 150
	MaxEmailLength    = 254
)

var (
	// ErrUserIsNotConstructed is returned by Validate on a zero-value User.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
	validate        = validator.New(validator.WithRequiredStructEnabled())
)

// User is a registered account. Only the bcrypt hash of the password is kept.
type User struct {
	id           kernel.UUID
	username     string
	email        string
	passwordHash string
	identity     Identity
	createdAt    time.Time
	guard        guard.ConstructorGuard
}

// NewUser validates every field, checks the password policy and hashes the
// password.
func NewUser(id kernel.UUID, username, email, password string, identity Identity) (*User, error) {
	u := &User{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setIdentity(identity),
		ValidatePassword(password),
	); err != nil {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	u.passwordHash = hash

	return u, nil
}

// RestoreUser rebuilds a User loaded from storage.
func RestoreUser(
	id kernel.UUID,
	username, email, passwordHash string,
	identity Identity,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setIdentity(identity),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Identity() Identity {
	return u.identity
}

func (u *User) Role() Role {
	return u.identity.Role()
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// VesselCallsign is set only for customers who registered one.
func (u *User) VesselCallsign() (string, bool) {
	if c, ok := u.identity.(Customer); ok {
		return c.VesselCallsign()
	}
	return "", false
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) == nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if n := utf8.RuneCountInString(username); n > MaxUsernameLength {
		return errs.NewValueIsOutOfRangeError("username length", n, 1, MaxUsernameLength)
	}
	if !usernamePattern.MatchString(username) {
		return errs.NewValueIsInvalidError("username may contain only letters, digits and @/./+/-/_")
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if len(email) > MaxEmailLength {
		return errs.NewValueIsOutOfRangeError("email length", len(email), 3, MaxEmailLength)
	}
	if err := validate.Var(email, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	u.email = email
	return nil
}

func (u *User) setIdentity(identity Identity) error {
	if identity == nil {
		return errs.NewValueIsRequiredError("role")
	}
	u.identity = identity
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}
