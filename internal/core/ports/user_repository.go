package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
)

type UserRepository interface {
	// Add stores a new user. Duplicate usernames or emails yield a ConflictError.
	Add(ctx context.Context, user *identity.User) error

	Get(ctx context.Context, id kernel.UUID) (*identity.User, error)

	// Taken reports which of username and email are already registered.
	Taken(ctx context.Context, username, email string) (usernameTaken bool, emailTaken bool, err error)

	// Lock takes a row lock on the user until the transaction ends. It is
	// used to serialize cart creation per customer.
	Lock(ctx context.Context, id kernel.UUID) error
}
