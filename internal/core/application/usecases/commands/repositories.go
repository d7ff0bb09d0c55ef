// Package commands holds the state-changing use cases. Each command is a
// validated value built by its constructor; its handler runs it inside one
// unit of work.
package commands

import (
	"context"

	"dronedelivery/internal/core/ports"
)

type (
	// TxManager controls the transaction of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	MissionRepoFactory interface {
		MissionRepository() ports.MissionRepository
	}

	// UserUoW is used by signup, which touches users only.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	UserUoWFactory interface {
		Create() UserUoW
	}

	// ProductUoW is used by catalog maintenance.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW spans every aggregate. Cart, checkout and mission commands need it.
	//
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//   ...
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		UserRepoFactory
		ProductRepoFactory
		OrderRepoFactory
		MissionRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
