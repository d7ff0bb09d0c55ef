// Package guard lets value objects and entities detect that they were built
// by their constructor rather than declared as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into domain types. Its zero value reports the
// owning object as not constructed.
//
// Example usage:
//
//	type Product struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewProduct(name string) (*Product, error) {
//	    return &Product{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p *Product) Validate() error {
//	    return p.guard.Validate(ErrProductIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
