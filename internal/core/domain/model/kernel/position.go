package kernel

import (
	"errors"
	"fmt"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrPositionIsNotConstructed is returned when a zero-value Position is used.
var ErrPositionIsNotConstructed = errs.NewValueIsRequiredError("position must be created via NewPosition")

// Position is a geographic point in decimal degrees.
type Position struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewPosition validates latitude in [-90, 90] and longitude in [-180, 180].
func NewPosition(latitude, longitude float64) (Position, error) {
	p := Position{guard: guard.NewConstructorGuard()}
	if err := errors.Join(p.setLatitude(latitude), p.setLongitude(longitude)); err != nil {
		return Position{}, err
	}
	return p, nil
}

func (p Position) Validate() error {
	return p.guard.Validate(ErrPositionIsNotConstructed)
}

func (p Position) Latitude() float64 {
	return p.latitude
}

func (p Position) Longitude() float64 {
	return p.longitude
}

func (p Position) String() string {
	return fmt.Sprintf("Position(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual reports whether both positions are constructed and identical.
func (p Position) IsEqual(other Position) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return p == other, nil
}

func (p *Position) setLatitude(v float64) error {
	if v < MinLatitude || v > MaxLatitude || v != v {
		return errs.NewValueIsOutOfRangeError("latitude", v, MinLatitude, MaxLatitude)
	}
	p.latitude = v
	return nil
}

func (p *Position) setLongitude(v float64) error {
	if v < MinLongitude || v > MaxLongitude || v != v {
		return errs.NewValueIsOutOfRangeError("longitude", v, MinLongitude, MaxLongitude)
	}
	p.longitude = v
	return nil
}
