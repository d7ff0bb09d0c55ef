package mission

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

const (
	DefaultStatus   = "Pending"
	CompletedStatus = "Completed"
	MaxStatusLength = 50
)

// ErrMissionIsNotConstructed is returned by Validate on a zero-value Mission.
var ErrMissionIsNotConstructed = errors.New("Mission must be created via NewMission constructor")

// Destination is the last known position of the vessel a mission delivers to.
type Destination struct {
	Position   kernel.Position
	ObservedAt time.Time
}

// Mission is a delivery of one order by one pilot.
type Mission struct {
	id          kernel.UUID
	orderID     kernel.UUID
	pilotID     kernel.UUID
	status      string
	createdAt   time.Time
	completedAt *time.Time
	destination *Destination
	guard       guard.ConstructorGuard
}

// NewMission assigns orderID to pilotID. An empty status becomes "Pending".
func NewMission(id, orderID, pilotID kernel.UUID, status string) (*Mission, error) {
	now := time.Now().UTC()
	m := &Mission{
		createdAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if strings.TrimSpace(status) == "" {
		status = DefaultStatus
	}

	if err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setPilotID(pilotID),
		m.setStatus(status, now),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMission rebuilds a Mission loaded from storage.
func RestoreMission(
	id, orderID, pilotID kernel.UUID,
	status string,
	createdAt time.Time,
	completedAt *time.Time,
	destination *Destination,
) (*Mission, error) {
	m := &Mission{
		createdAt:   createdAt,
		completedAt: completedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setOrderID(orderID),
		m.setPilotID(pilotID),
		m.validateStatus(status),
		validateDestination(destination),
	); err != nil {
		return nil, err
	}
	m.status = strings.TrimSpace(status)
	m.destination = destination

	return m, nil
}

func (m *Mission) Validate() error {
	if m == nil {
		return ErrMissionIsNotConstructed
	}
	return m.guard.Validate(ErrMissionIsNotConstructed)
}

func (m *Mission) IsEqual(other *Mission) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Mission) ID() kernel.UUID {
	return m.id
}

func (m *Mission) OrderID() kernel.UUID {
	return m.orderID
}

func (m *Mission) PilotID() kernel.UUID {
	return m.pilotID
}

func (m *Mission) Status() string {
	return m.status
}

func (m *Mission) CreatedAt() time.Time {
	return m.createdAt
}

// CompletedAt is nil until the mission is completed.
func (m *Mission) CompletedAt() *time.Time {
	if m.completedAt == nil {
		return nil
	}
	t := *m.completedAt
	return &t
}

func (m *Mission) IsCompleted() bool {
	return m.completedAt != nil
}

// Destination is nil until a vessel position has been observed.
func (m *Mission) Destination() *Destination {
	if m.destination == nil {
		return nil
	}
	d := *m.destination
	return &d
}

// IsAssignedTo reports whether pilotID flies this mission.
func (m *Mission) IsAssignedTo(pilotID kernel.UUID) bool {
	return m.pilotID.IsEqual(pilotID)
}

// UpdateStatus replaces the free-text status.
func (m *Mission) UpdateStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return errs.NewValueIsRequiredError("missionStatus")
	}
	return m.setStatus(status, time.Now().UTC())
}

// TrackDestination records the latest observed vessel position.
func (m *Mission) TrackDestination(position kernel.Position, observedAt time.Time) error {
	d := &Destination{Position: position, ObservedAt: observedAt.UTC()}
	if err := validateDestination(d); err != nil {
		return err
	}
	m.destination = d
	return nil
}

func (m *Mission) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Mission) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	m.orderID = orderID
	return nil
}

func (m *Mission) setPilotID(pilotID kernel.UUID) error {
	if err := pilotID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pilotID", err)
	}
	m.pilotID = pilotID
	return nil
}

func (m *Mission) setStatus(status string, now time.Time) error {
	if err := m.validateStatus(status); err != nil {
		return err
	}
	m.status = strings.TrimSpace(status)
	if m.completedAt == nil && strings.EqualFold(m.status, CompletedStatus) {
		m.completedAt = &now
	}
	return nil
}

func (m *Mission) validateStatus(status string) error {
	status = strings.TrimSpace(status)
	if status == "" {
		return errs.NewValueIsRequiredError("missionStatus")
	}
	if n := utf8.RuneCountInString(status); n > MaxStatusLength {
		return errs.NewValueIsOutOfRangeError("missionStatus length", n, 1, MaxStatusLength)
	}
	return nil
}

func validateDestination(d *Destination) error {
	if d == nil {
		return nil
	}
	if err := d.Position.Validate(); err != nil {
		return err
	}
	if d.ObservedAt.IsZero() {
		return errs.NewValueIsRequiredError("observedAt")
	}
	return nil
}
