package missionrepo_test

import (
	"context"
	"testing"
	"time"

	"dronedelivery/internal/adapters/out/storage/missionrepo"
	"dronedelivery/internal/adapters/out/storage/orderrepo"
	"dronedelivery/internal/adapters/out/storage/storagetest"
	"dronedelivery/internal/adapters/out/storage/userrepo"
	"dronedelivery/internal/core/domain/model/identity"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MissionRepositoryTestSuite struct {
	suite.Suite
	db         *gorm.DB
	repository *missionrepo.GormMissionRepository
	pilotID    kernel.UUID
}

func (s *MissionRepositoryTestSuite) SetupTest() {
	s.db = storagetest.NewSQLite(s.T())
	s.repository = missionrepo.NewGormMissionRepository(s.db)
	s.pilotID = s.addUser("pilot", identity.Pilot{})
}

func (s *MissionRepositoryTestSuite) addUser(name string, ident identity.Identity) kernel.UUID {
	u, err := identity.NewUser(kernel.NewUUID(), name, name+"@example.com", "Str0ng!Pass", ident)
	s.Require().NoError(err)
	s.Require().NoError(userrepo.NewGormUserRepository(s.db).Add(context.Background(), u))
	return u.ID()
}

func (s *MissionRepositoryTestSuite) addOrder(customerID kernel.UUID) kernel.UUID {
	o, err := order.NewOrder(kernel.NewUUID(), customerID)
	s.Require().NoError(err)
	s.Require().NoError(orderrepo.NewGormOrderRepository(s.db).Add(context.Background(), o))
	return o.ID()
}

func (s *MissionRepositoryTestSuite) addMission(orderID kernel.UUID, status string) *mission.Mission {
	m, err := mission.NewMission(kernel.NewUUID(), orderID, s.pilotID, status)
	s.Require().NoError(err)
	s.Require().NoError(s.repository.Add(context.Background(), m))
	return m
}

func (s *MissionRepositoryTestSuite) TestAddAndGet() {
	customer, _ := identity.NewCustomer("")
	m := s.addMission(s.addOrder(s.addUser("alice", customer)), "")

	got, err := s.repository.Get(context.Background(), m.ID())
	s.Require().NoError(err)
	s.Equal(mission.DefaultStatus, got.Status())
	s.True(got.IsAssignedTo(s.pilotID))
	s.Nil(got.CompletedAt())
	s.Nil(got.Destination())
}

func (s *MissionRepositoryTestSuite) TestAdd_UnknownOrder() {
	m, err := mission.NewMission(kernel.NewUUID(), kernel.NewUUID(), s.pilotID, "")
	s.Require().NoError(err)

	s.ErrorIs(s.repository.Add(context.Background(), m), errs.ErrObjectNotFound)
}

func (s *MissionRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()
	customer, _ := identity.NewCustomer("")
	m := s.addMission(s.addOrder(s.addUser("alice", customer)), "")

	pos, _ := kernel.NewPosition(43.1, -70.5)
	s.Require().NoError(m.TrackDestination(pos, time.Now()))
	s.Require().NoError(m.UpdateStatus("Completed"))
	s.Require().NoError(s.repository.Update(ctx, m))

	got, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	s.Equal("Completed", got.Status())
	s.NotNil(got.CompletedAt())
	s.Require().NotNil(got.Destination())
	s.InDelta(43.1, got.Destination().Position.Latitude(), 1e-9)
	s.InDelta(-70.5, got.Destination().Position.Longitude(), 1e-9)
}

func (s *MissionRepositoryTestSuite) TestUpdate_StaleCopyKeepsCompletion() {
	ctx := context.Background()
	customer, _ := identity.NewCustomer("")
	m := s.addMission(s.addOrder(s.addUser("alice", customer)), "In flight")

	stale, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)

	s.Require().NoError(m.UpdateStatus("Completed"))
	s.Require().NoError(s.repository.Update(ctx, m))

	s.Require().NoError(stale.UpdateStatus("Returning"))
	s.Require().NoError(s.repository.Update(ctx, stale))

	got, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	s.Equal("Returning", got.Status())
	s.Require().NotNil(got.CompletedAt())
	s.WithinDuration(*m.CompletedAt(), *got.CompletedAt(), time.Second)
}

func (s *MissionRepositoryTestSuite) TestUpdateDestination() {
	ctx := context.Background()
	customer, _ := identity.NewCustomer("")
	m := s.addMission(s.addOrder(s.addUser("alice", customer)), "In flight")

	tracked, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	pos, _ := kernel.NewPosition(43.1, -70.5)
	s.Require().NoError(tracked.TrackDestination(pos, time.Now()))
	s.Require().NoError(s.repository.UpdateDestination(ctx, tracked))

	got, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	s.Equal("In flight", got.Status())
	s.Require().NotNil(got.Destination())
	s.InDelta(43.1, got.Destination().Position.Latitude(), 1e-9)
}

func (s *MissionRepositoryTestSuite) TestUpdateDestination_CompletedMeanwhile() {
	ctx := context.Background()
	customer, _ := identity.NewCustomer("")
	m := s.addMission(s.addOrder(s.addUser("alice", customer)), "In flight")

	// Located before the pilot completed the mission.
	located, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	pos, _ := kernel.NewPosition(43.1, -70.5)
	s.Require().NoError(located.TrackDestination(pos, time.Now()))

	s.Require().NoError(m.UpdateStatus("Completed"))
	s.Require().NoError(s.repository.Update(ctx, m))

	s.ErrorIs(s.repository.UpdateDestination(ctx, located), errs.ErrConflict)

	got, err := s.repository.Get(ctx, m.ID())
	s.Require().NoError(err)
	s.Equal("Completed", got.Status())
	s.NotNil(got.CompletedAt())
	s.Nil(got.Destination())
}

func (s *MissionRepositoryTestSuite) TestUpdateDestination_RequiresDestination() {
	customer, _ := identity.NewCustomer("")
	m := s.addMission(s.addOrder(s.addUser("alice", customer)), "")

	s.ErrorIs(s.repository.UpdateDestination(context.Background(), m), errs.ErrValueIsRequired)
}

func (s *MissionRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	customer, _ := identity.NewCustomer("")
	m := s.addMission(s.addOrder(s.addUser("alice", customer)), "")

	s.Require().NoError(s.repository.Delete(ctx, m.ID()))

	_, err := s.repository.GetForUpdate(ctx, m.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
	s.ErrorIs(s.repository.Delete(ctx, m.ID()), errs.ErrObjectNotFound)
}

func (s *MissionRepositoryTestSuite) TestUpdate_NotFound() {
	m, _ := mission.NewMission(kernel.NewUUID(), kernel.NewUUID(), s.pilotID, "")
	s.ErrorIs(s.repository.Update(context.Background(), m), errs.ErrObjectNotFound)
}

func (s *MissionRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repository.Get(context.Background(), kernel.NewUUID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *MissionRepositoryTestSuite) TestGetAllTrackable() {
	ctx := context.Background()
	withVessel, _ := identity.NewCustomer("SEA-HAWK")
	withoutVessel, _ := identity.NewCustomer("")
	sailor := s.addUser("sailor", withVessel)
	landlubber := s.addUser("landlubber", withoutVessel)

	open := s.addMission(s.addOrder(sailor), "In flight")
	s.addMission(s.addOrder(sailor), "Completed")
	s.addMission(s.addOrder(landlubber), "In flight")

	tracked, err := s.repository.GetAllTrackable(ctx)
	s.Require().NoError(err)
	s.Require().Len(tracked, 1)
	s.True(tracked[0].Mission.IsEqual(open))
	s.Equal("SEA-HAWK", tracked[0].VesselCallsign)
}

func (s *MissionRepositoryTestSuite) TestCascadeOnOrderDelete() {
	customer, _ := identity.NewCustomer("")
	orderID := s.addOrder(s.addUser("alice", customer))
	m := s.addMission(orderID, "")

	s.Require().NoError(s.db.Exec("DELETE FROM orders WHERE id = ?", orderID.Bytes()).Error)

	_, err := s.repository.Get(context.Background(), m.ID())
	s.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestMissionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MissionRepositoryTestSuite))
}
