package queries

import (
	"database/sql"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/mission"

	"github.com/google/uuid"
)

// missionColumns must match scanMission. The order owner is selected last.
const missionColumns = `
	m.id,
	m.order_id,
	m.pilot_id,
	m.status,
	m.created_at,
	m.completed_at,
	m.destination_latitude,
	m.destination_longitude,
	m.destination_observed_at,
	o.customer_id`

const missionsFrom = `
	FROM drone_missions m
	JOIN orders o ON o.id = m.order_id`

func scanMission(rows *sql.Rows) (MissionResponse, kernel.UUID, error) {
	var (
		resp                        MissionResponse
		id, orderID, pilotID, owner uuid.UUID
		lat, lon                    *float64
		observedAt                  *time.Time
	)

	if err := rows.Scan(
		&id,
		&orderID,
		&pilotID,
		&resp.Status,
		&resp.CreatedAt,
		&resp.CompletedAt,
		&lat,
		&lon,
		&observedAt,
		&owner,
	); err != nil {
		return MissionResponse{}, kernel.UUID{}, err
	}

	var err error
	if resp.ID, err = toUUID(id); err != nil {
		return MissionResponse{}, kernel.UUID{}, err
	}
	if resp.OrderID, err = toUUID(orderID); err != nil {
		return MissionResponse{}, kernel.UUID{}, err
	}
	if resp.PilotID, err = toUUID(pilotID); err != nil {
		return MissionResponse{}, kernel.UUID{}, err
	}
	ownerID, err := toUUID(owner)
	if err != nil {
		return MissionResponse{}, kernel.UUID{}, err
	}

	if lat != nil && lon != nil && observedAt != nil {
		resp.Destination = &DestinationResponse{Latitude: *lat, Longitude: *lon, ObservedAt: *observedAt}
	}

	return resp, ownerID, nil
}

// toMission restores the aggregate so the visibility rule can be applied.
func toMission(resp MissionResponse) (*mission.Mission, error) {
	var destination *mission.Destination
	if d := resp.Destination; d != nil {
		position, err := kernel.NewPosition(d.Latitude, d.Longitude)
		if err != nil {
			return nil, err
		}
		destination = &mission.Destination{Position: position, ObservedAt: d.ObservedAt}
	}

	return mission.RestoreMission(
		resp.ID,
		resp.OrderID,
		resp.PilotID,
		resp.Status,
		resp.CreatedAt,
		resp.CompletedAt,
		destination,
	)
}
