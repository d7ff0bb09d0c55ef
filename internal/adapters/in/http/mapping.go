package http

import (
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/generated/servers"
)

// Prices are rendered as decimal strings with two fractional digits.
func toProduct(p queries.ProductResponse) servers.Product {
	return servers.Product{
		Id:          p.ID.Bytes(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.StringFixed(2),
		Stock:       p.Stock,
	}
}

func toOrder(o queries.OrderResponse) servers.Order {
	items := make([]servers.OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = servers.OrderItem{
			Id:       item.ID.Bytes(),
			Product:  toProduct(item.Product),
			Quantity: item.Quantity,
		}
	}

	return servers.Order{
		Id:         o.ID.Bytes(),
		CustomerId: o.CustomerID.Bytes(),
		Status:     o.Status,
		Items:      items,
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}

func toMission(m queries.MissionResponse) servers.Mission {
	resp := servers.Mission{
		Id:            m.ID.Bytes(),
		OrderId:       m.OrderID.Bytes(),
		PilotId:       m.PilotID.Bytes(),
		MissionStatus: m.Status,
		CreatedAt:     m.CreatedAt,
		CompletedAt:   m.CompletedAt,
	}
	if m.Destination != nil {
		resp.Destination = &servers.Destination{
			Latitude:   m.Destination.Latitude,
			Longitude:  m.Destination.Longitude,
			ObservedAt: m.Destination.ObservedAt,
		}
	}
	return resp
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
