// Package external holds deterministic stand-ins for the fulfilment partner
// and the vessel tracking service. They are used until real integrations
// are configured.
package external
