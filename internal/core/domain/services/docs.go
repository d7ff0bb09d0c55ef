// Package services contains domain rules that span several aggregates.
//
// MissionVisibility decides which missions a requester may read. AccessPolicy
// holds the role and ownership checks.
package services
