// Package identity models platform users.
//
// A User carries exactly one Identity: a Customer, who may have a vessel
// callsign, or a Pilot. The role is derived from the variant, so pilot-only or
// customer-only attributes cannot exist on the wrong kind of user.
package identity
