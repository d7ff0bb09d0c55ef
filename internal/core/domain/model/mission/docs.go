// Package mission tracks drone delivery missions flown by pilots.
//
// Mission status is free text and is not tied to the order status. The only
// rule attached to it: the first time a mission reaches "Completed"
// (case-insensitive) its completion time is recorded, and it is never cleared.
package mission
