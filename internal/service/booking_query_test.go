package service

import "testing"

// ListHistory issues its own gorm query directly against *gorm.DB rather than
// going through a repository interface, so it isn't reachable with the
// hand-rolled fakes the rest of this package uses.
func TestListHistory_ReturnsBookingsEnrichedWithTripDetails(t *testing.T) {
	t.Skip("Requires a real MySQL connection or testcontainers - not covered by hand-rolled fakes")
}
