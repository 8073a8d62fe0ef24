package service

import "testing"

// ValidateBoarding verifies a boarding JWT, then runs a db.Transaction closure
// that locks the booking row and flips it to BOARDED; not reachable through
// the hand-rolled repository fakes used elsewhere in this package.
func TestValidateBoarding_AcceptsConfirmedBookingOnce(t *testing.T) {
	t.Skip("Requires MySQL testcontainers - not covered by hand-rolled fakes")
}

func TestValidateBoarding_ReportsAlreadyBoardedOnSecondScan(t *testing.T) {
	t.Skip("Requires MySQL testcontainers - not covered by hand-rolled fakes")
}

func TestValidateBoarding_RejectsWrongTripToken(t *testing.T) {
	t.Skip("Requires MySQL testcontainers - not covered by hand-rolled fakes")
}
