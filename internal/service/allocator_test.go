package service

import "testing"

// Book drives its own db.Transaction closure with SELECT ... FOR UPDATE locking
// (trip row, then passenger-direction scan) plus a Redis COORD lock acquired
// over ctx; none of that is reachable through the hand-rolled repository fakes
// used elsewhere in this package.
func TestBook_ConfirmsWhenSeatsAvailable(t *testing.T) {
	t.Skip("Requires MySQL testcontainers and a real Redis locker - not covered by hand-rolled fakes")
}

func TestBook_WaitlistsWhenTripIsFull(t *testing.T) {
	t.Skip("Requires MySQL testcontainers and a real Redis locker - not covered by hand-rolled fakes")
}

func TestBook_RejectsSecondActiveBookingInSameDirection(t *testing.T) {
	t.Skip("Requires MySQL testcontainers and a real Redis locker - not covered by hand-rolled fakes")
}

func TestBook_ConcurrentCallersSerializeOnTripLock(t *testing.T) {
	t.Skip("Requires MySQL testcontainers and a real Redis locker - run with -race against a live stack")
}
