package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecrets() Secrets {
	return Secrets{
		Passenger: "passenger-secret",
		Operator:  "operator-secret",
		Boarding:  "boarding-secret",
	}
}

func TestPassengerSession_RoundTrip(t *testing.T) {
	svc := NewService(testSecrets())

	token, err := svc.IssuePassengerSession("passenger-1", "a@school.edu")
	require.NoError(t, err)

	claims, err := svc.Verify(token, KindPassengerSession)
	require.NoError(t, err)
	assert.Equal(t, "passenger-1", claims.Subject)
	assert.Equal(t, KindPassengerSession, claims.Kind)
	assert.Equal(t, "a@school.edu", claims.Email)
}

func TestOperatorSession_RoundTrip(t *testing.T) {
	svc := NewService(testSecrets())

	token, err := svc.IssueOperatorSession("operator-1", "EMP-001")
	require.NoError(t, err)

	claims, err := svc.Verify(token, KindOperatorSession)
	require.NoError(t, err)
	assert.Equal(t, "operator-1", claims.Subject)
	assert.Equal(t, "EMP-001", claims.EmployeeID)
	assert.Equal(t, "OPERATOR", claims.Role)
}

func TestBoarding_RoundTrip(t *testing.T) {
	svc := NewService(testSecrets())
	expires := time.Now().Add(24 * time.Hour)

	token, err := svc.IssueBoarding("booking-1", "trip-1", "passenger-1", expires)
	require.NoError(t, err)

	claims, err := svc.Verify(token, KindBoarding)
	require.NoError(t, err)
	assert.Equal(t, "booking-1", claims.Subject)
	assert.Equal(t, "trip-1", claims.TripID)
	assert.Equal(t, "passenger-1", claims.PassengerID)
}

func TestVerify_Expired(t *testing.T) {
	svc := NewService(testSecrets())
	svc.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, err := svc.IssueBoarding("booking-1", "trip-1", "passenger-1", time.Now().Add(-24*time.Hour))
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token, KindBoarding)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerify_WrongKind(t *testing.T) {
	svc := NewService(testSecrets())

	token, err := svc.IssuePassengerSession("passenger-1", "a@school.edu")
	require.NoError(t, err)

	// The boarding secret differs from the passenger secret, so presenting a
	// passenger token where a boarding token is expected fails signature
	// verification rather than succeeding with the wrong kind.
	_, err = svc.Verify(token, KindBoarding)
	assert.Error(t, err)
}

func TestVerify_Malformed(t *testing.T) {
	svc := NewService(testSecrets())

	_, err := svc.Verify("not-a-jwt", KindPassengerSession)
	assert.Error(t, err)
}

func TestVerify_InvalidSignature(t *testing.T) {
	svc := NewService(testSecrets())
	other := NewService(Secrets{Passenger: "different-secret", Operator: "x", Boarding: "y"})

	token, err := svc.IssuePassengerSession("passenger-1", "a@school.edu")
	require.NoError(t, err)

	_, err = other.Verify(token, KindPassengerSession)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}
