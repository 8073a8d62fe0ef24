// Package tokens implements the Signed-Token Service (TOK): issuance and
// verification of the three token families (passenger session, operator
// session, boarding token), each signed with its own keyed MAC. Grounded on
// users-api's JWT login flow (internal/service/auth.go), generalized with a
// discriminant "kind" claim so one service can host all three families
// (spec.md §9 "Two-realm tokens").
package tokens

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Kind discriminates the three token families TOK issues.
type Kind string

const (
	KindPassengerSession Kind = "PASSENGER_SESSION"
	KindOperatorSession  Kind = "OPERATOR_SESSION"
	KindBoarding         Kind = "BOARDING"
)

const (
	PassengerSessionTTL = 7 * 24 * time.Hour
	OperatorSessionTTL  = 24 * time.Hour
	// Boarding tokens expire 24h after trip departure time; that expiry is
	// computed by the caller (ALLOC, or WLM on promotion) and passed
	// explicitly to IssueBoarding.
)

// Failure kinds, matching spec.md §4.1 exactly. No partial success.
var (
	ErrInvalidSignature = errors.New("INVALID_SIGNATURE")
	ErrExpired          = errors.New("EXPIRED")
	ErrWrongKind        = errors.New("WRONG_KIND")
	ErrMalformed        = errors.New("MALFORMED")
)

// Claims is the decoded, verified payload of any TOK-issued token.
type Claims struct {
	Subject     string
	Kind        Kind
	IssuedAt    time.Time
	ExpiresAt   time.Time
	Email       string // passenger session only
	EmployeeID  string // operator session only
	Role        string // operator session only ("OPERATOR")
	TripID      string // boarding only
	PassengerID string // boarding only
}

// Secrets holds one keyed-MAC secret per token kind (spec.md §4.1: "distinct
// secrets per kind are permitted").
type Secrets struct {
	Passenger string
	Operator  string
	Boarding  string
}

// Service is the pure TOK component: a function of secret + claims + clock.
// Verification never touches IDS.
type Service struct {
	secrets Secrets
	now     func() time.Time
}

func NewService(secrets Secrets) *Service {
	return &Service{secrets: secrets, now: time.Now}
}

func (s *Service) secretFor(kind Kind) string {
	switch kind {
	case KindPassengerSession:
		return s.secrets.Passenger
	case KindOperatorSession:
		return s.secrets.Operator
	case KindBoarding:
		return s.secrets.Boarding
	default:
		return ""
	}
}

// IssuePassengerSession mints a passenger-session token.
func (s *Service) IssuePassengerSession(passengerID, email string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":   passengerID,
		"kind":  string(KindPassengerSession),
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(PassengerSessionTTL).Unix(),
	}
	return s.sign(claims, s.secrets.Passenger)
}

// IssueOperatorSession mints an operator-session token.
func (s *Service) IssueOperatorSession(operatorID, employeeID string) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":         operatorID,
		"kind":        string(KindOperatorSession),
		"employee_id": employeeID,
		"role":        "OPERATOR",
		"iat":         now.Unix(),
		"exp":         now.Add(OperatorSessionTTL).Unix(),
	}
	return s.sign(claims, s.secrets.Operator)
}

// IssueBoarding mints a boarding token for a booking, expiring explicitly at
// expiresAt (trip.departureTime + 24h, computed by ALLOC or WLM).
func (s *Service) IssueBoarding(bookingID, tripID, passengerID string, expiresAt time.Time) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub":          bookingID,
		"kind":         string(KindBoarding),
		"trip_id":      tripID,
		"passenger_id": passengerID,
		"iat":          now.Unix(),
		"exp":          expiresAt.Unix(),
	}
	return s.sign(claims, s.secrets.Boarding)
}

func (s *Service) sign(claims jwt.MapClaims, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Verify checks signature, expiry, and kind in one pass. On any failure it
// returns exactly one of the package-level sentinel errors.
func (s *Service) Verify(tokenString string, want Kind) (*Claims, error) {
	secret := s.secretFor(want)
	if secret == "" {
		return nil, ErrMalformed
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSignature
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return nil, ErrMalformed
		}
		return nil, ErrInvalidSignature
	}

	if !parsed.Valid {
		return nil, ErrInvalidSignature
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrMalformed
	}

	kindStr, _ := claims["kind"].(string)
	if Kind(kindStr) != want {
		return nil, ErrWrongKind
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, ErrMalformed
	}

	out := &Claims{Subject: sub, Kind: want}

	if expFloat, ok := claims["exp"].(float64); ok {
		out.ExpiresAt = time.Unix(int64(expFloat), 0)
	} else {
		return nil, ErrMalformed
	}
	if iatFloat, ok := claims["iat"].(float64); ok {
		out.IssuedAt = time.Unix(int64(iatFloat), 0)
	}

	switch want {
	case KindPassengerSession:
		out.Email, _ = claims["email"].(string)
	case KindOperatorSession:
		out.EmployeeID, _ = claims["employee_id"].(string)
		out.Role, _ = claims["role"].(string)
	case KindBoarding:
		out.TripID, _ = claims["trip_id"].(string)
		out.PassengerID, _ = claims["passenger_id"].(string)
	}

	return out, nil
}
