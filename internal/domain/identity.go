package domain

import (
	"context"
	"strings"
	"time"
)

// Role is the account type an identity record stands for.
type Role string

const (
	RoleCustomer  Role = "customer"
	RoleTherapist Role = "therapist"
	RoleAdmin     Role = "admin"
)

// ParseRole normalizes s and reports whether it names a known role.
func ParseRole(s string) (Role, bool) {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleCustomer, RoleTherapist, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}

func (r Role) String() string {
	return string(r)
}

// AccountRef points at the customer, therapist or admin row behind an identity.
type AccountRef struct {
	Role Role
	ID   string
}

// Identity is the unified login record for every account type.
// (Email, Role) is unique.
type Identity struct {
	ID           string
	Account      AccountRef
	DisplayName  string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Role returns the role of the underlying account.
func (i *Identity) Role() Role {
	return i.Account.Role
}

// Principal is the caller resolved from a verified access token.
// ID is the account id for the principal's role.
type Principal struct {
	ID    string
	Email string
	Role  Role
}

func (p Principal) Is(role Role) bool {
	return p.Role == role
}

// Customer is the profile behind a customer identity.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// TherapistStatusActive marks a therapist listed in the directory.
const TherapistStatusActive = "active"

// Therapist is the profile behind a therapist identity.
type Therapist struct {
	ID             string
	Name           string
	Email          string
	Specialization string
	HospitalID     string
	Status         string
	CreatedAt      time.Time
}

// Admin is the profile behind an admin identity.
type Admin struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
}

// Hospital is a place appointments are held at.
type Hospital struct {
	ID        string
	Name      string
	Address   string
	CreatedAt time.Time
}

// Validate validates the hospital
func (h *Hospital) Validate() error {
	var errs ValidationErrors
	if strings.TrimSpace(h.Name) == "" {
		errs = append(errs, NewMissingFieldError("name"))
	}
	if strings.TrimSpace(h.Address) == "" {
		errs = append(errs, NewMissingFieldError("address"))
	}
	errs.checkLength("name", h.Name, MaxHospitalNameLength)
	errs.checkLength("address", h.Address, MaxHospitalAddressLength)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// IdentityRepository defines the interface for identity directory persistence.
type IdentityRepository interface {
	CreateIdentity(ctx context.Context, identity *Identity) error
	FindByEmail(ctx context.Context, email string) ([]*Identity, error)
	FindByEmailAndRole(ctx context.Context, email string, role Role) (*Identity, error)
	GetByAccount(ctx context.Context, ref AccountRef) (*Identity, error)
}

// AccountRepository stores the role-specific profile rows.
type AccountRepository interface {
	CreateCustomer(ctx context.Context, customer *Customer) error
	CreateTherapist(ctx context.Context, therapist *Therapist) error
	GetTherapistByID(ctx context.Context, id string) (*Therapist, error)
	// ListTherapists returns the active therapists ordered by name.
	ListTherapists(ctx context.Context) ([]*Therapist, error)
	// GetTherapistForUpdate reads the therapist and locks its row for the
	// current transaction.
	GetTherapistForUpdate(ctx context.Context, id string) (*Therapist, error)
	CreateAdmin(ctx context.Context, admin *Admin) error
}

// HospitalRepository stores hospitals.
type HospitalRepository interface {
	CreateHospital(ctx context.Context, hospital *Hospital) error
	GetHospitalByID(ctx context.Context, id string) (*Hospital, error)
	ListHospitals(ctx context.Context) ([]*Hospital, error)
}
