// Package models defines the persisted entities of the account service.
package models

import (
	"fmt"
	"time"
)

// SecretSize is the size in bytes of the per-account passcode secret.
const SecretSize = 24

// ViewTimeFormat is the wire format for timestamps in account views:
// second precision, no zone suffix.
const ViewTimeFormat = "2006-01-02T15:04:05"

// AccountStatus is the closed set of lifecycle states. The only transition
// performed by this service is StatusPending -> StatusActive; StatusDisabled
// is written by external collaborators and read here as "not active".
type AccountStatus string

const (
	StatusPending  AccountStatus = "pending"
	StatusActive   AccountStatus = "active"
	StatusDisabled AccountStatus = "disabled"
)

// ParseAccountStatus maps a stored string onto the status enum, rejecting
// unknown values at the boundary instead of materializing an invalid state.
func ParseAccountStatus(s string) (AccountStatus, error) {
	switch AccountStatus(s) {
	case StatusPending, StatusActive, StatusDisabled:
		return AccountStatus(s), nil
	default:
		return "", fmt.Errorf("unknown account status %q", s)
	}
}

func (s AccountStatus) String() string {
	return string(s)
}

// Account is the persisted record. Secret and PasswordHash never leave the
// service; ID and CreatedAt are set once at construction.
type Account struct {
	ID           string
	Email        string
	Name         string
	Secret       []byte
	PasswordHash string
	Status       AccountStatus
	CreatedAt    time.Time
}

// AccountView is the caller-facing projection of an Account. Secret material
// is omitted by construction, not by serialization options.
type AccountView struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Status       string `json:"status"`
	CreationDate string `json:"creation_date"`
}

// View returns the public projection of the account.
func (a *Account) View() *AccountView {
	return &AccountView{
		ID:           a.ID,
		Email:        a.Email,
		Name:         a.Name,
		Status:       a.Status.String(),
		CreationDate: a.CreatedAt.Format(ViewTimeFormat),
	}
}
