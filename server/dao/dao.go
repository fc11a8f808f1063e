// Package dao provides data access objects for use in the Minnow server.
package dao

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dekarrin/minnow"
	"github.com/google/uuid"
)

// Store is a complete persistence layer. It holds a repository for each
// entity the server persists.
type Store interface {
	Users() UserRepository
	Programs() ProgramRepository
	Runs() RunRepository

	// Close closes all repositories in the store. It must be called before
	// the Store is disposed of.
	Close() error
}

type UserRepository interface {

	// Create creates a new User. All attributes except for auto-generated
	// fields are taken from the provided User.
	Create(ctx context.Context, user User) (User, error)
	GetAll(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	Update(ctx context.Context, id uuid.UUID, user User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) (User, error)
}

type ProgramRepository interface {

	// Create creates a new Program. All attributes except for auto-generated
	// fields are taken from the provided Program.
	Create(ctx context.Context, p Program) (Program, error)
	GetAll(ctx context.Context) ([]Program, error)
	GetAllByOwner(ctx context.Context, owner uuid.UUID) ([]Program, error)
	GetByID(ctx context.Context, id uuid.UUID) (Program, error)
	Update(ctx context.Context, id uuid.UUID, p Program) (Program, error)
	Delete(ctx context.Context, id uuid.UUID) (Program, error)
}

type RunRepository interface {

	// Create records a completed run. Runs are immutable once recorded;
	// there is no Update.
	Create(ctx context.Context, r Run) (Run, error)
	GetAllByProgram(ctx context.Context, programID uuid.UUID) ([]Run, error)
	GetByID(ctx context.Context, id uuid.UUID) (Run, error)
	Delete(ctx context.Context, id uuid.UUID) (Run, error)
}

type Role int

const (
	Guest Role = iota
	Unverified
	Normal

	Admin Role = 100
)

func (r Role) String() string {
	switch r {
	case Guest:
		return "guest"
	case Unverified:
		return "unverified"
	case Normal:
		return "normal"
	case Admin:
		return "admin"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

func ParseRole(s string) (Role, error) {
	check := strings.ToLower(s)
	switch check {
	case "guest":
		return Guest, nil
	case "unverified":
		return Unverified, nil
	case "normal":
		return Normal, nil
	case "admin":
		return Admin, nil
	default:
		return Guest, fmt.Errorf("must be one of 'guest', 'unverified', 'normal', or 'admin'")
	}
}

type User struct {
	ID             uuid.UUID
	Username       string
	Password       string
	Email          *mail.Address
	Role           Role
	Created        time.Time
	Modified       time.Time
	LastLogoutTime time.Time
	LastLoginTime  time.Time
}

// Program is a stored Minnow source text owned by a user.
type Program struct {
	ID       uuid.UUID
	Owner    uuid.UUID
	Name     string
	Source   string
	Created  time.Time
	Modified time.Time
}

// Run is the recorded outcome of executing a stored Program once. The full
// interpreter Result is retained, diagnostics included.
type Run struct {
	ID        uuid.UUID
	ProgramID uuid.UUID
	UserID    uuid.UUID
	Result    minnow.Result
	Created   time.Time
}
