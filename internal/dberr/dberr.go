// Package dberr classifies store errors into kinds callers can branch on.
//
// Repositories wrap every driver error with Classify so that "no such row",
// "the store rejected the write" and "the store is unreachable" are
// distinguishable with errors.Is:
//
//	u, err := users.GetByEmail(ctx, email)
//	if errors.Is(err, dberr.ErrNotFound) {
//		...
//	}
package dberr

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Kind is the category of a store failure.
type Kind uint8

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindConstraint
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid input"
	case KindConstraint:
		return "constraint violation"
	case KindUnavailable:
		return "store unavailable"
	default:
		return "internal error"
	}
}

// Sentinels matched by (*Error).Is.
var (
	ErrNotFound    = errors.New("not found")
	ErrInvalid     = errors.New("invalid input")
	ErrConstraint  = errors.New("constraint violation")
	ErrUnavailable = errors.New("store unavailable")
)

// Error is a classified store error.
type Error struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInvalid:
		return e.Kind == KindInvalid
	case ErrConstraint:
		return e.Kind == KindConstraint
	case ErrUnavailable:
		return e.Kind == KindUnavailable
	}
	return false
}

// New returns an error of the given kind.
func New(op string, kind Kind, err error) *Error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Classify wraps a driver error with the kind it represents.
// A nil err returns nil; an already classified error keeps its kind.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return &Error{Op: op, Kind: e.Kind, Err: err}
	}

	return &Error{Op: op, Kind: kindOf(err), Err: err}
}

func kindOf(err error) Kind {
	if errors.Is(err, sql.ErrNoRows) {
		return KindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgKind(pgErr.Code)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code {
		case sqlite3.ErrConstraint:
			return KindConstraint
		case sqlite3.ErrBusy, sqlite3.ErrLocked, sqlite3.ErrCantOpen:
			return KindUnavailable
		case sqlite3.ErrMismatch, sqlite3.ErrRange, sqlite3.ErrTooBig:
			return KindInvalid
		}
		return KindInternal
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return KindUnavailable
	}

	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return KindUnavailable
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindUnavailable
	}

	return KindInternal
}

// pgKind maps a SQLSTATE code by its class.
func pgKind(code string) Kind {
	if len(code) < 2 {
		return KindInternal
	}
	switch code[:2] {
	case "23": // integrity constraint violation
		return KindConstraint
	case "22": // data exception
		return KindInvalid
	case "08", "53", "57": // connection, insufficient resources, operator intervention
		return KindUnavailable
	}
	return KindInternal
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks v's `validate` struct tags and reports failures as KindInvalid.
func Validate(op string, v interface{}) error {
	if err := validate.Struct(v); err != nil {
		return New(op, KindInvalid, err)
	}
	return nil
}
