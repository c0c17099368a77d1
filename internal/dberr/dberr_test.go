package dberr

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"no rows", sql.ErrNoRows, KindNotFound},
		{"wrapped no rows", fmt.Errorf("querying: %w", sql.ErrNoRows), KindNotFound},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, KindConstraint},
		{"pg foreign key violation", &pgconn.PgError{Code: "23503"}, KindConstraint},
		{"pg invalid text", &pgconn.PgError{Code: "22P02"}, KindInvalid},
		{"pg connection failure", &pgconn.PgError{Code: "08006"}, KindUnavailable},
		{"pg too many connections", &pgconn.PgError{Code: "53300"}, KindUnavailable},
		{"pg syntax error", &pgconn.PgError{Code: "42601"}, KindInternal},
		{"sqlite constraint", sqlite3.Error{Code: sqlite3.ErrConstraint}, KindConstraint},
		{"sqlite busy", sqlite3.Error{Code: sqlite3.ErrBusy}, KindUnavailable},
		{"sqlite mismatch", sqlite3.Error{Code: sqlite3.ErrMismatch}, KindInvalid},
		{"sqlite generic", sqlite3.Error{Code: sqlite3.ErrError}, KindInternal},
		{"bad conn", driver.ErrBadConn, KindUnavailable},
		{"conn done", sql.ErrConnDone, KindUnavailable},
		{"net error", &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}, KindUnavailable},
		{"unknown", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("op", tt.err)
			if got := KindOf(err); got != tt.want {
				t.Errorf("KindOf = %v, want %v", got, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("classified error should still wrap the original")
			}
		})
	}
}

func TestClassifyNil(t *testing.T) {
	if err := Classify("op", nil); err != nil {
		t.Errorf("Classify(nil) = %v, want nil", err)
	}
}

func TestClassifyKeepsExistingKind(t *testing.T) {
	inner := New("inner", KindInvalid, errors.New("bad"))
	err := Classify("outer", fmt.Errorf("wrapping: %w", inner))

	if KindOf(err) != KindInvalid {
		t.Errorf("kind = %v, want %v", KindOf(err), KindInvalid)
	}
	if !strings.HasPrefix(err.Error(), "outer: ") {
		t.Errorf("error = %q, want outer op prefix", err)
	}
}

func TestErrorIs(t *testing.T) {
	sentinels := map[Kind]error{
		KindNotFound:    ErrNotFound,
		KindInvalid:     ErrInvalid,
		KindConstraint:  ErrConstraint,
		KindUnavailable: ErrUnavailable,
	}

	for kind, sentinel := range sentinels {
		err := fmt.Errorf("context: %w", New("op", kind, nil))
		for other, otherSentinel := range sentinels {
			got := errors.Is(err, otherSentinel)
			if want := other == kind; got != want {
				t.Errorf("errors.Is(%v, %v) = %v, want %v", kind, other, got, want)
			}
		}
		if !errors.Is(err, sentinel) {
			t.Errorf("expected %v to match its sentinel", kind)
		}
	}
}

func TestKindOfPlainError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != KindInternal {
		t.Errorf("KindOf = %v, want %v", got, KindInternal)
	}
}

func TestErrorMessage(t *testing.T) {
	err := New("getting user 7", KindNotFound, sql.ErrNoRows)
	want := "getting user 7: not found: sql: no rows in result set"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	bare := New("adding user", KindConstraint, nil)
	if bare.Error() != "adding user: constraint violation" {
		t.Errorf("Error() = %q", bare.Error())
	}
}

func TestValidate(t *testing.T) {
	type input struct {
		Name  string `validate:"required"`
		Email string `validate:"required,email"`
	}

	if err := Validate("op", input{Name: "Ann", Email: "ann@example.com"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Validate("op", input{Name: "Ann", Email: "not-an-email"})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
