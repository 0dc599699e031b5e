package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestMetadataForKnownCodes(t *testing.T) {
	cases := []struct {
		code   Code
		status int
	}{
		{CodeValidation, http.StatusBadRequest},
		{CodeNotFound, http.StatusNotFound},
		{CodeDuplicateLog, http.StatusConflict},
		{CodeConflict, http.StatusConflict},
		{CodeInternal, http.StatusInternalServerError},
		{CodeDependency, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		if got := MetadataFor(tc.code).HTTPStatus; got != tc.status {
			t.Fatalf("code %s: expected status %d got %d", tc.code, tc.status, got)
		}
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("NOPE"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected internal fallback, got %d", meta.HTTPStatus)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeDependency, cause, "load habit")

	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}
	if As(err).Code() != CodeDependency {
		t.Fatalf("unexpected code %s", As(err).Code())
	}
}

func TestWrapNilCauseBehavesLikeNew(t *testing.T) {
	err := Wrap(CodeValidation, nil, "missing field")
	if err.Unwrap() != nil {
		t.Fatal("expected no cause")
	}
	if err.Error() != "VALIDATION_ERROR: missing field" {
		t.Fatalf("unexpected error string %q", err.Error())
	}
}

func TestAsFindsNestedTypedError(t *testing.T) {
	inner := New(CodeDuplicateLog, "already logged")
	outer := fmt.Errorf("saving log: %w", inner)

	typed := As(outer)
	if typed == nil || typed.Code() != CodeDuplicateLog {
		t.Fatalf("expected duplicate log code, got %v", typed)
	}
}

func TestDumpIncludesPostgresFields(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "streak_logs_habit_id_log_date_key",
		TableName:      "streak_logs",
	}
	dump := Dump(Wrap(CodeDuplicateLog, pgErr, "insert log"))

	if dump.PGCode != "23505" {
		t.Fatalf("expected pg code 23505 got %q", dump.PGCode)
	}
	if dump.PGConstraint != "streak_logs_habit_id_log_date_key" {
		t.Fatalf("unexpected constraint %q", dump.PGConstraint)
	}
	if dump.Code != CodeDuplicateLog {
		t.Fatalf("unexpected code %q", dump.Code)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(&pgconn.PgError{Code: "23505"}) {
		t.Fatal("expected pg unique violation to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatal("foreign key violation should not match")
	}
	if !IsUniqueViolation(errors.New("UNIQUE constraint failed: streak_logs.habit_id, streak_logs.log_date")) {
		t.Fatal("expected sqlite unique violation to match")
	}
	if IsUniqueViolation(nil) {
		t.Fatal("nil should not match")
	}
}
