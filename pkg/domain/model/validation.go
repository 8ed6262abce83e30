package model

import (
	"fmt"
	"strings"

	"github.com/m-mizutani/gitminer/pkg/domain/types"
)

// ValidationError aggregates every field violation found in a payload. Each
// entry is a human readable message naming the offending field.
type ValidationError struct {
	Violations []string
}

func (x *ValidationError) Error() string {
	return "validation failed: " + strings.Join(x.Violations, "; ")
}

func (x *ValidationError) Unwrap() error {
	return types.ErrValidationFailed
}

type fieldViolation struct {
	field string
	rule  string
}

type violations []fieldViolation

func (x *violations) requireString(field, value string) {
	if value == "" {
		*x = append(*x, fieldViolation{field: field, rule: "cannot be empty"})
	}
}

func (x *violations) null(field string) {
	*x = append(*x, fieldViolation{field: field, rule: "cannot be null"})
}

func (x *violations) merge(prefix string, child violations) {
	for _, c := range child {
		*x = append(*x, fieldViolation{field: prefix + "." + c.field, rule: c.rule})
	}
}

func (x violations) err() error {
	if len(x) == 0 {
		return nil
	}

	msgs := make([]string, len(x))
	for i, v := range x {
		msgs[i] = fmt.Sprintf("The field %s %s.", v.field, v.rule)
	}
	return &ValidationError{Violations: msgs}
}
