package contract

import (
	"fmt"
	"reflect"

	"github.com/google/uuid"
)

type uuidValidator struct{}

func (uuidValidator) Check(method, name string, value any) error {
	if value != nil {
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
			// uuid.Parse also accepts urn and braced forms; only the canonical 36-char form passes.
			if s := rv.String(); len(s) == 36 {
				if _, err := uuid.Parse(s); err == nil {
					return nil
				}
			}
		}
	}
	return newViolation(method, name, value, "uuid",
		fmt.Sprintf("expected %s to be a valid UUID", name),
		nil,
	)
}

func (uuidValidator) String() string { return "uuid" }

// UUID accepts strings in canonical UUID form.
var UUID = NewChain("uuid", String, uuidValidator{})
