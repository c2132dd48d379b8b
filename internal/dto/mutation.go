package dto

import "encoding/json"

type MutationKind string

const (
	Create MutationKind = "CREATE"
	Update MutationKind = "UPDATE"
	Delete MutationKind = "DELETE"
)

// MutationIntent describes a write against a resource collection. Create
// carries no id (the backend assigns one), Delete carries no payload.
type MutationIntent struct {
	Kind       MutationKind    `json:"kind" validate:"required,oneof=CREATE UPDATE DELETE"`
	ResourceId string          `json:"resourceId,omitempty" validate:"required_unless=Kind CREATE"`
	Payload    json.RawMessage `json:"payload,omitempty" validate:"required_unless=Kind DELETE,excluded_if=Kind DELETE"`
}

func (m MutationIntent) Validate() error {
	return validate.Struct(m)
}
