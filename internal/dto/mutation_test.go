package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/listique/client/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestMutationIntent(t *testing.T) {

	payload := json.RawMessage(`{"title": "Test Ticket"}`)

	tests := []struct {
		name    string
		intent  dto.MutationIntent
		wantErr bool
	}{
		{
			name:   "create needs no id",
			intent: dto.MutationIntent{Kind: dto.Create, Payload: payload},
		},
		{
			name:   "update carries id and payload",
			intent: dto.MutationIntent{Kind: dto.Update, ResourceId: "42", Payload: payload},
		},
		{
			name:   "delete carries only the id",
			intent: dto.MutationIntent{Kind: dto.Delete, ResourceId: "42"},
		},
		{
			name:    "update without an id is rejected",
			intent:  dto.MutationIntent{Kind: dto.Update, Payload: payload},
			wantErr: true,
		},
		{
			name:    "delete with a payload is rejected",
			intent:  dto.MutationIntent{Kind: dto.Delete, ResourceId: "42", Payload: payload},
			wantErr: true,
		},
		{
			name:    "delete without an id is rejected",
			intent:  dto.MutationIntent{Kind: dto.Delete},
			wantErr: true,
		},
		{
			name:    "unknown kinds are rejected",
			intent:  dto.MutationIntent{Kind: "PATCH", ResourceId: "42", Payload: payload},
			wantErr: true,
		},
		{
			name:    "the kind is mandatory",
			intent:  dto.MutationIntent{ResourceId: "42", Payload: payload},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.intent.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.Nil(t, err)
			}
		})
	}
}
