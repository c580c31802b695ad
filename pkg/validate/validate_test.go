package validate

import (
	"errors"
	"testing"
)

type sampleInput struct {
	Name   string `validate:"required,min=2,max=10"`
	Email  string `validate:"required,email"`
	Status string `validate:"omitempty,oneof=pending confirmed completed cancelled"`
}

func TestStruct(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		input      sampleInput
		wantFields []string
	}{
		{
			name:  "valid input",
			input: sampleInput{Name: "Priya", Email: "priya@example.com", Status: "pending"},
		},
		{
			name:       "missing everything",
			input:      sampleInput{},
			wantFields: []string{"name", "email"},
		},
		{
			name:       "bad email shape",
			input:      sampleInput{Name: "Priya", Email: "not-an-email"},
			wantFields: []string{"email"},
		},
		{
			name:       "status outside vocabulary",
			input:      sampleInput{Name: "Priya", Email: "priya@example.com", Status: "done"},
			wantFields: []string{"status"},
		},
		{
			name:       "name too short",
			input:      sampleInput{Name: "P", Email: "priya@example.com"},
			wantFields: []string{"name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&tt.input)
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Struct() unexpected error: %v", err)
				}
				return
			}

			var fieldErrs FieldErrors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("Struct() error = %v, want FieldErrors", err)
			}
			if len(fieldErrs) != len(tt.wantFields) {
				t.Fatalf("got %d field errors %v, want %d", len(fieldErrs), fieldErrs, len(tt.wantFields))
			}
			for i, want := range tt.wantFields {
				if fieldErrs[i].Field != want {
					t.Errorf("field[%d] = %q, want %q", i, fieldErrs[i].Field, want)
				}
				if fieldErrs[i].Message == "" {
					t.Errorf("field[%d] has empty message", i)
				}
			}
		})
	}
}
