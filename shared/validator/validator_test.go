package validator_test

import (
	"math"
	"strings"
	"testing"

	"floorplan/shared/failure"
	"floorplan/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type placement struct {
	Name   string  `json:"name"   validate:"notblank,max=30"`
	Shape  string  `json:"shape"  validate:"oneof=square circle"`
	CoordX float64 `json:"coordX" validate:"finite"`
	Color  string  `json:"color"  validate:"omitempty,hexcolor"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		data      placement
		wantField string
	}{
		{
			name: "valid struct",
			data: placement{Name: "M-1", Shape: "square", CoordX: 10, Color: "#98FF98"},
		},
		{
			name:      "blank name",
			data:      placement{Name: "   ", Shape: "square"},
			wantField: "name",
		},
		{
			name:      "unknown shape",
			data:      placement{Name: "M-1", Shape: "hexagon"},
			wantField: "shape",
		},
		{
			name:      "infinite coordinate",
			data:      placement{Name: "M-1", Shape: "circle", CoordX: math.Inf(1)},
			wantField: "coordX",
		},
		{
			name:      "NaN coordinate",
			data:      placement{Name: "M-1", Shape: "circle", CoordX: math.NaN()},
			wantField: "coordX",
		},
		{
			name:      "bad color",
			data:      placement{Name: "M-1", Shape: "circle", Color: "green"},
			wantField: "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantField == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantField, failure.GetField(err))
			assert.Contains(t, err.Error(), tt.wantField)
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "floor name in range", field: "Terraza", tag: "min=3,max=30", expectError: false},
		{name: "floor name too short", field: "T", tag: "min=3,max=30", expectError: true},
		{name: "valid uuid", field: "4a6a0b9c-1f7e-4c55-9a55-7a2d5f4d2b10", tag: "uuid", expectError: false},
		{name: "invalid uuid", field: "temp-1", tag: "uuid", expectError: true},
		{name: "finite float", field: 12.5, tag: "finite", expectError: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"VIP","shape":"circle","coordX":50}`,
			expectError: false,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"name":"VIP","shape":"star"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data placement
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
