package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leggiero/spotmap/internal/domain"
	"github.com/leggiero/spotmap/internal/validate"
)

func ptr[T any](v T) *T { return &v }

func TestStruct_LocationInput(t *testing.T) {
	tests := []struct {
		name      string
		input     domain.LocationInput
		wantParam string
	}{
		{
			name:  "all required present",
			input: domain.LocationInput{Name: "Spring", Lat: ptr(45.0), Lng: ptr(7.5)},
		},
		{
			name:  "zero coordinates are present",
			input: domain.LocationInput{Name: "Null Island", Lat: ptr(0.0), Lng: ptr(0.0)},
		},
		{
			name:      "missing name reported first",
			input:     domain.LocationInput{},
			wantParam: "name",
		},
		{
			name:      "missing lat before lng",
			input:     domain.LocationInput{Name: "Spring"},
			wantParam: "lat",
		},
		{
			name:      "missing lng",
			input:     domain.LocationInput{Name: "Spring", Lat: ptr(45.0)},
			wantParam: "lng",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.input)

			if tt.wantParam == "" {
				require.NoError(t, err)
				return
			}
			ve, ok := domain.AsValidationError(err)
			require.True(t, ok, "expected a ValidationError, got %v", err)
			assert.Equal(t, tt.wantParam, ve.Param)
			assert.Equal(t, "Missing `"+tt.wantParam+"`", ve.Reason)
		})
	}
}

func TestStruct_Location_RequiresID(t *testing.T) {
	err := validate.Struct(domain.Location{Name: "Spring"})

	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "id", ve.Param)
}

func TestStruct_NonStructPasses(t *testing.T) {
	assert.NoError(t, validate.Struct([]domain.Location{{}}))
	assert.NoError(t, validate.Struct(nil))
}
