// pkg/utils/colors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test hex color normalization and RGBA conversion

package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/stromschlag/pkg/errors"
	"github.com/arthur-debert/stromschlag/pkg/utils"
)

func TestEnsureHex(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"with_hash", "#1D3557", "#1d3557", false},
		{"without_hash", "f1faee", "#f1faee", false},
		{"surrounding_space", "  #AbCdEf ", "#abcdef", false},
		{"too_short", "#fff", "", true},
		{"not_hex", "#gggggg", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := utils.EnsureHex(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColor))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexToRGBA(t *testing.T) {
	r, g, b, a, err := utils.HexToRGBA("#1d3557", 255)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x1d), r)
	assert.Equal(t, uint8(0x35), g)
	assert.Equal(t, uint8(0x57), b)
	assert.Equal(t, uint8(255), a)

	_, _, _, _, err = utils.HexToRGBA("nope", 255)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidColor))
}
