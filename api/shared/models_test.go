/* models_test.go
 * Contains unit tests for models.go functions
 */

package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseRegulationMode_None tests parsing "none"
func TestParseRegulationMode_None(t *testing.T) {
	mode, err := ParseRegulationMode("none")

	assert.NoError(t, err)
	assert.Equal(t, RegulationNone, mode)
}

// TestParseRegulationMode_Optional tests parsing "optional"
func TestParseRegulationMode_Optional(t *testing.T) {
	mode, err := ParseRegulationMode("optional")

	assert.NoError(t, err)
	assert.Equal(t, RegulationOptional, mode)
}

// TestParseRegulationMode_Required tests parsing "required"
func TestParseRegulationMode_Required(t *testing.T) {
	mode, err := ParseRegulationMode("required")

	assert.NoError(t, err)
	assert.Equal(t, RegulationRequired, mode)
}

// TestParseRegulationMode_CaseInsensitive tests mixed case input
func TestParseRegulationMode_CaseInsensitive(t *testing.T) {
	mode, err := ParseRegulationMode("  ReQuIrEd ")

	assert.NoError(t, err)
	assert.Equal(t, RegulationRequired, mode)
}

// TestParseRegulationMode_Invalid tests an unknown mode
func TestParseRegulationMode_Invalid(t *testing.T) {
	_, err := ParseRegulationMode("strict")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regulation mode")
}

// TestParseRegulationMode_Empty tests the empty string
func TestParseRegulationMode_Empty(t *testing.T) {
	_, err := ParseRegulationMode("")

	assert.Error(t, err)
}
