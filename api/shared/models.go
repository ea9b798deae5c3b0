/* models.go
 * This file contains the structs and types that are shared between sub packages
 */

package shared

import (
	"fmt"
	"strings"
)

type User struct {
	UserID   string
	Username string
}

// RegulationMode describes whether an event is governed by the DUPR rating
// authority. Regulated events carry extra anti-fraud constraints on who may
// enter a score.
type RegulationMode string

const (
	RegulationNone     RegulationMode = "none"
	RegulationOptional RegulationMode = "optional"
	RegulationRequired RegulationMode = "required"
)

// ParseRegulationMode converts a string (case insensitive) into a RegulationMode
// Preconditions: Receives a string containing one of none, optional or required
// Postconditions: Returns the RegulationMode, or an error if the string is not a known mode
func ParseRegulationMode(str string) (RegulationMode, error) {
	str = strings.TrimSpace(str)
	str = strings.ToLower(str)

	switch str {
	case "none":
		return RegulationNone, nil
	case "optional":
		return RegulationOptional, nil
	case "required":
		return RegulationRequired, nil
	}
	return "", fmt.Errorf("invalid regulation mode: %q", str)
}
