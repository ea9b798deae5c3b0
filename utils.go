/* utils.go
 * Utility functions used across the application
 */

package main

import (
	"strings"
)

// splitIDList converts a comma separated id list into a slice of ids
// Preconditions: Receives a string of comma separated ids, possibly with whitespace
// Postconditions: Returns the non-empty ids in order
func splitIDList(str string) []string {
	var ids []string
	for _, part := range strings.Split(str, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}
