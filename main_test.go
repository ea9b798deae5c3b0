/* main_test.go
 * Contains unit tests for main.go functions
 */

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSplitIDList tests a normal comma separated list
func TestSplitIDList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitIDList("a,b,c"))
}

// TestSplitIDList_WithWhitespace tests ids with surrounding whitespace
func TestSplitIDList_WithWhitespace(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitIDList(" a , b "))
}

// TestSplitIDList_EmptyEntries tests that empty entries are dropped
func TestSplitIDList_EmptyEntries(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitIDList("a,,b,"))
}

// TestSplitIDList_EmptyString tests the empty string
func TestSplitIDList_EmptyString(t *testing.T) {
	assert.Nil(t, splitIDList(""))
}

// TestSplitIDList_SingleID tests a single id with no commas
func TestSplitIDList_SingleID(t *testing.T) {
	assert.Equal(t, []string{"a"}, splitIDList("a"))
}
