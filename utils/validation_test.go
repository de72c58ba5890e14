package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+1234567890", "1234567890", "+1 (234) 567-890"}
	for _, p := range valid {
		assert.True(t, ValidatePhone(p), "expected %q to be valid", p)
	}

	invalid := []string{"", "abc", "0123456", "+"}
	for _, p := range invalid {
		assert.False(t, ValidatePhone(p), "expected %q to be invalid", p)
	}
}
