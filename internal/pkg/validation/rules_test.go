package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidName(t *testing.T) {
	assert.True(t, ValidName("Horizon State University"))
	assert.False(t, ValidName("A"))
	assert.False(t, ValidName(""))
	assert.False(t, ValidName(strings.Repeat("x", 151)))
}

func TestValidBranchCode(t *testing.T) {
	assert.True(t, ValidBranchCode("CSE"))
	assert.True(t, ValidBranchCode("ECE2"))
	assert.False(t, ValidBranchCode("cse"))
	assert.False(t, ValidBranchCode("C"))
	assert.False(t, ValidBranchCode("TOOLONGBRANCHCODE"))
}

func TestValidContactNumbers(t *testing.T) {
	assert.True(t, ValidContactNumbers(nil))
	assert.True(t, ValidContactNumbers([]string{"+905551112233", "05551112233"}))
	assert.False(t, ValidContactNumbers([]string{"not-a-number"}))
	assert.False(t, ValidContactNumbers([]string{"123"}))
}
