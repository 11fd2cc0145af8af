package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Branch short code: 2-10 uppercase letters/digits
	BranchCodePattern = `^[A-Z0-9]{2,10}$`

	// Contact number: optional +, 7-15 digits
	ContactNumberPattern = `^\+?\d{7,15}$`

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 150
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	BranchCode    *regexp.Regexp
	ContactNumber *regexp.Regexp
}{
	BranchCode:    regexp.MustCompile(BranchCodePattern),
	ContactNumber: regexp.MustCompile(ContactNumberPattern),
}

// ValidName checks name length bounds after trimming.
func ValidName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= NameMinLength && n <= NameMaxLength
}

// ValidBranchCode checks the branch short code format.
func ValidBranchCode(code string) bool {
	return CompiledPatterns.BranchCode.MatchString(strings.TrimSpace(code))
}

// ValidContactNumbers checks that every contact number matches the phone
// pattern. Duplicates are allowed; the list is ordered and non-unique.
func ValidContactNumbers(numbers []string) bool {
	for _, n := range numbers {
		if !CompiledPatterns.ContactNumber.MatchString(strings.TrimSpace(n)) {
			return false
		}
	}
	return true
}
