package author

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	maxAddressLength = 254
	maxLocalLength   = 64
	maxLabelLength   = 63
)

// atextSpecials are the non-alphanumeric characters allowed in a dot-atom local part.
const atextSpecials = "!#$%&'*+-/=?^_`{|}~"

// validateEmail checks the syntax of a bare address (local-part@domain).
// It performs no DNS or deliverability checks.
func validateEmail(address string) error {
	if address == "" {
		return errors.New("The email address is empty.")
	}
	if strings.Count(address, "@") != 1 {
		return errors.New("The email address is not valid. It must have exactly one @-sign.")
	}
	if utf8.RuneCountInString(address) > maxAddressLength {
		return fmt.Errorf("The email address is too long (%d characters too many).", utf8.RuneCountInString(address)-maxAddressLength)
	}

	local, domain, _ := strings.Cut(address, "@")
	if local == "" {
		return errors.New("There must be something before the @-sign.")
	}
	if domain == "" {
		return errors.New("There must be something after the @-sign.")
	}

	if err := validateLocalPart(local); err != nil {
		return err
	}
	return validateDomain(domain)
}

func validateLocalPart(local string) error {
	if utf8.RuneCountInString(local) > maxLocalLength {
		return fmt.Errorf("The email address is too long before the @-sign (%d characters too many).", utf8.RuneCountInString(local)-maxLocalLength)
	}
	if bad := invalidRunes(local, isLocalRune); bad != "" {
		return fmt.Errorf("The email address contains invalid characters before the @-sign: %s.", bad)
	}
	if strings.HasPrefix(local, ".") {
		return errors.New("An email address cannot start with a period.")
	}
	if strings.HasSuffix(local, ".") {
		return errors.New("An email address cannot have a period immediately before the @-sign.")
	}
	if strings.Contains(local, "..") {
		return errors.New("An email address cannot have two periods in a row.")
	}
	return nil
}

func validateDomain(domain string) error {
	if bad := invalidRunes(domain, isDomainRune); bad != "" {
		return fmt.Errorf("The part after the @-sign contains invalid characters: %s.", bad)
	}
	if strings.HasPrefix(domain, ".") {
		return errors.New("An email address cannot have a period immediately after the @-sign.")
	}
	if strings.HasSuffix(domain, ".") {
		return errors.New("An email address cannot end with a period.")
	}
	if strings.Contains(domain, "..") {
		return errors.New("An email address cannot have two periods in a row.")
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return errors.New("The part after the @-sign is not valid. It should have a period.")
	}
	for _, label := range labels {
		if utf8.RuneCountInString(label) > maxLabelLength {
			return errors.New("After the @-sign, periods cannot be separated by so many characters.")
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return errors.New("The part after the @-sign cannot start or end with a hyphen.")
		}
	}

	tld := labels[len(labels)-1]
	if strings.IndexFunc(tld, func(r rune) bool { return !unicode.IsDigit(r) }) < 0 {
		return errors.New("The part after the @-sign is not valid. It is not within a valid top-level domain.")
	}
	return nil
}

func isLocalRune(r rune) bool {
	if r == '.' || strings.ContainsRune(atextSpecials, r) {
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDomainRune(r rune) bool {
	return r == '.' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// invalidRunes lists, in order of first appearance, the runes of s rejected by ok.
func invalidRunes(s string, ok func(rune) bool) string {
	var bad []string
	seen := make(map[rune]bool)
	for _, r := range s {
		if ok(r) || seen[r] {
			continue
		}
		seen[r] = true
		bad = append(bad, quoteRune(r))
	}
	return strings.Join(bad, ", ")
}

func quoteRune(r rune) string {
	if unicode.IsSpace(r) || !unicode.IsPrint(r) {
		return fmt.Sprintf("%U", r)
	}
	return string(r)
}
