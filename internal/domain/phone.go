package domain

import "regexp"

// Phone is a recipient number in international form: an optional leading
// '+' followed by 8 to 15 digits.
type Phone string

var phonePattern = regexp.MustCompile(`^\+?[0-9]{8,15}$`)

// ParsePhone validates a candidate string and returns it as a Phone.
// The second return value reports whether the candidate was acceptable.
func ParsePhone(s string) (Phone, bool) {
	if !phonePattern.MatchString(s) {
		return "", false
	}
	return Phone(s), true
}

func (p Phone) String() string { return string(p) }
