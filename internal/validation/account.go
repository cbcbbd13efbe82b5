package validation

import (
	"regexp"
	"strings"
)

const (
	AuthCodeMaxLength = 6
	PasswordMinLength = 8
	PasswordMaxLength = 16
	NicknameMinLength = 2
	NicknameMaxLength = 10
)

// PasswordSymbols is the set of symbols a password must draw from.
const PasswordSymbols = "$@!%*#?."

var (
	emailPattern         = regexp.MustCompile(`^[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+$`)
	emailProgressPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-/=?^{}~!#$&'*|@-]*$`)

	passwordPattern         = regexp.MustCompile(`^[A-Za-z0-9$@!%*#?.]{8,16}$`)
	passwordLetter          = regexp.MustCompile(`[A-Za-z]`)
	passwordDigit           = regexp.MustCompile(`[0-9]`)
	passwordSymbol          = regexp.MustCompile(`[$@!%*#?.]`)
	passwordProgressPattern = regexp.MustCompile(`^[A-Za-z0-9$@!%*#?.]*$`)

	nicknamePattern         = regexp.MustCompile(`^[A-Za-z0-9가-힣]{2,10}$`)
	nicknameHangul          = regexp.MustCompile(`[가-힣]`)
	nicknameLatinRun        = regexp.MustCompile(`[A-Za-z]{2,}`)
	nicknameProgressPattern = regexp.MustCompile(`^[가-힣A-Za-z0-9]*$`)
)

func IsValidEmail(email string) bool {
	if isBlank(email) {
		return false
	}
	return emailPattern.MatchString(email)
}

// EmailInProgress reports whether every character typed so far may appear in
// an email address.
func EmailInProgress(email string) bool {
	return emailProgressPattern.MatchString(email)
}

// IsValidPassword requires 8-16 characters drawn from letters, digits and
// PasswordSymbols, with at least one of each class.
func IsValidPassword(password string) bool {
	if isBlank(password) {
		return false
	}
	return passwordPattern.MatchString(password) &&
		passwordLetter.MatchString(password) &&
		passwordDigit.MatchString(password) &&
		passwordSymbol.MatchString(password)
}

func PasswordInProgress(password string) bool {
	return passwordProgressPattern.MatchString(password)
}

// IsValidNickname accepts 2-10 Hangul syllables, Latin letters or digits.
// Without any Hangul the nickname needs two Latin letters in a row.
func IsValidNickname(nickname string) bool {
	if isBlank(nickname) {
		return false
	}
	if !nicknamePattern.MatchString(nickname) {
		return false
	}
	return nicknameHangul.MatchString(nickname) || nicknameLatinRun.MatchString(nickname)
}

func NicknameInProgress(nickname string) bool {
	return nicknameProgressPattern.MatchString(nickname)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
