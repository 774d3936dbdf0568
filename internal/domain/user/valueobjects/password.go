package valueobjects

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength = 8
	// bcrypt reads at most 72 bytes of input.
	MaxPasswordBytes = 72
)

var (
	ErrPasswordTooShort = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong  = errors.New("password must not exceed 72 bytes")
	ErrPasswordTooWeak  = errors.New("password must contain both letters and digits")
)

// Password is a plaintext password that passed the shop's policy. It only
// lives long enough to be hashed.
type Password struct {
	value string
}

// NewPassword counts length in characters so accented Vietnamese letters
// are not penalised, but caps the encoded size at the bcrypt limit.
func NewPassword(plain string) (*Password, error) {
	switch {
	case utf8.RuneCountInString(plain) < MinPasswordLength:
		return nil, ErrPasswordTooShort
	case len(plain) > MaxPasswordBytes:
		return nil, ErrPasswordTooLong
	case strings.IndexFunc(plain, unicode.IsLetter) < 0,
		strings.IndexFunc(plain, unicode.IsDigit) < 0:
		return nil, ErrPasswordTooWeak
	}
	return &Password{value: plain}, nil
}

func (p *Password) String() string {
	return p.value
}
