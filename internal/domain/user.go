package domain

import (
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyUsername       = errors.New("username cannot be empty")
	ErrUsernameTooShort    = errors.New("username must be at least 6 characters long")
	ErrUsernameBadChars    = errors.New("username may only contain letters, digits and underscores")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// passwordSpecialChars are the special characters accepted in passwords.
const passwordSpecialChars = "$@!"

// maxPasswordBytes is the longest accepted plaintext password. bcrypt
// only hashes the first 72 bytes of its input, so anything longer is
// rejected up front instead of being silently truncated.
const maxPasswordBytes = 72

// User represents a registered account. Identity is immutable once
// created; the credential is stored only as an opaque hash.
type User struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
}

// NewUser creates a new User with the given username and pre-hashed
// password. It generates a new UUID for the user ID and sets the creation
// timestamp. Returns an error if validation fails.
//
// NOTE: hashedPassword must already be hashed; plaintext passwords are
// validated separately with ValidatePassword before hashing.
func NewUser(username, hashedPassword string) (*User, error) {
	user := &User{
		ID:             uuid.New(),
		Username:       username,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if err := ValidateUsername(u.Username); err != nil {
		return err
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// ValidateUsername checks that a username is at least 6 characters and
// consists only of letters, digits and underscores.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrEmptyUsername
	}
	if len(username) < 6 {
		return ErrUsernameTooShort
	}
	for _, c := range username {
		if !unicode.IsLetter(c) && !isASCIIDigit(c) && c != '_' {
			return ErrUsernameBadChars
		}
	}
	return nil
}

// ValidatePassword checks a plaintext password against the account
// password policy: 8 to 72 bytes, at least one lowercase letter, one
// uppercase letter, one digit and one of "$@!", with no characters
// outside those classes.
func ValidatePassword(password string) error {
	if len(password) < 8 || len(password) > maxPasswordBytes {
		return ErrInvalidPassword
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case isASCIIDigit(c):
			hasDigit = true
		case strings.ContainsRune(passwordSpecialChars, c):
			hasSpecial = true
		case unicode.IsLetter(c):
			// Non-cased letters count as letters but satisfy no class.
		default:
			return ErrInvalidPassword
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSpecial {
		return ErrInvalidPassword
	}
	return nil
}

func isASCIIDigit(c rune) bool {
	return c >= '0' && c <= '9'
}
