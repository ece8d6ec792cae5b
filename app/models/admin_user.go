package models

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/scrypt"
)

const (
	MinAdminUsernameLength = 3
	MinAdminPasswordLength = 8

	// ResetConfirmation must be sent verbatim to wipe the admin account.
	ResetConfirmation = "RESET"
)

// scrypt parameters; the stored hash is "<salt-hex>:<key-hex>".
const (
	scryptN       = 32768
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 64
	scryptSaltLen = 16
)

// AdminUser is the single moderation account. At most one row exists at any
// time: setup refuses to create a second and the reset flow clears the table.
type AdminUser struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;type:varchar(100);not null" json:"username" validate:"required,min=3,max=100"`
	PasswordHash string    `gorm:"type:varchar(200);not null" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *AdminUser) Validate() error {
	v := validator.New()

	return v.Struct(u)
}

// CreateAdminUser hashes the password and returns a validated account record.
func CreateAdminUser(username string, password string) (*AdminUser, error) {
	pw, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &AdminUser{
		Username:     username,
		PasswordHash: pw,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	return u, nil
}

// HashPassword derives a salted scrypt key with a fresh random salt.
func HashPassword(password string) (string, error) {
	salt := make([]byte, scryptSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// CheckPasswordHash recomputes the derived key with the stored salt and
// compares in constant time. Unknown or malformed hashes are a mismatch,
// never an error.
func CheckPasswordHash(password, stored string) bool {
	parts := strings.SplitN(stored, ":", 2)
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	want, err := hex.DecodeString(parts[1])
	if err != nil || len(want) != scryptKeyLen {
		return false
	}

	got, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare(want, got) == 1
}

// CheckPassword verifies the given password against the stored hash.
func (u *AdminUser) CheckPassword(password string) bool {
	return CheckPasswordHash(password, u.PasswordHash)
}
