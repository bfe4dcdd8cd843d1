package auth

import (
	"strings"

	"travelhub/config"
	"travelhub/internal/domain/service"
	"travelhub/internal/errors"
)

const (
	HasherDigest = "digest"
	HasherBcrypt = "bcrypt"
)

// NewPasswordHasher selects the password hasher named by auth.passwordHasher.
func NewPasswordHasher(cfg *config.Config) (service.PasswordHasher, error) {
	authCfg := cfg.Auth
	if authCfg == nil {
		authCfg = &config.AuthConfig{}
	}

	switch strings.ToLower(strings.TrimSpace(authCfg.PasswordHasher)) {
	case "", HasherDigest:
		return NewDigestHasher(authCfg.Pepper, authCfg.DigestIterations), nil
	case HasherBcrypt:
		return NewBcryptHasher(authCfg.BcryptCost), nil
	default:
		return nil, errors.Errorf("unsupported password hasher: %s", authCfg.PasswordHasher)
	}
}
