package main

import (
	"fmt"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func runToken(subject, role string, ttl time.Duration) error {
	userID := uuid.New()
	if subject != "" {
		parsed, err := uuid.Parse(subject)
		if err != nil {
			return errors.Wrap(err, "invalid --sub")
		}
		userID = parsed
	}
	granted := entity.Roles{entity.Role(role)}
	if !entity.Role(role).IsValid() {
		return errors.Errorf("invalid --role %q", role)
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}
	tokens, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokens.GenerateAccessToken(userID, granted.ToStrings(), ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)

	return nil
}
