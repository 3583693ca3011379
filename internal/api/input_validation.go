package api

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = normalizeEmail(credentials.Email)
	if credentials.Email == "" || credentials.Password == "" {
		return credentialsInput{}, errors.New("missing credentials")
	}
	return credentials, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistrationCredentials(credentials credentialsInput) string {
	if _, err := mail.ParseAddress(credentials.Email); err != nil {
		return "invalid email"
	}
	if !passwordLengthRegex.MatchString(credentials.Password) {
		return "password must be at least 8 characters"
	}
	if !passwordUpperRegex.MatchString(credentials.Password) ||
		!passwordLowerRegex.MatchString(credentials.Password) ||
		!passwordDigitRegex.MatchString(credentials.Password) {
		return "password must contain upper and lower case letters and a digit"
	}
	return ""
}
