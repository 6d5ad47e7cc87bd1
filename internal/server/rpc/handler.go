package rpc

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/microfarm/accounts/internal/common"
	"github.com/microfarm/accounts/internal/server/services"
)

// Wire error messages, stable for existing callers.
const (
	errAccountNotFound = "Account does not exist."
	errCannotActivate  = "Account cannot be activated."
	errInvalidToken    = "Invalid token"
	errCredentials     = "Credentials failed."
	errInvalidBody     = "Invalid request body."
	errInternal        = "internal error"
)

func (s *Server) handleCreateAccount(c fiber.Ctx) error {
	log := s.log(c)
	log.Info(c.Context(), "receiving account creation request")

	params, fieldErrs, err := decodeParams(c.Body(), []string{"email", "password"}, "name")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"err": errInvalidBody})
	}
	if email, ok := params["email"]; ok && !validEmail(email) {
		fieldErrs.add("email", msgInvalidEmail)
	}
	if len(fieldErrs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fieldErrs)
	}

	otp, err := s.accounts.Create(c.Context(), services.CreateAccountParams{
		Email:    params["email"],
		Password: params["password"],
		Name:     params["name"],
	})
	if err != nil {
		var dup *common.AlreadyExistsError
		if errors.As(err, &dup) {
			return c.Status(http.StatusConflict).JSON(fiber.Map{"err": dup.Message})
		}
		return s.internalError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{"otp": otp})
}

func (s *Server) handleRequestAccountToken(c fiber.Ctx) error {
	params, fieldErrs, err := decodeParams(c.Body(), []string{"email"})
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"err": errInvalidBody})
	}
	if len(fieldErrs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fieldErrs)
	}

	otp, err := s.accounts.RequestToken(c.Context(), params["email"])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"err": errAccountNotFound})
		}
		return s.internalError(c, err)
	}

	return c.JSON(fiber.Map{"otp": otp})
}

func (s *Server) handleVerifyAccount(c fiber.Ctx) error {
	params, fieldErrs, err := decodeParams(c.Body(), []string{"email", "otp"})
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"err": errInvalidBody})
	}
	if len(fieldErrs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fieldErrs)
	}

	view, err := s.accounts.VerifyAccount(c.Context(), params["email"], params["otp"])
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorCannotActivate):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"err": errCannotActivate})
		case errors.Is(err, common.ErrorInvalidToken):
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"err": errInvalidToken})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(view)
}

func (s *Server) handleVerifyCredentials(c fiber.Ctx) error {
	params, fieldErrs, err := decodeParams(c.Body(), []string{"email", "password"})
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"err": errInvalidBody})
	}
	if len(fieldErrs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fieldErrs)
	}

	view, err := s.accounts.VerifyCredentials(c.Context(), params["email"], params["password"])
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"err": errAccountNotFound})
		case errors.Is(err, common.ErrorCredentialsFailed):
			return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"err": errCredentials})
		default:
			return s.internalError(c, err)
		}
	}

	return c.JSON(view)
}

func (s *Server) handleGetAccount(c fiber.Ctx) error {
	params, fieldErrs, err := decodeParams(c.Body(), []string{"email"})
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"err": errInvalidBody})
	}
	if len(fieldErrs) > 0 {
		return c.Status(http.StatusBadRequest).JSON(fieldErrs)
	}

	view, err := s.accounts.Get(c.Context(), params["email"])
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"err": errAccountNotFound})
		}
		return s.internalError(c, err)
	}

	return c.JSON(view)
}

// internalError logs the fault and hides it from the caller; infrastructure
// detail never crosses the wire.
func (s *Server) internalError(c fiber.Ctx, err error) error {
	s.log(c).Error(c.Context(), err.Error())
	return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"err": errInternal})
}
