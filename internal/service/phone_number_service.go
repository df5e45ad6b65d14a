package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
	"github.com/sandeshm27/postline/internal/models"
	"github.com/sandeshm27/postline/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

type PhoneNumberService interface {
	Register(ctx context.Context, number, password string) (*models.PhoneNumber, error)
	Authenticate(ctx context.Context, number, password string) (*models.PhoneNumber, error)
	SetActive(ctx context.Context, id string, active bool) (*models.PhoneNumber, error)
	Remove(ctx context.Context, id string) (*models.PhoneNumber, error)
}

type phoneNumberService struct {
	pnr repository.PhoneNumberRepository
}

func NewPhoneNumberService(pnr repository.PhoneNumberRepository) PhoneNumberService {
	return &phoneNumberService{pnr: pnr}
}

func (s *phoneNumberService) Register(ctx context.Context, number, password string) (*models.PhoneNumber, error) {
	if number == "" || password == "" {
		return nil, fmt.Errorf("%w: phone number and password are required", ErrInvalidInput)
	}

	existing, err := s.pnr.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("register phone number: %w", err)
	}
	if existing != nil {
		slog.Info("phone number already registered", "phone_number", number)
		return nil, fmt.Errorf("%w: phone number", ErrConflict)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register phone number: %w", err)
	}

	pn := models.PhoneNumber{
		PhoneNumber:  number,
		PasswordHash: string(hash),
		Active:       true,
	}

	id, err := s.pnr.Create(ctx, nil, &pn)
	if err != nil {
		// The lookup above is racy; a concurrent registration of the same
		// number loses on the unique index instead.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			slog.Info("phone number already registered", "phone_number", number)
			return nil, fmt.Errorf("%w: phone number", ErrConflict)
		}
		return nil, fmt.Errorf("register phone number: %w", err)
	}

	created, err := s.pnr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("register phone number: %w", err)
	}

	return created, nil
}

// Authenticate reports the same error for an unknown number and a wrong
// password so callers cannot probe which numbers are registered.
func (s *phoneNumberService) Authenticate(ctx context.Context, number, password string) (*models.PhoneNumber, error) {
	if number == "" || password == "" {
		return nil, fmt.Errorf("%w: phone number and password are required", ErrInvalidInput)
	}

	pn, err := s.pnr.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("authenticate phone number: %w", err)
	}
	if pn == nil {
		return nil, fmt.Errorf("%w: invalid phone number or password", ErrInvalidCredentials)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(pn.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid phone number or password", ErrInvalidCredentials)
	}

	return pn, nil
}

func (s *phoneNumberService) SetActive(ctx context.Context, id string, active bool) (*models.PhoneNumber, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: phone number id is required", ErrInvalidInput)
	}

	pn, err := s.pnr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update phone number: %w", err)
	}
	if pn == nil {
		return nil, fmt.Errorf("%w: phone number", ErrNotFound)
	}

	if err := s.pnr.UpdateActive(ctx, id, active); err != nil {
		return nil, fmt.Errorf("update phone number: %w", err)
	}

	pn.Active = active
	return pn, nil
}

func (s *phoneNumberService) Remove(ctx context.Context, id string) (*models.PhoneNumber, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: phone number id is required", ErrInvalidInput)
	}

	pn, err := s.pnr.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("remove phone number: %w", err)
	}
	if pn == nil {
		return nil, fmt.Errorf("%w: phone number", ErrNotFound)
	}

	if err := s.pnr.Remove(ctx, id); err != nil {
		return nil, fmt.Errorf("remove phone number: %w", err)
	}

	return pn, nil
}
