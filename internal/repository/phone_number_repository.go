package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"
	"github.com/sandeshm27/postline/internal/models"
)

type PhoneNumberRepository interface {
	GetByID(ctx context.Context, id string) (*models.PhoneNumber, error)
	GetByNumber(ctx context.Context, number string) (*models.PhoneNumber, error)
	Create(ctx context.Context, tx *sql.Tx, pn *models.PhoneNumber) (string, error)
	UpdateActive(ctx context.Context, id string, active bool) error
	Remove(ctx context.Context, id string) error
}

type phoneNumberRepository struct {
	db *sql.DB
}

func NewPhoneNumberRepository(db *sql.DB) PhoneNumberRepository {
	return &phoneNumberRepository{db: db}
}

func (r *phoneNumberRepository) GetByID(ctx context.Context, id string) (*models.PhoneNumber, error) {
	query := `SELECT id, phone_number, password_hash, active, created_at FROM phone_numbers WHERE id = $1`

	var pn models.PhoneNumber
	err := r.db.QueryRowContext(ctx, query, id).Scan(&pn.ID, &pn.PhoneNumber, &pn.PasswordHash, &pn.Active, &pn.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &pn, nil
}

func (r *phoneNumberRepository) GetByNumber(ctx context.Context, number string) (*models.PhoneNumber, error) {
	query := `SELECT id, phone_number, password_hash, active, created_at FROM phone_numbers WHERE phone_number = $1`

	var pn models.PhoneNumber
	err := r.db.QueryRowContext(ctx, query, number).Scan(&pn.ID, &pn.PhoneNumber, &pn.PasswordHash, &pn.Active, &pn.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}
	return &pn, nil
}

func (r *phoneNumberRepository) Create(ctx context.Context, tx *sql.Tx, pn *models.PhoneNumber) (string, error) {
	query := `
		INSERT INTO phone_numbers (id, phone_number, password_hash, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	if pn.ID == "" {
		pn.ID = uuid.NewString()
	}

	var id string
	var err error

	if tx != nil {
		err = tx.QueryRowContext(ctx, query, pn.ID, pn.PhoneNumber, pn.PasswordHash, pn.Active).Scan(&id)
	} else {
		err = r.db.QueryRowContext(ctx, query, pn.ID, pn.PhoneNumber, pn.PasswordHash, pn.Active).Scan(&id)
	}
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	return id, nil
}

func (r *phoneNumberRepository) UpdateActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE phone_numbers SET active = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, active, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}

func (r *phoneNumberRepository) Remove(ctx context.Context, id string) error {
	query := `DELETE FROM phone_numbers WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)

	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
