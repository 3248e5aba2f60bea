// репозиторий пациентов поверх PostgreSQL (альтернатива плоским файлам)
// реализуем ТОЛЬКО то, что нужно ядру авторизации: чтение по почте и по ID
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4"

	authinterfaces "github.com/NahiaEscalante/backend-mediagent/internal/auth_interfaces"
	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
	"github.com/NahiaEscalante/backend-mediagent/internal/global_db"
)

var _ authinterfaces.PatientRepositoryInterface = (*PatientDBRepository)(nil)

// PatientDBRepository строится на базе абстракции global_db.Pool
type PatientDBRepository struct {
	pool global_db.Pool
}

// создаём конструктор для слоя базы данных
func NewPatientDBRepository(pool global_db.Pool) *PatientDBRepository {
	return &PatientDBRepository{pool: pool}
}

// FindByEmail ищет пациента по почте; нормализация регистра и пробелов - на стороне SQL
func (r *PatientDBRepository) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, correo, contrasena_hash
        FROM pacientes
        WHERE LOWER(TRIM(correo)) = $1
        LIMIT 1
    `

	normalized := strings.ToLower(strings.TrimSpace(email))

	var p domain.Patient
	err := r.pool.QueryRow(ctx, query, normalized).Scan(&p.ID, &p.Correo, &p.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to query patient by email: %w", err)
	}

	return &p, nil
}

// FindByID ищет пациента по ID
func (r *PatientDBRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	const query = `
        SELECT id, correo, contrasena_hash
        FROM pacientes
        WHERE id = $1
        LIMIT 1
    `

	var p domain.Patient
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Correo, &p.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to query patient by id: %w", err)
	}

	return &p, nil
}
