package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
)

const testPatients = `[
  {"id": "p-001", "correo": "ana@x.com", "contrasena_hash": "simulado-hash", "nombre": "Ana Torres"},
  {"id": "p-002", "correo": " Luis@X.com ", "contrasena_hash": "simulado-hash"},
  "это не объект, запись должна быть пропущена",
  {"id": "p-003"}
]`

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func newTestRepo(t *testing.T, cacheTTL time.Duration) (*PatientJSONRepository, string) {
	t.Helper()
	dir := t.TempDir()
	repo, err := NewPatientJSONRepository(dir, cacheTTL)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(repo.Close)
	return repo, dir
}

func TestFindByEmail(t *testing.T) {
	repo, dir := newTestRepo(t, 0)
	writeDataFile(t, dir, patientsFile, testPatients)
	ctx := context.Background()

	t.Run("точное совпадение", func(t *testing.T) {
		p, err := repo.FindByEmail(ctx, "ana@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-001" {
			t.Errorf("expected p-001, got %s", p.ID)
		}
	})

	t.Run("регистр и пробелы в запросе", func(t *testing.T) {
		p, err := repo.FindByEmail(ctx, " ANA@X.COM ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-001" {
			t.Errorf("expected p-001, got %s", p.ID)
		}
	})

	t.Run("регистр и пробелы в хранимой записи", func(t *testing.T) {
		p, err := repo.FindByEmail(ctx, "luis@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "p-002" {
			t.Errorf("expected p-002, got %s", p.ID)
		}
	})

	t.Run("незарегистрированная почта", func(t *testing.T) {
		_, err := repo.FindByEmail(ctx, "nadie@x.com")
		if !errors.Is(err, domain.ErrPatientNotFound) {
			t.Errorf("expected ErrPatientNotFound, got %v", err)
		}
	})

	t.Run("passthrough полей профиля", func(t *testing.T) {
		p, err := repo.FindByEmail(ctx, "ana@x.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Extra["nombre"] != "Ana Torres" {
			t.Errorf("expected Extra to keep nombre, got %v", p.Extra)
		}
	})
}

func TestFindByID(t *testing.T) {
	repo, dir := newTestRepo(t, 0)
	writeDataFile(t, dir, patientsFile, testPatients)
	ctx := context.Background()

	p, err := repo.FindByID(ctx, "p-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Correo != "ana@x.com" {
		t.Errorf("expected ana@x.com, got %s", p.Correo)
	}

	if _, err := repo.FindByID(ctx, "p-999"); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}

// недоступный или битый источник эквивалентен пустому хранилищу, а не ошибке
func TestDegradedSource(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T, dir string)
	}{
		{"файла нет", func(t *testing.T, dir string) {}},
		{"битый JSON", func(t *testing.T, dir string) {
			writeDataFile(t, dir, patientsFile, `[{"id": "p-001",`)
		}},
		{"не список на верхнем уровне", func(t *testing.T, dir string) {
			writeDataFile(t, dir, patientsFile, `{"id": "p-001"}`)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, dir := newTestRepo(t, 0)
			tt.prepare(t, dir)

			if _, err := repo.FindByEmail(context.Background(), "ana@x.com"); !errors.Is(err, domain.ErrPatientNotFound) {
				t.Errorf("expected ErrPatientNotFound, got %v", err)
			}
			if _, err := repo.FindByID(context.Background(), "p-001"); !errors.Is(err, domain.ErrPatientNotFound) {
				t.Errorf("expected ErrPatientNotFound, got %v", err)
			}
		})
	}
}

func TestDirectoryCollections(t *testing.T) {
	repo, dir := newTestRepo(t, 0)
	writeDataFile(t, dir, doctorsFile, `[{"id": "d-001"}, {"id": "d-002"}]`)
	writeDataFile(t, dir, specialtiesFile, `no es json`)
	ctx := context.Background()

	if got := len(repo.GetDoctors(ctx)); got != 2 {
		t.Errorf("expected 2 doctors, got %d", got)
	}
	// битый файл - пустой список
	if got := len(repo.GetSpecialties(ctx)); got != 0 {
		t.Errorf("expected 0 specialties, got %d", got)
	}
	// отсутствующие файлы - пустые списки
	if got := len(repo.GetLocations(ctx)); got != 0 {
		t.Errorf("expected 0 locations, got %d", got)
	}
	if got := len(repo.GetSchedules(ctx)); got != 0 {
		t.Errorf("expected 0 schedules, got %d", got)
	}
	if got := len(repo.GetLocationSpecialties(ctx)); got != 0 {
		t.Errorf("expected 0 location specialties, got %d", got)
	}
}

// при включённом TTL повторное чтение в пределах TTL идёт из кэша
func TestPatientsCache(t *testing.T) {
	repo, dir := newTestRepo(t, time.Minute)
	writeDataFile(t, dir, patientsFile, testPatients)
	ctx := context.Background()

	if _, err := repo.FindByEmail(ctx, "ana@x.com"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// подменяем файл; кэш ещё живой, поэтому старая запись должна находиться
	writeDataFile(t, dir, patientsFile, `[]`)

	if _, err := repo.FindByEmail(ctx, "ana@x.com"); err != nil {
		t.Errorf("expected cached patient, got %v", err)
	}
}
