// Абстракция для самой БД
// репозиторий пациентов строится поверх этого интерфейса, а не поверх pgxpool напрямую,
// чтобы слой сервиса и авторизации не зависел от конкретной базы
package global_db

import "context"

// Pool - абстракция БД (этому сервису нужны только чтения)
type Pool interface {
	QueryRow(ctx context.Context, sql string, args ...any) Row
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
	Close() error
}

// абстракция для row (для одной записи)
type Row interface {
	Scan(dest ...any) error
}

// абстракция для rows (для нескольких записей)
type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close()
	Err() error
}
