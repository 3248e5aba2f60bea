// репозиторий пациентов поверх плоских JSON файлов в каталоге bd/
package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	authinterfaces "github.com/NahiaEscalante/backend-mediagent/internal/auth_interfaces"
	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
	"github.com/NahiaEscalante/backend-mediagent/internal/inmemory_cache"
)

// имена файлов-коллекций в каталоге данных
const (
	patientsFile             = "pacientes.json"
	doctorsFile              = "doctores.json"
	specialtiesFile          = "especialidades.json"
	locationsFile            = "sedes.json"
	locationSpecialtiesFile  = "sede_especialidades.json"
	schedulesFile            = "horarios.json"
	jsonRepositoryCacheShard = 8
)

// проверки реализации интерфейсов
var _ authinterfaces.PatientRepositoryInterface = (*PatientJSONRepository)(nil)
var _ authinterfaces.DirectoryRepositoryInterface = (*PatientJSONRepository)(nil)

// PatientJSONRepository читает записи из JSON файлов
// отсутствующий, нечитаемый или битый файл эквивалентен пустой коллекции:
// эта деградация - часть контракта, наружу такие ошибки не отдаются
type PatientJSONRepository struct {
	dataDir  string
	cache    *inmemory_cache.InmemoryShardedCache
	cacheTTL time.Duration
}

// конструктор репозитория; cacheTTL == 0 означает читать файлы заново на каждый вызов
func NewPatientJSONRepository(dataDir string, cacheTTL time.Duration) (*PatientJSONRepository, error) {
	cache, err := inmemory_cache.NewInmemoryShardedCache(jsonRepositoryCacheShard, cacheTTL)
	if err != nil {
		return nil, err
	}

	return &PatientJSONRepository{
		dataDir:  dataDir,
		cache:    cache,
		cacheTTL: cacheTTL,
	}, nil
}

// loadRawList читает файл-коллекцию как список сырых JSON объектов
// не-список на верхнем уровне трактуем как пустую коллекцию
func (r *PatientJSONRepository) loadRawList(filename string) []json.RawMessage {
	data, err := os.ReadFile(filepath.Join(r.dataDir, filename))
	if err != nil {
		return nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

// loadPatients парсит pacientes.json, пропуская записи, которые не являются объектами
func (r *PatientJSONRepository) loadPatients() []domain.Patient {
	// сначала пробуем достать распарсенный список из кэша
	if r.cacheTTL > 0 {
		if cached, ok := r.cache.GetItem(patientsFile); ok {
			if patients, ok := cached.([]domain.Patient); ok {
				return patients
			}
		}
	}

	raw := r.loadRawList(patientsFile)
	patients := make([]domain.Patient, 0, len(raw))
	for _, item := range raw {
		var p domain.Patient
		if err := json.Unmarshal(item, &p); err != nil {
			continue
		}
		patients = append(patients, p)
	}

	if r.cacheTTL > 0 {
		r.cache.AddItemWithTTL(patientsFile, patients, r.cacheTTL)
	}
	return patients
}

// FindByEmail ищет пациента по адресу почты
// сравнение нечувствительно к регистру и пробелам с обеих сторон
func (r *PatientJSONRepository) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(email))
	for _, p := range r.loadPatients() {
		if strings.ToLower(strings.TrimSpace(p.Correo)) == normalized {
			patient := p
			return &patient, nil
		}
	}

	return nil, domain.ErrPatientNotFound
}

// FindByID ищет пациента по его ID (точное совпадение)
func (r *PatientJSONRepository) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, p := range r.loadPatients() {
		if p.ID == id {
			patient := p
			return &patient, nil
		}
	}

	return nil, domain.ErrPatientNotFound
}

// loadDirectory читает справочную коллекцию как список объектов с кэшированием
func (r *PatientJSONRepository) loadDirectory(filename string) []map[string]any {
	if r.cacheTTL > 0 {
		if cached, ok := r.cache.GetItem(filename); ok {
			if items, ok := cached.([]map[string]any); ok {
				return items
			}
		}
	}

	raw := r.loadRawList(filename)
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		var obj map[string]any
		if err := json.Unmarshal(entry, &obj); err != nil {
			continue
		}
		items = append(items, obj)
	}

	if r.cacheTTL > 0 {
		r.cache.AddItemWithTTL(filename, items, r.cacheTTL)
	}
	return items
}

// GetDoctors возвращает список докторов (для контекста агента)
func (r *PatientJSONRepository) GetDoctors(ctx context.Context) []map[string]any {
	if ctx.Err() != nil {
		return nil
	}
	return r.loadDirectory(doctorsFile)
}

// GetSpecialties возвращает список специальностей
func (r *PatientJSONRepository) GetSpecialties(ctx context.Context) []map[string]any {
	if ctx.Err() != nil {
		return nil
	}
	return r.loadDirectory(specialtiesFile)
}

// GetLocations возвращает список медицинских центров
func (r *PatientJSONRepository) GetLocations(ctx context.Context) []map[string]any {
	if ctx.Err() != nil {
		return nil
	}
	return r.loadDirectory(locationsFile)
}

// GetLocationSpecialties возвращает связку центр-специальность
func (r *PatientJSONRepository) GetLocationSpecialties(ctx context.Context) []map[string]any {
	if ctx.Err() != nil {
		return nil
	}
	return r.loadDirectory(locationSpecialtiesFile)
}

// GetSchedules возвращает список расписаний
func (r *PatientJSONRepository) GetSchedules(ctx context.Context) []map[string]any {
	if ctx.Err() != nil {
		return nil
	}
	return r.loadDirectory(schedulesFile)
}

// Close останавливает фоновую очистку кэша
func (r *PatientJSONRepository) Close() {
	r.cache.Stop()
}
