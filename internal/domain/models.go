// описание общих структур и ошибок для всего backend-mediagent
package domain

import (
	"encoding/json"
	"errors"
)

var (
	// пациент не найден в хранилище (наружу никогда не отдаётся напрямую)
	ErrPatientNotFound = errors.New("patient not found")
	// единая ошибка для любого провала логина (анти-перечисление пользователей)
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	// единая ошибка для любого провала проверки токена
	ErrInvalidToken = errors.New("no autenticado o token inválido")
)

// структура пациента (запись из bd/pacientes.json или из таблицы pacientes)
// поля профиля, которые ядро авторизации не использует, сохраняются в Extra как есть
type Patient struct {
	ID           string         // ID пациента (subject для токена)
	Correo       string         // адрес электронной почты (ключ для поиска)
	PasswordHash string         // хэш пароля (может быть "симулированным" маркером)
	Extra        map[string]any // прочие поля профиля (passthrough, ядром не читаются)
}

// анмаршалим запись пациента: известные поля - в структуру, остальные - в Extra
func (p *Patient) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.ID, _ = raw["id"].(string)
	p.Correo, _ = raw["correo"].(string)
	p.PasswordHash, _ = raw["contrasena_hash"].(string)

	delete(raw, "id")
	delete(raw, "correo")
	delete(raw, "contrasena_hash")
	p.Extra = raw

	return nil
}

// маршалим пациента обратно в плоский JSON объект (Extra возвращается на верхний уровень)
func (p Patient) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(p.Extra)+3)
	for k, v := range p.Extra {
		out[k] = v
	}
	out["id"] = p.ID
	out["correo"] = p.Correo
	out["contrasena_hash"] = p.PasswordHash

	return json.Marshal(out)
}
