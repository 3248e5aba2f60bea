package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NahiaEscalante/backend-mediagent/internal/domain"
	"github.com/NahiaEscalante/backend-mediagent/internal/jwt_service"
)

// фейковое хранилище пациентов
type fakePatientRepo struct {
	patients map[string]*domain.Patient
}

func (f *fakePatientRepo) FindByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	return nil, domain.ErrPatientNotFound
}

func (f *fakePatientRepo) FindByID(ctx context.Context, id string) (*domain.Patient, error) {
	if p, ok := f.patients[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPatientNotFound
}

func newAuthTestRouter(jwtSvc *jwt_service.JWTService, repo *fakePatientRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtSvc, repo), func(c *gin.Context) {
		patient, ok := CurrentPatient(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "patient missing in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": patient.ID})
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	jwtConf := &jwt_service.JWTConfig{
		SecretKey:      "middleware-test-secret",
		AccessTokenExp: time.Hour,
		Issuer:         "backend-mediagent-test",
	}
	jwtSvc := jwt_service.NewJWTService(jwtConf)
	repo := &fakePatientRepo{patients: map[string]*domain.Patient{
		"p-001": {ID: "p-001", Correo: "ana@x.com"},
	}}
	router := newAuthTestRouter(jwtSvc, repo)

	validToken, err := jwtSvc.GenerateToken("p-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expiredSvc := jwt_service.NewJWTService(&jwt_service.JWTConfig{
		SecretKey:      jwtConf.SecretKey,
		AccessTokenExp: -time.Minute,
		Issuer:         jwtConf.Issuer,
	})
	expiredToken, err := expiredSvc.GenerateToken("p-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	deletedUserToken, err := jwtSvc.GenerateToken("p-999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("валидный токен пропускается", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+validToken)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"id":"p-001"}` {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	// все ветки провала неразличимы: одинаковый статус и одинаковое тело
	const wantBody = `{"error":"no autenticado o token inválido"}`

	failures := []struct {
		name   string
		header string
	}{
		{"нет заголовка", ""},
		{"пустое значение Bearer", "Bearer "},
		{"не Bearer формат", "Token " + validToken},
		{"мусор вместо токена", "Bearer definitely.not.a-jwt"},
		{"истёкший токен", "Bearer " + expiredToken},
		{"токен удалённого пользователя", "Bearer " + deletedUserToken},
	}

	for _, tt := range failures {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			router.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
			if w.Body.String() != wantBody {
				t.Errorf("expected uniform body %s, got %s", wantBody, w.Body.String())
			}
		})
	}
}

func TestCheckBearerFormat(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"корректный формат", "Bearer abc123", "abc123", false},
		{"нет префикса", "abc123", "", true},
		{"только префикс", "Bearer", "", true},
		{"другая схема", "Basic abc123", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckBearerFormat(tt.header)
			if (err != nil) != tt.wantErr {
				t.Errorf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
