package middleware

import (
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator"
)

// создаём экземпляр валидатора один раз при загрузке пакета
var validate = validator.New()

// ValidateRequestMiddleware парсит тело запроса в структуру model и валидирует её
// валидированные данные кладутся в контекст под ключом "validatedData"
func ValidateRequestMiddleware(model interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Создаём новый экземпляр структуры для валидации
		request := reflect.New(reflect.TypeOf(model).Elem()).Interface()

		// Парсим без встроенной валидации gin
		if err := c.ShouldBindBodyWith(request, binding.JSON); err != nil {
			// здесь только ошибки парсинга JSON (не валидации)
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid JSON format",
				"code":  "INVALID_JSON",
			})
			c.Abort()
			return
		}

		// Валидируем структуру
		if err := validate.Struct(request); err != nil {
			details := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				details[fieldErr.Field()] = fieldErr.Tag()
			}

			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Validation failed",
				"details": details,
			})
			c.Abort()
			return
		}

		// Сохраняем валидированные данные в контекст для хэндлера
		c.Set("validatedData", request)
		c.Next()
	}
}
