package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Коды ошибок API. Код определяет класс ошибки, message - детали для
// диагностики; клиенты матчатся по коду.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeInvalidPhone    = "INVALID_PHONE"
	CodeInvalidSlot     = "INVALID_SLOT"
	CodeInvalidDate     = "INVALID_DATE"
	CodeNoCapacity      = "NO_CAPACITY"
	CodeNotFound        = "NOT_FOUND"
	CodeCannotCancel    = "CANNOT_CANCEL"
	CodeInvalidStatus   = "INVALID_STATUS"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeInternalError   = "INTERNAL_ERROR"
)

// ErrorBody тело ошибки
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse конверт ошибки API: { "error": { "code", "message" } }
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// maxBodyBytes ограничение размера тела запроса
const maxBodyBytes = 1 << 20 // 1 MB

// DecodeJSON декодирует тело запроса в dst, отклоняя неизвестные поля
func DecodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// RespondJSON пишет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	// Ошибка записи в уже начатый ответ не исправима - игнорируем
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError пишет конверт ошибки с указанным статусом и кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// RespondBadRequest пишет 400 с указанным кодом
func RespondBadRequest(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusBadRequest, code, message)
}

// RespondNotFound пишет 404
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

// RespondConflict пишет 409 с указанным кодом
func RespondConflict(w http.ResponseWriter, code, message string) {
	RespondError(w, http.StatusConflict, code, message)
}

// RespondUnauthorized пишет 401
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

// RespondInternalError пишет 500 с сообщением нижележащей ошибки:
// она не ретраится автоматически и нужна оператору для диагностики
func RespondInternalError(w http.ResponseWriter, err error) {
	message := "internal server error"
	if err != nil {
		message = err.Error()
	}
	RespondError(w, http.StatusInternalServerError, CodeInternalError, message)
}
