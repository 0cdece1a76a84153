package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const genericMessage = "Erro inesperado. Tente novamente."

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

// Respond escreve um erro de negócio conhecido com status e mensagem da tabela.
// Qualquer outro erro vira 500 genérico e fica registrado no contexto do gin.
func Respond(c *gin.Context, err error) {
	if be, ok := AsBusiness(err); ok {
		if m, found := messages[be.Code]; found {
			Write(c, m.status, be.Code, m.text)
			return
		}
		BadRequest(c, be.Code, genericMessage)
		return
	}

	_ = c.Error(err)
	Internal(c, "internal_error", genericMessage)
}
