package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleServiceError maps a flow-level failure to the HTTP response at the
// handler boundary. No retry or compensation happens here; upstream
// integration failures fall through to a 500 with the error message.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"errors": []gin.H{{"msg": "E-mail already in use", "path": "email"}},
		})
	case errors.Is(err, ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{
			"errors": []gin.H{{"msg": "Email or password incorrect!"}},
		})
	case errors.Is(err, ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrAccountNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, ErrBankNotLinked):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

// RespondValidationError turns gin binding failures into the 422 body the
// client form handling expects: {"errors": [{"msg": ..., "path": ...}]}.
func RespondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, gin.H{
				"msg":  validationMessage(fe),
				"path": strings.ToLower(fe.Field()),
			})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": out})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": []gin.H{{"msg": "Invalid request format"}}})
}

func validationMessage(fe validator.FieldError) string {
	field := titleCase(strings.ToLower(fe.Field()))
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s required!", field)
	case "email":
		return "Invalid email address!"
	case "min":
		return fmt.Sprintf("%s minimum %s characters required!", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s!", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
