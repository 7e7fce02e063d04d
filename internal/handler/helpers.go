package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/MelEUsher/Recipe-Manager/internal/apierror"
	"github.com/MelEUsher/Recipe-Manager/internal/service"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid JSON: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusUnprocessableEntity, apierror.NewValidation(fields))
		return false
	}
	return true
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("invalid id"))
		return 0, false
	}
	return uint(id), true
}

// queryInt reads a non-negative integer query parameter, falling back to def
// when the parameter is absent. Unparseable or negative values get a 400;
// the caller should return immediately when ok is false.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		c.JSON(http.StatusBadRequest, apierror.New("invalid "+name))
		return 0, false
	}
	return v, true
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
// Unknown errors are recorded on the context so the error-handler middleware
// logs them; the client only ever sees a generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, apierror.New(service.ErrNotFound.Error()))
	case errors.Is(err, service.ErrDuplicateName):
		c.JSON(http.StatusBadRequest, apierror.New(service.ErrDuplicateName.Error()))
	case errors.Is(err, service.ErrInvalidReference):
		c.JSON(http.StatusBadRequest, apierror.New(service.ErrInvalidReference.Error()))
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
	}
}
