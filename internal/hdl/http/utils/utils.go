package utils

import (
	"net/http"
	"strconv"

	"github.com/JMURv/gate-access/internal/config"
	"github.com/JMURv/gate-access/internal/hdl"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

var validate = validator.New()

type Response struct {
	Data any `json:"data"`
}

type ErrorsResponse struct {
	Errors []string `json:"errors"`
}

func SuccessResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&Response{
			Data: data,
		},
	)
}

func StatusResponse(w http.ResponseWriter, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
}

func ErrResponse(w http.ResponseWriter, statusCode int, errs ...error) {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(
		&ErrorsResponse{
			Errors: msgs,
		},
	)
}

// ParseAndValidate decodes the JSON body into req and runs struct
// validation, writing a 400 response itself when either step fails.
func ParseAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	if err := validate.Struct(req); err != nil {
		var vErrs validator.ValidationErrors
		if ok := AsValidationErrors(err, &vErrs); ok {
			errs := make([]error, 0, len(vErrs))
			for _, fe := range vErrs {
				errs = append(errs, fieldError{field: fe.Field(), tag: fe.Tag()})
			}
			ErrResponse(w, http.StatusBadRequest, errs...)
			return false
		}

		ErrResponse(w, http.StatusBadRequest, hdl.ErrDecodeRequest)
		return false
	}

	return true
}

type fieldError struct {
	field string
	tag   string
}

func (e fieldError) Error() string {
	if e.tag == "required" {
		return e.field + " is required"
	}
	return e.field + " is not valid"
}

func AsValidationErrors(err error, target *validator.ValidationErrors) bool {
	if vErrs, ok := err.(validator.ValidationErrors); ok {
		*target = vErrs
		return true
	}
	return false
}

func ParsePaginationValues(r *http.Request) (int, int) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = config.DefaultPage
	}

	size, err := strconv.Atoi(r.URL.Query().Get("size"))
	if err != nil || size < 1 {
		size = config.DefaultSize
	}

	return page, size
}
