package main

import (
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

// Vietnamese mobile numbers: 0 followed by 3/5/7/8/9 and eight digits.
var vnPhone = regexp.MustCompile(`^0[35789][0-9]{8}$`)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	Validate.RegisterValidation("vnphone", func(fl validator.FieldLevel) bool {
		return vnPhone.MatchString(fl.Field().String())
	})
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	type envelope struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	}

	return writeJSON(w, status, &envelope{
		Success: false,
		Message: message,
		Status:  status,
	})
}

// writeJSONRedirect is writeJSONError plus the route the client should open.
func writeJSONRedirect(w http.ResponseWriter, status int, message, redirect string) error {
	type envelope struct {
		Success  bool   `json:"success"`
		Message  string `json:"message"`
		Status   int    `json:"status"`
		Redirect string `json:"redirect"`
	}

	return writeJSON(w, status, &envelope{
		Message:  message,
		Status:   status,
		Redirect: redirect,
	})
}

func (app *application) jsonResponse(w http.ResponseWriter, status int, data any) error {
	type envelope struct {
		Data any `json:"data"`
	}
	return writeJSON(w, status, &envelope{Data: data})
}
