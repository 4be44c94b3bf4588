package dto

import (
	"github.com/go-playground/validator/v10"

	"codelookup/internal/codes"
)

type CheckRequest struct {
	Code string `json:"code" validate:"required,max=128"`
}

type CreateCodeRequest struct {
	Code    string `json:"code" validate:"required,max=128"`
	Message string `json:"message" validate:"required,max=4096"`
}

// Normalize вызывается до валидации, чтобы строка из пробелов не прошла required
func (r *CheckRequest) Normalize() {
	r.Code = codes.NormalizeCode(r.Code)
}

func (r *CreateCodeRequest) Normalize() {
	r.Code = codes.NormalizeCode(r.Code)
	r.Message = codes.NormalizeMessage(r.Message)
}

type CheckResponse struct {
	Success bool    `json:"success"`
	Message *string `json:"message"`
}

type CreateCodeResponse struct {
	Success bool          `json:"success"`
	Code    *codes.Record `json:"code"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

var Validate = validator.New()
