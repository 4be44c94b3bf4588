package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"codelookup/internal/api/dto"
	"codelookup/internal/codes/service"
	"codelookup/pkg/middleware"
)

type Handler struct {
	Validation *service.ValidationService
	Admin      *service.AdminService
}

func NewHandler(validation *service.ValidationService, admin *service.AdminService) *Handler {
	return &Handler{Validation: validation, Admin: admin}
}

// Routes регистрирует публичный и админский API
func (h *Handler) Routes(r chi.Router) {
	r.Group(func(pub chi.Router) {
		pub.Use(middleware.ValidateRequest)

		pub.Post("/api/check", h.CheckCode)
		pub.Post("/api/validate", h.CheckCode)
	})

	// 🔐 ключ проверяется до валидации тела
	r.Group(func(adm chi.Router) {
		adm.Use(middleware.AdminKey(h.Admin.Verifier))
		adm.Use(middleware.ValidateRequest)

		adm.Get("/api/admin/codes", h.ListCodes)
		adm.Post("/api/admin/codes", h.CreateCode)
		adm.Delete("/api/admin/codes/{id}", h.DeleteCode)
	})
}

// Проверка кода (доступно всем)
func (h *Handler) CheckCode(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Normalize()
	if err := dto.Validate.Struct(req); err != nil {
		middleware.HandleValidationError(w, r, err)
		return
	}

	msg, err := h.Validation.Check(r.Context(), req.Code)
	if err != nil {
		if errors.Is(err, service.ErrCodeNotFound) {
			middleware.WriteJSON(w, http.StatusNotFound, dto.CheckResponse{Success: false})
			return
		}
		h.writeServiceError(w, r, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.CheckResponse{Success: true, Message: &msg})
}

// Список кодов (только админ)
func (h *Handler) ListCodes(w http.ResponseWriter, r *http.Request) {
	records, err := h.Admin.List(r.Context(), adminKey(r))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, records)
}

// Создание кода (только админ)
func (h *Handler) CreateCode(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	req.Normalize()
	if err := dto.Validate.Struct(req); err != nil {
		middleware.HandleValidationError(w, r, err)
		return
	}

	rec, err := h.Admin.Create(r.Context(), adminKey(r), req.Code, req.Message)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("id", rec.ID).Msg("code created")
	middleware.WriteJSON(w, http.StatusCreated, dto.CreateCodeResponse{Success: true, Code: rec})
}

// Удаление кода (только админ)
func (h *Handler) DeleteCode(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.WriteError(w, http.StatusBadRequest, "invalid code id")
		return
	}

	if err := h.Admin.Delete(r.Context(), adminKey(r), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	zerolog.Ctx(r.Context()).Info().Int64("id", id).Msg("code deleted")
	middleware.WriteJSON(w, http.StatusOK, dto.SuccessResponse{Success: true})
}

// writeServiceError переводит ошибки сервиса в статусы. Внутренние ошибки наружу не уходят.
func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		middleware.WriteError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, service.ErrInvalidInput):
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrCodeNotFound):
		middleware.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrCodeExists):
		middleware.WriteError(w, http.StatusConflict, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("storage failure")
		middleware.WriteError(w, http.StatusInternalServerError, "internal server error")
	}
}

func adminKey(r *http.Request) string {
	return r.Header.Get(middleware.AdminKeyHeader)
}
