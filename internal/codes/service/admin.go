package service

import (
	"context"
	"errors"

	"codelookup/internal/codes"
	"codelookup/internal/codes/repository"
	"codelookup/internal/metrics"
)

type KeyVerifier interface {
	Verify(key string) bool
}

// AdminService управляет кодами. Каждая операция сначала проверяет ключ,
// до обращения к базе.
type AdminService struct {
	Repo     CodeRepository
	Verifier KeyVerifier
}

func NewAdminService(repo CodeRepository, verifier KeyVerifier) *AdminService {
	return &AdminService{Repo: repo, Verifier: verifier}
}

func (s *AdminService) authorize(op, key string) error {
	if !s.Verifier.Verify(key) {
		metrics.AdminOperationsTotal.WithLabelValues(op, metrics.ResultUnauthorized).Inc()
		return ErrUnauthorized
	}
	return nil
}

func (s *AdminService) Create(ctx context.Context, key, code, message string) (*codes.Record, error) {
	if err := s.authorize("create", key); err != nil {
		return nil, err
	}

	rec := &codes.Record{
		Code:    codes.NormalizeCode(code),
		Message: codes.NormalizeMessage(message),
	}
	if rec.Code == "" || rec.Message == "" {
		metrics.AdminOperationsTotal.WithLabelValues("create", metrics.ResultInvalid).Inc()
		return nil, ErrInvalidInput
	}

	if err := s.Repo.Create(ctx, rec); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			metrics.AdminOperationsTotal.WithLabelValues("create", metrics.ResultConflict).Inc()
			return nil, ErrCodeExists
		}
		metrics.AdminOperationsTotal.WithLabelValues("create", metrics.ResultError).Inc()
		return nil, err
	}

	metrics.AdminOperationsTotal.WithLabelValues("create", metrics.ResultOK).Inc()
	return rec, nil
}

// List отдаёт все коды, новые первыми
func (s *AdminService) List(ctx context.Context, key string) ([]*codes.Record, error) {
	if err := s.authorize("list", key); err != nil {
		return nil, err
	}

	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		metrics.AdminOperationsTotal.WithLabelValues("list", metrics.ResultError).Inc()
		return nil, err
	}
	if records == nil {
		records = []*codes.Record{}
	}

	metrics.AdminOperationsTotal.WithLabelValues("list", metrics.ResultOK).Inc()
	return records, nil
}

// Delete удаляет запись по id. Несуществующий id даёт ErrCodeNotFound.
func (s *AdminService) Delete(ctx context.Context, key string, id int64) error {
	if err := s.authorize("delete", key); err != nil {
		return err
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.AdminOperationsTotal.WithLabelValues("delete", metrics.ResultNotFound).Inc()
			return ErrCodeNotFound
		}
		metrics.AdminOperationsTotal.WithLabelValues("delete", metrics.ResultError).Inc()
		return err
	}

	metrics.AdminOperationsTotal.WithLabelValues("delete", metrics.ResultOK).Inc()
	return nil
}
