package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"codelookup/internal/codes"
	"codelookup/internal/codes/repository"
	"codelookup/internal/metrics"
	"codelookup/pkg/logger"
)

var (
	ErrCodeNotFound = errors.New("code not found")
	ErrCodeExists   = errors.New("code already exists")
	ErrInvalidInput = errors.New("code and message are required")
	ErrUnauthorized = errors.New("unauthorized")
)

type CodeRepository interface {
	Create(ctx context.Context, rec *codes.Record) error
	GetByCode(ctx context.Context, code string) (*codes.Record, error)
	GetAll(ctx context.Context) ([]*codes.Record, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}

// ValidationService отвечает на вопрос "есть ли такой код" и ничего не меняет.
type ValidationService struct {
	Repo CodeRepository
}

func NewValidationService(repo CodeRepository) *ValidationService {
	return &ValidationService{Repo: repo}
}

// Check возвращает сообщение, привязанное к коду.
// Удалённый и никогда не существовавший код неразличимы: оба дают ErrCodeNotFound.
func (s *ValidationService) Check(ctx context.Context, code string) (string, error) {
	code = codes.NormalizeCode(code)
	if code == "" {
		metrics.CodeChecksTotal.WithLabelValues(metrics.ResultInvalid).Inc()
		return "", ErrInvalidInput
	}

	rec, err := s.Repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.CodeChecksTotal.WithLabelValues(metrics.ResultNotFound).Inc()
			zerolog.Ctx(ctx).Debug().Str("code", logger.Redact(code)).Msg("code not found")
			return "", ErrCodeNotFound
		}
		metrics.CodeChecksTotal.WithLabelValues(metrics.ResultError).Inc()
		return "", err
	}

	metrics.CodeChecksTotal.WithLabelValues(metrics.ResultFound).Inc()
	return rec.Message, nil
}
