package service

import (
	"context"

	"codelookup/internal/codes"
)

// ExampleRecords - демо-коды для пустой базы
var ExampleRecords = []codes.Record{
	{Code: "ALPHA-001", Message: "Поздравляем! Ваш промокод: SAVE50"},
	{Code: "BETA-2024", Message: "Добро пожаловать в бета-программу! Ссылка: https://internal.example.com/beta"},
	{Code: "VIP-GOLD", Message: "Вы VIP Gold участник. Встреча в пятницу в 15:00."},
}

// Seed заполняет таблицу, только если в ней ещё нет ни одной записи.
// Возвращает количество вставленных кодов.
func Seed(ctx context.Context, repo CodeRepository, records []codes.Record) (int, error) {
	n, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}

	inserted := 0
	for _, r := range records {
		rec := &codes.Record{
			Code:    codes.NormalizeCode(r.Code),
			Message: codes.NormalizeMessage(r.Message),
		}
		if err := repo.Create(ctx, rec); err != nil {
			return inserted, err
		}
		inserted++
	}

	return inserted, nil
}
