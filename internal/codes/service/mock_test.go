package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"codelookup/internal/codes"
	"codelookup/internal/codes/repository"
)

type mockCodeRepo struct {
	mu      sync.Mutex
	records map[int64]*codes.Record
	nextID  int64
	calls   int
	err     error // если задан, возвращается из каждого метода
}

func newMockCodeRepo() *mockCodeRepo {
	return &mockCodeRepo{records: map[int64]*codes.Record{}, nextID: 1}
}

func (m *mockCodeRepo) Create(ctx context.Context, rec *codes.Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	for _, r := range m.records {
		if r.Code == rec.Code {
			return repository.ErrDuplicate
		}
	}
	rec.ID = m.nextID
	m.nextID++
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockCodeRepo) GetByCode(ctx context.Context, code string) (*codes.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	for _, r := range m.records {
		if r.Code == code {
			cp := *r
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *mockCodeRepo) GetAll(ctx context.Context) ([]*codes.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	var out []*codes.Record
	for _, r := range m.records {
		cp := *r
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *mockCodeRepo) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return m.err
	}
	if _, ok := m.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *mockCodeRepo) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return 0, m.err
	}
	return len(m.records), nil
}

type staticVerifier string

func (v staticVerifier) Verify(key string) bool { return key != "" && key == string(v) }

var errStorage = errors.New("disk I/O error")
