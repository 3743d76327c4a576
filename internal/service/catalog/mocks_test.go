package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
)

var (
	_ entryRepo   = &entryRepoMock{}
	_ journalRepo = &journalRepoMock{}
	_ txManager   = &txManagerMock{}
)

type entryRepoMock struct {
	GetFunc        func(ctx context.Context, semantic string) (*domain.Entry, error)
	FindFunc       func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	InsertFunc     func(ctx context.Context, e domain.Entry) error
	UpdateIconFunc func(ctx context.Context, semantic, icon string) error
	DeleteFunc     func(ctx context.Context, semantic string) (string, error)
}

func (m *entryRepoMock) Get(ctx context.Context, semantic string) (*domain.Entry, error) {
	if m.GetFunc == nil {
		panic("entryRepoMock.GetFunc: method is nil but Get was just called")
	}
	return m.GetFunc(ctx, semantic)
}

func (m *entryRepoMock) Find(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	if m.FindFunc == nil {
		panic("entryRepoMock.FindFunc: method is nil but Find was just called")
	}
	return m.FindFunc(ctx, filter)
}

func (m *entryRepoMock) Insert(ctx context.Context, e domain.Entry) error {
	if m.InsertFunc == nil {
		panic("entryRepoMock.InsertFunc: method is nil but Insert was just called")
	}
	return m.InsertFunc(ctx, e)
}

func (m *entryRepoMock) UpdateIcon(ctx context.Context, semantic, icon string) error {
	if m.UpdateIconFunc == nil {
		panic("entryRepoMock.UpdateIconFunc: method is nil but UpdateIcon was just called")
	}
	return m.UpdateIconFunc(ctx, semantic, icon)
}

func (m *entryRepoMock) Delete(ctx context.Context, semantic string) (string, error) {
	if m.DeleteFunc == nil {
		panic("entryRepoMock.DeleteFunc: method is nil but Delete was just called")
	}
	return m.DeleteFunc(ctx, semantic)
}

type journalRepoMock struct {
	AppendFunc      func(ctx context.Context, rec domain.JournalRecord) (domain.JournalRecord, error)
	GetFunc         func(ctx context.Context, id uuid.UUID) (*domain.JournalRecord, error)
	FindFunc        func(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error)
	MarkAppliedFunc func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *journalRepoMock) Append(ctx context.Context, rec domain.JournalRecord) (domain.JournalRecord, error) {
	if m.AppendFunc == nil {
		panic("journalRepoMock.AppendFunc: method is nil but Append was just called")
	}
	return m.AppendFunc(ctx, rec)
}

func (m *journalRepoMock) Get(ctx context.Context, id uuid.UUID) (*domain.JournalRecord, error) {
	if m.GetFunc == nil {
		panic("journalRepoMock.GetFunc: method is nil but Get was just called")
	}
	return m.GetFunc(ctx, id)
}

func (m *journalRepoMock) Find(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error) {
	if m.FindFunc == nil {
		panic("journalRepoMock.FindFunc: method is nil but Find was just called")
	}
	return m.FindFunc(ctx, filter)
}

func (m *journalRepoMock) MarkApplied(ctx context.Context, id uuid.UUID) (int64, error) {
	if m.MarkAppliedFunc == nil {
		panic("journalRepoMock.MarkAppliedFunc: method is nil but MarkApplied was just called")
	}
	return m.MarkAppliedFunc(ctx, id)
}

// txManagerMock runs the callback inline, no real transaction.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTxFunc != nil {
		return m.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}
