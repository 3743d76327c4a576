package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/glyphdict/glyphdict-backend/internal/domain"
	"github.com/glyphdict/glyphdict-backend/internal/service/catalog"
)

var _ catalogService = &catalogServiceMock{}

type catalogServiceMock struct {
	ListEntriesFunc func(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error)
	ListJournalFunc func(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error)
	ProposeFunc     func(ctx context.Context, input catalog.EntryInput) (domain.JournalRecord, error)
	CreateEntryFunc func(ctx context.Context, input catalog.EntryInput) (domain.Entry, error)
	UpdateEntryFunc func(ctx context.Context, input catalog.UpdateEntryInput) (domain.Entry, error)
	DeleteEntryFunc func(ctx context.Context, input catalog.DeleteEntryInput) error
	ApplyFunc       func(ctx context.Context, journalID uuid.UUID) error
}

func (m *catalogServiceMock) ListEntries(ctx context.Context, filter domain.EntryFilter) ([]domain.Entry, error) {
	return m.ListEntriesFunc(ctx, filter)
}

func (m *catalogServiceMock) ListJournal(ctx context.Context, filter domain.JournalFilter) ([]domain.JournalRecord, error) {
	return m.ListJournalFunc(ctx, filter)
}

func (m *catalogServiceMock) Propose(ctx context.Context, input catalog.EntryInput) (domain.JournalRecord, error) {
	return m.ProposeFunc(ctx, input)
}

func (m *catalogServiceMock) CreateEntry(ctx context.Context, input catalog.EntryInput) (domain.Entry, error) {
	return m.CreateEntryFunc(ctx, input)
}

func (m *catalogServiceMock) UpdateEntry(ctx context.Context, input catalog.UpdateEntryInput) (domain.Entry, error) {
	return m.UpdateEntryFunc(ctx, input)
}

func (m *catalogServiceMock) DeleteEntry(ctx context.Context, input catalog.DeleteEntryInput) error {
	return m.DeleteEntryFunc(ctx, input)
}

func (m *catalogServiceMock) Apply(ctx context.Context, journalID uuid.UUID) error {
	return m.ApplyFunc(ctx, journalID)
}
