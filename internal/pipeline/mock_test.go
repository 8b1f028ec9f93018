package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/lead-hunter/internal/model"
	"github.com/sells-group/lead-hunter/pkg/hunter"
	"github.com/sells-group/lead-hunter/pkg/serper"
)

// --- Serper Mock ---

type mockSerperClient struct {
	mock.Mock
}

func (m *mockSerperClient) Search(ctx context.Context, req serper.SearchRequest) (*serper.SearchResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serper.SearchResponse), args.Error(1)
}

// --- Hunter Mock ---

type mockHunterClient struct {
	mock.Mock
}

func (m *mockHunterClient) FindEmail(ctx context.Context, req hunter.FindEmailRequest) (*hunter.FindEmailResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hunter.FindEmailResponse), args.Error(1)
}

func (m *mockHunterClient) DomainSearch(ctx context.Context, domain string, limit int) (*hunter.DomainSearchResponse, error) {
	args := m.Called(ctx, domain, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hunter.DomainSearchResponse), args.Error(1)
}

// --- Sheets Mock ---

type mockSheetClient struct {
	mock.Mock
}

func (m *mockSheetClient) ReadRows(ctx context.Context, worksheet string) ([][]string, error) {
	args := m.Called(ctx, worksheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([][]string), args.Error(1)
}

func (m *mockSheetClient) AppendRows(ctx context.Context, worksheet string, rows [][]string) error {
	args := m.Called(ctx, worksheet, rows)
	return args.Error(0)
}

func (m *mockSheetClient) UpdateCell(ctx context.Context, worksheet string, row, col int, value string) error {
	args := m.Called(ctx, worksheet, row, col, value)
	return args.Error(0)
}

// --- Searcher Mock ---

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, companyName, companyURL string) ([]model.CandidateProfile, error) {
	args := m.Called(ctx, companyName, companyURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CandidateProfile), args.Error(1)
}

// --- Resolver Mock ---

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) ResolveByName(ctx context.Context, personName, domain string) (string, error) {
	args := m.Called(ctx, personName, domain)
	return args.String(0), args.Error(1)
}

func (m *mockResolver) DomainContacts(ctx context.Context, domain string, limit int) ([]model.CandidateProfile, error) {
	args := m.Called(ctx, domain, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CandidateProfile), args.Error(1)
}
