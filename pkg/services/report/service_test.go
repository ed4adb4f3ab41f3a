package report

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/sera-tools/sera-atlas/pkg/models/api"
	"github.com/sera-tools/sera-atlas/pkg/models/domain"
	"github.com/sera-tools/sera-atlas/pkg/models/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Save(ctx context.Context, record store.ReportRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockStore) FindByID(ctx context.Context, reportID string) (*store.ReportRecord, error) {
	args := m.Called(ctx, reportID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ReportRecord), args.Error(1)
}

func generateRequest() api.GenerateReportRequest {
	input := analysisInput(16.7, 95)
	return api.GenerateReportRequest{
		SessionID:    "sess-1",
		UserID:       "user-1",
		ReportType:   "comprehensive",
		Format:       "pdf",
		AnalysisData: &input,
	}
}

func TestGenerator_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("builds and saves a record", func(t *testing.T) {
		st := new(mockStore)
		st.On("Save", mock.Anything, mock.MatchedBy(func(r store.ReportRecord) bool {
			return strings.HasPrefix(r.ReportID, ReportIDPrefix) &&
				r.UserID == "user-1" &&
				r.SessionID == "sess-1" &&
				r.Data.ReportID == r.ReportID
		})).Return(nil)

		gen := NewGenerator(DefaultRules(), st, testClock)
		record, err := gen.Generate(ctx, generateRequest())

		require.NoError(t, err)
		assert.Equal(t, testClock.t, record.CreatedAt)
		assert.Equal(t, "Kapsamlı Sera Yatırım Fizibilite Raporu", record.Data.Metadata.Title)
		st.AssertExpectations(t)
	})

	t.Run("rejects invalid requests before synthesis", func(t *testing.T) {
		st := new(mockStore)
		gen := NewGenerator(DefaultRules(), st, testClock)

		req := generateRequest()
		req.UserID = ""
		_, err := gen.Generate(ctx, req)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		st.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates store failures", func(t *testing.T) {
		st := new(mockStore)
		st.On("Save", mock.Anything, mock.Anything).Return(fmt.Errorf("disk full"))

		gen := NewGenerator(DefaultRules(), st, testClock)
		_, err := gen.Generate(ctx, generateRequest())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}

func TestGenerator_Fetch(t *testing.T) {
	ctx := context.Background()

	t.Run("prefix-only id check", func(t *testing.T) {
		st := new(mockStore)
		st.On("FindByID", mock.Anything, "RPT-x").
			Return(nil, &NotFoundError{ReportID: "RPT-x"})

		gen := NewGenerator(DefaultRules(), st, testClock)
		_, err := gen.Fetch(ctx, "RPT-x")

		// "RPT-x" passes the prefix check and reaches the store.
		var notFound *NotFoundError
		require.ErrorAs(t, err, &notFound)
		st.AssertExpectations(t)
	})

	t.Run("rejects ids without the prefix", func(t *testing.T) {
		st := new(mockStore)
		gen := NewGenerator(DefaultRules(), st, testClock)

		_, err := gen.Fetch(ctx, "REPORT-123")

		var identifierErr *InvalidIdentifierError
		require.ErrorAs(t, err, &identifierErr)
		st.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("returns the stored record", func(t *testing.T) {
		record := &store.ReportRecord{
			ReportID: "RPT-1-abc",
			Data:     domain.Report{ReportID: "RPT-1-abc"},
		}
		st := new(mockStore)
		st.On("FindByID", mock.Anything, "RPT-1-abc").Return(record, nil)

		gen := NewGenerator(DefaultRules(), st, testClock)
		got, err := gen.Fetch(ctx, "RPT-1-abc")

		require.NoError(t, err)
		assert.Equal(t, record, got)
	})
}
