//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"auction-sync/internal/handler/api"
	resdto "auction-sync/internal/handler/dto/response"
	"auction-sync/internal/usecase/shared"
	"auction-sync/tests/common/builder"
	"auction-sync/tests/common/httptest"
	queriesmock "auction-sync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type JournalHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockJournalQueries
}

func (s *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockJournalQueries(s.mockCtrl)
	s.router.GET("/api/journal", api.NewJournalHandler(s.mockQueries).Recent)
}

func (s *JournalHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestJournalHandlerSuite(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}

func (s *JournalHandlerTestSuite) TestRecent() {
	entry := shared.JournalEntry{
		ID:         uuid.New(),
		Kind:       "withdraw",
		Caller:     builder.AliceAddress,
		Outcome:    "ledger_rejected",
		Reason:     "nothing to withdraw",
		AsOfBefore: 3,
		AsOfAfter:  4,
		CreatedAt:  builder.DefaultNow(),
	}

	s.Run("success: maps entries field by field", func() {
		s.mockQueries.EXPECT().Recent(gomock.Any(), 5).Return([]shared.JournalEntry{entry}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/journal?limit=5", nil, "")

		var response struct {
			Entries []resdto.JournalEntryResponse `json:"entries"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		want := []resdto.JournalEntryResponse{{
			ID:         entry.ID,
			Kind:       entry.Kind,
			Caller:     entry.Caller,
			Outcome:    entry.Outcome,
			Reason:     entry.Reason,
			AsOfBefore: 3,
			AsOfAfter:  4,
			CreatedAt:  entry.CreatedAt,
		}}
		if diff := cmp.Diff(want, response.Entries); diff != "" {
			s.Failf("journal entries mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("success: no limit defers to the query default", func() {
		s.mockQueries.EXPECT().Recent(gomock.Any(), 0).Return([]shared.JournalEntry{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/journal", nil, "")

		var response map[string][]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotNil(response["entries"])
		s.Empty(response["entries"])
	})

	s.Run("error: non-numeric limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/journal?limit=ten", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: store failure", func() {
		s.mockQueries.EXPECT().Recent(gomock.Any(), 20).Return(nil, errors.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/journal?limit=20", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to load journal")
	})
}
