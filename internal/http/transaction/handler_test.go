package transaction_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	txhttp "github.com/nlithgow/vatu/internal/http/transaction"
	"github.com/nlithgow/vatu/internal/http/userctx"
	"github.com/nlithgow/vatu/internal/transaction"
)

func newServer(repo *transaction.MockRepository) http.Handler {
	h := txhttp.NewHandler(transaction.NewService(repo))

	r := chi.NewRouter()
	r.Use(userctx.Middleware)
	h.Routes(r)

	return r
}

func TestHandler_List_FilterValidation(t *testing.T) {
	userID := uuid.New()

	get := func(t *testing.T, repo *transaction.MockRepository, query string) *httptest.ResponseRecorder {
		t.Helper()

		req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
		req.Header.Set("X-User-ID", userID.String())
		rec := httptest.NewRecorder()

		newServer(repo).ServeHTTP(rec, req)

		return rec
	}

	rejected := []struct {
		name  string
		query string
	}{
		{"UnknownType", "?type=transfer"},
		{"MalformedStartDate", "?start_date=junk"},
		{"MalformedEndDate", "?end_date=2025-13-40"},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			rec := get(t, transaction.NewMockRepository(ctrl), tt.query)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("ValidFiltersReachTheStore", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)

		repo := transaction.NewMockRepository(ctrl)
		repo.EXPECT().
			ListTransactions(gomock.Any(), userID, gomock.Cond(func(f transaction.Filter) bool {
				return f.Type != nil && *f.Type == transaction.TypeExpense &&
					f.StartDate != nil && f.StartDate.Equal(start) &&
					f.EndDate != nil && f.EndDate.Equal(end)
			})).
			Return(nil, nil)

		rec := get(t, repo, "?type=expense&start_date=2025-06-01&end_date=2025-06-30")

		require.Equal(t, http.StatusOK, rec.Code)
	})
}
