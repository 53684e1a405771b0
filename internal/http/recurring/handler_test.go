package recurring_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nlithgow/vatu/internal/clock"
	recurringhttp "github.com/nlithgow/vatu/internal/http/recurring"
	"github.com/nlithgow/vatu/internal/http/userctx"
	"github.com/nlithgow/vatu/internal/recurring"
	"github.com/nlithgow/vatu/internal/transaction"
)

var now = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func timePtr(t time.Time) *time.Time { return &t }

func newServer(repo *recurring.MockRepository) http.Handler {
	svc := recurring.NewService(repo, clock.Fixed(now))
	h := recurringhttp.NewHandler(svc, clock.Fixed(now))

	r := chi.NewRouter()
	r.Use(userctx.Middleware)
	h.Routes(r)

	return r
}

func rentTemplate(userID, id uuid.UUID) *recurring.Template {
	return &recurring.Template{
		ID:             id,
		UserID:         userID,
		Name:           "Rent",
		Amount:         decimal.NewFromInt(1200),
		Category:       "Housing",
		Type:           transaction.TypeExpense,
		Frequency:      recurring.FrequencyMonthly,
		StartDate:      date(2025, 1, 1),
		NextOccurrence: date(2025, 6, 1),
		Status:         recurring.StatusActive,
		CountCreated:   5,
	}
}

func TestHandler_Get_OverdueFields(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("PastDue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := recurring.NewMockRepository(ctrl)
		repo.EXPECT().GetTemplate(gomock.Any(), userID, id).Return(rentTemplate(userID, id), nil)

		req := httptest.NewRequest(http.MethodGet, "/"+id.String(), nil)
		req.Header.Set("X-User-ID", userID.String())
		rec := httptest.NewRecorder()

		newServer(repo).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			IsOverdue     bool `json:"is_overdue"`
			DaysUntilNext int  `json:"days_until_next"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.True(t, body.IsOverdue)
		assert.Equal(t, -14, body.DaysUntilNext)
	})

	t.Run("DueLater", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		tpl := rentTemplate(userID, id)
		tpl.NextOccurrence = date(2025, 6, 22)

		repo := recurring.NewMockRepository(ctrl)
		repo.EXPECT().GetTemplate(gomock.Any(), userID, id).Return(tpl, nil)

		req := httptest.NewRequest(http.MethodGet, "/"+id.String(), nil)
		req.Header.Set("X-User-ID", userID.String())
		rec := httptest.NewRecorder()

		newServer(repo).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			IsOverdue     bool `json:"is_overdue"`
			DaysUntilNext int  `json:"days_until_next"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.False(t, body.IsOverdue)
		assert.Equal(t, 7, body.DaysUntilNext)
	})
}

func TestHandler_Update_EndConditions(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	bounded := func() *recurring.Template {
		tpl := rentTemplate(userID, id)
		tpl.EndDate = timePtr(date(2025, 12, 31))
		max := 12
		tpl.MaxOccurrences = &max
		return tpl
	}

	patch := func(t *testing.T, repo *recurring.MockRepository, body string) *httptest.ResponseRecorder {
		t.Helper()

		req := httptest.NewRequest(http.MethodPatch, "/"+id.String(), strings.NewReader(body))
		req.Header.Set("X-User-ID", userID.String())
		rec := httptest.NewRecorder()

		newServer(repo).ServeHTTP(rec, req)

		return rec
	}

	t.Run("NullClearsBothConditions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := recurring.NewMockRepository(ctrl)
		repo.EXPECT().GetTemplate(gomock.Any(), userID, id).Return(bounded(), nil)
		repo.EXPECT().
			UpdateTemplate(gomock.Any(), gomock.Cond(func(tpl *recurring.Template) bool {
				return tpl.EndDate == nil && tpl.MaxOccurrences == nil
			})).
			Return(nil)

		rec := patch(t, repo, `{"end_date": null, "max_occurrences": null}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		assert.NotContains(t, body, "end_date")
		assert.NotContains(t, body, "max_occurrences")
	})

	t.Run("AbsentFieldsLeaveConditionsUntouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := recurring.NewMockRepository(ctrl)
		repo.EXPECT().GetTemplate(gomock.Any(), userID, id).Return(bounded(), nil)
		repo.EXPECT().
			UpdateTemplate(gomock.Any(), gomock.Cond(func(tpl *recurring.Template) bool {
				return tpl.EndDate != nil && tpl.MaxOccurrences != nil
			})).
			Return(nil)

		rec := patch(t, repo, `{"name": "Rent 2026"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("SetsNewEndDate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		want := date(2026, 6, 30)

		repo := recurring.NewMockRepository(ctrl)
		repo.EXPECT().GetTemplate(gomock.Any(), userID, id).Return(bounded(), nil)
		repo.EXPECT().
			UpdateTemplate(gomock.Any(), gomock.Cond(func(tpl *recurring.Template) bool {
				return tpl.EndDate != nil && tpl.EndDate.Equal(want)
			})).
			Return(nil)

		rec := patch(t, repo, `{"end_date": "2026-06-30"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("MalformedEndDate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rec := patch(t, recurring.NewMockRepository(ctrl), `{"end_date": "next year"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("MalformedMaxOccurrences", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rec := patch(t, recurring.NewMockRepository(ctrl), `{"max_occurrences": "ten"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
