package events

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/eventra/backend/internal/middleware"
	"github.com/eventra/backend/internal/models"
)

type stubStore struct {
	event     *models.Event
	updateErr error
}

func (s *stubStore) Create(_ context.Context, _ *models.Event) error { return nil }

func (s *stubStore) GetByID(_ context.Context, _ uuid.UUID) (*models.Event, error) {
	if s.event == nil {
		return nil, ErrNotFound
	}
	return s.event, nil
}

func (s *stubStore) ListByOrganizer(_ context.Context, _ uuid.UUID) ([]models.Event, error) {
	return nil, nil
}

func (s *stubStore) Update(_ context.Context, _ *models.Event) error { return s.updateErr }

func (s *stubStore) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func updateRouter(store Store, userID uuid.UUID) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(store, nil, zap.NewNop())
	r := gin.New()
	r.PATCH("/events/:id", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
	}, h.Update)
	return r
}

const updateBody = `{"title":"Jazz Night","description":"An evening of live jazz",
	"date":"2026-10-02","time":"19:30","location":"Blue Note Hall","category":"music",
	"ticket_tiers":[{"name":"General","price":25,"quantity":100}],"published":true}`

func doUpdate(r *gin.Engine, id uuid.UUID) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/events/"+id.String(), strings.NewReader(updateBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestUpdatePendingEvent(t *testing.T) {
	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OrganizerID: owner, ApprovalStatus: models.ApprovalPending}
	r := updateRouter(&stubStore{event: event}, owner)
	w := doUpdate(r, event.ID)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateConflictsAfterReview(t *testing.T) {
	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OrganizerID: owner, ApprovalStatus: models.ApprovalApproved}
	r := updateRouter(&stubStore{event: event}, owner)
	w := doUpdate(r, event.ID)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateConflictsWhenReviewRacesTheWrite(t *testing.T) {
	// The read sees a pending event, but a review lands before the write; the
	// store's pending guard rejects it and the handler answers 409.
	owner := uuid.New()
	event := &models.Event{ID: uuid.New(), OrganizerID: owner, ApprovalStatus: models.ApprovalPending}
	r := updateRouter(&stubStore{event: event, updateErr: ErrReviewed}, owner)
	w := doUpdate(r, event.ID)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdateForbiddenForNonOwner(t *testing.T) {
	event := &models.Event{ID: uuid.New(), OrganizerID: uuid.New(), ApprovalStatus: models.ApprovalPending}
	r := updateRouter(&stubStore{event: event}, uuid.New())
	w := doUpdate(r, event.ID)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateNotFound(t *testing.T) {
	r := updateRouter(&stubStore{}, uuid.New())
	w := doUpdate(r, uuid.New())
	assert.Equal(t, http.StatusNotFound, w.Code)
}
