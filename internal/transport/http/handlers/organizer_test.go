package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/session"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/dto"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/transport/http/middleware"
)

const validEventBody = `{
	"title": "Robotics Meetup",
	"short_description": "Build a robot in an evening",
	"description": "Hands-on robotics for beginners",
	"date": "2024-09-01",
	"time": "18:30",
	"location": "Makerspace Hub",
	"category": "Technology",
	"image": "https://img.example.com/robot.jpg"
}`

type organizerFixture struct {
	store    *catalog.Store
	sessions *session.Store
	auth     *middleware.AuthMiddleware
	h        *OrganizerHandler
	token    string
}

func newOrganizerFixture(t *testing.T) *organizerFixture {
	t.Helper()
	f := &organizerFixture{store: newCatalog(), sessions: newSessions(t)}
	f.auth = middleware.NewAuth("secret", "test", time.Hour, f.sessions)
	f.h = NewOrganizerHandler(f.store)

	u, err := f.sessions.Login(context.Background(), "organizer@example.com", "password")
	require.NoError(t, err)
	f.token, _, err = f.auth.Issue(u)
	require.NoError(t, err)
	return f
}

func (f *organizerFixture) do(fn http.HandlerFunc, method, body, id string) *httptest.ResponseRecorder {
	params := map[string]string{}
	if id != "" {
		params["event_id"] = id
	}
	req := request(method, "/", body, params)
	req.Header.Set("Authorization", "Bearer "+f.token)
	rr := httptest.NewRecorder()
	f.auth.Require(fn).ServeHTTP(rr, req)
	return rr
}

func TestOrganizerHandler_Create(t *testing.T) {
	f := newOrganizerFixture(t)

	rr := f.do(f.h.Create, http.MethodPost, validEventBody, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var got dto.EventResp
	decodeData(t, rr, &got)
	assert.Equal(t, "new-1", got.ID)
	assert.Equal(t, "org1", got.OrganizerID)
	assert.Equal(t, "Jazztown Music Association", got.Organizer)
	assert.Equal(t, 0, got.Views)
	assert.Equal(t, 0, got.Likes)

	first := f.store.Events()[0]
	assert.Equal(t, "new-1", first.ID)

	t.Run("validation", func(t *testing.T) {
		rr := f.do(f.h.Create, http.MethodPost, `{"title":"x","category":"Opera"}`, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "short_description")
		assert.Contains(t, rr.Body.String(), "category")
	})

	t.Run("body_cannot_set_organizer", func(t *testing.T) {
		rr := f.do(f.h.Create, http.MethodPost, `{"organizer_id":"org2"}`, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestOrganizerHandler_Update(t *testing.T) {
	t.Run("owner_updates_and_counters_survive", func(t *testing.T) {
		f := newOrganizerFixture(t)
		rr := f.do(f.h.Update, http.MethodPut, validEventBody, "1")
		require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

		var got dto.EventResp
		decodeData(t, rr, &got)
		assert.Equal(t, "1", got.ID)
		assert.Equal(t, "Robotics Meetup", got.Title)
		assert.Equal(t, 10, got.Views)
		assert.Equal(t, 2, got.Likes)
		assert.Equal(t, "org1", got.OrganizerID)
	})

	t.Run("non_owner_is_forbidden", func(t *testing.T) {
		f := newOrganizerFixture(t)
		rr := f.do(f.h.Update, http.MethodPut, validEventBody, "2")
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "forbidden", errorCode(t, rr))

		e, _ := f.store.Get("2")
		assert.Equal(t, "Pottery for Beginners", e.Title)
	})

	t.Run("unknown_is_404", func(t *testing.T) {
		f := newOrganizerFixture(t)
		rr := f.do(f.h.Update, http.MethodPut, validEventBody, "missing")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestOrganizerHandler_Delete(t *testing.T) {
	f := newOrganizerFixture(t)

	rr := f.do(f.h.Delete, http.MethodDelete, "", "2")
	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.Equal(t, 4, f.store.Len())

	rr = f.do(f.h.Delete, http.MethodDelete, "", "1")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	_, ok := f.store.Get("1")
	assert.False(t, ok)

	rr = f.do(f.h.Delete, http.MethodDelete, "", "1")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestOrganizerHandler_ListMine(t *testing.T) {
	f := newOrganizerFixture(t)

	rr := f.do(f.h.ListMine, http.MethodGet, "", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var got dto.OrganizerResp
	decodeData(t, rr, &got)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "1", got.Items[0].ID)
	assert.Equal(t, "3", got.Items[1].ID)
	assert.Equal(t, dto.StatsResp{Events: 2, Views: 10, Likes: 7}, got.Stats)
}

func TestOrganizerHandler_AfterLogout(t *testing.T) {
	f := newOrganizerFixture(t)
	require.NoError(t, f.sessions.Logout(context.Background()))

	rr := f.do(f.h.ListMine, http.MethodGet, "", "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
