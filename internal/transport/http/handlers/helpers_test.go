package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/catalog"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/application/session"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/domain"
	"github.com/baechuer/real-time-ressys/services/discovery-service/internal/infrastructure/localstore"
)

func seedEvents() []domain.Event {
	return []domain.Event{
		{ID: "1", Title: "Summer Jazz Night", Date: "2024-06-15", Time: "19:00", Location: "Riverside Park", Category: domain.CategoryMusic, Organizer: "Jazztown Music Association", OrganizerID: "org1", Views: 10, Likes: 2},
		{ID: "2", Title: "Pottery for Beginners", Date: "2024-06-22", Time: "10:00", Location: "Clay Studio", Category: domain.CategoryWorkshops, Organizer: "Clay Studio Collective", OrganizerID: "org2"},
		{ID: "3", Title: "Blues and Brews", Date: "2024-08-03", Time: "15:00", Location: "Old Mill", Category: domain.CategoryMusic, Organizer: "Jazztown Music Association", OrganizerID: "org1", Likes: 5},
		{ID: "4", Title: "Night Market", Date: "2024-07-20", Time: "17:00", Location: "Harbour Square", Category: domain.CategoryFood, Organizer: "Harbour Events Co", OrganizerID: "org6"},
	}
}

func newCatalog() *catalog.Store {
	n := 0
	return catalog.New(seedEvents(), catalog.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	}))
}

func newSessions(t *testing.T) *session.Store {
	t.Helper()
	v, err := session.NewDemoVerifier(session.DemoCredentials{
		Email:    "organizer@example.com",
		Password: "password",
		User:     domain.User{ID: "org1", Name: "Jazztown Music Association", Role: domain.RoleOrganizer},
	})
	require.NoError(t, err)
	return session.New(context.Background(), localstore.NewMemory(), v, session.WithDelay(0))
}

type stubIssuer struct{}

func (stubIssuer) Issue(u domain.User) (string, time.Time, error) {
	return "token-" + u.ID, time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

// request builds a request with chi URL params.
func request(method, target, body string, params map[string]string) *http.Request {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

// decodeData unwraps the {"data": ...} envelope into dst.
func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Error.Code
}
