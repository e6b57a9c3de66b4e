package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	server "github.com/lensworks/crewdesk/pkg/controller/http"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/model/auth"
	"github.com/lensworks/crewdesk/pkg/domain/types"
	"github.com/lensworks/crewdesk/pkg/repository/memory"
	"github.com/lensworks/crewdesk/pkg/service/idp"
	"github.com/lensworks/crewdesk/pkg/usecase"
)

type stubVerifier struct {
	identity *idp.Identity
}

func (v *stubVerifier) Verify(_ context.Context, _ string) (*idp.Identity, error) {
	return v.identity, nil
}

func newTestServer(t *testing.T) (*server.Server, *usecase.UseCases, *memory.Memory) {
	t.Helper()
	repo := memory.New()
	uc := usecase.New(repo,
		usecase.WithVerifier(&stubVerifier{identity: &idp.Identity{
			Sub: "uid-alice", Email: "alice@example.com", Name: "Alice",
		}}),
		usecase.WithTokenSecret([]byte("test-signing-secret")),
	)
	return server.New(uc), uc, repo
}

func sessionCookie(t *testing.T, uc *usecase.UseCases) *http.Cookie {
	t.Helper()
	result, err := uc.Auth.Login(context.Background(), "stub-id-token", "", "")
	gt.NoError(t, err).Required()
	return &http.Cookie{Name: auth.CookieName, Value: result.Token}
}

func TestAuthGate(t *testing.T) {
	t.Run("API path without cookie gets 401 JSON", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))

		gt.Value(t, rec.Code).Equal(http.StatusUnauthorized)

		var body struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)).Required()
		gt.Value(t, body.Code).Equal(http.StatusUnauthorized)
		gt.String(t, body.Message).NotEqual("")
	})

	t.Run("page path without cookie redirects to login", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/dashboard/employee/tasks", nil))

		gt.Value(t, rec.Code).Equal(http.StatusSeeOther)
		gt.Value(t, rec.Header().Get("Location")).Equal("/login")
	})

	t.Run("employee on executive API path gets 403", func(t *testing.T) {
		srv, uc, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/executive/reports", nil)
		req.AddCookie(sessionCookie(t, uc))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusForbidden)
	})

	t.Run("employee on executive page redirects to own dashboard", func(t *testing.T) {
		srv, uc, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/dashboard/executive/leads", nil)
		req.AddCookie(sessionCookie(t, uc))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusSeeOther)
		gt.Value(t, rec.Header().Get("Location")).Equal("/dashboard/employee")
	})
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("issues a session cookie and redirect target", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		body := bytes.NewBufferString(`{"idToken":"stub-id-token"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Success     bool   `json:"success"`
			RedirectURL string `json:"redirectUrl"`
			User        struct {
				ID   string `json:"id"`
				Role string `json:"role"`
			} `json:"user"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
		gt.Bool(t, resp.Success).True()
		gt.Value(t, resp.RedirectURL).Equal("/dashboard/employee")
		gt.Value(t, resp.User.Role).Equal("employee")

		cookies := rec.Result().Cookies()
		gt.Array(t, cookies).Length(1)
		gt.Value(t, cookies[0].Name).Equal(auth.CookieName)
		gt.String(t, cookies[0].Value).NotEqual("")
		gt.Bool(t, cookies[0].HttpOnly).True()
	})

	t.Run("missing idToken is a 400", func(t *testing.T) {
		srv, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{}`))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})
}

func TestMeEndpoint(t *testing.T) {
	srv, uc, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.AddCookie(sessionCookie(t, uc))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			UserID string `json:"userId"`
			Email  string `json:"email"`
			Role   string `json:"role"`
		} `json:"data"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Bool(t, resp.Success).True()
	gt.Value(t, resp.Data.UserID).Equal("uid-alice")
	gt.Value(t, resp.Data.Email).Equal("alice@example.com")
}

func TestTaskEndpoints(t *testing.T) {
	t.Run("create validates before writing", func(t *testing.T) {
		srv, uc, repo := newTestServer(t)
		cookie := sessionCookie(t, uc)

		req := httptest.NewRequest(http.MethodPost, "/api/tasks",
			bytes.NewBufferString(`{"title":"Edit highlight reel"}`))
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)

		tasks, err := repo.Task().List(context.Background())
		gt.NoError(t, err).Required()
		gt.Array(t, tasks).Length(0)
	})

	t.Run("create then fetch", func(t *testing.T) {
		srv, uc, _ := newTestServer(t)
		cookie := sessionCookie(t, uc)

		deadline := time.Now().UTC().Add(48 * time.Hour).Format(time.RFC3339)
		req := httptest.NewRequest(http.MethodPost, "/api/tasks",
			bytes.NewBufferString(`{"title":"Edit highlight reel","deadline":"`+deadline+`"}`))
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		var created struct {
			Data struct {
				ID         string   `json:"id"`
				Status     string   `json:"status"`
				AssignedTo []string `json:"assigned_to"`
			} `json:"data"`
		}
		gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created)).Required()
		gt.Value(t, created.Data.Status).Equal("pending")
		gt.Array(t, created.Data.AssignedTo).Length(1)
		gt.Value(t, created.Data.AssignedTo[0]).Equal("uid-alice")

		getReq := httptest.NewRequest(http.MethodGet, "/api/tasks/"+created.Data.ID, nil)
		getReq.AddCookie(cookie)
		getRec := httptest.NewRecorder()
		srv.ServeHTTP(getRec, getReq)

		gt.Value(t, getRec.Code).Equal(http.StatusOK)
	})

	t.Run("absent task is a 404", func(t *testing.T) {
		srv, uc, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/api/tasks/no-such-task", nil)
		req.AddCookie(sessionCookie(t, uc))
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("delete needs the executive role", func(t *testing.T) {
		srv, uc, repo := newTestServer(t)
		cookie := sessionCookie(t, uc)

		task, err := repo.Task().Create(context.Background(), &model.Task{
			Title:      "Edit highlight reel",
			Status:     types.TaskStatusPending,
			Priority:   types.TaskPriorityMedium,
			Deadline:   time.Now().UTC().Add(48 * time.Hour),
			AssignedTo: []model.UserID{"uid-alice"},
			CreatedBy:  "uid-alice",
		})
		gt.NoError(t, err).Required()

		req := httptest.NewRequest(http.MethodDelete, "/api/tasks/"+task.ID.String(), nil)
		req.AddCookie(cookie)
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)

		gt.Value(t, rec.Code).Equal(http.StatusForbidden)
	})
}

func TestNotificationEndpoints(t *testing.T) {
	srv, uc, repo := newTestServer(t)
	cookie := sessionCookie(t, uc)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := repo.Notification().Create(ctx, &model.Notification{
			UserID:  "uid-alice",
			Type:    types.NotificationTypeSystem,
			Title:   "heads up",
			Message: "something happened",
		})
		gt.NoError(t, err).Required()
	}

	req := httptest.NewRequest(http.MethodPost, "/api/notifications/read-all", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	gt.Value(t, rec.Code).Equal(http.StatusOK)

	var resp struct {
		Data struct {
			Updated int `json:"updated"`
		} `json:"data"`
	}
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp)).Required()
	gt.Value(t, resp.Data.Updated).Equal(3)

	feedReq := httptest.NewRequest(http.MethodGet, "/api/notifications?unread=true", nil)
	feedReq.AddCookie(cookie)
	feedRec := httptest.NewRecorder()
	srv.ServeHTTP(feedRec, feedReq)

	var feed struct {
		Data []json.RawMessage `json:"data"`
	}
	gt.NoError(t, json.Unmarshal(feedRec.Body.Bytes(), &feed)).Required()
	gt.Array(t, feed.Data).Length(0)
}
