package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collabhub.backend/internal/interfaces/http/middleware"
)

// injectUser stands in for the auth middleware in tests.
func injectUser(userID uuid.UUID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, userID)
		c.Set(middleware.UserRoleKey, role)
		c.Next()
	}
}

func TestProjectHandler_ValidationBranches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewProjectHandler(nil)

	r := gin.New()
	r.POST("/projects", h.CreateProject)
	r.GET("/projects/:id", h.GetProject)
	r.POST("/projects/:id/apply", injectUser(uuid.New(), "user"), h.Apply)
	r.POST("/projects/:id/complete", h.Complete)

	req := httptest.NewRequest(http.MethodPost, "/projects", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated create, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/projects/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid project id, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/projects/not-a-uuid/apply", strings.NewReader(`{"roleId":"r1"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid project id on apply, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/projects/"+uuid.NewString()+"/complete", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated complete, got %d", w.Code)
	}
}

func TestTeamHandler_ValidationBranches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewTeamHandler(nil)

	r := gin.New()
	r.POST("/teams", h.FormTeam)
	r.GET("/teams/:id", h.GetTeam)
	r.POST("/teams/:id/members", injectUser(uuid.New(), "user"), h.AddMember)
	r.DELETE("/teams/:id/members/:userId", injectUser(uuid.New(), "user"), h.RemoveMember)

	req := httptest.NewRequest(http.MethodPost, "/teams", strings.NewReader(`{"name":"a"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated form, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/teams/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid team id, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/teams/"+uuid.NewString()+"/members", strings.NewReader(`{"userId":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid member payload, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/teams/"+uuid.NewString()+"/members/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid member id, got %d", w.Code)
	}
}

func TestTaskAndMessageHandler_ValidationBranches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	taskHandler := NewTaskHandler(nil)
	messageHandler := NewMessageHandler(nil)

	r := gin.New()
	r.GET("/teams/:id/tasks", taskHandler.ListTasks)
	r.PUT("/tasks/:id", taskHandler.UpdateTask)
	r.DELETE("/tasks/:id", taskHandler.DeleteTask)
	r.GET("/teams/:id/messages", messageHandler.ListMessages)
	r.POST("/teams/:id/messages", messageHandler.PostMessage)

	for _, tc := range []struct {
		method, path string
	}{
		{http.MethodGet, "/teams/not-a-uuid/tasks"},
		{http.MethodPut, "/tasks/not-a-uuid"},
		{http.MethodDelete, "/tasks/not-a-uuid"},
		{http.MethodGet, "/teams/not-a-uuid/messages"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d", tc.method, tc.path, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodPost, "/teams/"+uuid.NewString()+"/messages", strings.NewReader(`{"content":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated post, got %d", w.Code)
	}
}

func TestNotificationAndAdminHandler_ValidationBranches(t *testing.T) {
	gin.SetMode(gin.TestMode)
	notificationHandler := NewNotificationHandler(nil)
	adminHandler := NewAdminHandler(nil)

	r := gin.New()
	r.GET("/notifications", notificationHandler.ListNotifications)
	r.PUT("/notifications/:id/read", notificationHandler.MarkRead)
	r.DELETE("/admin/users/:id", adminHandler.DeleteUser)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unauthenticated list, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/notifications/not-a-uuid/read", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid notification id, got %d", w.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/admin/users/not-a-uuid", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid admin user id, got %d", w.Code)
	}
}

func TestUploadHandler_Branches(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/upload", NewUploadHandler(nil).Upload)

	req := httptest.NewRequest(http.MethodPost, "/upload", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when uploads are not configured, got %d", w.Code)
	}
}
