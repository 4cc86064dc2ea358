package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"doctor-scheduler/internal/domain/entity"
)

func runWithRole(handler http.Handler, user *entity.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/book", nil)
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), UserKey, user))
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name       string
		handler    http.Handler
		user       *entity.User
		wantStatus int
	}{
		{
			name:       "doctor on doctor route",
			handler:    RequireDoctor(next),
			user:       &entity.User{ID: 1, Role: entity.RoleDoctor},
			wantStatus: http.StatusOK,
		},
		{
			name:       "patient on doctor route",
			handler:    RequireDoctor(next),
			user:       &entity.User{ID: 2, Role: entity.RolePatient},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "patient on patient route",
			handler:    RequirePatient(next),
			user:       &entity.User{ID: 2, Role: entity.RolePatient},
			wantStatus: http.StatusOK,
		},
		{
			name:       "doctor on patient route",
			handler:    RequirePatient(next),
			user:       &entity.User{ID: 1, Role: entity.RoleDoctor},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no user in context",
			handler:    RequirePatient(next),
			user:       nil,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := runWithRole(tt.handler, tt.user)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
