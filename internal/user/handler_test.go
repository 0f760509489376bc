package user_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ferdiebergado/accounts/internal/model"
	"github.com/ferdiebergado/accounts/internal/pkg/message"
	"github.com/ferdiebergado/accounts/internal/pkg/web"
	"github.com/ferdiebergado/accounts/internal/user"
)

type recordedError struct {
	op, kind string
}

type stubRecorder struct {
	mu     sync.Mutex
	errors []recordedError
}

func (r *stubRecorder) RecordUserError(op, kind string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, recordedError{op, kind})
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestHandler_List(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 10, 18, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		svc            user.UserService
		wantStatusCode int
		wantBody       *user.ListResponse
	}{
		{
			name: "Returns user list",
			svc: &user.StubService{
				ListFunc: func(_ context.Context) ([]user.User, error) {
					return []user.User{
						{
							Model: model.Model{ID: "1", CreatedAt: now, UpdatedAt: now},
							Name:  "Ana",
							Email: "a@x",
						},
					}, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody: &user.ListResponse{
				Users: []user.UserData{
					{ID: "1", Name: "Ana", Email: "a@x", CreatedAt: now, UpdatedAt: now},
				},
			},
		},
		{
			name: "Returns an empty list",
			svc: &user.StubService{
				ListFunc: func(_ context.Context) ([]user.User, error) {
					return nil, nil
				},
			},
			wantStatusCode: http.StatusOK,
			wantBody:       &user.ListResponse{Users: []user.UserData{}},
		},
		{
			name: "Service fails",
			svc: &user.StubService{
				ListFunc: func(_ context.Context) ([]user.User, error) {
					return nil, fmt.Errorf("%w: db down", user.ErrInternal)
				},
			},
			wantStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := user.NewHandler(tt.svc, &stubRecorder{})
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			rec := httptest.NewRecorder()

			h.List(rec, req)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantStatusCode)
			}

			if tt.wantBody == nil {
				return
			}

			body := decodeBody[web.OKResponse[*user.ListResponse]](t, rec)
			if !reflect.DeepEqual(body.Data, tt.wantBody) {
				t.Errorf("body.Data = %+v, want: %+v", body.Data, tt.wantBody)
			}
		})
	}
}

func TestHandler_Find(t *testing.T) {
	t.Parallel()

	svc := &user.StubService{
		FindFunc: func(_ context.Context, userID string) (user.User, error) {
			if userID != "1" {
				return user.User{}, fmt.Errorf("%w: %s", user.ErrUnknownUser, userID)
			}
			return user.User{Model: model.Model{ID: "1"}, Name: "Ana", Email: "a@x", PasswordHash: "leak"}, nil
		},
	}
	recorder := &stubRecorder{}
	h := user.NewHandler(svc, recorder)

	req := httptest.NewRequest(http.MethodGet, "/users/1", nil)
	req.SetPathValue("id", "1")
	rec := httptest.NewRecorder()
	h.Find(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusOK)
	}

	if strings.Contains(rec.Body.String(), "leak") {
		t.Errorf("response body %q contains the password hash", rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/users/2", nil)
	req.SetPathValue("id", "2")
	rec = httptest.NewRecorder()
	h.Find(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("rec.Code = %d, want: %d", rec.Code, http.StatusNotFound)
	}

	body := decodeBody[web.ErrorResponse](t, rec)
	if body.Message != message.UnknownUser {
		t.Errorf("body.Message = %q, want: %q", body.Message, message.UnknownUser)
	}

	want := []recordedError{{"find", "UNKNOWN_USER"}}
	if !reflect.DeepEqual(recorder.errors, want) {
		t.Errorf("recorder.errors = %v, want: %v", recorder.errors, want)
	}
}

func TestHandler_Create(t *testing.T) {
	t.Parallel()

	req := user.CreateUserRequest{Name: "Ana", Email: "a@x", Password: "p", PasswordConfirm: "p"}

	tests := []struct {
		name           string
		createErr      error
		wantStatusCode int
		wantMsg        string
	}{
		{"Created", nil, http.StatusCreated, message.UserCreated},
		{"Email taken", user.ErrEmailTaken, http.StatusConflict, message.EmailTaken},
		{"Confirmation mismatch", fmt.Errorf("%w: mismatch", user.ErrInvalidPassword), http.StatusBadRequest, message.PasswordMismatch},
		{"Request cancelled", fmt.Errorf("%w: create: %w", user.ErrInternal, context.Canceled), http.StatusRequestTimeout, message.RequestCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &user.StubService{
				CreateFunc: func(_ context.Context, params user.CreateUserParams) (user.User, error) {
					if tt.createErr != nil {
						return user.User{}, tt.createErr
					}
					return user.User{Model: model.Model{ID: "1"}, Name: params.Name, Email: params.Email}, nil
				},
			}
			h := user.NewHandler(svc, &stubRecorder{})

			r := httptest.NewRequest(http.MethodPost, "/users", nil)
			r = r.WithContext(web.NewContextWithParams(r.Context(), req))
			rec := httptest.NewRecorder()
			h.Create(rec, r)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantStatusCode)
			}

			if tt.createErr != nil {
				body := decodeBody[web.ErrorResponse](t, rec)
				if body.Message != tt.wantMsg {
					t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
				}
				return
			}

			body := decodeBody[web.OKResponse[*user.CreateResponse]](t, rec)
			if body.Message != tt.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
			}

			want := &user.CreateResponse{ID: "1", Name: "Ana", Email: "a@x"}
			if !reflect.DeepEqual(body.Data, want) {
				t.Errorf("body.Data = %+v, want: %+v", body.Data, want)
			}
		})
	}

	t.Run("Missing params", func(t *testing.T) {
		t.Parallel()

		h := user.NewHandler(&user.StubService{}, &stubRecorder{})
		r := httptest.NewRequest(http.MethodPost, "/users", nil)
		rec := httptest.NewRecorder()
		h.Create(rec, r)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusBadRequest)
		}
	})
}

func TestHandler_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		updateErr      error
		wantStatusCode int
	}{
		{"Updated", nil, http.StatusOK},
		{"Email taken", user.ErrEmailTaken, http.StatusConflict},
		{"Unknown user", user.ErrUnknownUser, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotID string
			svc := &user.StubService{
				UpdateProfileFunc: func(_ context.Context, userID string, _ user.UpdateUserParams) (user.User, error) {
					gotID = userID
					if tt.updateErr != nil {
						return user.User{}, tt.updateErr
					}
					return user.User{Model: model.Model{ID: userID}}, nil
				},
			}
			h := user.NewHandler(svc, &stubRecorder{})

			r := httptest.NewRequest(http.MethodPut, "/users/7", nil)
			r.SetPathValue("id", "7")
			r = r.WithContext(web.NewContextWithParams(r.Context(), user.UpdateUserRequest{Name: "Ana2", Email: "a@x"}))
			rec := httptest.NewRecorder()
			h.Update(rec, r)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantStatusCode)
			}

			if gotID != "7" {
				t.Errorf("service got id %q, want: %q", gotID, "7")
			}

			if tt.updateErr == nil {
				body := decodeBody[web.OKResponse[*user.IDResponse]](t, rec)
				if body.Data == nil || body.Data.ID != "7" {
					t.Errorf("body.Data = %+v, want id %q", body.Data, "7")
				}
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		deleteErr      error
		wantStatusCode int
		wantMsg        string
	}{
		{"Deleted", nil, http.StatusOK, message.UserDeleted},
		{"Store failure", fmt.Errorf("%w: delete: %w", user.ErrUnprocessable, user.ErrNotFound), http.StatusUnprocessableEntity, message.DeleteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &user.StubService{
				DeleteFunc: func(context.Context, string) error {
					return tt.deleteErr
				},
			}
			h := user.NewHandler(svc, &stubRecorder{})

			r := httptest.NewRequest(http.MethodDelete, "/users/7", nil)
			r.SetPathValue("id", "7")
			rec := httptest.NewRecorder()
			h.Delete(rec, r)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantStatusCode)
			}

			if tt.deleteErr != nil {
				return
			}

			body := decodeBody[web.OKResponse[*user.IDResponse]](t, rec)
			if body.Message != tt.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
			}

			if body.Data == nil || body.Data.ID != "7" {
				t.Errorf("body.Data = %+v, want id %q", body.Data, "7")
			}
		})
	}
}

func TestHandler_ChangePassword(t *testing.T) {
	t.Parallel()

	req := user.ChangePasswordRequest{
		Email:              "a@x",
		Password:           "p",
		PasswordConfirm:    "p",
		NewPassword:        "n",
		NewPasswordConfirm: "n",
	}

	tests := []struct {
		name           string
		changeErr      error
		wantStatusCode int
		wantMsg        string
	}{
		{"Changed", nil, http.StatusOK, message.PasswordUpdated},
		{"New confirmation mismatch", user.ErrInvalidPassword, http.StatusBadRequest, message.PasswordMismatch},
		{"Unknown user", user.ErrUnauthorized, http.StatusUnauthorized, message.UserNotFound},
		{"Wrong email", user.ErrEmailMismatch, http.StatusForbidden, message.WrongEmail},
		{"Wrong password", user.ErrInvalidCredentials, http.StatusUnauthorized, message.InvalidCredentials},
		{"Store failure", fmt.Errorf("%w: %w", user.ErrInternal, errors.New("disk full")), http.StatusInternalServerError, message.PasswordFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got user.ChangePasswordParams
			svc := &user.StubService{
				ChangePasswordFunc: func(_ context.Context, params user.ChangePasswordParams) error {
					got = params
					return tt.changeErr
				},
			}
			h := user.NewHandler(svc, &stubRecorder{})

			r := httptest.NewRequest(http.MethodPatch, "/users/7/password", nil)
			r.SetPathValue("id", "7")
			r = r.WithContext(web.NewContextWithParams(r.Context(), req))
			rec := httptest.NewRecorder()
			h.ChangePassword(rec, r)

			if rec.Code != tt.wantStatusCode {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantStatusCode)
			}

			wantParams := user.ChangePasswordParams{
				ID: "7", Email: "a@x", Password: "p", PasswordConfirm: "p", NewPassword: "n", NewPasswordConfirm: "n",
			}
			if got != wantParams {
				t.Errorf("service got %+v, want: %+v", got, wantParams)
			}

			if strings.Contains(rec.Body.String(), `"p"`) || strings.Contains(rec.Body.String(), `"n"`) {
				t.Errorf("response body %q echoes a password", rec.Body.String())
			}

			var body web.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode response body: %v", err)
			}

			if body.Message != tt.wantMsg {
				t.Errorf("body.Message = %q, want: %q", body.Message, tt.wantMsg)
			}
		})
	}
}
