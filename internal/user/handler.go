package user

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/ferdiebergado/accounts/internal/pkg/message"
	"github.com/ferdiebergado/accounts/internal/pkg/web"
)

type UserService interface {
	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, userID string) (User, error)
	Create(ctx context.Context, params CreateUserParams) (User, error)
	UpdateProfile(ctx context.Context, userID string, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, params ChangePasswordParams) error
}

// ErrorRecorder counts failed user operations by kind.
type ErrorRecorder interface {
	RecordUserError(operation, kind string)
}

type Handler struct {
	svc     UserService
	metrics ErrorRecorder
}

func NewHandler(svc UserService, metrics ErrorRecorder) *Handler {
	return &Handler{
		svc:     svc,
		metrics: metrics,
	}
}

type UserData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Users []UserData `json:"users"`
}

type CreateResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type IDResponse struct {
	ID string `json:"id"`
}

func transformUser(u User) UserData {
	return UserData{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.List(r.Context())
	if err != nil {
		h.fail(w, "list", err)
		return
	}

	data := make([]UserData, 0, len(users))
	for _, u := range users {
		data = append(data, transformUser(u))
	}

	web.OK(w, http.StatusOK, nil, &ListResponse{Users: data})
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		h.fail(w, "find", err)
		return
	}

	data := transformUser(u)
	web.OK(w, http.StatusOK, nil, &data)
}

type CreateUserRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	PasswordConfirm string `json:"password_confirm" validate:"required"`
}

func (r CreateUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
	)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[CreateUserRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.Create(r.Context(), CreateUserParams(req))
	if err != nil {
		h.fail(w, "create", err)
		return
	}

	msg := message.UserCreated
	data := &CreateResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	web.OK(w, http.StatusCreated, &msg, data)
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func (r UpdateUserRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", r.Name),
		slog.String("email", maskChar),
	)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[UpdateUserRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), r.PathValue("id"), UpdateUserParams(req))
	if err != nil {
		h.fail(w, "update", err)
		return
	}

	msg := message.UserUpdated
	web.OK(w, http.StatusOK, &msg, &IDResponse{ID: u.ID})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("id")
	if err := h.svc.Delete(r.Context(), userID); err != nil {
		h.fail(w, "delete", err)
		return
	}

	msg := message.UserDeleted
	web.OK(w, http.StatusOK, &msg, &IDResponse{ID: userID})
}

type ChangePasswordRequest struct {
	Email              string `json:"email" validate:"required"`
	Password           string `json:"password" validate:"required"`
	PasswordConfirm    string `json:"password_confirm" validate:"required"`
	NewPassword        string `json:"changePassword" validate:"required"`
	NewPasswordConfirm string `json:"change_password_confirm" validate:"required"`
}

func (r ChangePasswordRequest) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("email", maskChar),
		slog.String("password", maskChar),
		slog.String("password_confirm", maskChar),
		slog.String("changePassword", maskChar),
		slog.String("change_password_confirm", maskChar),
	)
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	req, err := web.ParamsFromContext[ChangePasswordRequest](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	params := ChangePasswordParams{
		ID:                 r.PathValue("id"),
		Email:              req.Email,
		Password:           req.Password,
		PasswordConfirm:    req.PasswordConfirm,
		NewPassword:        req.NewPassword,
		NewPasswordConfirm: req.NewPasswordConfirm,
	}
	if err := h.svc.ChangePassword(r.Context(), params); err != nil {
		h.fail(w, "change_password", err)
		return
	}

	msg := message.PasswordUpdated
	web.OK[struct{}](w, http.StatusOK, &msg, nil)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	if web.IsContextError(err) {
		web.Fail(w, http.StatusRequestTimeout, err, message.RequestCancelled, nil)
		return
	}

	kind := Kind(err)
	h.metrics.RecordUserError(op, kind)

	status, msg := statusOf(kind)
	if kind == "INTERNAL" && op == "change_password" {
		msg = message.PasswordFailed
	}
	web.Fail(w, status, err, msg, map[string]string{"kind": kind})
}

func statusOf(kind string) (int, string) {
	switch kind {
	case "INVALID_PASSWORD":
		return http.StatusBadRequest, message.PasswordMismatch
	case "EMAIL_ALREADY_TAKEN":
		return http.StatusConflict, message.EmailTaken
	case "UNKNOWN_USER":
		return http.StatusNotFound, message.UnknownUser
	case "UNAUTHORIZED":
		return http.StatusUnauthorized, message.UserNotFound
	case "EMAIL_MISMATCH":
		return http.StatusForbidden, message.WrongEmail
	case "INVALID_CREDENTIALS":
		return http.StatusUnauthorized, message.InvalidCredentials
	case "UNPROCESSABLE":
		return http.StatusUnprocessableEntity, message.DeleteFailed
	default:
		return http.StatusInternalServerError, message.InternalError
	}
}
