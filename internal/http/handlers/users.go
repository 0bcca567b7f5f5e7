package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/personnel-oauth/internal/errors"
	"github.com/pribylovaa/personnel-oauth/internal/http/middleware"
	logctx "github.com/pribylovaa/personnel-oauth/internal/pkg/log"
	"github.com/pribylovaa/personnel-oauth/internal/service"
)

// RegisterForm — GET /register.
func (h *Handlers) RegisterForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "register.html", nil)
}

// Register — POST /register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, http.StatusBadRequest, "Registration error", "Malformed form.")
		return
	}

	user, err := h.svc.RegisterUser(r.Context(), service.Registration{
		Username:  r.PostForm.Get("username"),
		FirstName: r.PostForm.Get("firstname"),
		LastName:  r.PostForm.Get("lastname"),
		Email:     r.PostForm.Get("email"),
		Phone:     r.PostForm.Get("phone"),
		Password:  r.PostForm.Get("password"),
	})

	switch {
	case err == nil:
		render(w, r, http.StatusCreated, "register_result.html", registerResultPage{Username: user.Username})
	case errors.Is(err, service.ErrUsernameTaken):
		renderError(w, r, http.StatusConflict, "Registration error", "Username already exists.")
	case errors.Is(err, service.ErrInvalidArgument):
		renderError(w, r, http.StatusBadRequest, "Registration error", "Username and password are required; email must be valid.")
	default:
		logctx.From(r.Context()).Error("register_failed", slog.String("err", err.Error()))
		renderError(w, r, http.StatusInternalServerError, "Registration error", "Internal error.")
	}
}

// Me — GET /me: профиль владельца токена без пароля.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	user, err := h.svc.Profile(r.Context(), id.Username)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profileFromModel(user))
}
