package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	apierrors "github.com/pribylovaa/personnel-oauth/internal/errors"
	logctx "github.com/pribylovaa/personnel-oauth/internal/pkg/log"
	"github.com/pribylovaa/personnel-oauth/internal/service"
)

// AuthorizeForm — GET /oauth/authorize: проверяет клиента и response_type
// и показывает форму входа владельца ресурса.
func (h *Handlers) AuthorizeForm(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	clientID, state := q.Get("client_id"), q.Get("state")

	client, err := h.svc.CheckAuthorizeRequest(r.Context(), clientID, q.Get("response_type"))
	switch {
	case err == nil:
		render(w, r, http.StatusOK, "authorize.html", authorizePage{ClientID: client.ClientID, State: state})
	case client != nil:
		code, _ := apierrors.OAuthCode(err)
		h.redirect(w, r, client.RedirectURI, url.Values{"error": {code}}, state)
	case errors.Is(err, service.ErrInvalidClient):
		renderError(w, r, http.StatusBadRequest, "Authorization error", "Invalid client ID.")
	default:
		logctx.From(r.Context()).Error("authorize_check_failed", slog.String("err", err.Error()))
		renderError(w, r, http.StatusInternalServerError, "Authorization error", "Internal error.")
	}
}

// Authorize — POST /oauth/authorize: проверяет логин/пароль и
// перенаправляет на redirect_uri клиента с code или error.
func (h *Handlers) Authorize(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, http.StatusBadRequest, "Authorization error", "Malformed form.")
		return
	}

	state := r.PostForm.Get("state")
	client, code, err := h.svc.Authorize(r.Context(), service.AuthorizeRequest{
		ClientID: r.PostForm.Get("client_id"),
		Username: r.PostForm.Get("username"),
		Password: r.PostForm.Get("password"),
	})

	switch {
	case err == nil:
		h.metrics.ObserveAuthorize("issued")
		h.redirect(w, r, client.RedirectURI, url.Values{"code": {code}}, state)
	case client != nil:
		oauthCode, _ := apierrors.OAuthCode(err)
		if oauthCode == apierrors.OAuthServerError {
			logctx.From(r.Context()).Error("authorize_failed", slog.String("err", err.Error()))
		}
		h.metrics.ObserveAuthorize(oauthCode)
		h.redirect(w, r, client.RedirectURI, url.Values{"error": {oauthCode}}, state)
	case errors.Is(err, service.ErrInvalidClient):
		h.metrics.ObserveAuthorize(apierrors.OAuthInvalidClient)
		renderError(w, r, http.StatusBadRequest, "Authorization error", "Invalid client ID.")
	default:
		h.metrics.ObserveAuthorize(apierrors.OAuthServerError)
		logctx.From(r.Context()).Error("authorize_failed", slog.String("err", err.Error()))
		renderError(w, r, http.StatusInternalServerError, "Authorization error", "Internal error.")
	}
}

// Token — POST /oauth/token. Учётные данные клиента принимаются из формы
// (client_id/client_secret) или из HTTP Basic.
func (h *Handlers) Token(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.metrics.ObserveToken("", apierrors.OAuthInvalidRequest)
		apierrors.WriteOAuthError(w, service.ErrInvalidRequest)
		return
	}

	req := service.TokenRequest{
		GrantType:    r.PostForm.Get("grant_type"),
		ClientID:     r.PostForm.Get("client_id"),
		ClientSecret: r.PostForm.Get("client_secret"),
		Code:         r.PostForm.Get("code"),
		RefreshToken: r.PostForm.Get("refresh_token"),
	}
	if req.ClientID == "" {
		if id, secret, ok := r.BasicAuth(); ok {
			req.ClientID, req.ClientSecret = id, secret
		}
	}

	pair, err := h.svc.Token(r.Context(), req)
	if err != nil {
		code, _ := apierrors.OAuthCode(err)
		if code == apierrors.OAuthServerError {
			logctx.From(r.Context()).Error("token_failed", slog.String("err", err.Error()))
		}
		h.metrics.ObserveToken(req.GrantType, code)
		apierrors.WriteOAuthError(w, err)
		return
	}

	h.metrics.ObserveToken(req.GrantType, "issued")

	apierrors.SetNoCache(w)
	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken:  pair.AccessToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(pair.ExpiresIn / time.Second),
		RefreshToken: pair.RefreshToken,
	})
}

// redirect отправляет 302 на base с params; непустой state добавляется как есть.
func (h *Handlers) redirect(w http.ResponseWriter, r *http.Request, base string, params url.Values, state string) {
	if state != "" {
		params.Set("state", state)
	}

	target, err := redirectURL(base, params)
	if err != nil {
		logctx.From(r.Context()).Error("redirect_uri_invalid", slog.String("err", err.Error()))
		renderError(w, r, http.StatusInternalServerError, "Authorization error", "Invalid redirect URI.")
		return
	}

	http.Redirect(w, r, target, http.StatusFound)
}

// redirectURL добавляет params к query зарегистрированного redirect URI.
func redirectURL(base string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", err
	}

	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Set(k, v)
		}
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}
