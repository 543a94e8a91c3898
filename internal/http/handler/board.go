package handler

import (
	"errors"
	"net/http"
	"pinboard/internal/core"
	"pinboard/internal/http/handler/middleware"
	"pinboard/internal/http/payload"
	"pinboard/internal/http/view"
	"strconv"
	"time"

	"go.uber.org/zap"
)

var (
	SignupPage = "GET /signup"
	Signup     = "POST /signup"
	LoginPage  = "GET /login"
	Login      = "POST /login"
	Logout     = "GET /logout"
	Board      = "GET /{$}"
	WritePage  = "GET /write"
	Write      = "POST /write"
	UpdatePage = "GET /update/{id}"
	Update     = "POST /update/{id}"
	Delete     = "GET /delete/{id}"
)

const sessionCookieMaxAge = int(24 * time.Hour / time.Second)

type BoardHandler struct {
	logs  *zap.SugaredLogger
	forms FormDecoder
	pages Renderer
	board BoardService
}

func NewBoardHandler(logger *zap.SugaredLogger, formDecoder FormDecoder, renderer Renderer, boardService BoardService) *BoardHandler {
	return &BoardHandler{
		logs:  logger,
		forms: formDecoder,
		pages: renderer,
		board: boardService,
	}
}

func (h *BoardHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "signup", h.pageData(r))
}

func (h *BoardHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var form payload.SignupForm
	if err := h.forms.DecodeForm(r, &form); err != nil {
		data := h.pageData(r)
		data.ErrorMessage = signupInvalidMsg
		h.render(w, r, http.StatusBadRequest, "signup", data)
		h.logs.Errorw("failed to decode and validate signup form",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	if err := h.board.SignUp(r.Context(), form.ToCredentials()); err != nil {
		data := h.pageData(r)
		if errors.Is(err, core.ErrUsernameTaken) {
			data.ErrorMessage = signupConflictMsg
			h.render(w, r, http.StatusConflict, "signup", data)
		} else {
			data.ErrorMessage = oopsErr
			h.render(w, r, http.StatusInternalServerError, "error", data)
		}
		h.logs.Errorw("signup failed",
			"error", err,
			"handler", Signup,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *BoardHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "login", h.pageData(r))
}

func (h *BoardHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var form payload.LoginForm
	if err := h.forms.DecodeForm(r, &form); err != nil {
		data := h.pageData(r)
		data.ErrorMessage = loginFailedMsg
		h.render(w, r, http.StatusUnauthorized, "login", data)
		h.logs.Errorw("failed to decode and validate login form",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	token, err := h.board.Authenticate(r.Context(), form.ToCredentials())
	if err != nil {
		data := h.pageData(r)
		// the same page and message regardless of which check failed
		if errors.Is(err, core.ErrAuthenticationFailed) {
			data.ErrorMessage = loginFailedMsg
			h.render(w, r, http.StatusUnauthorized, "login", data)
		} else {
			data.ErrorMessage = oopsErr
			h.render(w, r, http.StatusInternalServerError, "error", data)
		}
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Login,
			"request_id", requestId)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BoardHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *BoardHandler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	searchWord := r.URL.Query().Get("search_word")

	messages, err := h.board.ListMessages(r.Context(), searchWord)
	if err != nil {
		h.serverError(w, r)
		h.logs.Errorw("failed to list messages",
			"error", err,
			"handler", Board,
			"request_id", requestId)
		return
	}

	data := h.pageData(r)
	data.Messages = messages
	data.SearchWord = searchWord
	h.render(w, r, http.StatusOK, "top", data)
}

func (h *BoardHandler) HandleWritePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "write", h.pageData(r))
}

func (h *BoardHandler) HandleWrite(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var form payload.MessageForm
	if err := h.forms.DecodeForm(r, &form); err != nil {
		h.serverError(w, r)
		h.logs.Errorw("failed to decode message form",
			"error", err,
			"handler", Write,
			"request_id", requestId)
		return
	}

	if _, err := h.board.PostMessage(r.Context(), form.UserName, form.Contents); err != nil {
		h.serverError(w, r)
		h.logs.Errorw("failed to post message",
			"error", err,
			"handler", Write,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BoardHandler) HandleUpdatePage(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.messageID(w, r)
	if !ok {
		return
	}

	message, err := h.board.GetMessage(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrMessageNotFound) {
			h.notFound(w, r)
		} else {
			h.serverError(w, r)
		}
		h.logs.Errorw("failed to get message",
			"error", err,
			"handler", UpdatePage,
			"request_id", requestId)
		return
	}

	data := h.pageData(r)
	data.Message = message
	h.render(w, r, http.StatusOK, "update", data)
}

func (h *BoardHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.messageID(w, r)
	if !ok {
		return
	}

	var form payload.UpdateForm
	if err := h.forms.DecodeForm(r, &form); err != nil {
		h.serverError(w, r)
		h.logs.Errorw("failed to decode update form",
			"error", err,
			"handler", Update,
			"request_id", requestId)
		return
	}

	if err := h.board.UpdateMessage(r.Context(), id, form.Contents); err != nil {
		if errors.Is(err, core.ErrMessageNotFound) {
			h.notFound(w, r)
		} else {
			h.serverError(w, r)
		}
		h.logs.Errorw("failed to update message",
			"error", err,
			"handler", Update,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *BoardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	id, ok := h.messageID(w, r)
	if !ok {
		return
	}

	if err := h.board.DeleteMessage(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrMessageNotFound) {
			h.notFound(w, r)
		} else {
			h.serverError(w, r)
		}
		h.logs.Errorw("failed to delete message",
			"error", err,
			"handler", Delete,
			"request_id", requestId)
		return
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// messageID parses the {id} path value; a non-numeric id renders a 404.
func (h *BoardHandler) messageID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		h.notFound(w, r)
		return 0, false
	}
	return uint(id), true
}

func (h *BoardHandler) pageData(r *http.Request) view.Page {
	identity := middleware.IdentityFromContext(r.Context())
	return view.Page{
		CurrentUser:   identity.Username,
		Authenticated: identity.Authenticated,
	}
}

func (h *BoardHandler) notFound(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r)
	data.ErrorMessage = messageMissingMsg
	h.render(w, r, http.StatusNotFound, "error", data)
}

func (h *BoardHandler) serverError(w http.ResponseWriter, r *http.Request) {
	data := h.pageData(r)
	data.ErrorMessage = oopsErr
	h.render(w, r, http.StatusInternalServerError, "error", data)
}

func (h *BoardHandler) render(w http.ResponseWriter, r *http.Request, code int, page string, data view.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)

	if err := h.pages.Render(w, page, data); err != nil {
		h.logs.Errorw("failed to render page",
			"error", err,
			"page", page,
			"request_id", requestID(r))
	}
}

func requestID(r *http.Request) string {
	requestId := ""
	if reqIdCtx := r.Context().Value(middleware.RequestIDKey); reqIdCtx != nil {
		requestId = reqIdCtx.(string)
	}
	return requestId
}
