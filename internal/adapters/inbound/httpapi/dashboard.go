package httpapi

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/sufield/prdash/internal/app"
	"github.com/sufield/prdash/internal/domain"
	"github.com/sufield/prdash/internal/logging"
)

// pullsResponse is the JSON view of a listing.
type pullsResponse struct {
	Login string               `json:"login,omitempty"`
	Count int                  `json:"count"`
	Pulls []domain.PullRequest `json:"pulls"`
	Error string               `json:"error,omitempty"`
}

// parseListOptions reads the listing controls from the query string.
func parseListOptions(q url.Values) (app.ListOptions, error) {
	opts := app.ListOptions{
		SortBy: app.SortField(strings.ToLower(q.Get("sort"))),
		Order:  app.SortOrder(strings.ToLower(q.Get("order"))),
		Query:  strings.TrimSpace(q.Get("q")),
		Status: domain.StatusState(strings.ToLower(q.Get("status"))),
		Draft:  app.DraftFilter(strings.ToLower(q.Get("draft"))),
		Repo:   strings.TrimSpace(q.Get("repo")),
	}
	if review := q.Get("review"); review != "" {
		if strings.EqualFold(review, app.ReviewNoneParam) {
			opts.Review = app.ReviewNoneParam
		} else {
			opts.Review = strings.ToUpper(review)
		}
	}
	if err := opts.Validate(); err != nil {
		return app.ListOptions{}, err
	}
	return opts, nil
}

// dashboard renders the HTML list, or the login page for anonymous users.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	s := SessionFromContext(r.Context())
	errTag := r.URL.Query().Get("error")

	if s.IsAnonymous() {
		if errTag == "" {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		h.pages.render(w, http.StatusOK, pageLogin, pageData{
			Session: s,
			Error:   authErrorMessage(errTag),
		})
		return
	}

	opts, err := parseListOptions(r.URL.Query())
	if err != nil {
		h.pages.render(w, http.StatusBadRequest, pageDashboard, pageData{
			Session: s,
			Pulls:   []domain.PullRequest{},
			Error:   "Invalid listing parameters: " + err.Error(),
		})
		return
	}

	data := pageData{Session: s, Options: opts, Error: authErrorMessage(errTag)}
	prs, err := h.pulls.FetchOpenPRs(r.Context(), s.AccessToken)
	if err != nil {
		if errors.Is(err, domain.ErrNoCredential) {
			http.Redirect(w, r, "/auth/login", http.StatusFound)
			return
		}
		logging.Logger.Warn("aggregation failed", "login", s.Login, "error", err)
		data.Pulls = []domain.PullRequest{}
		data.Error = err.Error()
		h.pages.render(w, http.StatusOK, pageDashboard, data)
		return
	}

	data.Pulls = app.ApplyListOptions(prs, opts)
	data.Count = len(data.Pulls)
	h.pages.render(w, http.StatusOK, pageDashboard, data)
}

// apiPulls is the JSON counterpart of dashboard.
func (h *Handler) apiPulls(w http.ResponseWriter, r *http.Request) {
	s := SessionFromContext(r.Context())
	if s.IsAnonymous() {
		writeJSON(w, http.StatusUnauthorized, pullsResponse{
			Pulls: []domain.PullRequest{},
			Error: "not authenticated",
		})
		return
	}

	opts, err := parseListOptions(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, pullsResponse{
			Login: s.Login,
			Pulls: []domain.PullRequest{},
			Error: err.Error(),
		})
		return
	}

	prs, err := h.pulls.FetchOpenPRs(r.Context(), s.AccessToken)
	if err != nil {
		logging.Logger.Warn("aggregation failed", "login", s.Login, "error", err)
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrNoCredential) {
			status = http.StatusUnauthorized
		}
		writeJSON(w, status, pullsResponse{
			Login: s.Login,
			Pulls: []domain.PullRequest{},
			Error: err.Error(),
		})
		return
	}

	prs = app.ApplyListOptions(prs, opts)
	writeJSON(w, http.StatusOK, pullsResponse{
		Login: s.Login,
		Count: len(prs),
		Pulls: prs,
	})
}
