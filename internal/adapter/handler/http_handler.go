package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tokenfund/crowdfund/internal/adapter/ledger"
	"github.com/tokenfund/crowdfund/internal/core/domain"
	"github.com/tokenfund/crowdfund/internal/core/service"
)

// callerHeader carries the opaque caller identity. Authentication is an
// upstream concern; by the time a request reaches this handler the header
// is trusted.
const callerHeader = "X-Caller-ID"

type HTTPHandler struct {
	settlement *service.SettlementService
}

func NewHTTPHandler(settlement *service.SettlementService) *HTTPHandler {
	return &HTTPHandler{settlement: settlement}
}

type createProjectRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Goal         uint64 `json:"goal"`
	DurationDays uint64 `json:"duration_days"`
}

type createProjectResponse struct {
	ID string `json:"id"`
}

type pledgeView struct {
	Contributor string    `json:"contributor"`
	Amount      uint64    `json:"amount"`
	Timestamp   time.Time `json:"timestamp"`
}

type campaignView struct {
	ID            string       `json:"id"`
	Owner         string       `json:"owner"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	FundingGoal   uint64       `json:"funding_goal"`
	CurrentAmount uint64       `json:"current_amount"`
	Deadline      time.Time    `json:"deadline"`
	CreatedAt     time.Time    `json:"created_at"`
	Status        string       `json:"status"`
	FundsReleased bool         `json:"funds_released"`
	Pledges       []pledgeView `json:"pledges"`
}

type contributionView struct {
	ProjectID string       `json:"project_id"`
	Campaign  campaignView `json:"campaign"`
	Total     uint64       `json:"total"`
}

type contributeRequest struct {
	Amount uint64 `json:"amount"`
}

type settlementResponse struct {
	BlockIndex uint64 `json:"block_index"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	owner := callerID(r)
	if owner.IsAnonymous() {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "caller identity required"})
		return
	}

	c, err := h.settlement.CreateProject(r.Context(), owner, req.Title, req.Description, req.Goal, req.DurationDays)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createProjectResponse{ID: c.ID})
}

func (h *HTTPHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	c, err := h.settlement.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toCampaignView(c))
}

func (h *HTTPHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.settlement.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, toCampaignView(c))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *HTTPHandler) GetUserProjects(w http.ResponseWriter, r *http.Request) {
	user := domain.UserID(chi.URLParam(r, "user"))

	campaigns, err := h.settlement.GetUserProjects(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		views = append(views, toCampaignView(c))
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *HTTPHandler) GetUserContributions(w http.ResponseWriter, r *http.Request) {
	user := domain.UserID(chi.URLParam(r, "user"))

	contributions, err := h.settlement.GetUserContributions(r.Context(), user)
	if err != nil {
		writeError(w, err)
		return
	}

	views := make([]contributionView, 0, len(contributions))
	for _, uc := range contributions {
		views = append(views, contributionView{
			ProjectID: uc.ProjectID,
			Campaign:  toCampaignView(uc.Campaign),
			Total:     uc.Total,
		})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *HTTPHandler) Contribute(w http.ResponseWriter, r *http.Request) {
	var req contributeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	block, err := h.settlement.Contribute(r.Context(), chi.URLParam(r, "id"), callerID(r), req.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settlementResponse{BlockIndex: block})
}

func (h *HTTPHandler) ReleaseFunds(w http.ResponseWriter, r *http.Request) {
	block, err := h.settlement.ReleaseFunds(r.Context(), chi.URLParam(r, "id"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settlementResponse{BlockIndex: block})
}

func (h *HTTPHandler) ClaimRefund(w http.ResponseWriter, r *http.Request) {
	block, err := h.settlement.ClaimRefund(r.Context(), chi.URLParam(r, "id"), callerID(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, settlementResponse{BlockIndex: block})
}

func callerID(r *http.Request) domain.UserID {
	return domain.UserID(r.Header.Get(callerHeader))
}

func toCampaignView(c domain.Campaign) campaignView {
	pledges := make([]pledgeView, 0, len(c.Pledges))
	for _, p := range c.Pledges {
		pledges = append(pledges, pledgeView{
			Contributor: string(p.Contributor),
			Amount:      p.Amount,
			Timestamp:   p.Timestamp,
		})
	}
	return campaignView{
		ID:            c.ID,
		Owner:         string(c.Owner),
		Title:         c.Title,
		Description:   c.Description,
		FundingGoal:   c.FundingGoal,
		CurrentAmount: c.CurrentAmount,
		Deadline:      c.Deadline,
		CreatedAt:     c.CreatedAt,
		Status:        string(c.Status),
		FundsReleased: c.FundsReleased,
		Pledges:       pledges,
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyTitle),
		errors.Is(err, domain.ErrEmptyDescription),
		errors.Is(err, domain.ErrZeroGoal),
		errors.Is(err, domain.ErrZeroDuration),
		errors.Is(err, service.ErrZeroAmount):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrAnonymousCaller):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotOwner):
		return http.StatusForbidden
	case errors.Is(err, service.ErrPeriodEnded):
		return http.StatusGone
	case errors.Is(err, service.ErrNotActive),
		errors.Is(err, service.ErrNotFunded),
		errors.Is(err, service.ErrNotExpired),
		errors.Is(err, service.ErrFundsReleased),
		errors.Is(err, service.ErrNoContribution),
		errors.Is(err, service.ErrProjectBusy):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrTransferRejected):
		return http.StatusBadGateway
	case errors.Is(err, ledger.ErrUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
