package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dhwani-platform/internal/campaigns"
	"dhwani-platform/internal/catalog"
	"dhwani-platform/internal/contacts"
	"dhwani-platform/internal/ingest"
	"dhwani-platform/internal/lookup"
	"dhwani-platform/internal/reporting"
)

type env struct {
	contacts  *contacts.MemoryRepo
	campaigns *campaigns.MemoryRepo
	catalog   *catalog.MemoryRepo
	calls     *ingest.MemoryRepo
	router    *gin.Engine
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	e := &env{
		contacts:  contacts.NewMemoryRepo(),
		campaigns: campaigns.NewMemoryRepo(),
		catalog:   catalog.NewMemoryRepo(),
		calls:     ingest.NewMemoryRepo(),
	}

	resolver := contacts.NewResolver(e.contacts)
	h := Handlers{
		Lookup:    lookup.NewService(resolver, campaigns.NewSelector(e.campaigns), e.catalog),
		Ingest:    ingest.NewService(e.calls, resolver, e.contacts),
		Campaigns: campaigns.NewService(e.campaigns),
		Reporting: reporting.NewService(&callsAdapter{e.calls}),
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})
	v1 := r.Group("/api/v1")
	v1.GET("/caller-details", h.CallerDetails)
	v1.POST("/caller-details", h.CallerDetails)
	v1.GET("/outbound-call-details", h.OutboundCallDetails)
	v1.POST("/outbound-call-details", h.OutboundCallDetails)
	v1.POST("/receive-call-data", h.ReceiveCallData)
	v1.POST("/campaigns/:campaign_id/activate", h.ActivateCampaign)
	v1.GET("/campaigns/:campaign_id/calls-summary", h.CampaignSummary)
	v1.GET("/campaigns/:campaign_id/extracted-data", h.CampaignExtractedData)

	e.router = r
	return e
}

// callsAdapter exposes the ingest memory repo through the reporting
// Repository interface.
type callsAdapter struct{ repo *ingest.MemoryRepo }

func (a *callsAdapter) ListCallsByCampaign(ctx context.Context, campaignID string) ([]ingest.CallRecord, error) {
	out := make([]ingest.CallRecord, 0)
	for _, c := range a.repo.Calls {
		if c.CampaignID == campaignID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (e *env) seed() {
	e.contacts.Contacts = []contacts.Contact{{
		ID: "ct-1", UserID: "u-1", Name: "Asha Rao",
		Phone: "+15550101234", CreatedAt: time.Now(),
	}}
	e.campaigns.Campaigns = []campaigns.Campaign{
		{
			ID: "cp-1", UserID: "u-1", Name: "Support line",
			Status:   campaigns.CampaignStatusActive,
			Settings: campaigns.Settings{CampaignType: campaigns.CampaignTypeInbound},
			AgentID:  "ag-1",
		},
		{
			ID: "cp-2", UserID: "u-1", Name: "Renewals",
			Status:   campaigns.CampaignStatusActive,
			Settings: campaigns.Settings{CampaignType: campaigns.CampaignTypeOutbound},
			AgentID:  "ag-1",
		},
	}
	e.campaigns.Memberships = []campaigns.Membership{
		{ID: "m-1", CampaignID: "cp-2", ContactID: "ct-1"},
	}
	e.catalog.Agents = []catalog.Agent{{
		ID: "ag-1", UserID: "u-1", Name: "Maya", Voice: "voice-alpha",
	}}
}

func (e *env) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}

func TestCallerDetailsViaQuery(t *testing.T) {
	e := newEnv(t)
	e.seed()

	w := e.do(http.MethodGet, "/api/v1/caller-details?phone=%2B1%20(555)%20010-1234", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	m := decode(t, w)
	if m["success"] != true || m["campaign_id"] != "cp-1" {
		t.Fatalf("body = %v", m)
	}
}

func TestCallerDetailsViaBody(t *testing.T) {
	e := newEnv(t)
	e.seed()

	w := e.do(http.MethodPost, "/api/v1/caller-details", `{"phone":"+15550101234"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestCallerDetailsRequiresPhone(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodGet, "/api/v1/caller-details", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if decode(t, w)["error"] != "phone number is required" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestCallerDetailsUnknownPhoneIs404(t *testing.T) {
	e := newEnv(t)
	e.seed()

	w := e.do(http.MethodGet, "/api/v1/caller-details?phone=%2B19990000000", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if decode(t, w)["error"] != "contact not found" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestOutboundCallDetails(t *testing.T) {
	e := newEnv(t)
	e.seed()

	w := e.do(http.MethodPost, "/api/v1/outbound-call-details",
		`{"campaign_id":"cp-2","phone":"+15550101234"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	m := decode(t, w)
	if m["campaign_id"] != "cp-2" {
		t.Fatalf("body = %v", m)
	}
	if _, ok := m["outbound_call"]; !ok {
		t.Fatalf("missing outbound_call envelope: %v", m)
	}
}

func TestOutboundCallDetailsInboundCampaignIs404(t *testing.T) {
	e := newEnv(t)
	e.seed()

	w := e.do(http.MethodPost, "/api/v1/outbound-call-details",
		`{"campaign_id":"cp-1","phone":"+15550101234"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	if decode(t, w)["error"] != "campaign is not an outbound campaign" {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestOutboundCallDetailsRequiresBothParams(t *testing.T) {
	e := newEnv(t)
	e.seed()

	w := e.do(http.MethodPost, "/api/v1/outbound-call-details", `{"phone":"+15550101234"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestReceiveCallData(t *testing.T) {
	e := newEnv(t)
	e.seed()

	w := e.do(http.MethodPost, "/api/v1/receive-call-data",
		`{"phone":"555-010-1234","campaign_id":"cp-2","duration":90}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	m := decode(t, w)
	if m["success"] != true || m["call_id"] == "" {
		t.Fatalf("body = %v", m)
	}
	if len(e.calls.Calls) != 1 {
		t.Fatalf("got %d call records", len(e.calls.Calls))
	}
}

func TestReceiveCallDataRejectsGet(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodGet, "/api/v1/receive-call-data", "")
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestReceiveCallDataMissingPhoneIs400(t *testing.T) {
	e := newEnv(t)

	w := e.do(http.MethodPost, "/api/v1/receive-call-data", `{"duration":10}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestActivateCampaignConflictIs409(t *testing.T) {
	e := newEnv(t)
	e.seed()
	e.campaigns.Campaigns = append(e.campaigns.Campaigns, campaigns.Campaign{
		ID: "cp-3", UserID: "u-1", Name: "Second inbound",
		Status:   campaigns.CampaignStatusDraft,
		Settings: campaigns.Settings{CampaignType: campaigns.CampaignTypeInbound},
	})

	w := e.do(http.MethodPost, "/api/v1/campaigns/cp-3/activate", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestActivateCampaign(t *testing.T) {
	e := newEnv(t)
	e.seed()
	e.campaigns.Campaigns[1].Status = campaigns.CampaignStatusDraft

	w := e.do(http.MethodPost, "/api/v1/campaigns/cp-2/activate", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestCampaignSummaryEndpoint(t *testing.T) {
	e := newEnv(t)
	e.seed()
	e.calls.Calls = []ingest.CallRecord{
		{ID: "c-1", CampaignID: "cp-2", Duration: 60, Status: "answered", Direction: "outbound", CallStatus: "completed"},
	}

	w := e.do(http.MethodGet, "/api/v1/campaigns/cp-2/calls-summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	m := decode(t, w)
	if m["total_calls"] != float64(1) {
		t.Fatalf("body = %v", m)
	}
}
