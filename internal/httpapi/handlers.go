package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"dhwani-platform/internal/campaigns"
	"dhwani-platform/internal/contacts"
	"dhwani-platform/internal/ingest"
	"dhwani-platform/internal/lookup"
	"dhwani-platform/internal/reporting"
	"dhwani-platform/pkg/logger"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.

type Handlers struct {
	Lookup    *lookup.Service
	Ingest    *ingest.Service
	Campaigns *campaigns.Service
	Reporting *reporting.Service
}

// --- Lookups ---

type callerDetailsParams struct {
	Phone        string `form:"phone" json:"phone"`
	CampaignType string `form:"campaign_type" json:"campaign_type"`
}

// CallerDetails is the inbound entrypoint: "a call just arrived from this
// number, who is it and which campaign handles it". GET carries params in
// the query string, POST in the body; both land here.
func (h Handlers) CallerDetails(c *gin.Context) {
	var params callerDetailsParams
	if !bindParams(c, &params) {
		return
	}
	if params.Phone == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "phone number is required"})
		return
	}

	resp, err := h.Lookup.Inbound(c.Request.Context(), params.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

type outboundCallParams struct {
	CampaignID string `form:"campaign_id" json:"campaign_id"`
	Phone      string `form:"phone" json:"phone"`
}

// OutboundCallDetails validates a (campaign, phone) pair and returns the
// context for placing the call.
func (h Handlers) OutboundCallDetails(c *gin.Context) {
	var params outboundCallParams
	if !bindParams(c, &params) {
		return
	}
	if params.CampaignID == "" || params.Phone == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "campaign_id and phone are required"})
		return
	}

	resp, err := h.Lookup.Outbound(c.Request.Context(), params.CampaignID, params.Phone)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// --- Ingestion ---

// ReceiveCallData records a call outcome reported by the calling runtime.
func (h Handlers) ReceiveCallData(c *gin.Context) {
	var rep ingest.Report
	if err := c.ShouldBindJSON(&rep); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}

	res, err := h.Ingest.Ingest(c.Request.Context(), rep)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "call data received",
		"campaign_id": res.CampaignID,
		"contact":     res.Contact,
		"call_id":     res.CallID,
	})
}

// --- Campaigns ---

func (h Handlers) ActivateCampaign(c *gin.Context) {
	campaignID := c.Param("campaign_id")
	if campaignID == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "campaign_id required"})
		return
	}

	campaign, err := h.Campaigns.Activate(c.Request.Context(), campaignID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "campaign": campaign})
}

// --- Reporting ---

func (h Handlers) CampaignSummary(c *gin.Context) {
	sum, err := h.Reporting.CampaignSummary(c.Request.Context(), c.Param("campaign_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h Handlers) CampaignExtractedData(c *gin.Context) {
	data, err := h.Reporting.ExtractedData(c.Request.Context(), c.Param("campaign_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// bindParams reads lookup parameters from the query string on GET and from
// the JSON body otherwise. Aborts with 400 on malformed input.
func bindParams(c *gin.Context, out any) bool {
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(out)
	} else {
		err = c.ShouldBindJSON(out)
	}
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return false
	}
	return true
}

// writeError maps service errors onto the HTTP taxonomy. Not-found
// conditions surface their sentinel text verbatim; anything unexpected is
// logged and reduced to a generic 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ingest.ErrPhoneRequired),
		errors.Is(err, campaigns.ErrInvalidArgument),
		errors.Is(err, reporting.ErrInvalidRequest):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, contacts.ErrContactNotFound),
		errors.Is(err, campaigns.ErrCampaignNotFound),
		errors.Is(err, campaigns.ErrNoActiveInboundCampaign),
		errors.Is(err, campaigns.ErrCampaignNotOutbound),
		errors.Is(err, campaigns.ErrContactNotInCampaign),
		errors.Is(err, campaigns.ErrNoAgentAssigned):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, campaigns.ErrActiveInboundExists):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})

	default:
		logger.FromGin(c).Error("request failed", "error", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
