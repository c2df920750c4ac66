// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kraken-dive/storefront-backend/internal/appconfig"
	"github.com/kraken-dive/storefront-backend/internal/config"
	"github.com/kraken-dive/storefront-backend/internal/domain/checkout"
	"github.com/kraken-dive/storefront-backend/internal/interfaces/http/middleware"
	"github.com/kraken-dive/storefront-backend/internal/pkg/device"
	"github.com/kraken-dive/storefront-backend/internal/pkg/export"
	"github.com/sirupsen/logrus"
)

// CheckoutHandler handles the checkout lifecycle endpoints
type CheckoutHandler struct {
	config    *config.Config
	appConfig *appconfig.Manager
	ipLookup  *device.IPLookup
	exporter  export.Exporter
	logger    *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(cfg *config.Config, appConfig *appconfig.Manager, ipLookup *device.IPLookup, exporter export.Exporter, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		config:    cfg,
		appConfig: appConfig,
		ipLookup:  ipLookup,
		exporter:  exporter,
		logger:    logger,
	}
}

// SubmitSignatureRequest is the signature capture payload. The client-side
// fields feed the invoice device block.
type SubmitSignatureRequest struct {
	SignatureData    string `json:"signature_data" binding:"required"`
	ScreenResolution string `json:"screen_resolution"`
	Timezone         string `json:"timezone"`
	Platform         string `json:"platform"`
}

// StartCheckout handles POST /checkout
func (h *CheckoutHandler) StartCheckout(c *gin.Context) {
	s := middleware.GetSession(c)

	flow, err := checkout.NewFlow(checkout.Deps{
		Cart:            s.Cart,
		Config:          h.appConfig,
		SettlementDelay: h.config.Checkout.SettlementDelay,
		Logger:          h.logger,
	})
	if err != nil {
		if errors.Is(err, checkout.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to start checkout",
		})
		return
	}

	if !s.SetCheckout(flow) {
		c.JSON(http.StatusConflict, gin.H{
			"error": "A checkout is already in progress",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Checkout started successfully",
		"data":    h.stateView(flow),
	})
}

// GetCheckout handles GET /checkout
func (h *CheckoutHandler) GetCheckout(c *gin.Context) {
	flow, ok := h.activeFlow(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout state retrieved successfully",
		"data":    h.stateView(flow),
	})
}

// SubmitPayment handles POST /checkout/payment
func (h *CheckoutHandler) SubmitPayment(c *gin.Context) {
	s := middleware.GetSession(c)
	flow, ok := h.activeFlow(c)
	if !ok {
		return
	}

	var req checkout.PaymentData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid payment data",
			"details": err.Error(),
		})
		return
	}

	if err := flow.SubmitPayment(req); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	flow.SetDeviceInfo(h.deviceInfo(c, SubmitSignatureRequest{}))

	h.logger.WithFields(logrus.Fields{
		"session_id": s.ID,
		"card_brand": checkout.DetectCardBrand(req.CardNumber),
	}).Info("payment data submitted")

	data := h.stateView(flow)
	data["card_brand"] = checkout.DetectCardBrand(req.CardNumber)
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment submitted successfully",
		"data":    data,
	})
}

// SubmitSignature handles POST /checkout/signature
func (h *CheckoutHandler) SubmitSignature(c *gin.Context) {
	flow, ok := h.activeFlow(c)
	if !ok {
		return
	}

	var req SubmitSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid signature data",
			"details": err.Error(),
		})
		return
	}

	flow.SetDeviceInfo(h.deviceInfo(c, req))

	sig := checkout.Signature{
		SignatureData: req.SignatureData,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		IPAddress:     h.ipLookup.Lookup(c.Request.Context()),
		UserAgent:     c.Request.UserAgent(),
	}

	if err := flow.SubmitSignature(sig); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Signature submitted successfully",
		"data":    h.stateView(flow),
	})
}

// AbortCheckout handles DELETE /checkout
func (h *CheckoutHandler) AbortCheckout(c *gin.Context) {
	s := middleware.GetSession(c)
	flow, ok := h.activeFlow(c)
	if !ok {
		return
	}

	if err := flow.Abort(); err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": err.Error(),
		})
		return
	}
	s.ClearCheckout()

	c.JSON(http.StatusOK, gin.H{
		"message": "Checkout aborted successfully",
		"data": gin.H{
			"state": checkout.StateAborted,
		},
	})
}

// GetInvoice handles GET /checkout/invoice
func (h *CheckoutHandler) GetInvoice(c *gin.Context) {
	flow, ok := h.activeFlow(c)
	if !ok {
		return
	}

	invoice, err := flow.Invoice()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Checkout is not complete",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Invoice retrieved successfully",
		"data":    invoice,
	})
}

// DownloadInvoice handles GET /checkout/invoice/download
func (h *CheckoutHandler) DownloadInvoice(c *gin.Context) {
	flow, ok := h.activeFlow(c)
	if !ok {
		return
	}

	invoice, err := flow.Invoice()
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{
			"error": "Checkout is not complete",
		})
		return
	}

	c.Header("Content-Type", h.exporter.ContentType())
	c.Header("Content-Disposition", `attachment; filename="`+h.exporter.FileName(invoice)+`"`)
	if err := h.exporter.Export(c.Writer, invoice, h.appConfig.Current().Business); err != nil {
		h.logger.WithError(err).Error("invoice export failed")
	}
}

// activeFlow resolves the session's checkout flow, writing the 404 itself
// when none exists
func (h *CheckoutHandler) activeFlow(c *gin.Context) (*checkout.Flow, bool) {
	s := middleware.GetSession(c)

	flow := s.Checkout()
	if flow == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No checkout in progress",
		})
		return nil, false
	}
	return flow, true
}

func (h *CheckoutHandler) stateView(flow *checkout.Flow) gin.H {
	cfg := h.appConfig.Current()
	totals := flow.Totals()

	data := gin.H{
		"state": flow.State(),
		"totals": gin.H{
			"subtotal": totals.Subtotal,
			"tax":      totals.Tax,
			"total":    totals.Total,
		},
		"tax_display": cfg.Tax.TaxDisplayName,
	}
	if msg := flow.LastError(); msg != "" {
		data["last_error"] = msg
	}
	return data
}

// deviceInfo builds the invoice device block from the request headers plus
// the client-reported fields
func (h *CheckoutHandler) deviceInfo(c *gin.Context, req SubmitSignatureRequest) device.Info {
	platform := req.Platform
	if platform == "" {
		platform = c.Request.Header.Get("Sec-CH-UA-Platform")
	}
	return device.Info{
		UserAgent:        c.Request.UserAgent(),
		Platform:         platform,
		Language:         c.Request.Header.Get("Accept-Language"),
		ScreenResolution: req.ScreenResolution,
		Timezone:         req.Timezone,
	}
}
