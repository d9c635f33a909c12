package billing

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/2beens/trainerhub/internal/telemetry/metrics"
	"github.com/2beens/trainerhub/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxPayloadBytes = 64 * 1024

// event fields shared by both providers we care about
type webhookEvent struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	EventType string `json:"event_type"`
}

type WebhookHandler struct {
	stripeSecret   string
	tolerance      time.Duration
	metricsManager *metrics.Manager
	nowFunc        func() time.Time
}

func NewWebhookHandler(stripeSecret string, metricsManager *metrics.Manager) *WebhookHandler {
	if stripeSecret == "" {
		log.Warnln("stripe webhook secret not set, all stripe events will be rejected")
	}
	return &WebhookHandler{
		stripeSecret:   stripeSecret,
		tolerance:      DefaultSignatureTolerance,
		metricsManager: metricsManager,
		nowFunc:        time.Now,
	}
}

func (h *WebhookHandler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/webhook/stripe", h.handleStripe).Methods("POST").Name("webhook-stripe")
	r.HandleFunc("/webhook/paypal", h.handlePaypal).Methods("POST").Name("webhook-paypal")
}

func (h *WebhookHandler) count(provider, outcome string) {
	h.metricsManager.CounterWebhooks.WithLabelValues(provider, outcome).Inc()
}

func ack(w http.ResponseWriter) {
	pkg.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}

func reject(w http.ResponseWriter, status int, message string) {
	pkg.WriteJSON(w, status, map[string]any{"success": false, "error": message})
}

func (h *WebhookHandler) handleStripe(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.count("stripe", "error")
		reject(w, http.StatusBadRequest, "cannot read payload")
		return
	}

	if h.stripeSecret == "" {
		h.count("stripe", "invalid_signature")
		reject(w, http.StatusBadRequest, "invalid signature")
		return
	}
	err = VerifyStripeSignature(r.Header.Get("Stripe-Signature"), payload, h.stripeSecret, h.tolerance, h.nowFunc())
	if err != nil {
		ip, _ := pkg.ReadUserIP(r)
		log.Warnf("stripe webhook rejected from [%s]: %s", ip, err)
		h.count("stripe", "invalid_signature")
		if errors.Is(err, ErrMissingSignature) {
			reject(w, http.StatusBadRequest, "missing signature")
			return
		}
		reject(w, http.StatusBadRequest, "invalid signature")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		h.count("stripe", "error")
		reject(w, http.StatusBadRequest, "invalid payload")
		return
	}

	log.Infof("stripe event %s received: %s", event.ID, event.Type)
	h.count("stripe", "ok")
	ack(w)
}

func (h *WebhookHandler) handlePaypal(w http.ResponseWriter, r *http.Request) {
	var event webhookEvent
	if err := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes)).Decode(&event); err != nil {
		h.count("paypal", "error")
		reject(w, http.StatusBadRequest, "invalid payload")
		return
	}

	log.Infof("paypal event %s received: %s", event.ID, event.EventType)
	h.count("paypal", "ok")
	ack(w)
}
