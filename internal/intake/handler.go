package intake

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/vistaroofing/contact-service/internal/notify"
	"github.com/vistaroofing/contact-service/internal/observability/metrics"
	"github.com/vistaroofing/contact-service/pkg/logging"
)

const successMessage = "Thank you for your message! We will get back to you within 24 hours."

// Response is the JSON body every contact endpoint reply carries.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Config holds the fixed addressing for outbound notifications. The sender
// carries its own from-address; the handler only decides who receives the
// notification and which phone number the failure message offers.
type Config struct {
	Recipient     string
	FallbackPhone string
}

// Handler turns a raw POST into a validated Submission, one delivery attempt
// and one log record.
type Handler struct {
	store   Store
	sender  notify.EmailSender
	cfg     Config
	metrics *metrics.IntakeMetrics
	logger  *logging.Logger

	now func() time.Time
}

// NewHandler creates the contact intake handler.
func NewHandler(store Store, sender notify.EmailSender, cfg Config, m *metrics.IntakeMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		store:   store,
		sender:  sender,
		cfg:     cfg,
		metrics: m,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// HandleContact handles POST /contact.
//
// The flow is linear: method check, sanitize, validate (all rules, jointly
// reported), compose, deliver, log, respond. The log step runs regardless of
// the delivery outcome, and its own failure never blocks the response.
func (h *Handler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respond(w, http.StatusMethodNotAllowed, Response{Success: false, Message: "Method not allowed"})
		return
	}

	req := FormRequestFromHTTP(r)

	if errs := req.Validate(); len(errs) > 0 {
		h.logger.Info("submission rejected", "errors", errs.Message(), "remote_ip", clientIP(r))
		h.metrics.ObserveSubmission("rejected")
		respond(w, http.StatusBadRequest, Response{Success: false, Message: errs.Message()})
		return
	}

	submittedAt := h.now()

	subject, htmlBody, textBody, err := composeEmail(req, submittedAt)
	if err != nil {
		// Template rendering over escaped strings cannot realistically fail,
		// but treat it as a delivery failure rather than dropping the request.
		h.logger.Error("failed to compose notification email", "error", err)
	}

	delivered := false
	if err == nil && h.sender != nil {
		start := time.Now()
		sendErr := h.sender.Send(r.Context(), notify.EmailMessage{
			To:      h.cfg.Recipient,
			ReplyTo: req.Email,
			Subject: subject,
			Body:    textBody,
			HTML:    htmlBody,
		})
		h.metrics.ObserveDeliveryLatency(time.Since(start).Seconds())
		if sendErr != nil {
			h.logger.Error("notification delivery failed", "error", sendErr, "recipient", h.cfg.Recipient)
		}
		delivered = sendErr == nil
	}

	sub := &Submission{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Service:     req.Service,
		Location:    req.Location,
		Message:     req.Message,
		SubmittedAt: submittedAt,
		IPAddress:   clientIP(r),
		UserAgent:   userAgent(r),
		EmailSent:   delivered,
	}

	if h.store != nil {
		if err := h.store.Append(r.Context(), sub); err != nil {
			// Best-effort side channel: never fail the request over it.
			h.logger.Error("failed to log submission", "error", err, "id", sub.ID)
		}
	}

	if delivered {
		h.logger.Info("submission accepted", "id", sub.ID, "name", sub.Name, "email", sub.Email)
		h.metrics.ObserveSubmission("accepted")
		respond(w, http.StatusOK, Response{Success: true, Message: successMessage})
		return
	}

	h.metrics.ObserveSubmission("delivery_failed")
	respond(w, http.StatusInternalServerError, Response{
		Success: false,
		Message: "Sorry, there was an error sending your message. Please try calling us directly at " + h.cfg.FallbackPhone + ".",
	})
}

// ListSubmissionsResponse is the response for the audit listing.
type ListSubmissionsResponse struct {
	Submissions []*Submission `json:"submissions"`
	Count       int           `json:"count"`
	Offset      int           `json:"offset"`
	Limit       int           `json:"limit"`
}

// HandleList handles GET /admin/submissions requests.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := 50
	offset := 0

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if v, err := strconv.Atoi(limitStr); err == nil && v > 0 && v <= 500 {
			limit = v
		}
	}
	if offsetStr := r.URL.Query().Get("offset"); offsetStr != "" {
		if v, err := strconv.Atoi(offsetStr); err == nil && v >= 0 {
			offset = v
		}
	}

	subs, err := h.store.List(r.Context(), limit, offset)
	if err != nil {
		h.logger.Error("failed to list submissions", "error", err)
		http.Error(w, "failed to list submissions", http.StatusInternalServerError)
		return
	}
	if subs == nil {
		subs = []*Submission{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ListSubmissionsResponse{
		Submissions: subs,
		Count:       len(subs),
		Offset:      offset,
		Limit:       limit,
	})
}

func respond(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func clientIP(r *http.Request) string {
	addr := r.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	if addr == "" {
		return "Unknown"
	}
	return addr
}

func userAgent(r *http.Request) string {
	if ua := r.UserAgent(); ua != "" {
		return ua
	}
	return "Unknown"
}
