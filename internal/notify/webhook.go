package notify

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/google/uuid"
)

// WebhookNotifier POSTs each event as JSON to the recipient's address when
// that address is an absolute http(s) URL. Other addresses are skipped.
// Delivery is synchronous and errors are only logged.
type WebhookNotifier struct {
	client *http.Client
	logger *slog.Logger
}

// NewWebhookNotifier creates a WebhookNotifier whose requests time out
// after timeout.
func NewWebhookNotifier(timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookNotifier{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

// AuctionOpened posts an auction.opened event to address.
func (n *WebhookNotifier) AuctionOpened(address string, lot int) {
	n.deliver(newEvent(EventAuctionOpened, address, lot))
}

// BidAccepted posts a bid.accepted event carrying amount to address.
func (n *WebhookNotifier) BidAccepted(address string, lot int, amount domain.Money) {
	n.deliver(bidEvent(address, lot, amount))
}

// LotSold posts a lot.sold event to address.
func (n *WebhookNotifier) LotSold(address string, lot int) {
	n.deliver(newEvent(EventLotSold, address, lot))
}

// LotUnsold posts a lot.unsold event to address.
func (n *WebhookNotifier) LotUnsold(address string, lot int) {
	n.deliver(newEvent(EventLotUnsold, address, lot))
}

// webhookURL reports whether address can be posted to.
func webhookURL(address string) bool {
	parsed, err := url.ParseRequestURI(address)
	if err != nil || !parsed.IsAbs() {
		return false
	}
	return parsed.Scheme == "https" || parsed.Scheme == "http"
}

// deliver sends the event via HTTP POST with the delivery headers.
func (n *WebhookNotifier) deliver(ev Event) {
	if !webhookURL(ev.Address) {
		return
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return
	}

	req, err := http.NewRequest(http.MethodPost, ev.Address, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Delivery-Id", uuid.New().String())
	req.Header.Set("X-Event-Type", ev.Type)

	resp, err := n.client.Do(req)
	if err != nil {
		n.logger.Debug("webhook delivery failed",
			slog.String("address", ev.Address),
			slog.String("event", ev.Type),
			slog.String("error", err.Error()),
		)
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		n.logger.Debug("webhook rejected",
			slog.String("address", ev.Address),
			slog.String("event", ev.Type),
			slog.Int("status", resp.StatusCode),
		)
	}
}
