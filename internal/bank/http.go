package bank

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/efreitasn/auctionhouse/internal/domain"
	"github.com/google/uuid"
)

// HTTPLedger sends transfers to an external banking service as
// POST {baseURL}/transfers. Any 2xx response is success; everything else,
// including transport errors, is a failed transfer. Each request carries a
// fresh Idempotency-Key so the bank can deduplicate its own retries.
//
// A zero timeout means the call waits for as long as the bank takes.
type HTTPLedger struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPLedger creates an HTTPLedger for the bank at baseURL.
func NewHTTPLedger(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPLedger {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPLedger{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Transfer asks the bank to move amount from fromAccount to toAccount.
func (l *HTTPLedger) Transfer(fromAccount, fromAuthCode, toAccount string, amount domain.Money) error {
	t := Transfer{
		ID:           uuid.New().String(),
		FromAccount:  fromAccount,
		FromAuthCode: fromAuthCode,
		ToAccount:    toAccount,
		Amount:       amount,
		RequestedAt:  time.Now().UTC().Truncate(time.Second),
	}

	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("encode transfer: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, l.baseURL+"/transfers", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", t.ID)

	resp, err := l.client.Do(req)
	if err != nil {
		return fmt.Errorf("transfer %s: %w", t.ID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("transfer %s: bank responded %d: %w", t.ID, resp.StatusCode, ErrTransferRejected)
	}

	l.logger.Debug("transfer completed",
		slog.String("transfer_id", t.ID),
		slog.String("from", fromAccount),
		slog.String("to", toAccount),
		slog.String("amount", amount.String()),
	)
	return nil
}
