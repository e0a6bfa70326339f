package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dpk-exchange/exchange_backend/internal/apperrors"
	"github.com/dpk-exchange/exchange_backend/internal/core/domain"
	portssvc "github.com/dpk-exchange/exchange_backend/internal/core/ports/services"
	"github.com/dpk-exchange/exchange_backend/internal/middleware"
	"github.com/dpk-exchange/exchange_backend/internal/utils"
)

const defaultAPIBaseURL = "https://api.telegram.org"

// TelegramNotifier forwards transaction summaries to a Telegram chat via the
// bot sendMessage webhook. Delivery is best-effort with a bounded timeout and
// never blocks or rolls back a committed ledger write.
type TelegramNotifier struct {
	token   string
	chatID  string
	baseURL string
	client  *http.Client
}

// NewTelegramNotifier creates a notifier against the public Telegram API.
func NewTelegramNotifier(token, chatID string, timeout time.Duration) *TelegramNotifier {
	return NewTelegramNotifierWithClient(token, chatID, defaultAPIBaseURL, &http.Client{Timeout: timeout})
}

// NewTelegramNotifierWithClient creates a notifier with an explicit base URL
// and HTTP client, so tests can substitute a fake transport.
func NewTelegramNotifierWithClient(token, chatID, baseURL string, client *http.Client) *TelegramNotifier {
	return &TelegramNotifier{
		token:   token,
		chatID:  chatID,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  client,
	}
}

// FormatTransaction renders the fixed multi-line chat message for a
// transaction snapshot. at is the timestamp shown on the record.
func FormatTransaction(txn domain.Transaction, at time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "<b>Saved Record - DPK Exchange</b>\n")
	fmt.Fprintf(&b, "%s\n\n", at.Format(time.DateTime))
	fmt.Fprintf(&b, "From: %s %s (%s)\n", utils.FormatAmount(txn.AmountIn), txn.FromCurrency.Symbol(), txn.FromCurrency)
	fmt.Fprintf(&b, "To: %s %s (%s)\n", utils.FormatAmount(txn.AmountOut), txn.ToCurrency.Symbol(), txn.ToCurrency)
	fmt.Fprintf(&b, "Rate: 1 %s = %s %s\n", txn.FromCurrency, utils.FormatRate(txn.Rate), txn.ToCurrency)
	fmt.Fprintf(&b, "Calculation: %s %s %s = %s",
		utils.FormatAmount(txn.AmountIn), txn.Operation.Glyph(), utils.FormatRate(txn.Rate), utils.FormatAmount(txn.AmountOut))
	if txn.CustomerName != "" {
		fmt.Fprintf(&b, "\nCustomer: %s", txn.CustomerName)
	}

	return b.String()
}

// sendMessageResponse is the subset of the Telegram API reply we act on.
type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// NotifyTransaction sends the formatted summary. Missing credentials report a
// configuration error without attempting the call.
func (n *TelegramNotifier) NotifyTransaction(ctx context.Context, txn domain.Transaction) error {
	if n.token == "" || n.chatID == "" {
		return fmt.Errorf("%w: telegram token or chat id not configured", apperrors.ErrNotificationUnavailable)
	}

	at := txn.CreatedAt()
	if txn.Date.IsZero() {
		at = time.Now()
	}

	payload := map[string]any{
		"chat_id":    n.chatID,
		"text":       FormatTransaction(txn, at),
		"parse_mode": "HTML",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode message: %v", apperrors.ErrNotificationUnavailable, err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.baseURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to build request: %v", apperrors.ErrNotificationUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Telegram delivery failed", "error", err.Error())
		return fmt.Errorf("%w: delivery failed: %v", apperrors.ErrNotificationUnavailable, err)
	}
	defer resp.Body.Close()

	var result sendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: malformed telegram response: %v", apperrors.ErrNotificationUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK || !result.OK {
		return fmt.Errorf("%w: telegram rejected message: %s", apperrors.ErrNotificationUnavailable, result.Description)
	}

	return nil
}

// Compile-time interface check
var _ portssvc.Notifier = (*TelegramNotifier)(nil)
