package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"storefront-service/internal/models"
)

const offerClaimTemplate = "offer_claimed"

// NotificationClient handles HTTP communication with notification-service
type NotificationClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Entry
}

// notificationRequest is the API request format for notification-service
type notificationRequest struct {
	To        string            `json:"to"`
	Subject   string            `json:"subject"`
	Template  string            `json:"template"`
	Variables map[string]string `json:"variables"`
}

// NewNotificationClient creates a new notification client
func NewNotificationClient(baseURL string, logger *logrus.Entry) *NotificationClient {
	if baseURL == "" {
		baseURL = "http://notification-service.marketplace.svc.cluster.local:8090"
	}
	if logger == nil {
		logger = logrus.NewEntry(logrus.StandardLogger())
	}

	return &NotificationClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// SendOfferClaim emails the claimed offer's voucher to the shopper
func (c *NotificationClient) SendOfferClaim(ctx context.Context, notification *models.OfferClaimNotification) error {
	req := &notificationRequest{
		To:       notification.Email,
		Subject:  fmt.Sprintf("Your %s voucher: %s", notification.AmountLabel, notification.VoucherCode),
		Template: offerClaimTemplate,
		Variables: map[string]string{
			"offerId":     notification.OfferID,
			"headline":    notification.Headline,
			"amount":      strconv.FormatFloat(notification.Amount, 'f', -1, 64),
			"amountLabel": notification.AmountLabel,
			"voucherCode": notification.VoucherCode,
			"locale":      notification.Locale,
		},
	}

	return c.sendNotification(ctx, req)
}

// sendNotification sends a notification request to notification-service
func (c *NotificationClient) sendNotification(ctx context.Context, req *notificationRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("failed to marshal notification request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/notifications/send", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Internal-Service", "storefront-service")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}

	c.logger.WithFields(logrus.Fields{
		"to":       req.To,
		"template": req.Template,
	}).Info("Notification sent")
	return nil
}
