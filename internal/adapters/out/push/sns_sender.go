// Package push provides the outbound push notification gateway backed by
// AWS SNS. Worker push subscriptions are stored as SNS platform endpoint
// ARNs; publishing to the endpoint delivers the message to the worker's
// registered device.
package push

import (
	"context"
	"encoding/json"
	"log/slog"

	"finder/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// snsPublisher abstracts the SNS client for testability.
type snsPublisher interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPushSender implements ports.PushSender using AWS SNS platform endpoints.
type SNSPushSender struct {
	client snsPublisher
	logger *slog.Logger
}

// NewSNSPushSender creates a push sender with an SNS client configured for
// the given region, using the default AWS credential chain.
func NewSNSPushSender(ctx context.Context, region string, logger *slog.Logger) (*SNSPushSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}

	return &SNSPushSender{
		client: sns.NewFromConfig(cfg),
		logger: logger.With("component", "sns_push_sender"),
	}, nil
}

// NewSNSPushSenderWithClient creates a push sender around an existing client.
// Used by tests to inject a stub publisher.
func NewSNSPushSenderWithClient(client snsPublisher, logger *slog.Logger) *SNSPushSender {
	return &SNSPushSender{
		client: client,
		logger: logger.With("component", "sns_push_sender"),
	}
}

// pushPayload is the wire format published to the platform endpoint.
type pushPayload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Send publishes the notification to the worker's platform endpoint ARN.
func (s *SNSPushSender) Send(ctx context.Context, subscription string, notification ports.PushNotification) error {
	payload, err := json.Marshal(pushPayload{
		Title: notification.Title,
		Body:  notification.Body,
		Data:  notification.Data,
	})
	if err != nil {
		return err
	}

	_, err = s.client.Publish(ctx, &sns.PublishInput{
		TargetArn: aws.String(subscription),
		Message:   aws.String(string(payload)),
	})
	if err != nil {
		return err
	}

	s.logger.Debug("push notification published", "title", notification.Title)
	return nil
}
