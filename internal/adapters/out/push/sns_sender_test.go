package push

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"finder/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	input *sns.PublishInput
	err   error
}

func (s *stubPublisher) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	s.input = params
	if s.err != nil {
		return nil, s.err
	}
	return &sns.PublishOutput{}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func Test_SendPublishesToSubscriptionEndpoint(t *testing.T) {
	publisher := &stubPublisher{}
	sender := NewSNSPushSenderWithClient(publisher, discardLogger())

	err := sender.Send(context.Background(), "arn:aws:sns:us-east-1:123456789012:endpoint/abc", ports.PushNotification{
		Title: "New job posted: Fix leaking sink",
		Body:  "A job matching your skills was posted nearby",
		Data:  map[string]string{"job_id": "d7e4b15e-0a0c-4b6f-9f62-7f1a3c2e9b01"},
	})

	require.NoError(t, err)
	require.NotNil(t, publisher.input)
	assert.Equal(t, "arn:aws:sns:us-east-1:123456789012:endpoint/abc", *publisher.input.TargetArn)

	var payload pushPayload
	require.NoError(t, json.Unmarshal([]byte(*publisher.input.Message), &payload))
	assert.Equal(t, "New job posted: Fix leaking sink", payload.Title)
	assert.Equal(t, "d7e4b15e-0a0c-4b6f-9f62-7f1a3c2e9b01", payload.Data["job_id"])
}

func Test_SendPropagatesPublishError(t *testing.T) {
	publisher := &stubPublisher{err: errors.New("endpoint disabled")}
	sender := NewSNSPushSenderWithClient(publisher, discardLogger())

	err := sender.Send(context.Background(), "arn:aws:sns:us-east-1:123456789012:endpoint/abc", ports.PushNotification{
		Title: "New job posted: Fix leaking sink",
	})

	assert.ErrorContains(t, err, "endpoint disabled")
}
