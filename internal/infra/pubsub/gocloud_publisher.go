package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"gatehouse/internal/domain/service"

	"github.com/pkg/errors"
	cloudpubsub "gocloud.dev/pubsub"
	// Registers the mem:// scheme.
	_ "gocloud.dev/pubsub/mempubsub"
)

// goCloudPublisher sends events to any topic URL gocloud.dev can open.
type goCloudPublisher struct {
	topic  *cloudpubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens topicURL, e.g. mem://auth-events.
func NewGoCloudPublisher(ctx context.Context, topicURL string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := cloudpubsub.OpenTopic(ctx, topicURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", topicURL)
	}

	logger.Info("gocloud Pub/Sub publisher initialized", slog.String("topic_url", topicURL))

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

func (p *goCloudPublisher) PublishAuthEvent(ctx context.Context, event *service.AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &cloudpubsub.Message{
		Body:     data,
		Metadata: eventAttributes(event),
	}); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// Close flushes pending sends.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
