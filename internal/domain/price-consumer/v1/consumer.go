package v1

import (
	"context"
)

//go:generate mockgen -source=consumer.go -destination=mock/consumer_mock.go -package=mock

// PriceConsumer represents a consumer that processes price update events.
type PriceConsumer interface {
	Start(ctx context.Context)
	Stop() error
	Subscribe(ctx context.Context)
}
