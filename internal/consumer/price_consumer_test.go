package consumer

import (
	"context"
	"errors"
	"testing"
	"time"

	domainMock "github.com/pricestream/price-history/internal/domain/history/mock"
	v1 "github.com/pricestream/price-history/internal/domain/price-consumer/v1"
	historyInfra "github.com/pricestream/price-history/internal/infrastructure/postgres/history"
	loggerMock "github.com/pricestream/price-history/pkg/logger/mock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

// fakeReader records commits instead of talking to a broker.
type fakeReader struct {
	committed []kafka.Message
	commitErr error
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.committed = append(f.committed, msgs...)
	return nil
}

func (f *fakeReader) Close() error { return nil }

func newTestConsumer(ctrl *gomock.Controller, reader *fakeReader) (*PriceConsumer, *domainMock.MockUsecase, *loggerMock.MockInterface) {
	usecase := domainMock.NewMockUsecase(ctrl)
	log := loggerMock.NewMockInterface(ctrl)

	consumer := &PriceConsumer{
		kafkaReader:    reader,
		logger:         log,
		historyUsecase: usecase,
		msgChan:        make(chan kafka.Message, 4),
	}

	return consumer, usecase, log
}

func TestPriceConsumer_Subscribe(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	validPayload := []byte(`{"sku":"5021;6","buyHalfScrap":20,"sellHalfScrap":22,"updatedAt":"2025-06-01T12:00:00Z"}`)

	testCases := []struct {
		name      string
		messages  []kafka.Message
		mockFn    func(usecase *domainMock.MockUsecase, log *loggerMock.MockInterface)
		committed int
	}{
		{
			name:     "message is committed after a successful ingest",
			messages: []kafka.Message{{Value: validPayload, Offset: 1}},
			mockFn: func(usecase *domainMock.MockUsecase, log *loggerMock.MockInterface) {
				log.EXPECT().InfoContext(ctx, "subscribing to price consumer", gomock.Any())
				usecase.EXPECT().
					Ingest(ctx, &v1.PriceUpdateEvent{
						SKU:           "5021;6",
						BuyHalfScrap:  20,
						SellHalfScrap: 22,
						UpdatedAt:     base,
					}).
					Return(&historyInfra.History{SKU: "5021;6"}, nil)
			},
			committed: 1,
		},
		{
			name:     "discarded duplicate still commits",
			messages: []kafka.Message{{Value: validPayload, Offset: 2}},
			mockFn: func(usecase *domainMock.MockUsecase, log *loggerMock.MockInterface) {
				log.EXPECT().InfoContext(ctx, "subscribing to price consumer", gomock.Any())
				usecase.EXPECT().Ingest(ctx, gomock.Any()).Return(nil, nil)
			},
			committed: 1,
		},
		{
			name:     "store failure leaves the message uncommitted for redelivery",
			messages: []kafka.Message{{Value: validPayload, Offset: 3}},
			mockFn: func(usecase *domainMock.MockUsecase, log *loggerMock.MockInterface) {
				log.EXPECT().InfoContext(ctx, "subscribing to price consumer", gomock.Any())
				usecase.EXPECT().Ingest(ctx, gomock.Any()).Return(nil, errors.New("connection refused"))
				log.EXPECT().ErrorContext(ctx, gomock.Any(), gomock.Any(), gomock.Any())
			},
			committed: 0,
		},
		{
			name:     "malformed payload is skipped and committed",
			messages: []kafka.Message{{Value: []byte("not json"), Offset: 4}},
			mockFn: func(usecase *domainMock.MockUsecase, log *loggerMock.MockInterface) {
				log.EXPECT().InfoContext(ctx, "subscribing to price consumer", gomock.Any())
				log.EXPECT().ErrorContext(ctx, gomock.Any(), gomock.Any())
			},
			committed: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := &fakeReader{}
			consumer, usecase, log := newTestConsumer(ctrl, reader)
			tc.mockFn(usecase, log)

			for _, msg := range tc.messages {
				consumer.msgChan <- msg
			}
			close(consumer.msgChan)

			consumer.Subscribe(ctx)

			assert.Len(t, reader.committed, tc.committed)
		})
	}
}
