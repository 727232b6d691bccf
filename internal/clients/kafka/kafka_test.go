package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/finance-tracker/internal/clients/kafka/mock"
	"max.ks1230/finance-tracker/internal/entity/transaction"
)

func Test_OnPublish_ShouldSendJSONEventKeyedByKind(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	defer func() { _ = sp.Close() }()

	event := transaction.ChangeEvent{
		Kind:       transaction.KindTransactionCreated,
		EntityID:   42,
		OccurredAt: time.Date(2025, time.January, 25, 10, 0, 0, 0, time.UTC),
	}
	sp.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		var got transaction.ChangeEvent
		if err := json.Unmarshal(val, &got); err != nil {
			return err
		}
		assert.Equal(t, event, got)
		return nil
	})

	p := &Producer{producer: sp, topic: "events"}
	require.NoError(t, p.Publish(context.Background(), event))
}

func Test_OnHandleMessage_ShouldPassDecodedEventToHandler(t *testing.T) {
	m := minimock.NewController(t)
	h := mock.NewChangeHandlerMock(m)
	event := transaction.ChangeEvent{
		Kind:       transaction.KindTransactionDeleted,
		EntityID:   7,
		OccurredAt: time.Date(2025, time.January, 25, 10, 0, 0, 0, time.UTC),
	}
	h.HandleChangeMock.Inspect(func(_ context.Context, got transaction.ChangeEvent) {
		assert.Equal(m, event, got)
	}).Return(nil)

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	c := &Consumer{topic: "events", handler: h}
	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Key: []byte(event.Kind), Value: payload})

	assert.Equal(t, uint64(1), h.HandleChangeAfterCounter())
}

func Test_OnHandleMessage_ShouldSkipBrokenPayload(t *testing.T) {
	m := minimock.NewController(t)
	h := mock.NewChangeHandlerMock(m)

	c := &Consumer{topic: "events", handler: h}
	c.handleMessage(context.Background(), &sarama.ConsumerMessage{Value: []byte("not json")})

	assert.Zero(t, h.HandleChangeBeforeCounter())
}
