package rabbitmq_test

import (
	"testing"

	"storefront/pkg/rabbitmq"

	amqp "github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
)

func TestLogOrderEvent(t *testing.T) {
	msg := amqp.Delivery{
		DeliveryTag: 1,
		Body:        []byte(`{"orderId":"64b7f0aa1d2e3f4a5b6c7d00","userId":"user-1","items":2}`),
	}
	assert.NoError(t, rabbitmq.LogOrderEvent(msg))
}

func TestLogOrderEvent_MalformedBody(t *testing.T) {
	msg := amqp.Delivery{
		DeliveryTag: 2,
		Body:        []byte("not json"),
	}

	// A handler error is what makes ConsumeOrderEvents nack the delivery.
	err := rabbitmq.LogOrderEvent(msg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode order event")
}
