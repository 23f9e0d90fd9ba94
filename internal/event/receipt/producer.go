package receipt

import (
	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
	"notification-targeting/internal/pkg/mqx"
)

func NewReceiptEventProducer(producer *kafka.Producer) (ReceiptEventProducer, error) {
	return NewReceiptEventProducerWithTopic(producer, TopicName)
}

func NewReceiptEventProducerWithTopic(producer *kafka.Producer, topic string) (ReceiptEventProducer, error) {
	return mqx.NewGeneralProducer[ReceiptEvent](producer, topic)
}

// NewMQReceiptEventProducer 没有 Kafka 的环境下使用 mq-api 的实现
func NewMQReceiptEventProducer(q mq.MQ, topic string) (ReceiptEventProducer, error) {
	return mqx.NewMQProducer[ReceiptEvent](q, topic)
}
