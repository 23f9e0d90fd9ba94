package mqx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/mq-api"
)

var ErrEmptyTopic = errors.New("topic 不能为空")

// GeneralProducer 把事件序列化为 JSON 后投递到 Kafka，等待投递结果返回
type GeneralProducer[T any] struct {
	producer *kafka.Producer
	topic    string
}

func NewGeneralProducer[T any](producer *kafka.Producer, topic string) (*GeneralProducer[T], error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	return &GeneralProducer[T]{
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *GeneralProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化事件失败: %w", err)
	}

	deliveryChan := make(chan kafka.Event, 1)
	err = p.producer.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{
			Topic:     &p.topic,
			Partition: kafka.PartitionAny,
		},
		Value: data,
	}, deliveryChan)
	if err != nil {
		return fmt.Errorf("发送事件失败: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case e := <-deliveryChan:
		m, ok := e.(*kafka.Message)
		if !ok {
			return fmt.Errorf("未知的投递结果: %v", e)
		}
		if m.TopicPartition.Error != nil {
			return fmt.Errorf("投递事件失败: %w", m.TopicPartition.Error)
		}
		return nil
	}
}

// MQProducer 基于 mq-api 的实现，测试和本地开发时配合内存 MQ 使用
type MQProducer[T any] struct {
	producer mq.Producer
	topic    string
}

func NewMQProducer[T any](q mq.MQ, topic string) (*MQProducer[T], error) {
	if topic == "" {
		return nil, ErrEmptyTopic
	}
	producer, err := q.Producer(topic)
	if err != nil {
		return nil, err
	}
	return &MQProducer[T]{
		producer: producer,
		topic:    topic,
	}, nil
}

func (p *MQProducer[T]) Produce(ctx context.Context, evt T) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化事件失败: %w", err)
	}
	_, err = p.producer.Produce(ctx, &mq.Message{
		Topic: p.topic,
		Value: data,
	})
	return err
}
