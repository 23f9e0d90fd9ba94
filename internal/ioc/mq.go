package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"
	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/econf"
	"notification-targeting/internal/event/receipt"
)

type KafkaConfig struct {
	// Enabled 为 false 时使用内存 MQ，便于本地开发
	Enabled bool   `yaml:"enabled"`
	Network string `yaml:"network"`
	Topic   string `yaml:"topic"`
}

func InitReceiptEventProducer() receipt.ReceiptEventProducer {
	var cfg KafkaConfig
	if err := econf.UnmarshalKey("kafka", &cfg); err != nil {
		panic(err)
	}
	if cfg.Topic == "" {
		cfg.Topic = receipt.TopicName
	}

	if !cfg.Enabled {
		p, err := receipt.NewMQReceiptEventProducer(InitMemoryMQ(cfg.Topic), cfg.Topic)
		if err != nil {
			panic(err)
		}
		return p
	}

	initTopic(cfg.Network, kafka.TopicSpecification{
		Topic:             cfg.Topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	})
	producer, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers": cfg.Network,
		"client.id":         "notification-targeting",
	})
	if err != nil {
		panic(fmt.Sprintf("创建生产者失败: %v", err))
	}
	p, err := receipt.NewReceiptEventProducerWithTopic(producer, cfg.Topic)
	if err != nil {
		panic(err)
	}
	return p
}

func InitMemoryMQ(topics ...string) mq.MQ {
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}
	for {
		q, err := initMemoryMQ(topics...)
		if err == nil {
			return q
		}
		next, ok := strategy.Next()
		if !ok {
			panic("InitMQ 重试失败......")
		}
		time.Sleep(next)
	}
}

func initMemoryMQ(topics ...string) (mq.MQ, error) {
	q := memory.NewMQ()
	for _, t := range topics {
		if err := q.CreateTopic(context.Background(), t, 1); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func initTopic(network string, topics ...kafka.TopicSpecification) {
	adminClient, err := kafka.NewAdminClient(&kafka.ConfigMap{
		"bootstrap.servers": network,
	})
	if err != nil {
		panic(fmt.Sprintf("创建kafka连接失败: %v", err))
	}
	defer adminClient.Close()

	const timeout = 10 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	results, err := adminClient.CreateTopics(ctx, topics)
	if err != nil {
		panic(fmt.Sprintf("创建topic失败: %v", err))
	}
	for _, result := range results {
		if result.Error.Code() != kafka.ErrNoError && result.Error.Code() != kafka.ErrTopicAlreadyExists {
			panic(fmt.Sprintf("创建topic失败 %s: %v", result.Topic, result.Error))
		}
	}
}
