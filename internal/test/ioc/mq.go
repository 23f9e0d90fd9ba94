package ioc

import (
	"context"
	"sync"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"notification-targeting/internal/event/receipt"
)

var (
	q          mq.MQ
	mqInitOnce sync.Once
)

const (
	maxInterval = 10 * time.Second
	maxRetries  = 10
)

func InitMQ() mq.MQ {
	mqInitOnce.Do(func() {
		strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
		if err != nil {
			panic(err)
		}
		for {
			q, err = initMQ()
			if err == nil {
				break
			}
			next, ok := strategy.Next()
			if !ok {
				panic("InitMQ 重试失败......")
			}
			time.Sleep(next)
		}
	})
	return q
}

func initMQ() (mq.MQ, error) {
	// 替换用内存实现，方便测试
	qq := memory.NewMQ()
	if err := qq.CreateTopic(context.Background(), receipt.TopicName, 1); err != nil {
		return nil, err
	}
	return qq, nil
}

func InitReceiptEventProducer(q mq.MQ) receipt.ReceiptEventProducer {
	p, err := receipt.NewMQReceiptEventProducer(q, receipt.TopicName)
	if err != nil {
		panic(err)
	}
	return p
}
