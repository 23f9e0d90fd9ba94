package sender

import (
	"slices"
	"sync"

	"notification-targeting/internal/domain"
)

type indexedFailure struct {
	index   int
	failure domain.Failure
}

// receiptBuilder 并发发送的唯一汇总点
type receiptBuilder struct {
	mu          sync.Mutex
	successful  int
	failures    []indexedFailure
	interrupted bool
}

func (b *receiptBuilder) success() {
	b.mu.Lock()
	b.successful++
	b.mu.Unlock()
}

func (b *receiptBuilder) fail(index int, recipientID, reason string) {
	b.mu.Lock()
	b.failures = append(b.failures, indexedFailure{
		index:   index,
		failure: domain.Failure{RecipientID: recipientID, Reason: reason},
	})
	b.mu.Unlock()
}

// skip 接收者因为取消没有被尝试
func (b *receiptBuilder) skip() {
	b.mu.Lock()
	b.interrupted = true
	b.mu.Unlock()
}

// build 失败列表按解析顺序排列，和并发完成的先后无关
func (b *receiptBuilder) build() domain.Receipt {
	b.mu.Lock()
	defer b.mu.Unlock()

	slices.SortFunc(b.failures, func(a, c indexedFailure) int {
		return a.index - c.index
	})
	failures := make([]domain.Failure, 0, len(b.failures))
	for _, f := range b.failures {
		failures = append(failures, f.failure)
	}
	return domain.Receipt{
		Total:       b.successful + len(failures),
		Successful:  b.successful,
		Failed:      len(failures),
		Failures:    failures,
		Interrupted: b.interrupted,
	}
}
