package idgenerator

import (
	"errors"
	"time"

	"github.com/sony/sonyflake"
)

var ErrInitFailed = errors.New("初始化ID生成器失败")

//go:generate mockgen -source=./idgenerator.go -destination=./mocks/idgenerator.mock.go -package=idmocks Generator
type Generator interface {
	NextID() (uint64, error)
}

// NewSonyflake machineID 需要在集群内唯一
func NewSonyflake(startTime time.Time, machineID uint16) (Generator, error) {
	sf := sonyflake.NewSonyflake(sonyflake.Settings{
		StartTime: startTime,
		MachineID: func() (uint16, error) {
			return machineID, nil
		},
	})
	if sf == nil {
		return nil, ErrInitFailed
	}
	return sf, nil
}
