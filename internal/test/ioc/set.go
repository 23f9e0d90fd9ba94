package ioc

import "github.com/google/wire"

var BaseSet = wire.NewSet(InitDBAndTables, InitMQ, InitReceiptEventProducer, InitRedis, InitRedisClient, InitIDGenerator)
