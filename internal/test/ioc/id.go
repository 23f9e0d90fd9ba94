package ioc

import (
	"time"

	"notification-targeting/internal/pkg/idgenerator"
)

func InitIDGenerator() idgenerator.Generator {
	g, err := idgenerator.NewSonyflake(time.Now().Add(-time.Hour), 1)
	if err != nil {
		panic(err)
	}
	return g
}
