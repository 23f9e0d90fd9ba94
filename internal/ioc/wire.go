//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"notification-targeting/internal/repository"
	"notification-targeting/internal/repository/dao"
	"notification-targeting/internal/service/notification"
)

var BaseSet = wire.NewSet(InitDB, InitRedisClient, InitRedisCmd, InitIDGenerator, InitReceiptEventProducer)

var directorySet = wire.NewSet(
	InitDirectoryConfig,
	InitRecipientCaches,
	dao.NewRecipientDAO,
	repository.NewRecipientRepository,
	InitResolver,
)

var dispatchSet = wire.NewSet(InitTransport, InitDispatchConfig, InitDispatcher)

func InitApp() *App {
	wire.Build(
		BaseSet,
		directorySet,
		dispatchSet,
		notification.NewNotificationService,
		InitNotificationHandler,
		InitWeb,
		wire.Struct(new(App), "*"),
	)
	return new(App)
}
