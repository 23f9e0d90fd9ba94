//go:build wireinject

package notification

import (
	"github.com/google/wire"
	"notification-targeting/internal/domain"
	"notification-targeting/internal/repository"
	"notification-targeting/internal/repository/dao"
	"notification-targeting/internal/service/notification"
	"notification-targeting/internal/service/sender"
	testioc "notification-targeting/internal/test/ioc"
)

func Init() *Service {
	wire.Build(
		testioc.BaseSet,
		dao.NewRecipientDAO,
		initCaches,
		repository.NewRecipientRepository,
		initResolver,
		initTransport,
		domain.DefaultDispatchConfig,
		sender.NewDispatcher,
		notification.NewNotificationService,
		wire.Struct(new(Service), "*"),
	)
	return nil
}
