package main

import (
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
	"notification-targeting/internal/ioc"
)

// go run ./cmd/notification --config=config/config.yaml
func main() {
	egoApp := ego.New()
	app := ioc.InitApp()
	if err := egoApp.Serve(
		egovernor.Load("server.governor").Build(),
		app.Web,
	).Run(); err != nil {
		elog.Panic("startup", elog.FieldErr(err))
	}
}
