package main

import (
	"context"

	"github.com/ecodeclub/hireflow/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/server/egovernor"
)

// export EGO_DEBUG=true
// go run main.go --config=config/config.yaml
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	var app *ioc.App
	egoApp := ego.New(ego.WithBeforeStopClean(func() error {
		cancel()
		if app == nil {
			return nil
		}
		for _, c := range app.Consumers {
			if err := c.Stop(context.Background()); err != nil {
				elog.DefaultLogger.Error("关闭消费者失败", elog.FieldErr(err))
			}
		}
		return nil
	}))
	tp := ioc.InitZipkinTracer()
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			elog.DefaultLogger.Error("关闭 zipkin tracer 失败", elog.FieldErr(err))
		}
	}()

	var err error
	app, err = ioc.InitApp()
	if err != nil {
		panic(err)
	}
	for _, c := range app.Consumers {
		c.Start(ctx)
	}
	err = egoApp.
		Serve(egovernor.Load("server.governor").Build(), app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("hireflow 退出", elog.FieldErr(err))
	}
}
