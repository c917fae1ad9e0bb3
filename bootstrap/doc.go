// Package bootstrap orchestrates application lifecycle for streamkit
// programs: typed configuration, logger initialization, optional OTLP
// metrics and tracing, and a ready-to-use stream Materializer.
//
// # Quick Start
//
//	var cfg bootstrap.AppConfig
//	if err := config.LoadConfig("myapp", &cfg); err != nil {
//	    log.Fatal(err)
//	}
//	app, err := bootstrap.NewApp(&cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = app.RunTask(ctx, func(ctx context.Context) error {
//	    fut, _ := stream.To(src, snk).Run(ctx, app.Materializer)
//	    _, err := stream.Await(ctx, app.Materializer, fut)
//	    return err
//	})
//
// Run blocks on OS signals for long-running services; RunTask executes a
// finite job and shuts down when it returns.
package bootstrap
