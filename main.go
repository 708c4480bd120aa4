package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/dummyhome/controller/inventory"
	"github.com/dummyhome/controller/metrics"
	"github.com/dummyhome/controller/project"
	"github.com/dummyhome/controller/schema"
	"github.com/prometheus/client_golang/prometheus"
	lw "github.com/shimmeringbee/logwrap"
	"github.com/shimmeringbee/logwrap/impl/golog"
)

func main() {
	ctx := context.Background()
	l := lw.New(golog.Wrap(log.New(os.Stderr, "", log.LstdFlags)))

	l.LogInfo(ctx, "Dummy Home: Inventory Controller - Starting...")

	directories := enumerateDirectories(ctx, l)

	l.LogInfo(ctx, "Directory enumeration complete.", lw.Datum("directories", directories))

	l, err := configureLogging(filepath.Join(directories.Config, "logging"), directories.Log, l)
	if err != nil {
		l.LogFatal(ctx, "Failed to configure logging.", lw.Err(err))
	}

	projectCfg, err := loadProjectConfiguration(directories.Config)
	if err != nil {
		l.LogFatal(ctx, "Failed to load project configuration.", lw.Err(err))
	}

	interfaceCfgs, err := loadInterfaceConfigurations(filepath.Join(directories.Config, "interfaces"))
	if err != nil {
		l.LogFatal(ctx, "Failed to load interface configurations.", lw.Err(err))
	}

	l.LogInfo(ctx, "Initialising inventory store.")

	eventbus := inventory.NewEventBus()
	store := inventory.NewStore(eventbus)

	alloc := schema.NewAllocator()

	client := &project.Client{
		BaseURL:   projectCfg.Endpoint,
		ProjectID: projectCfg.ProjectID,
	}

	service := project.NewService(store, client, alloc, projectCfg.ProjectName, projectCfg.Timeout(), l, eventbus)

	l.LogInfo(ctx, "Registering metrics.")

	registry := prometheus.NewRegistry()

	metricsListener := &metrics.Listener{
		Metrics:         metrics.New(registry),
		Store:           store,
		EventSubscriber: eventbus,
	}
	metricsListener.Start()

	l.LogInfo(ctx, "Loading project from remote endpoint.", lw.Datum("endpoint", projectCfg.Endpoint))

	if err := service.Load(ctx); err != nil {
		l.LogWarn(ctx, "Failed to load project from remote endpoint, continuing with defaults.", lw.Err(err))
	}

	l.LogInfo(ctx, "Starting interfaces.")

	deps := interfaceDependencies{
		store:    store,
		service:  service,
		eventbus: eventbus,
		gatherer: registry,
	}

	startedInterfaces, err := startInterfaces(interfaceCfgs, deps, directories, l)
	if err != nil {
		l.LogFatal(ctx, "Failed to start interfaces.", lw.Err(err))
	}

	l.LogInfo(ctx, "Controller ready.")

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, os.Interrupt, os.Kill)

	s := <-signalCh
	l.LogInfo(ctx, "Signal received, shutting down.", lw.Datum("signal", s.String()))

	for _, intf := range startedInterfaces {
		l.LogInfo(ctx, "Shutting down interface.", lw.Datum("interface", intf.Name))

		if err := intf.Shutdown(); err != nil {
			l.LogError(ctx, "Failed to shutdown interface.", lw.Err(err), lw.Datum("interface", intf.Name))
		}
	}

	l.LogInfo(ctx, "Shutting down metrics listener.")
	metricsListener.Stop()

	l.LogInfo(ctx, "Shut down complete.")
}
