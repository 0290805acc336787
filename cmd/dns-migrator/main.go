package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"

	"dns-migrator/internal/config"
	"dns-migrator/internal/gateway"
	"dns-migrator/internal/health"
	"dns-migrator/internal/migrate"
	"dns-migrator/internal/models"
	"dns-migrator/internal/registrar/godaddy"
	"dns-migrator/internal/report"
	"dns-migrator/internal/zone/route53"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	select {
	case err := <-errorCh:
		stop()
		if err == nil {
			os.Exit(0)
		}
		logger.Error(err.Error())
		os.Exit(1)
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string,
	logger log.LoggerInterface, buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		}
	}

	if health.IsClientMode(args) {
		// Running in a separate ephemeral instance, for example
		// through the Docker built-in healthcheck, to query the
		// long running instance about its status.
		var healthSettings config.Health
		healthSettings.Read(reader)
		healthSettings.SetDefaults()
		err = healthSettings.Validate()
		if err != nil {
			return fmt.Errorf("health settings: %w", err)
		}

		client := health.NewClient()
		return client.Query(ctx, *healthSettings.ServerAddress)
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	healthServer := health.NewServer(*config.Health.ServerAddress,
		logger.New(log.SetComponent("health server")))
	healthServerCtx, healthServerCancel := context.WithCancel(ctx)
	healthServerDone := make(chan struct{})
	go func() {
		defer close(healthServerDone)
		healthServer.Run(healthServerCtx)
	}()
	defer func() {
		healthServerCancel()
		<-healthServerDone
	}()

	const httpTimeout = 10 * time.Second
	httpClient := &http.Client{Timeout: httpTimeout}
	defer httpClient.CloseIdleConnections()

	registrarGateway := gateway.New(gateway.Settings{
		MinInterval: config.Migrator.RatePeriod,
		Logger:      logger.New(log.SetComponent("godaddy gateway")),
	})
	registrar, err := godaddy.New(godaddy.Settings{
		Key:     config.GoDaddy.APIKey,
		Secret:  config.GoDaddy.APISecret,
		Client:  httpClient,
		Gateway: registrarGateway,
		Logger:  logger.New(log.SetComponent("godaddy")),
	})
	if err != nil {
		return fmt.Errorf("creating GoDaddy client: %w", err)
	}
	logger.Info("GoDaddy API client initialized")

	route53API, err := route53.NewAPI(ctx, config.Route53.AccessKeyID,
		config.Route53.SecretAccessKey, config.Route53.Region)
	if err != nil {
		return fmt.Errorf("creating Route 53 client: %w", err)
	}
	zoneGateway := gateway.New(gateway.Settings{
		MinInterval: config.Migrator.RatePeriod,
		Logger:      logger.New(log.SetComponent("route53 gateway")),
	})
	zones := route53.New(route53API, zoneGateway,
		logger.New(log.SetComponent("route53")))
	logger.Info("Route 53 client initialized")

	batch, err := report.ReadFile(*config.Paths.DomainList)
	if err != nil {
		return fmt.Errorf("reading domain list: %w", err)
	}

	domains := batch.Domains()
	logDomainsCount(len(domains), logger)

	decider := migrate.NewDecider(*config.Migrator.TrivialZoneSize,
		logger.New(log.SetComponent("decision")))
	migrator := migrate.NewMigrator(registrar, zones, decider,
		logger.New(log.SetComponent("migrator")))

	outcomes := migrator.MigrateAll(ctx, domains)

	failed := 0
	for _, outcome := range outcomes {
		batch.Apply(outcome)
		if outcome.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		logger.Warn(strconv.Itoa(failed) + " domain(s) failed to migrate, see errors above")
	}

	err = batch.WriteFile(*config.Paths.Output)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logger.Info("Wrote results for " + strconv.Itoa(len(outcomes)) +
		" domain(s) to " + *config.Paths.Output)
	return nil
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

func logDomainsCount(domainsCount int, logger log.LeveledLogger) {
	switch domainsCount {
	case 0:
		logger.Warn("Found no domain to process")
	case 1:
		logger.Info("Found a single domain to process")
	default:
		logger.Info("Found " + strconv.Itoa(domainsCount) + " domains to process")
	}
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "dns-migrator",
		Repository: "dns-migrator",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}
