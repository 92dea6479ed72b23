package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/env"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"

	"github.com/wikibase-go/rest-client/pkg/wikibase/client"
	"github.com/wikibase-go/rest-client/pkg/wikibase/container"
	"github.com/wikibase-go/rest-client/pkg/wikibase/types"
)

const appName string = "wbdump"

func main() {
	appVersion := buildinfo.SourceVersion()

	ctx, log, cleanup := o11y.Init(context.Background(), appName, appVersion, "json")
	defer cleanup()

	configPath := env.GetVariableOrDefault(ctx, "WBDUMP_CONFIG", "/etc/wbdump/config.yaml")

	configFile, err := os.Open(configPath)
	if err != nil {
		log.Error("failed to open configuration file", "path", configPath, "err", err.Error())
		os.Exit(1)
	}

	cfg, err := LoadConfiguration(configFile)
	configFile.Close()
	if err != nil {
		log.Error("failed to load configuration", "path", configPath, "err", err.Error())
		os.Exit(1)
	}

	if cfg.Endpoint == "" {
		log.Error("no endpoint configured")
		os.Exit(1)
	}

	ids := make([]types.EntityID, 0, len(cfg.Entities))
	for _, entity := range cfg.Entities {
		id, err := types.ParseEntityID(entity)
		if err != nil {
			log.Warn("skipping invalid entity id", "entity-id", entity, "err", err.Error())
			continue
		}
		ids = append(ids, id)
	}

	c := client.NewEntityStoreClient(cfg.Endpoint, clientOptions(ctx, cfg)...)
	ec := container.NewEntityContainer(c, container.MaxConcurrent(cfg.MaxConcurrent))

	if err := ec.Load(ctx, ids); err != nil {
		log.Error("failed to load entities", "err", err.Error())
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	dumped := 0
	for _, id := range ids {
		if item, ok := ec.Item(id); ok {
			if err := enc.Encode(item); err != nil {
				log.Error("failed to encode item", "entity-id", id.String(), "err", err.Error())
				os.Exit(1)
			}
			dumped++
			continue
		}

		if property, ok := ec.Property(id); ok {
			if err := enc.Encode(property); err != nil {
				log.Error("failed to encode property", "entity-id", id.String(), "err", err.Error())
				os.Exit(1)
			}
			dumped++
			continue
		}

		log.Warn("entity could not be fetched", "entity-id", id.String())
	}

	log.Info("done", "requested", len(ids), "dumped", dumped)
}

func clientOptions(ctx context.Context, cfg *Config) []client.Option {
	options := []client.Option{
		client.Debug(env.GetVariableOrDefault(ctx, "WBDUMP_DEBUG", "false")),
	}

	if cfg.UsesOAuth2() {
		tokens := client.NewBearerToken(cfg.Endpoint,
			client.OAuth2Info(cfg.OAuth2.ClientID, cfg.OAuth2.ClientSecret),
			client.RefreshToken(cfg.OAuth2.RefreshToken),
			client.InitialAccessToken(cfg.AccessToken),
		)
		options = append(options, client.WithTokenProvider(tokens))
	} else if cfg.AccessToken != "" {
		options = append(options, client.AccessToken(cfg.AccessToken))
	}

	return options
}
