// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/rs/zerolog/log"

	"github.com/raywall/users-quick-service/pkg/config"
	"github.com/raywall/users-quick-service/pkg/handlers"
	"github.com/raywall/users-quick-service/pkg/logger"
	"github.com/raywall/users-quick-service/pkg/metrics"
	"github.com/raywall/users-quick-service/pkg/transport"
	"github.com/raywall/users-quick-service/repository"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log.Logger = logger.Configure(cfg.Logging)

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao carregar configuração AWS")
	}

	client := dynamodb.NewFromConfig(awsCfg)
	repo := repository.NewDynamoUserRepository(client, cfg.Table.Name)
	userHandlers := handlers.NewUserHandler(repo)

	var provider metrics.Provider = metrics.Noop{}
	if cfg.Metrics.Enabled {
		dd, err := metrics.NewDatadogProvider(cfg.Metrics.Addr)
		if err != nil {
			log.Warn().Err(err).Msg("statsd indisponível, métricas desligadas")
		} else {
			provider = dd
		}
	}

	router := transport.NewRouter(userHandlers, provider)

	log.Info().Str("table", cfg.Table.Name).Msg("users service ready")

	lambda.Start(router.Handle)
}
