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

// Servidor local de desenvolvimento: emula o contrato do API Gateway proxy
// por cima do mesmo Router usado na Lambda. Aponte o SDK para um
// dynamodb-local via AWS_ENDPOINT_URL para um ambiente 100% offline.
package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/raywall/users-quick-service/envloader"
	"github.com/raywall/users-quick-service/pkg/config"
	"github.com/raywall/users-quick-service/pkg/handlers"
	"github.com/raywall/users-quick-service/pkg/logger"
	"github.com/raywall/users-quick-service/pkg/metrics"
	"github.com/raywall/users-quick-service/pkg/transport"
	"github.com/raywall/users-quick-service/repository"
)

type localConf struct {
	Port int `env:"PORT" envDefault:"8080"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	var local localConf
	envloader.MustLoad(&local)

	log.Logger = logger.Configure(cfg.Logging)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("erro ao carregar configuração AWS")
	}

	client := dynamodb.NewFromConfig(awsCfg)
	repo := repository.NewDynamoUserRepository(client, cfg.Table.Name)
	router := transport.NewRouter(handlers.NewUserHandler(repo), metrics.Noop{})

	r := mux.NewRouter()
	r.HandleFunc("/users", proxy(router)).Methods(http.MethodPost, http.MethodGet, http.MethodOptions)
	r.HandleFunc("/users/{userId}", proxy(router)).Methods(http.MethodGet, http.MethodPut, http.MethodDelete, http.MethodOptions)

	addr := fmt.Sprintf(":%d", local.Port)
	log.Info().Str("addr", addr).Str("table", cfg.Table.Name).Msg("servidor local ouvindo")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal().Err(err).Msg("servidor local encerrado")
	}
}

// proxy converte a requisição HTTP no evento proxy do API Gateway e
// devolve o envelope produzido pelo Router.
func proxy(router *transport.Router) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		defer r.Body.Close()

		headers := make(map[string]string, len(r.Header))
		for k, v := range r.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		query := make(map[string]string)
		for k, v := range r.URL.Query() {
			if len(v) > 0 {
				query[k] = v[0]
			}
		}

		event := events.APIGatewayProxyRequest{
			HTTPMethod:            r.Method,
			Path:                  r.URL.Path,
			Headers:               headers,
			QueryStringParameters: query,
			PathParameters:        mux.Vars(r),
			Body:                  string(body),
		}

		resp, err := router.Handle(r.Context(), event)
		if err != nil {
			http.Error(w, `{"error": "internal server error"}`, http.StatusInternalServerError)
			return
		}

		for k, v := range resp.Headers {
			w.Header().Set(k, v)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = w.Write([]byte(resp.Body))
	}
}
