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
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// emailRegex exige local@dominio.tld com TLD de pelo menos 2 letras.
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail verifica o formato do e-mail. Case é preservado aqui;
// o lowercase acontece na sanitização.
func ValidateEmail(email any) bool {
	s, ok := email.(string)
	if !ok || s == "" {
		return false
	}
	return emailRegex.MatchString(s)
}

// ValidateName verifica se o nome é uma string com 1 a 100 caracteres
// após remover espaços das bordas.
func ValidateName(name any) bool {
	s, ok := name.(string)
	if !ok || s == "" {
		return false
	}
	n := len(strings.TrimSpace(s))
	return n >= 1 && n <= 100
}

// ValidateAge aceita ausente/nulo (idade é opcional) ou um valor
// conversível para inteiro no intervalo (0, 150].
func ValidateAge(age any) bool {
	if age == nil {
		return true
	}
	n, ok := toInt(age)
	if !ok {
		return false
	}
	return n > 0 && n <= 150
}

// ValidateUserData valida o mapeamento de entrada para create/update.
//
// A validação é fail-fast: primeiro uma passada completa pelos campos
// obrigatórios, depois checagens de formato na ordem fixa
// name → email → age. Retorna nil quando válido, ou um erro com a
// primeira mensagem de violação encontrada.
func ValidateUserData(data map[string]any, requiredFields []string) error {
	for _, field := range requiredFields {
		if v, ok := data[field]; !ok || v == nil {
			return fmt.Errorf("Missing required field: %s", field)
		}
	}

	if v, ok := data["name"]; ok {
		if !ValidateName(v) {
			return fmt.Errorf("Invalid name: must be 1-100 characters")
		}
	}

	if v, ok := data["email"]; ok {
		if !ValidateEmail(v) {
			return fmt.Errorf("Invalid email format")
		}
	}

	if v, ok := data["age"]; ok {
		if !ValidateAge(v) {
			return fmt.Errorf("Invalid age: must be between 1 and 150")
		}
	}

	return nil
}

// toInt converte os formatos que um body JSON pode entregar para int.
// Números de ponto flutuante são truncados.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}
