package validation

import "strings"

// SanitizedInput contém apenas os campos reconhecidos e normalizados de um
// body já validado. Ponteiros nil indicam campo não informado; o conjunto
// pode ser vazio quando nenhum campo reconhecido foi enviado.
type SanitizedInput struct {
	Name  *string
	Email *string
	Age   *int
}

// Empty informa se nenhum campo reconhecido sobreviveu à sanitização.
func (s SanitizedInput) Empty() bool {
	return s.Name == nil && s.Email == nil && s.Age == nil
}

// SanitizeUserData normaliza um mapeamento validado para a forma canônica
// de armazenamento: name com trim, email com trim + lowercase, age como
// inteiro. Campos não reconhecidos são descartados; uma idade inconversível
// é omitida em silêncio (o Validator já rejeitou idades inválidas).
func SanitizeUserData(data map[string]any) SanitizedInput {
	var out SanitizedInput

	if v, ok := data["name"].(string); ok && v != "" {
		name := strings.TrimSpace(v)
		out.Name = &name
	}

	if v, ok := data["email"].(string); ok && v != "" {
		email := strings.ToLower(strings.TrimSpace(v))
		out.Email = &email
	}

	if v, ok := data["age"]; ok && v != nil {
		if age, converted := toInt(v); converted {
			out.Age = &age
		}
	}

	return out
}
