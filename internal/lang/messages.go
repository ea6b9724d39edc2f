// Package lang maps validation rule keys to localized messages. The table
// is consulted only when shaping a response; unknown keys resolve to
// themselves so a missing translation is visible instead of silent.
package lang

var messages = map[string]string{
	"UserCreate.name_required":     "O campo nome é obrigatório.",
	"UserCreate.email_required":    "O campo email é obrigatório.",
	"UserCreate.email_is_valid":    "O campo email deve ser um email válido.",
	"UserCreate.email_unique":      "O email informado já está em uso.",
	"UserCreate.password_required": "O campo senha é obrigatório.",
	"UserCreate.password_min_6":    "O campo senha deve ter no mínimo 6 caracteres.",

	"UserEdit.name_required":     "O campo nome é obrigatório.",
	"UserEdit.email_required":    "O campo email é obrigatório.",
	"UserEdit.email_is_valid":    "O campo email deve ser um email válido.",
	"UserEdit.email_unique":      "O email informado já está em uso.",
	"UserEdit.password_required": "O campo senha é obrigatório.",
	"UserEdit.password_min_6":    "O campo senha deve ter no mínimo 6 caracteres.",
}

// Trans resolves a rule key to its localized message, falling back to the
// key itself when no translation exists.
func Trans(key string) string {
	if m, ok := messages[key]; ok {
		return m
	}
	return key
}
