package fixups

import (
	"regexp"

	"github.com/custodia-labs/registro-ocr/internal/core/ports/driven"
)

// RegisterDefaults registers all built-in fix-ups with the registry.
func RegisterDefaults(r *Registry) {
	r.Register("clase_prefix", `"CLASE: 12023" -> "CLASE: 2023"`, func() driven.TextFixup {
		return newRuleFixup("clase_prefix",
			rule{regexp.MustCompile(`(?i)(CLASE:\s*)1?([12]\d{3})\b`), "${1}${2}"})
	})
	r.Register("setiembre", `"Setiembre" -> "Septiembre"`, func() driven.TextFixup {
		return newRuleFixup("setiembre",
			rule{regexp.MustCompile(`(?i)\bSetiembre\b`), "Septiembre"})
	})
	r.Register("calzado_prefix", `"Calzado 139" -> "Calzado 39"`, func() driven.TextFixup {
		return newRuleFixup("calzado_prefix",
			rule{regexp.MustCompile(`\bCalzado\s+1?([2-5]?\d)\b`), "Calzado ${1}"})
	})
	r.Register("email_spacing", `"juan @ mail .com" -> "juan@mail.com"`, func() driven.TextFixup {
		return newRuleFixup("email_spacing",
			rule{regexp.MustCompile(`[ \t]*@[ \t]*`), "@"},
			rule{regexp.MustCompile(`(@[A-Za-z0-9.\-]+)[ \t]+(\.[A-Za-z]{2,}\b)`), "${1}${2}"})
	})
	r.Register("label_dash", `"Unidad de Baja: - RI 3" -> "Unidad de Baja: RI 3"`, func() driven.TextFixup {
		return newRuleFixup("label_dash",
			rule{regexp.MustCompile(`(?i)\b(Nombres|Apellidos|Unidad de alta|Unidad de Baja)[ \t]*:[ \t]*-[ \t]+([^\s\-])`), "${1}: ${2}"})
	})
}

// rule is one regular-expression substitution.
type rule struct {
	re   *regexp.Regexp
	repl string
}

// ruleFixup applies its rules in order.
type ruleFixup struct {
	name  string
	rules []rule
}

func newRuleFixup(name string, rules ...rule) *ruleFixup {
	return &ruleFixup{name: name, rules: rules}
}

// Name returns the fix-up name.
func (f *ruleFixup) Name() string {
	return f.name
}

// Apply returns text with every rule applied.
func (f *ruleFixup) Apply(text string) string {
	for _, r := range f.rules {
		text = r.re.ReplaceAllString(text, r.repl)
	}
	return text
}
