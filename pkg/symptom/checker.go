package symptom

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed data/rules.yaml
var rulesYAML []byte

// Greeting opens every symptom checker conversation.
const Greeting = "Hello! I'm your AI symptom checker. Please describe your symptoms, and I'll try to help you understand what might be causing them and suggest appropriate actions."

const defaultResponse = "Thank you for describing your symptoms. Based on the information provided, it's difficult to make a specific assessment. Would you mind providing more details about your symptoms? Consider mentioning:\n\n- When did they start?\n- Any other symptoms you're experiencing?\n- Any pre-existing medical conditions?\n\nThis will help me provide better guidance."

// Rule pairs an expr condition over the lower-cased message with a scripted
// response. First matching rule wins.
type Rule struct {
	Name      string `yaml:"name"`
	Condition string `yaml:"condition"`
	Response  string `yaml:"response"`

	program *vm.Program
}

var rules []Rule
var loadRulesOnce sync.Once

func loadRules() {
	if err := yaml.Unmarshal(rulesYAML, &rules); err != nil {
		log.Fatal().Err(err).Msg("Failed to load symptom rules")
	}

	for i := range rules {
		program, err := expr.Compile(rules[i].Condition, expr.Env(conditionEnv("")), expr.AsBool())
		if err != nil {
			log.Fatal().Err(err).Str("rule", rules[i].Name).Msg("Failed to compile symptom rule")
		}

		rules[i].program = program
	}
}

func conditionEnv(message string) map[string]interface{} {
	return map[string]interface{}{
		"message":  message,
		"contains": strings.Contains,
	}
}

// Respond produces the scripted guidance for a symptom description.
func Respond(message string) string {
	loadRulesOnce.Do(loadRules)

	env := conditionEnv(strings.ToLower(message))

	for _, rule := range rules {
		matched, err := expr.Run(rule.program, env)
		if err != nil {
			log.Error().Err(err).Str("rule", rule.Name).Msg("Failed to evaluate symptom rule")
			continue
		}

		if matched.(bool) {
			return rule.Response
		}
	}

	return defaultResponse
}
