package hcl_adapter

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// envEvalContext exposes the process environment to mission expressions as a
// single `env` object, so an attribute can say `candidate_id = env.CANDIDATE_ID`.
func envEvalContext(environ []string) *hcl.EvalContext {
	vals := make(map[string]cty.Value, len(environ))
	for _, entry := range environ {
		pair := strings.SplitN(entry, "=", 2)
		if len(pair) == 2 {
			vals[pair[0]] = cty.StringVal(pair[1])
		}
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vals),
		},
	}
}
