package hcl

import (
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext exposes the build and project directories as variables,
// plus a small function set, to every expression in the configuration.
func newEvalContext(buildDir, projectDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"build_dir":   cty.StringVal(buildDir),
			"project_dir": cty.StringVal(projectDir),
		},
		Functions: map[string]function.Function{
			"default_proguard_file": defaultProguardFileFunc(buildDir),
			"concat":                stdlib.ConcatFunc,
			"format":                stdlib.FormatFunc,
			"upper":                 stdlib.UpperFunc,
			"lower":                 stdlib.LowerFunc,
		},
	}
}

// defaultProguardFileFunc returns the path the Android plugin extracts its
// bundled ProGuard rule files to.
func defaultProguardFileFunc(buildDir string) function.Function {
	return function.New(&function.Spec{
		Params: []function.Parameter{
			{Name: "name", Type: cty.String},
		},
		Type: function.StaticReturnType(cty.String),
		Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
			name := args[0].AsString()
			return cty.StringVal(filepath.ToSlash(filepath.Join(buildDir, "intermediates", "default_proguard_files", "global", name))), nil
		},
	})
}
