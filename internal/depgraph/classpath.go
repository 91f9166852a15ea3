package depgraph

import "github.com/specialistvlad/variantgrid/internal/config"

// Classpath is a resolution target made of one or more declaration scopes.
type Classpath string

const (
	Compile     Classpath = "compile"
	Runtime     Classpath = "runtime"
	Test        Classpath = "test"
	AndroidTest Classpath = "android_test"
)

// Classpaths lists every classpath in resolution order.
var Classpaths = []Classpath{Compile, Runtime, Test, AndroidTest}

var classpathScopes = map[Classpath][]config.Scope{
	Compile:     {config.ScopeAPI, config.ScopeImplementation, config.ScopeCompileOnly},
	Runtime:     {config.ScopeAPI, config.ScopeImplementation, config.ScopeRuntimeOnly},
	Test:        {config.ScopeAPI, config.ScopeImplementation, config.ScopeTestImplementation},
	AndroidTest: {config.ScopeAPI, config.ScopeImplementation, config.ScopeAndroidTestImplementation},
}

// Scopes returns the declaration scopes that feed the classpath.
func (c Classpath) Scopes() []config.Scope {
	return classpathScopes[c]
}

// Includes reports whether declarations in scope s are part of the classpath.
func (c Classpath) Includes(s config.Scope) bool {
	for _, scope := range c.Scopes() {
		if scope == s {
			return true
		}
	}
	return false
}
