package lint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/variantgrid/internal/config"
	"github.com/specialistvlad/variantgrid/internal/coordinate"
	"github.com/specialistvlad/variantgrid/internal/depgraph"
	"github.com/specialistvlad/variantgrid/internal/variant"
)

// minSupportedSdk is the lowest min_sdk that does not trigger MinSdkTooLow.
const minSupportedSdk = 21

func builtinRules() []*Rule {
	return []*Rule{
		{
			ID:               "OldTargetApi",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Target SDK attribute is not targeting latest version",
			Explanation: "When your application runs on a version of Android that is more recent than your " +
				"target_sdk specifies, the platform enables compatibility behaviour. Keep target_sdk at compile_sdk.",
			Project: checkOldTargetAPI,
		},
		{
			ID:               "MinSdkTooLow",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityInformational,
			EnabledByDefault: true,
			Summary:          "Minimum SDK is below the supported floor",
			Explanation:      fmt.Sprintf("Libraries in the AndroidX family require min_sdk %d or higher.", minSupportedSdk),
			Project:          checkMinSdk,
		},
		{
			ID:               "StopShip",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: false,
			Summary:          "Code contains STOPSHIP marker",
			Explanation:      "A STOPSHIP marker in the version name flags a build that must not be released.",
			Project:          checkStopShip,
		},
		{
			ID:               "JvmTargetMismatch",
			Category:         CategoryInteroperability,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Kotlin JVM target differs from Java target compatibility",
			Explanation:      "Kotlin and Java sources compiled for different JVM targets fail at link time.",
			Project:          checkJvmTarget,
		},
		{
			ID:               "GradlePluginVersion",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Applied plugin has no version",
			Explanation:      "A plugin applied without a version in any configuration file resolves to whatever is on the classpath.",
			Project:          checkPluginVersion,
		},
		{
			ID:               "GradleDynamicVersion",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Gradle Dynamic Version",
			Explanation:      "Dynamic versions such as 1.+ make builds unpredictable and not reproducible.",
			Project: func(in *Input) []Issue {
				return dynamicVersions(in.Model.Dependencies)
			},
			Variant: func(_ *Input, v *variant.Resolved) []Issue {
				return dynamicVersions(v.Dependencies)
			},
		},
		{
			ID:               "DuplicateDependency",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Dependency declared more than once",
			Explanation:      "The same module is declared twice in one scope; only one version can win.",
			Project: func(in *Input) []Issue {
				return duplicates(in.Model.Dependencies)
			},
			Variant: func(_ *Input, v *variant.Resolved) []Issue {
				return duplicates(v.Dependencies)
			},
		},
		{
			ID:               "ShrinkWithoutMinify",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityError,
			EnabledByDefault: true,
			Summary:          "Resource shrinking requires code shrinking",
			Explanation:      "shrink_resources only works together with minify_enabled.",
			Variant:          checkShrinkWithoutMinify,
		},
		{
			ID:               "MissingProguardRules",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Minified variant has no ProGuard files",
			Explanation:      "Minification without keep rules strips classes that are only reached through reflection.",
			Variant:          checkMissingProguard,
		},
		{
			ID:               "HardcodedDebugMode",
			Category:         CategorySecurity,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Release variant is debuggable",
			Explanation:      "A debuggable release build lets anyone attach a debugger to the application.",
			Variant:          checkDebuggableRelease,
		},
		{
			ID:               "ReleaseNotMinified",
			Category:         CategoryPerformance,
			Severity:         config.SeverityInformational,
			EnabledByDefault: true,
			Summary:          "Release variant is not minified",
			Explanation:      "Release builds are usually minified to reduce size and obfuscate code.",
			Variant:          checkReleaseNotMinified,
		},
		{
			ID:               "UnknownMatchingFallback",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityError,
			EnabledByDefault: true,
			Summary:          "Matching fallback names an undeclared variant",
			Explanation:      "matching_fallbacks must name variants declared in this project.",
			Variant:          checkMatchingFallbacks,
		},
		{
			ID:               "GradleDependency",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Obsolete Gradle Dependency",
			Explanation:      "A declared version was upgraded during resolution; declare the version that is actually used.",
			Dependency:       checkUpgraded,
		},
		{
			ID:               "GradleOverrides",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Value overridden by constraint",
			Explanation:      "A constraint forces a module below a version something else requested.",
			Dependency:       checkDowngradedByPin,
		},
		{
			ID:               "NewerVersionAvailable",
			Category:         CategoryCorrectness,
			Severity:         config.SeverityInformational,
			EnabledByDefault: false,
			Summary:          "Newer Library Versions Available",
			Explanation:      "Artifact metadata lists a newer version than the one resolved.",
			Dependency:       checkNewerAvailable,
		},
		{
			ID:               "UnknownIssueId",
			Category:         CategoryLint,
			Severity:         config.SeverityWarning,
			EnabledByDefault: true,
			Summary:          "Unknown lint issue id",
			Explanation:      "The lint policy names an issue id that does not exist. Check for typos.",
			Project:          checkUnknownIssueIDs,
		},
	}
}

func checkOldTargetAPI(in *Input) []Issue {
	p := in.Model.Project
	if p.TargetSdk >= p.CompileSdk {
		return nil
	}
	return []Issue{{
		Message:  fmt.Sprintf("Not targeting the latest versions of Android; compile_sdk is %d but target_sdk is %d", p.CompileSdk, p.TargetSdk),
		Location: p.Location,
	}}
}

func checkMinSdk(in *Input) []Issue {
	p := in.Model.Project
	if p.MinSdk >= minSupportedSdk {
		return nil
	}
	return []Issue{{
		Message:  fmt.Sprintf("min_sdk %d is below %d", p.MinSdk, minSupportedSdk),
		Location: p.Location,
	}}
}

func checkStopShip(in *Input) []Issue {
	p := in.Model.Project
	if !strings.Contains(strings.ToUpper(p.VersionName), "STOPSHIP") {
		return nil
	}
	return []Issue{{Message: fmt.Sprintf("version_name %q contains STOPSHIP", p.VersionName), Location: p.Location}}
}

func checkJvmTarget(in *Input) []Issue {
	o := in.Model.Project.CompileOptions
	if o.JvmTarget == "" || o.TargetCompatibility == "" || o.JvmTarget == o.TargetCompatibility {
		return nil
	}
	return []Issue{{
		Message:  fmt.Sprintf("jvm_target %s does not match target_compatibility %s", o.JvmTarget, o.TargetCompatibility),
		Location: in.Model.Project.Location,
	}}
}

func checkPluginVersion(in *Input) []Issue {
	ids := make([]string, 0, len(in.Model.Plugins))
	for id := range in.Model.Plugins {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	var issues []Issue
	for _, id := range ids {
		p := in.Model.Plugins[id]
		if p.Apply && p.Version == "" {
			issues = append(issues, Issue{Message: fmt.Sprintf("plugin %s is applied without a version", id), Location: p.Location})
		}
	}
	return issues
}

func dynamicVersions(decls []*config.DependencyDeclaration) []Issue {
	var issues []Issue
	for _, d := range decls {
		if coordinate.IsDynamic(d.Coordinate.Version) {
			issues = append(issues, Issue{
				Message:  fmt.Sprintf("Avoid using + in version numbers; %s in %s", d.Coordinate, d.Scope),
				Location: d.Location,
			})
		}
	}
	return issues
}

func duplicates(decls []*config.DependencyDeclaration) []Issue {
	seen := make(map[string]*config.DependencyDeclaration)
	var issues []Issue
	for _, d := range decls {
		key := string(d.Scope) + " " + d.Coordinate.Module()
		if first, ok := seen[key]; ok {
			issues = append(issues, Issue{
				Message:  fmt.Sprintf("%s is declared more than once in %s (first at %s)", d.Coordinate.Module(), d.Scope, first.Location),
				Location: d.Location,
			})
			continue
		}
		seen[key] = d
	}
	return issues
}

// releaseLike reports whether a variant does not derive from the debug build
// type.
func releaseLike(v *variant.Resolved) bool {
	return len(v.Chain) > 0 && v.Chain[0] != "debug"
}

func checkShrinkWithoutMinify(_ *Input, v *variant.Resolved) []Issue {
	if !v.ShrinkResources || v.MinifyEnabled {
		return nil
	}
	return []Issue{{Message: "Removing unused resources requires unused code shrinking to be turned on", Location: v.Location}}
}

func checkMissingProguard(_ *Input, v *variant.Resolved) []Issue {
	if !v.MinifyEnabled || len(v.ProguardFiles) > 0 {
		return nil
	}
	return []Issue{{Message: "minify_enabled is set but no proguard_files are configured", Location: v.Location}}
}

func checkDebuggableRelease(_ *Input, v *variant.Resolved) []Issue {
	if !releaseLike(v) || !v.Debuggable {
		return nil
	}
	return []Issue{{Message: "Avoid hardcoding the debug mode; leaving it on in release builds is a security risk", Location: v.Location}}
}

func checkReleaseNotMinified(_ *Input, v *variant.Resolved) []Issue {
	if !releaseLike(v) || v.MinifyEnabled {
		return nil
	}
	return []Issue{{Message: "Release variant is not minified", Location: v.Location}}
}

func checkMatchingFallbacks(in *Input, v *variant.Resolved) []Issue {
	var issues []Issue
	for _, f := range v.MatchingFallbacks {
		if _, ok := in.Model.Variants[f]; !ok {
			issues = append(issues, Issue{Message: fmt.Sprintf("matching fallback %q is not a declared variant", f), Location: v.Location})
		}
	}
	return issues
}

func checkUpgraded(_ *Input, r *depgraph.Resolution) []Issue {
	var issues []Issue
	for _, m := range r.Modules {
		for _, req := range m.Requests {
			if req.RequiredBy != "" || coordinate.IsDynamic(req.Version) {
				continue
			}
			if coordinate.Compare(req.Version, m.Version) < 0 {
				issues = append(issues, Issue{
					Message:  fmt.Sprintf("%s:%s is declared but %s is resolved", m.Module, req.Version, m.Version),
					Location: req.Location,
				})
			}
		}
	}
	return issues
}

func checkDowngradedByPin(in *Input, r *depgraph.Resolution) []Issue {
	var issues []Issue
	for _, m := range r.Modules {
		if !m.Pinned {
			continue
		}
		var above []string
		for _, v := range m.RequestedVersions() {
			if coordinate.Compare(v, m.Version) > 0 {
				above = append(above, v)
			}
		}
		if len(above) == 0 {
			continue
		}
		var loc config.Location
		if c, ok := in.Model.Constraints[m.Module]; ok {
			loc = c.Location
		}
		issues = append(issues, Issue{
			Message:  fmt.Sprintf("constraint forces %s to %s below requested %s", m.Module, m.Version, strings.Join(above, ", ")),
			Location: loc,
		})
	}
	return issues
}

func checkNewerAvailable(in *Input, r *depgraph.Resolution) []Issue {
	var issues []Issue
	for _, m := range r.Modules {
		art, ok := in.Model.Artifacts[m.Coordinate()]
		if !ok || art.Latest == "" {
			continue
		}
		if coordinate.Compare(art.Latest, m.Version) > 0 {
			issues = append(issues, Issue{Message: fmt.Sprintf("A newer version of %s than %s is available: %s", m.Module, m.Version, art.Latest)})
		}
	}
	return issues
}

func checkUnknownIssueIDs(in *Input) []Issue {
	p := in.Model.Lint
	if p == nil || in.registry == nil {
		return nil
	}
	ids := slices.Concat(p.Enable, p.Disable)
	for id := range p.Severities {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	ids = slices.Compact(ids)

	var issues []Issue
	for _, id := range ids {
		if !in.registry.IsKnown(id) {
			issues = append(issues, Issue{Message: fmt.Sprintf("Unknown issue id %q", id)})
		}
	}
	return issues
}
