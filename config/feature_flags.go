package config

import (
	"os"
	"sort"
	"strconv"
	"strings"
)

// FeatureFlags toggles optional report sections.
type FeatureFlags struct {
	features map[string]*Feature
}

// Feature represents a single feature flag.
type Feature struct {
	Name        string
	Description string
	Enabled     bool
}

// Predefined feature flag names.
const (
	FeatureReportPerformance  = "report.performance"  // Performance column in the semester table
	FeatureReportSummary      = "report.summary"      // Highest/lowest TGPA panel
	FeatureReportTGPAChart    = "report.tgpa_chart"   // TGPA progression chart
	FeatureReportDistribution = "report.distribution" // Grade distribution chart
	FeatureReportSubjects     = "report.subjects"     // Per-subject lines under each semester
	FeatureReportFingerprint  = "report.fingerprint"  // Scale fingerprint in the footer
)

// LoadFeatureFlags loads feature flags from environment variables.
func LoadFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{features: make(map[string]*Feature)}
	ff.initializeDefaults()
	ff.loadFromEnvironment()
	return ff
}

// DefaultFeatureFlags returns the defaults without reading the environment.
func DefaultFeatureFlags() *FeatureFlags {
	ff := &FeatureFlags{features: make(map[string]*Feature)}
	ff.initializeDefaults()
	return ff
}

func (ff *FeatureFlags) initializeDefaults() {
	ff.add(FeatureReportPerformance, "Show the performance band of each semester", true)
	ff.add(FeatureReportSummary, "Show highest and lowest TGPA", true)
	ff.add(FeatureReportTGPAChart, "Render the TGPA progression chart", true)
	ff.add(FeatureReportDistribution, "Render the grade distribution chart", true)
	ff.add(FeatureReportSubjects, "List included subjects under each semester", false)
	ff.add(FeatureReportFingerprint, "Print the grading scale fingerprint", false)
}

func (ff *FeatureFlags) add(name, description string, enabled bool) {
	ff.features[name] = &Feature{Name: name, Description: description, Enabled: enabled}
}

// loadFromEnvironment loads feature flag overrides from env vars.
// Format: FEATURE_<NAME>=true|false
// Example: FEATURE_REPORT_SUBJECTS=true
func (ff *FeatureFlags) loadFromEnvironment() {
	for name, feature := range ff.features {
		val := os.Getenv(featureNameToEnvKey(name))
		if val == "" {
			continue
		}
		if b, err := strconv.ParseBool(val); err == nil {
			feature.Enabled = b
		}
	}
}

// featureNameToEnvKey converts feature name to environment variable key.
// "report.tgpa_chart" -> "FEATURE_REPORT_TGPA_CHART"
func featureNameToEnvKey(name string) string {
	key := strings.ToUpper(name)
	key = strings.ReplaceAll(key, ".", "_")
	return "FEATURE_" + key
}

// IsEnabled checks if a feature is enabled. Unknown features are disabled.
func (ff *FeatureFlags) IsEnabled(name string) bool {
	if ff == nil {
		return false
	}
	f, ok := ff.features[name]
	return ok && f.Enabled
}

// Set overrides a feature. It reports false for unknown features.
func (ff *FeatureFlags) Set(name string, enabled bool) bool {
	f, ok := ff.features[name]
	if !ok {
		return false
	}
	f.Enabled = enabled
	return true
}

// All returns every feature sorted by name.
func (ff *FeatureFlags) All() []Feature {
	out := make([]Feature, 0, len(ff.features))
	for _, f := range ff.features {
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
