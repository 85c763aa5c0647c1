package gen

var (
	// FeatureInterfaces emits one interface per object type listing the
	// methods its Go type must implement, with a compile-time assertion.
	FeatureInterfaces = Feature{
		Name:        "interfaces",
		Stage:       Beta,
		Default:     false,
		Description: "Emits a <Type>Resolver interface per object type and asserts the mapped Go type implements it",
	}

	// FeatureSchemaSource embeds the schema source as a string constant.
	// Dialects decorating the root entry enable it implicitly.
	FeatureSchemaSource = Feature{
		Name:        "schema/source",
		Stage:       Stable,
		Default:     false,
		Description: "Embeds the GraphQL schema source in the generated package",
	}

	// FeatureSplit writes one file per wrapper instead of a single file.
	FeatureSplit = Feature{
		Name:        "split",
		Stage:       Experimental,
		Default:     false,
		Description: "Writes each wrapper to <type>_wrapper.go and the root entry to its own file",
	}

	// AllFeatures holds a list of all feature-flags.
	AllFeatures = []Feature{
		FeatureInterfaces,
		FeatureSchemaSource,
		FeatureSplit,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development, and actively being tested.
	Experimental

	// Alpha features are features whose initial development was finished,
	// but we expect breaking-changes to their APIs.
	Alpha

	// Beta features are Alpha features with a settled output.
	Beta

	// Stable features are Beta features that were running for a while.
	Stable
)

// String returns the stage name.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the codegen.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string
}

// FeatureByName returns the feature with the given name.
func FeatureByName(name string) (Feature, bool) {
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}
