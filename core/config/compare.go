package config

// CompareConfig describes which library/online directory pairs are compared.
//
// By default the task list is the cross product of Tiers with the two document
// kinds, using the directory layout:
//
//	<root>/<library_dir>/<tier>/<templates_dir>   vs   <root>/<tier>/<templates_dir>
//	<root>/<library_dir>/<tier>/<imagestreams_dir> vs   <root>/<tier>/<imagestreams_dir>
//
// An explicit Tasks list (config file only) replaces the generated one.
type CompareConfig struct {
	// Root is the directory both hierarchies live under.
	Root string `mapstructure:"root" default:"."`
	// LibraryDir is the library hierarchy, relative to Root.
	LibraryDir string `mapstructure:"library_dir" default:"library"`
	// Tiers lists the tier directories to compare, in order.
	Tiers []string `mapstructure:"tiers" default:"free,paid"`
	// TemplatesDir is the template subdirectory inside each tier.
	TemplatesDir string `mapstructure:"templates_dir" default:"templates/examples"`
	// ImagestreamsDir is the image stream subdirectory inside each tier.
	ImagestreamsDir string `mapstructure:"imagestreams_dir" default:"imagestreams"`
	// Extensions are the document suffixes picked up in each directory.
	Extensions []string `mapstructure:"extensions" default:".json"`
	// FailOnExtra turns online-only documents into failures.
	FailOnExtra bool `mapstructure:"fail_on_extra" default:"false"`
	// AbortOnParseError stops the run at the first malformed document.
	AbortOnParseError bool `mapstructure:"abort_on_parse_error" default:"false"`
	// Parallel is the number of tasks compared concurrently.
	Parallel int `mapstructure:"parallel" default:"1"`
	// Tasks overrides the generated task list.
	Tasks []TaskConfig `mapstructure:"tasks"`
}

// TaskConfig declares a single comparison explicitly.
type TaskConfig struct {
	// Tier is the tier directory name (e.g. "free").
	Tier string `mapstructure:"tier"`
	// Label is the display name of the tier (e.g. "Free"). Derived from Tier when empty.
	Label string `mapstructure:"label"`
	// Kind is "template" or "imagestream".
	Kind string `mapstructure:"kind"`
	// LibraryRoot is the library directory, relative to CompareConfig.Root unless absolute.
	LibraryRoot string `mapstructure:"library_root"`
	// OnlineRoot is the online directory, relative to CompareConfig.Root unless absolute.
	OnlineRoot string `mapstructure:"online_root"`
}
