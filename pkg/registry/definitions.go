package registry

// Definitions is the YAML document describing application contracts.
type Definitions struct {
	Memberships []MembershipDef `yaml:"memberships"`
	Ranges      []RangeDef      `yaml:"ranges"`
	Chains      []ChainDef      `yaml:"chains"`
}

// MembershipDef defines a legal-value set. Label defaults to Name.
type MembershipDef struct {
	Name   string   `yaml:"name"`
	Label  string   `yaml:"label"`
	Values []string `yaml:"values"`
}

// RangeDef defines inclusive numeric bounds. Kind is "integer" (default) or "float";
// integer bounds must be whole numbers.
type RangeDef struct {
	Name  string  `yaml:"name"`
	Label string  `yaml:"label"`
	Kind  string  `yaml:"kind"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// ChainDef composes previously defined or built-in contracts in order.
type ChainDef struct {
	Name    string   `yaml:"name"`
	Label   string   `yaml:"label"`
	Members []string `yaml:"members"`
}

const (
	KindInteger = "integer"
	KindFloat   = "float"
)

func labelOr(label, name string) string {
	if label != "" {
		return label
	}
	return name
}
