package directory

// Member is one person in the team roster.
type Member struct {
	ID         int    `mapstructure:"id" yaml:"id"`
	Username   string `mapstructure:"username" yaml:"username"`
	Email      string `mapstructure:"email" yaml:"email"`
	Role       string `mapstructure:"role" yaml:"role"`
	Department string `mapstructure:"department" yaml:"department"`
}

// Department groups ClickUp lists under a human name.
type Department struct {
	Name  string   `mapstructure:"name" yaml:"name"`
	Lists []string `mapstructure:"lists" yaml:"lists"`
}

// Directory is the static team configuration, built once at startup and
// passed by reference into the components that need it.
type Directory struct {
	Departments []Department `mapstructure:"departments" yaml:"departments"`
	Members     []Member     `mapstructure:"members" yaml:"members"`
}
