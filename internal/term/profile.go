package term

// Profile is the identity the shell presents.
type Profile struct {
	User     string `yaml:"user" json:"user"`
	Host     string `yaml:"host" json:"host"`
	Name     string `yaml:"name" json:"name"`
	Shell    string `yaml:"shell" json:"shell"`
	Tagline  string `yaml:"tagline" json:"tagline"`
	Email    string `yaml:"email" json:"email"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	Twitter  string `yaml:"twitter" json:"twitter"`
}

// DefaultProfile is the portfolio owner's identity.
var DefaultProfile = Profile{
	User:     "defha",
	Host:     "dev-arch",
	Name:     "Defhanaya",
	Shell:    "DefTerm",
	Tagline:  "Backend Developer | GPU Enthusiast | Linux & Vim for lyfe<3",
	Email:    "defhanayasofhiea@gmail.com",
	GitHub:   "github.com/wrecktiral",
	LinkedIn: "linkedin.com/in/defhanaya",
	Twitter:  "@_scramblecode",
}

// Merge fills the empty fields of p from def.
func (p Profile) Merge(def Profile) Profile {
	fill := func(dst *string, v string) {
		if *dst == "" {
			*dst = v
		}
	}
	fill(&p.User, def.User)
	fill(&p.Host, def.Host)
	fill(&p.Name, def.Name)
	fill(&p.Shell, def.Shell)
	fill(&p.Tagline, def.Tagline)
	fill(&p.Email, def.Email)
	fill(&p.GitHub, def.GitHub)
	fill(&p.LinkedIn, def.LinkedIn)
	fill(&p.Twitter, def.Twitter)
	return p
}
