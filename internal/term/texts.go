package term

import "fmt"

const aboutIntro = `
Hi, my name is defhanaya but call me depa, im NVIDIA-certified associate: AI Infrastructure and Operations.
i love computer, its been 3 years since i start my developer journey,
i mostly do backend, but lately i've been obsessed with GPU programming,
aside from programming i also play guitar and a gym-rat
`

const aboutOutro = `
When I'm not coding, you'll find me customizing my Linux setup,
read a book, or building a split keyboard.
`

func (s *Session) about() {
	s.out.Append(styled(Heading, "About Me"))
	s.out.Print(Plain, aboutIntro)

	s.out.Append(styled(Label, "Current Learning:"))
	s.bullets("GPU Programming", "HPC", "System Design")

	s.out.Append(styled(Label, "On Going Research & Project:"))
	s.bullets(
		"PTX optimization on Matrix Multiplication (research)",
		"Scalable Production-ready Inference Server (project)",
	)
	s.out.Append(styled(Hint, `more, type "projects" command`))

	s.out.Append(styled(Label, "Current Tech Stack:"))
	s.bullets("CUDA C/C++", "Golang", "Python")

	s.out.Print(Plain, aboutOutro)
}

func (s *Session) bullets(items ...string) {
	for _, it := range items {
		s.out.Append(styled(Plain, "• "+it))
	}
}

func (s *Session) contact() {
	field := func(icon, label, value string) Line {
		return line(
			span(Plain, icon+" "),
			span(Label, label),
			span(Plain, fmt.Sprintf("%*s%s", 11-len(label), "", value)),
		)
	}
	s.out.Append(
		styled(Heading, "Get In Touch"),
		field("📧", "Email:", s.profile.Email),
		field("🐱", "GitHub:", s.profile.GitHub),
		field("💼", "LinkedIn:", s.profile.LinkedIn),
		field("🐦", "Twitter:", s.profile.Twitter),
		styled(Warning, `$ echo "Hit me up! Yap with me! Anything!"`),
	)
}

func (s *Session) theme() {
	s.out.Append(styled(Heading, "Current Theme: Linux Ricing"))
	s.out.Append(styled(Label, "Colors:"))
	s.out.Print(Plain, `
├── Primary BG:   #0d1117 (GitHub Dark)
├── Secondary BG: #161b22
├── Accent:       #58a6ff (LED Blue)
├── Success:      #238636 (Terminal Green)
└── Warning:      #d29922 (Terminal Yellow)
`)
	s.out.Append(styled(Label, "Font:"))
	s.out.Append(styled(Plain, "└── JetBrains Mono (Monospace)"))
	s.out.Append(styled(Label, "Inspiration:"))
	s.out.Append(styled(Plain, "└── Linux terminal aesthetics & ricing community"))
}

var archLogo = []string{
	"                   -`",
	"                  .o+`",
	"                 `ooo/",
	"                `+oooo:",
	"               `+oooooo:",
	"               -+oooooo+:",
	"             `/:-:++oooo+:",
	"            `/++++/+++++++:",
	"           `/++++++++++++++:",
	"          `/+++ooooooooooooo/`",
	"         ./ooosssso++osssssso+`",
	"        .oossssso-````/ossssss+`",
}

func (s *Session) neofetch() {
	m, sec := minSec(s.Uptime())
	info := []string{
		s.profile.User + "@" + s.profile.Host,
		"──────────────────",
		"OS: Arch Linux x86_64",
		"Kernel: Portfolio v2025",
		"Shell: " + s.profile.Shell,
		"Terminal: Faliux",
		"CPU: NVIDIA Grace",
		"Memory: Optimized",
		"Theme: Tokyo Night",
		"Font: JetBrains Mono",
		"Colors: Grey & LED Blue",
		fmt.Sprintf("Uptime: %d minutes, %d seconds", m, sec),
	}
	for i, art := range archLogo {
		s.out.Append(styled(Accent, fmt.Sprintf("%-36s%s", art, info[i])))
	}
}
