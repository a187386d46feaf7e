package settings

import (
	"errors"
	"net"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"defterm/internal/config"
	"defterm/internal/theme"
)

// Run opens the config wizard on cfg. Fields are edited in place; cfg is
// left untouched when the form is cancelled.
func Run(cfg *config.Config) error {
	draft := *cfg
	if err := Form(&draft).Run(); err != nil {
		return err // form canceled or failed
	}
	*cfg = draft
	return nil
}

// Form builds the wizard bound to cfg.
func Form(cfg *config.Config) *huh.Form {
	p := &cfg.Profile
	levels := []huh.Option[string]{
		huh.NewOption("debug", "debug"),
		huh.NewOption("info", "info"),
		huh.NewOption("warn", "warn"),
		huh.NewOption("error", "error"),
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Profile").Description("Identity shown by whoami, contact and neofetch"),
			huh.NewInput().Title("User").Value(&p.User).Validate(required("user")),
			huh.NewInput().Title("Host").Value(&p.Host).Validate(required("host")),
			huh.NewInput().Title("Name").Value(&p.Name),
			huh.NewInput().Title("Shell").Value(&p.Shell).Validate(required("shell")),
			huh.NewInput().Title("Tagline").Value(&p.Tagline),
		),
		huh.NewGroup(
			huh.NewNote().Title("Contact"),
			huh.NewInput().Title("Email").Value(&p.Email),
			huh.NewInput().Title("GitHub").Value(&p.GitHub),
			huh.NewInput().Title("LinkedIn").Value(&p.LinkedIn),
			huh.NewInput().Title("Twitter").Value(&p.Twitter),
		),
		huh.NewGroup(
			huh.NewNote().Title("Servers"),
			huh.NewInput().Title("Content dir").Value(&cfg.ContentDir),
			huh.NewInput().Title("Web addr").Value(&cfg.WebAddr).Validate(ValidateAddr),
			huh.NewInput().Title("SSH addr").Value(&cfg.SSHAddr).Validate(ValidateAddr),
			huh.NewSelect[string]().Title("Log level").Options(levels...).Value(&cfg.LogLevel),
		),
	).WithTheme(formTheme()).WithWidth(64)
}

// formTheme tints the charm theme with the terminal palette.
func formTheme() *huh.Theme {
	accent := theme.Ricing.Accent
	t := huh.ThemeCharm()
	t.FieldSeparator = lipgloss.NewStyle()
	t.Blurred.Title = t.Blurred.Title.Width(14).Foreground(theme.Ricing.Muted)
	t.Focused.Title = t.Focused.Title.Width(14).Foreground(accent).Bold(true)
	t.Focused.Base = t.Focused.Base.BorderForeground(accent)
	return t
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}

// ValidateAddr accepts host:port with a non-empty port.
func ValidateAddr(s string) error {
	_, port, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	if port == "" {
		return errors.New("missing port")
	}
	return nil
}
