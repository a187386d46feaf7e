package term

import "strings"

// CommandID tags a built-in command.
type CommandID int

const (
	CmdHelp CommandID = iota
	CmdWhoami
	CmdLs
	CmdCd
	CmdPwd
	CmdCat
	CmdAbout
	CmdSkills
	CmdProjects
	CmdContact
	CmdClear
	CmdDate
	CmdUptime
	CmdNeofetch
	CmdTree
	CmdEcho
	CmdHistory
	CmdTheme
)

// Help groups, in the order help prints them. Commands without a group are
// accepted but not listed.
const (
	groupNav       = "NAVIGATION & INFO"
	groupPortfolio = "PORTFOLIO"
	groupSystem    = "SYSTEM"
	groupUtils     = "UTILITIES"
)

var helpGroups = []string{groupNav, groupPortfolio, groupSystem, groupUtils}

// Command describes one entry of the command table.
type Command struct {
	ID    CommandID `json:"-"`
	Name  string    `json:"name"`
	Usage string    `json:"usage"`
	Desc  string    `json:"description"`
	Group string    `json:"group,omitempty"`
}

// commands is the closed command table in registration order. Autocomplete
// lists matches in this order.
var commands = []Command{
	{ID: CmdHelp, Name: "help", Usage: "help", Desc: "Show this help message", Group: groupNav},
	{ID: CmdWhoami, Name: "whoami", Usage: "whoami", Desc: "Display current user", Group: groupNav},
	{ID: CmdLs, Name: "ls", Usage: "ls [dir]", Desc: "List directory contents", Group: groupNav},
	{ID: CmdCd, Name: "cd", Usage: "cd [dir]", Desc: "Change directory"},
	{ID: CmdPwd, Name: "pwd", Usage: "pwd", Desc: "Show current directory", Group: groupNav},
	{ID: CmdCat, Name: "cat", Usage: "cat [file]", Desc: "Display file contents", Group: groupUtils},
	{ID: CmdAbout, Name: "about", Usage: "about", Desc: "About me", Group: groupPortfolio},
	{ID: CmdSkills, Name: "skills", Usage: "skills", Desc: "Technical skills", Group: groupPortfolio},
	{ID: CmdProjects, Name: "projects", Usage: "projects", Desc: "My projects", Group: groupPortfolio},
	{ID: CmdContact, Name: "contact", Usage: "contact", Desc: "Contact information", Group: groupPortfolio},
	{ID: CmdClear, Name: "clear", Usage: "clear", Desc: "Clear terminal screen", Group: groupNav},
	{ID: CmdDate, Name: "date", Usage: "date", Desc: "Show current date", Group: groupSystem},
	{ID: CmdUptime, Name: "uptime", Usage: "uptime", Desc: "Show system uptime", Group: groupSystem},
	{ID: CmdNeofetch, Name: "neofetch", Usage: "neofetch", Desc: "Display system info", Group: groupSystem},
	{ID: CmdTree, Name: "tree", Usage: "tree [dir]", Desc: "Show directory tree", Group: groupSystem},
	{ID: CmdEcho, Name: "echo", Usage: "echo [text]", Desc: "Print text", Group: groupUtils},
	{ID: CmdHistory, Name: "history", Usage: "history", Desc: "Show command history", Group: groupNav},
	{ID: CmdTheme, Name: "theme", Usage: "theme", Desc: "Show theme info", Group: groupSystem},
}

var commandIndex = func() map[string]CommandID {
	m := make(map[string]CommandID, len(commands))
	for _, c := range commands {
		m[c.Name] = c.ID
	}
	return m
}()

// Lookup finds a command by exact, case-sensitive name.
func Lookup(name string) (CommandID, bool) {
	id, ok := commandIndex[name]
	return id, ok
}

// Commands returns a copy of the command table in registration order.
func Commands() []Command {
	return append([]Command(nil), commands...)
}

// Matches returns the command names starting with prefix, in registration
// order. An empty prefix matches everything.
func Matches(prefix string) []string {
	var out []string
	for _, c := range commands {
		if strings.HasPrefix(c.Name, prefix) {
			out = append(out, c.Name)
		}
	}
	return out
}

// parse splits a trimmed, non-empty input line into a command name and its
// arguments. Runs of whitespace separate fields.
func parse(input string) (string, []string) {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
