package term

import (
	"fmt"
	"strings"
	"time"

	"defterm/internal/vfs"
)

// dateLayout mimics a browser's Date.toString().
const dateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

func (s *Session) run(id CommandID, args []string) {
	switch id {
	case CmdHelp:
		s.help()
	case CmdWhoami:
		s.out.Append(
			styled(Label, s.profile.Name),
			styled(Plain, s.profile.Tagline),
		)
	case CmdLs:
		s.ls(args)
	case CmdCd:
		s.notice("cd")
	case CmdPwd:
		dir := "/home/" + s.profile.User
		if s.cwd != HomeDir {
			dir += s.cwd
		}
		s.out.Append(styled(Plain, dir))
	case CmdCat:
		if len(args) == 0 {
			s.out.Append(styled(Error, "cat: missing file operand"))
			return
		}
		s.notice("cat")
	case CmdAbout:
		s.about()
	case CmdSkills:
		s.notice("skills")
	case CmdProjects:
		s.notice("projects")
	case CmdContact:
		s.contact()
	case CmdClear:
		s.out.Reset()
		s.banner()
	case CmdDate:
		s.out.Append(styled(Plain, s.now().Format(dateLayout)))
	case CmdUptime:
		m, sec := minSec(s.Uptime())
		s.out.Append(styled(Plain, fmt.Sprintf("Portfolio has been running for %dm %ds", m, sec)))
	case CmdNeofetch:
		s.neofetch()
	case CmdTree:
		s.tree(args)
	case CmdEcho:
		if len(args) == 0 {
			s.out.Blank()
			return
		}
		s.out.Append(styled(Plain, strings.Join(args, " ")))
	case CmdHistory:
		s.history()
	case CmdTheme:
		s.theme()
	}
}

// notice renders the placeholder for commands that are still being built.
func (s *Session) notice(cmd string) {
	s.out.Append(styled(Info, cmd+": this command is on development"))
}

func (s *Session) help() {
	s.out.Append(styled(Info, "Available commands:"))
	for _, g := range helpGroups {
		s.out.Append(styled(Heading, g))
		for _, c := range commands {
			if c.Group != g {
				continue
			}
			s.out.Append(styled(Plain, fmt.Sprintf("%-10s - %s", c.Usage, c.Desc)))
		}
	}
	s.out.Append(styled(Hint, "Use Tab for autocompletion, ↑↓ for history"))
}

// resolve looks up the directory argument of ls and tree, printing the
// access error itself. ok is false when the command must stop.
func (s *Session) resolve(cmd string, args []string) (dir *vfs.Node, path string, ok bool) {
	if len(args) > 0 {
		path = args[0]
	}
	dir, err := vfs.Resolve(s.root, path)
	if err != nil {
		// missing entries and files read the same to the user
		s.out.Append(styled(Error, fmt.Sprintf("%s: cannot access '%s': No such file or directory", cmd, path)))
		return nil, path, false
	}
	return dir, path, true
}

func (s *Session) ls(args []string) {
	dir, _, ok := s.resolve("ls", args)
	if !ok {
		return
	}
	entries := dir.Entries()
	if len(entries) == 0 {
		s.out.Append(styled(Hint, "Directory is empty"))
		return
	}
	for _, e := range entries {
		st := Plain
		if e.IsDir() {
			st = Accent
		}
		s.out.Append(styled(st, e.DisplayName()))
	}
}

// tree prints a header and the box-drawn tree. An empty directory prints
// only the header.
func (s *Session) tree(args []string) {
	dir, path, ok := s.resolve("tree", args)
	if !ok {
		return
	}
	header := HomeDir
	if path != "" && path != "." && path != HomeDir {
		header = HomeDir + "/" + path
	}
	s.out.Append(styled(Accent, header))
	for _, tl := range vfs.Tree(dir) {
		st := Success
		if tl.Node.IsDir() {
			st = Accent
		}
		s.out.Append(line(span(Plain, tl.Prefix), span(st, tl.Node.DisplayName())))
	}
}

func (s *Session) history() {
	entries := s.hist.Entries()
	if len(entries) == 0 {
		s.out.Append(styled(Hint, "No commands in history"))
		return
	}
	for i, e := range entries {
		s.out.Append(styled(Plain, fmt.Sprintf("%d  %s", i+1, e)))
	}
}

func minSec(d time.Duration) (int, int) {
	total := int(d / time.Second)
	return total / 60, total % 60
}
