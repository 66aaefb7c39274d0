// pkg/logpath/resolver.go

package logpath

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/appname"
	"github.com/CodeMonkeyCybersecurity/logdir/pkg/xdg"
	"go.uber.org/zap"
)

// LogFileName is the only file name ever produced.
const LogFileName = "log.log"

// AppNameProvider supplies an application name when the caller has none.
type AppNameProvider interface {
	AppName() string
}

// Resolver finds the log file location. The zero value resolves against the
// running process: runtime.GOOS, os.Getenv, os.UserHomeDir and the platform
// write probe.
type Resolver struct {
	GOOS     string
	Getenv   func(string) string
	HomeDir  func() (string, error)
	Writable func(dir string) bool
	Names    AppNameProvider
	Profiles map[Platform][]Template
	DirPerm  os.FileMode
	Log      *zap.Logger
}

// ResolveLogPath resolves with the process environment, naming the
// application after the running binary when appName is empty.
func ResolveLogPath(appName, dateSegment string) (string, bool, error) {
	r := &Resolver{Names: appname.Executable()}
	return r.ResolveLogPath(appName, dateSegment)
}

// ResolveLogPath returns <dir>/log.log for the first writable candidate.
// ok is false when no app name is available, the app name or date is not a
// single path segment, the platform is unknown or every candidate is
// exhausted. err is set only for a structural conflict
// or a failed directory creation; path is then empty.
func (r *Resolver) ResolveLogPath(appName, dateSegment string) (path string, ok bool, err error) {
	res, err := r.Probe(appName, dateSegment)
	if err != nil {
		return "", false, err
	}
	return res.Path, res.OK(), nil
}

// Candidates builds the candidate list without touching the filesystem.
func (r *Resolver) Candidates(appName, dateSegment string) ([]Candidate, error) {
	res, reason := r.plan(appName, dateSegment)
	switch reason {
	case ReasonNoAppName:
		return nil, ErrNoAppName
	case ReasonInvalidSegment:
		return nil, ErrInvalidSegment
	case ReasonUnsupportedPlatform:
		return nil, ErrUnsupportedPlatform
	}
	return res.Candidates, nil
}

// Probe runs the ordered resolution and records the state of every
// candidate. Candidates after the selected one stay StateUntried.
func (r *Resolver) Probe(appName, dateSegment string) (Resolution, error) {
	log := r.logger()

	res, reason := r.plan(appName, dateSegment)
	if reason != ReasonNone {
		res.Reason = reason
		log.Debug("Log path resolution skipped",
			zap.String("reason", reason.String()),
			zap.String("platform", res.Platform.String()))
		return res, nil
	}

	perm := r.DirPerm
	if perm == 0 {
		perm = xdg.DirPermStandard
	}
	writable := r.Writable
	if writable == nil {
		writable = isWritable
	}

	for i := range res.Candidates {
		c := &res.Candidates[i]

		if c.Dir == "" {
			c.State = StateUnavailable
			log.Debug("Log path candidate unavailable",
				zap.Int("priority", c.Priority),
				zap.String("base", c.Template.Base.String()),
				zap.String("value", c.Base))
			continue
		}

		if err := makeDirLevels(c.Dir, perm); err != nil {
			log.Debug("Log path candidate blocked",
				zap.Int("priority", c.Priority),
				zap.String("dir", c.Dir),
				zap.Error(err))
			return res, err
		}

		if !writable(c.Dir) {
			c.State = StateUnwritable
			log.Debug("Log path candidate not writable",
				zap.Int("priority", c.Priority),
				zap.String("dir", c.Dir))
			continue
		}

		c.State = StateSelected
		res.Selected = i
		res.Path = filepath.Join(c.Dir, LogFileName)
		log.Debug("Log path resolved",
			zap.Int("priority", c.Priority),
			zap.String("path", res.Path))
		return res, nil
	}

	res.Reason = ReasonExhausted
	log.Debug("No writable log path candidate",
		zap.String("platform", res.Platform.String()),
		zap.Int("candidates", len(res.Candidates)))
	return res, nil
}

func (r *Resolver) plan(appName, dateSegment string) (Resolution, Reason) {
	res := Resolution{
		Platform: PlatformFor(r.goos()),
		Date:     dateSegment,
		Selected: -1,
	}

	name := strings.TrimSpace(appName)
	if name == "" && r.Names != nil {
		name = strings.TrimSpace(r.Names.AppName())
	}
	if name == "" {
		return res, ReasonNoAppName
	}
	res.AppName = name
	if !IsPathSegment(name) || (dateSegment != "" && !IsPathSegment(dateSegment)) {
		return res, ReasonInvalidSegment
	}

	templates, ok := r.profiles()[res.Platform]
	if !ok || len(templates) == 0 {
		return res, ReasonUnsupportedPlatform
	}

	getenv := r.getenv()
	userHome := r.HomeDir
	if userHome == nil {
		userHome = os.UserHomeDir
	}
	home := xdg.HomeDirFrom(userHome, getenv)

	res.Candidates = make([]Candidate, 0, len(templates))
	for i, t := range templates {
		base := home
		if !t.Base.IsHome() {
			base = getenv(t.Base.Env)
		}
		c := Candidate{Priority: i + 1, Template: t, Base: base}
		if base != "" && filepath.IsAbs(base) {
			c.Dir = t.Render(base, name, dateSegment)
		}
		res.Candidates = append(res.Candidates, c)
	}
	return res, ReasonNone
}

// IsPathSegment reports whether s can be used as one directory name.
func IsPathSegment(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, "/\\\x00")
}

func (r *Resolver) goos() string {
	if r.GOOS != "" {
		return r.GOOS
	}
	return runtime.GOOS
}

func (r *Resolver) getenv() func(string) string {
	if r.Getenv != nil {
		return r.Getenv
	}
	return os.Getenv
}

func (r *Resolver) profiles() map[Platform][]Template {
	if r.Profiles != nil {
		return r.Profiles
	}
	return defaultProfiles
}

func (r *Resolver) logger() *zap.Logger {
	if r.Log != nil {
		return r.Log
	}
	return zap.L()
}
