// pkg/logpath/template.go

package logpath

import (
	"path/filepath"
	"strings"

	"github.com/CodeMonkeyCybersecurity/logdir/pkg/xdg"
)

// Base names where a candidate directory is rooted. An empty Env means the
// user's home directory.
type Base struct {
	Env string
}

// HomeBase roots a template at the user's home directory.
var HomeBase = Base{}

// EnvBase roots a template at the value of an environment variable.
func EnvBase(name string) Base {
	return Base{Env: name}
}

func (b Base) IsHome() bool {
	return b.Env == ""
}

func (b Base) String() string {
	if b.IsHome() {
		return "$" + xdg.EnvHome
	}
	return "$" + b.Env
}

type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentAppName
	SegmentDate
)

// Segment is one path element of a template.
type Segment struct {
	Kind  SegmentKind
	Value string
}

var (
	AppNameSegment = Segment{Kind: SegmentAppName}
	DateSegment    = Segment{Kind: SegmentDate}
)

func Literal(value string) Segment {
	return Segment{Kind: SegmentLiteral, Value: value}
}

// Template is one candidate directory: a base followed by ordered segments.
type Template struct {
	Base     Base
	Segments []Segment
}

// Render joins the template under base. An empty date drops the date segment.
func (t Template) Render(base, appName, date string) string {
	parts := make([]string, 0, len(t.Segments)+1)
	parts = append(parts, base)
	for _, seg := range t.Segments {
		switch seg.Kind {
		case SegmentAppName:
			parts = append(parts, appName)
		case SegmentDate:
			if date != "" {
				parts = append(parts, date)
			}
		default:
			parts = append(parts, seg.Value)
		}
	}
	return filepath.Join(parts...)
}

// Pattern renders the template with placeholders, e.g.
// "$XDG_CONFIG_HOME/<app>/logs[/<date>]".
func (t Template) Pattern() string {
	var sb strings.Builder
	sb.WriteString(t.Base.String())
	for _, seg := range t.Segments {
		switch seg.Kind {
		case SegmentAppName:
			sb.WriteString("/<app>")
		case SegmentDate:
			sb.WriteString("[/<date>]")
		default:
			sb.WriteString("/" + seg.Value)
		}
	}
	return sb.String()
}

var defaultProfiles = map[Platform][]Template{
	Linux: {
		{Base: EnvBase(xdg.EnvConfigHome), Segments: []Segment{AppNameSegment, Literal("logs"), DateSegment}},
		{Base: HomeBase, Segments: []Segment{Literal(".config"), AppNameSegment, Literal("logs"), DateSegment}},
		{Base: EnvBase(xdg.EnvDataHome), Segments: []Segment{AppNameSegment, Literal("logs"), DateSegment}},
		{Base: HomeBase, Segments: []Segment{Literal(".local"), Literal("share"), AppNameSegment, Literal("logs"), DateSegment}},
	},
	MacOS: {
		{Base: HomeBase, Segments: []Segment{Literal("Library"), Literal("Logs"), AppNameSegment, DateSegment}},
		{Base: HomeBase, Segments: []Segment{Literal("Library"), Literal("Application Support"), AppNameSegment, Literal("logs"), DateSegment}},
	},
	Windows: {
		{Base: EnvBase(xdg.EnvAppData), Segments: []Segment{AppNameSegment, Literal("logs"), DateSegment}},
		{Base: HomeBase, Segments: []Segment{Literal("AppData"), Literal("Roaming"), AppNameSegment, Literal("logs"), DateSegment}},
	},
}

// Profile returns a copy of the default templates for p, in priority order.
// Unknown platforms have no profile.
func Profile(p Platform) []Template {
	return append([]Template(nil), defaultProfiles[p]...)
}
