package spirv

import (
	"tlog.app/go/tlog"
)

// BuildLogger collects soft failures met while building a module.
// Missing and TBD features are reported once per distinct name.
type BuildLogger struct {
	span tlog.Span

	seen    map[string]struct{}
	tbd     []string
	missing []string
}

// NewBuildLogger creates a logger printing through span.
// A zero span only records messages.
func NewBuildLogger(span tlog.Span) *BuildLogger {
	return &BuildLogger{
		span: span,
		seen: make(map[string]struct{}),
	}
}

func (l *BuildLogger) once(kind, feature string) bool {
	key := kind + "\x00" + feature
	if _, ok := l.seen[key]; ok {
		return false
	}

	l.seen[key] = struct{}{}

	return true
}

// TBD reports a feature that is planned but not implemented.
func (l *BuildLogger) TBD(feature string) {
	if !l.once("tbd", feature) {
		return
	}

	l.tbd = append(l.tbd, feature)
	l.span.Printw("tbd functionality", "feature", feature)
}

// Missing reports a feature the builder does not model.
// The build continues with a default result.
func (l *BuildLogger) Missing(feature string) {
	if !l.once("missing", feature) {
		return
	}

	l.missing = append(l.missing, feature)
	l.span.Printw("missing functionality", "feature", feature)
}

// Messages returns everything recorded, one line per entry.
func (l *BuildLogger) Messages() []string {
	var res []string

	for _, f := range l.tbd {
		res = append(res, "TBD functionality: "+f)
	}
	for _, f := range l.missing {
		res = append(res, "Missing functionality: "+f)
	}

	return res
}
