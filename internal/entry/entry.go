package entry

import (
	"time"

	"github.com/gorewood/dayone/internal/template"
)

// Version is reported in the Software Agent of every entry.
const Version = "0.1.0"

// DefaultActivity is the activity type of new entries.
const DefaultActivity = "Stationary"

// creatorAgent is the device, host and OS agent written into every entry.
const creatorAgent = "DayOne Go"

// TimestampLayout formats creation and generation dates. The Z is literal.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Notifier receives debug progress notices. output.Printer implements it.
type Notifier interface {
	Debugf(format string, args ...any)
}

// TemplateSource loads templates by name. template.Resolver implements it.
type TemplateSource interface {
	Load(name string) (*template.Template, error)
}

// Options configures a new Entry. The zero value is usable: a generated
// id, the UTC zone, the real clock, the process working directory and the
// built-in templates.
type Options struct {
	// Debug enables progress notices on every mutating operation.
	Debug bool
	// ID is a caller-chosen 32 digit hex identifier. Empty generates one.
	ID string
	// TimeZone is the zone timestamps are read in and whose name is recorded.
	TimeZone *time.Location
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
	// WorkDir is the base of the default entries directory.
	// Empty means the process working directory at save time.
	WorkDir string
	// LineEnding replaces line breaks in entry text. Defaults to the
	// platform line ending.
	LineEnding string
	// Templates supplies the body and location templates.
	Templates TemplateSource
	// Notifier receives debug notices. Ignored unless Debug is set.
	Notifier Notifier
}

// Creator describes the software that generated an entry, in file order.
type Creator struct {
	DeviceAgent    string `json:"device_agent"`
	GenerationDate string `json:"generation_date"`
	HostName       string `json:"host_name"`
	OSAgent        string `json:"os_agent"`
	SoftwareAgent  string `json:"software_agent"`
}

// Entry is one journal record.
type Entry struct {
	id       string
	created  time.Time
	activity string
	zone     *time.Location
	creator  Creator
	text     string
	location *Location
	debug    bool

	workDir    string
	lineEnding string
	templates  TemplateSource
	notifier   Notifier
}

// New creates an Entry. It fails with a *ValidationError when opts.ID is
// set but is not 32 hex digits.
func New(opts Options) (*Entry, error) {
	var (
		id  string
		err error
	)
	if opts.ID == "" {
		id, err = generateID()
	} else {
		id, err = normalizeID(opts.ID)
	}
	if err != nil {
		return nil, err
	}

	zone := opts.TimeZone
	if zone == nil {
		zone = time.UTC
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	lineEnding := opts.LineEnding
	if lineEnding == "" {
		lineEnding = platformLineEnding()
	}
	templates := opts.Templates
	if templates == nil {
		templates = template.NewResolver("", "")
	}

	created := now().In(zone)
	e := &Entry{
		id:       id,
		created:  created,
		activity: DefaultActivity,
		zone:     zone,
		creator: Creator{
			DeviceAgent:    creatorAgent,
			GenerationDate: created.Format(TimestampLayout),
			HostName:       creatorAgent,
			OSAgent:        creatorAgent,
			SoftwareAgent:  creatorAgent + " " + Version,
		},
		debug:      opts.Debug,
		workDir:    opts.WorkDir,
		lineEnding: lineEnding,
		templates:  templates,
		notifier:   opts.Notifier,
	}

	e.notify("Entry created successfully")
	return e, nil
}

// SetText replaces the entry text. Line breaks are normalized to the
// configured line ending and markup characters are escaped.
func (e *Entry) SetText(text string) {
	e.text = escapeText(normalizeLineBreaks(text, e.lineEnding))
	e.notify("Entry text added successfully")
}

// SetTime sets the creation date from a Unix timestamp in seconds.
func (e *Entry) SetTime(unix int64) {
	e.created = time.Unix(unix, 0).In(e.zone)
	e.notify("Entry time set successfully")
}

// SetLocation replaces the location. An incomplete location is rejected
// with a *ValidationError and the previous location is kept.
func (e *Entry) SetLocation(loc Location) error {
	if err := loc.Validate(); err != nil {
		return err
	}
	e.location = &loc
	e.notify("Location set successfully")
	return nil
}

// ID returns the 32 digit uppercase identifier.
func (e *Entry) ID() string {
	return e.id
}

// CreationDate returns the creation timestamp as written to the file.
func (e *Entry) CreationDate() string {
	return e.created.Format(TimestampLayout)
}

// Activity returns the activity type.
func (e *Entry) Activity() string {
	return e.activity
}

// TimeZone returns the name of the zone captured at construction.
func (e *Entry) TimeZone() string {
	return e.zone.String()
}

// Creator returns the generator metadata.
func (e *Entry) Creator() Creator {
	return e.creator
}

// Text returns the normalized, escaped entry text.
func (e *Entry) Text() string {
	return e.text
}

// Location returns the location and whether one is set.
func (e *Entry) Location() (Location, bool) {
	if e.location == nil {
		return Location{}, false
	}
	return *e.location, true
}

// Debug reports whether progress notices are enabled.
func (e *Entry) Debug() bool {
	return e.debug
}

func (e *Entry) notify(msg string) {
	if e.debug && e.notifier != nil {
		e.notifier.Debugf("%s", msg)
	}
}
