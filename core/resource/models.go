package resource

import "github.com/newlifekgl/cellhub/core"

// Material types
const (
	MaterialPDF   = "PDF"
	MaterialVideo = "VIDEO"
	MaterialText  = "TEXT"
)

// Announcement priorities
const (
	PriorityHigh   = "HIGH"
	PriorityNormal = "NORMAL"
)

// Material is a dated study resource shared with cell leaders.
type Material struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Date        string `json:"date"` // release date
	URL         string `json:"url,omitempty"`
}

type NewMaterial struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Type        string `json:"type" validate:"required,oneof=PDF VIDEO TEXT"`
	Date        string `json:"date" validate:"required,calendardate"`
	URL         string `json:"url"`
}

func (nm *NewMaterial) Validate() error {
	nm.Title = core.CleanString(nm.Title)
	nm.Description = core.CleanString(nm.Description)
	return core.Validate.Struct(nm)
}

type Announcement struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Priority string `json:"priority"`
	Author   string `json:"author"`
}

// NewAnnouncement contains information needed to post an Announcement; the
// date is set at posting time and the author comes from the posting user.
type NewAnnouncement struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Priority string `json:"priority" validate:"required,oneof=HIGH NORMAL"`
	Author   string `json:"-"`
}

func (na *NewAnnouncement) Validate() error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	return core.Validate.Struct(na)
}
