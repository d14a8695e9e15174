package core

// Event is one palaeontological event as returned by the API. Every field is
// optional; absent fields are simply left out of the rendered graphic.
type Event struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Date     string `json:"date,omitempty"`
	Host     string `json:"host,omitempty"`
	Location string `json:"location,omitempty"`
}
