package api

// VersionResponse is one rendered version link.
type VersionResponse struct {
	Label string `json:"label"`
	Href  string `json:"href"`
	HTML  string `json:"html"`
}

// VersionListResponse is the response for GET /api/v1/versions. Versions
// always starts with the current link; Error is set when the listing could
// not be fetched and the list holds that link alone.
type VersionListResponse struct {
	Versions []VersionResponse `json:"versions"`
	Error    *ErrorResponse    `json:"error,omitempty"`
}

// EntryResponse is one raw contents listing item.
type EntryResponse struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// EntryListResponse is the response for GET /api/v1/entries.
type EntryListResponse struct {
	Entries []EntryResponse `json:"entries"`
}
