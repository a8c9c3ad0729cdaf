package model

// ── Upstream DTOs ────────────────────────────────────
// These mirror the roles/applications API responses. The web tier never
// stores them; everything is fetched per request and discarded.

// JobRole is a single role as returned by the roles API.
type JobRole struct {
	JobRoleID             int        `json:"jobRoleId"`
	RoleName              string     `json:"roleName"`
	Location              string     `json:"location"`
	ClosingDate           string     `json:"closingDate"`
	Responsibilities      string     `json:"responsibilities"`
	SharepointURL         string     `json:"sharepointUrl"`
	NumberOfOpenPositions int        `json:"numberOfOpenPositions"`
	Capability            Capability `json:"capability"`
	Band                  Band       `json:"band"`
	Status                RoleStatus `json:"status"`
}

type Capability struct {
	CapabilityID   int    `json:"capabilityId"`
	CapabilityName string `json:"capabilityName"`
}

type Band struct {
	BandID   int    `json:"bandId"`
	BandName string `json:"bandName"`
}

type RoleStatus struct {
	StatusID   int    `json:"statusId"`
	StatusName string `json:"statusName"`
}

// JobRoleFilters carries the listing query passed through to the API.
// Zero values mean "not set"; the client only sends populated fields.
type JobRoleFilters struct {
	RoleName    string
	Location    string
	ClosingDate string
	Capability  []string
	Band        []string
	OrderBy     string
	OrderDir    string
	Limit       int
	Offset      int
}

// JobRoleApplication is one applicant row from the admin-only
// applications sub-resource.
type JobRoleApplication struct {
	ApplicationID     int        `json:"applicationId"`
	ApplicationStatus string     `json:"applicationStatus"`
	CVURL             string     `json:"cvUrl,omitempty"`
	Email             string     `json:"email,omitempty"`
	Username          string     `json:"username,omitempty"`
	User              *Applicant `json:"user,omitempty"`
}

// Applicant is the nested user record some API revisions attach to an
// application instead of top-level identity fields.
type Applicant struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// ApplyForRoleResponse is returned by the apply (CV upload) endpoint.
type ApplyForRoleResponse struct {
	ApplicationID     int    `json:"applicationId"`
	UserID            int    `json:"userId"`
	JobRoleID         int    `json:"jobRoleId"`
	ApplicationStatus string `json:"applicationStatus"`
	CVURL             string `json:"cvUrl"`
}

// ── View models ──────────────────────────────────────

// ApplicationPanelItem is an applicant row shaped for the admin panel on
// the role detail page.
type ApplicationPanelItem struct {
	ApplicationID int
	ApplicantName string
	Status        string
	CVURL         string
	CanAssess     bool
}

// Pagination describes the pager rendered under the role listing.
// TotalPages and TotalCount are -1 when the API did not supply a total.
type Pagination struct {
	CurrentPage int
	PrevPage    int
	NextPage    int
	HasPrev     bool
	HasNext     bool
	TotalPages  int
	TotalCount  int
}
