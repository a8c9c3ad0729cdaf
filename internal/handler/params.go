package handler

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/yourusername/careers-web/internal/model"
)

// allowedOrderBy is the fixed set of sortable columns. Anything else in
// the query is ignored, never an error.
var allowedOrderBy = map[string]bool{
	"roleName":    true,
	"location":    true,
	"capability":  true,
	"band":        true,
	"closingDate": true,
}

// queryString returns a trimmed single-value parameter, or "" when the
// parameter is absent or blank.
func queryString(q url.Values, key string) string {
	return strings.TrimSpace(q.Get(key))
}

// queryStringList gathers a repeatable parameter, trimming entries and
// dropping blank ones. All-blank input collapses to nil.
func queryStringList(q url.Values, key string) []string {
	var out []string
	for _, v := range q[key] {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// parseRoleFilters builds the listing filters from raw query values.
// Invalid input degrades to "no filter" rather than failing the request.
func parseRoleFilters(q url.Values) model.JobRoleFilters {
	f := model.JobRoleFilters{
		RoleName:    queryString(q, "roleName"),
		Location:    queryString(q, "location"),
		ClosingDate: queryString(q, "closingDate"),
		Capability:  queryStringList(q, "capability"),
		Band:        queryStringList(q, "band"),
	}

	if orderBy := queryString(q, "orderBy"); allowedOrderBy[orderBy] {
		f.OrderBy = orderBy
	}
	if orderDir := queryString(q, "orderDir"); orderDir == "asc" || orderDir == "desc" {
		f.OrderDir = orderDir
	}

	return f
}

// parsePage reads the page number, defaulting anything invalid or
// below 1 to the first page.
func parsePage(q url.Values) int {
	page, err := strconv.Atoi(queryString(q, "page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// baseQueryString rebuilds the active filters (excluding sort and page)
// as a query string, so sort and page links can preserve them.
func baseQueryString(f model.JobRoleFilters) string {
	params := url.Values{}
	if f.RoleName != "" {
		params.Set("roleName", f.RoleName)
	}
	if f.Location != "" {
		params.Set("location", f.Location)
	}
	if f.ClosingDate != "" {
		params.Set("closingDate", f.ClosingDate)
	}
	for _, capability := range f.Capability {
		params.Add("capability", capability)
	}
	for _, band := range f.Band {
		params.Add("band", band)
	}
	return params.Encode()
}
