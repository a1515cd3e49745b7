package models

import (
	"time"
)

// GroupAll is the synthetic group holding every tracked person.
const GroupAll = "all"

// TrackedMeeting is an event that counted toward a person's total.
type TrackedMeeting struct {
	Start   string  `json:"start"`
	Summary string  `json:"summary"`
	Hours   float64 `json:"hours"`
}

// PersonResult - meeting hours for one roster entry
type PersonResult struct {
	Person          string  `json:"person" bson:"person"`
	Role            string  `json:"role,omitempty" bson:"role,omitempty"`
	TotalHours      float64 `json:"totalHours" bson:"totalHours"`
	Tracked         bool    `json:"tracked" bson:"tracked"` // entered the statistics pool
	Unavailable     bool    `json:"unavailable" bson:"unavailable"`
	Error           string  `json:"error,omitempty" bson:"error,omitempty"`
	EventCount      int     `json:"eventCount" bson:"eventCount"`
	MalformedEvents int     `json:"malformedEvents,omitempty" bson:"malformedEvents,omitempty"`
	Truncated       bool    `json:"truncated,omitempty" bson:"truncated,omitempty"`

	// Per-event decisions are never stored.
	Meetings []TrackedMeeting `json:"meetings,omitempty" bson:"-"`
}

// GroupStats - summary statistics over the tracked people of one group
type GroupStats struct {
	Key    string  `json:"key" bson:"key"`
	Count  int     `json:"count" bson:"count"`
	Mean   float64 `json:"mean" bson:"mean"`
	Median float64 `json:"median" bson:"median"`
}

// CohortReport - complete result of one report run
type CohortReport struct {
	ID          string         `json:"id" bson:"_id"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
	WindowStart time.Time      `json:"windowStart" bson:"windowStart"`
	WindowEnd   time.Time      `json:"windowEnd" bson:"windowEnd"`
	Source      string         `json:"source" bson:"source"`
	Threshold   float64        `json:"threshold" bson:"threshold"`
	People      []PersonResult `json:"people" bson:"people"`
	Groups      []GroupStats   `json:"groups" bson:"groups"` // "all" first, then roles in roster order
}

// Group returns the statistics for key, if that group had any members.
func (r *CohortReport) Group(key string) (GroupStats, bool) {
	for _, g := range r.Groups {
		if g.Key == key {
			return g, true
		}
	}
	return GroupStats{}, false
}

// RoleTrendPoint - average of stored group statistics for one group across reports
type RoleTrendPoint struct {
	Key        string  `json:"key" bson:"_id"`
	Reports    int     `json:"reports" bson:"reports"`
	AvgMean    float64 `json:"avgMean" bson:"avgMean"`
	AvgMedian  float64 `json:"avgMedian" bson:"avgMedian"`
	AvgTracked float64 `json:"avgTracked" bson:"avgTracked"`
}

// RunReportRequest is the payload for running a report through the API
type RunReportRequest struct {
	Start  string        `json:"start" binding:"required"` // YYYY-MM-DD
	End    string        `json:"end" binding:"required"`
	Roster []RosterEntry `json:"roster" binding:"required,min=1,dive"`
}

// RoleStatisticsResponse - stored-report trends for the dashboard
type RoleStatisticsResponse struct {
	Roles  []RoleTrendPoint `json:"roles"`
	Period string           `json:"period"`
}

// PersonSearchResponse is the response for fuzzy person search within a report
type PersonSearchResponse struct {
	Query   string         `json:"query"`
	Results []PersonResult `json:"results"`
}
