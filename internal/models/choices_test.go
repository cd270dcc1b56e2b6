package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChoiceSets(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
		check func() bool
	}{
		{"site type job_board", true, SiteTypeJobBoard.Valid},
		{"site type freelance", true, SiteTypeFreelance.Valid},
		{"site type unknown", false, SiteType("newsletter").Valid},
		{"site type empty", false, SiteType("").Valid},
		{"country US", true, CountryUS.Valid},
		{"country OTHER", true, CountryOther.Valid},
		{"country lowercase", false, Country("us").Valid},
		{"language en", true, LanguageEN.Valid},
		{"language unknown", false, Language("jp").Valid},
		{"work area general", true, WorkAreaGeneral.Valid},
		{"work area unknown", false, WorkArea("astrology").Valid},
		{"status applied", true, StatusApplied.Valid},
		{"status archived", true, StatusArchived.Valid},
		{"status unknown", false, ApplicationStatus("ghosted").Valid},
		{"event interview_scheduled", true, EventInterviewScheduled.Valid},
		{"event other", true, EventOther.Valid},
		{"event unknown", false, EventType("carrier_pigeon").Valid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.check())
		})
	}
}
