package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidator(t *testing.T) {
	rv := newRequestValidator()

	tests := []struct {
		name    string
		payload any
		wantOK  bool
	}{
		{
			name:    "valid marks",
			payload: addMarksRequest{StudentID: "s1", PaperID: "CS301", Marks: 85},
			wantOK:  true,
		},
		{
			name:    "marks out of range",
			payload: addMarksRequest{StudentID: "s1", PaperID: "CS301", Marks: 120},
			wantOK:  false,
		},
		{
			name:    "marks missing student",
			payload: addMarksRequest{PaperID: "CS301", Marks: 85},
			wantOK:  false,
		},
		{
			name: "valid attendance",
			payload: addAttendanceRequest{
				StudentID: "s1", PaperID: "CS301", Date: "2026-08-30", Status: "present",
			},
			wantOK: true,
		},
		{
			name: "attendance bad date",
			payload: addAttendanceRequest{
				StudentID: "s1", PaperID: "CS301", Date: "30-08-2026", Status: "present",
			},
			wantOK: false,
		},
		{
			name: "attendance unknown status",
			payload: addAttendanceRequest{
				StudentID: "s1", PaperID: "CS301", Date: "2026-08-30", Status: "late",
			},
			wantOK: false,
		},
		{
			name:    "note missing content",
			payload: addNoteRequest{PaperID: "CS301", Title: "Week 1"},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := rv.Check(tt.payload)
			if tt.wantOK {
				assert.Empty(t, msg)
			} else {
				assert.NotEmpty(t, msg)
			}
		})
	}
}
