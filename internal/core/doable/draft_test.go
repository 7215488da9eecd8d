package doable

import (
	"testing"

	"github.com/example/wam/internal/models"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		name        string
		draft       Draft
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "email without case",
			draft:       Draft{Title: "Reply", Type: "email"},
			wantAllowed: true,
		},
		{
			name:        "task without case is disabled",
			draft:       Draft{Title: "Set up the case", Type: "task"},
			wantAllowed: false,
			wantReason:  "case ID is required for task doables",
		},
		{
			name:        "task with case is enabled",
			draft:       Draft{Title: "Set up the case", Type: "task", CaseID: "case_4"},
			wantAllowed: true,
		},
		{
			name:        "whitespace case does not count",
			draft:       Draft{Title: "Set up the case", Type: "task", CaseID: "   "},
			wantAllowed: false,
			wantReason:  "case ID is required for task doables",
		},
		{
			name:        "missing title",
			draft:       Draft{Type: "email"},
			wantAllowed: false,
			wantReason:  "title is required",
		},
		{
			name:        "missing type",
			draft:       Draft{Title: "Reply"},
			wantAllowed: false,
			wantReason:  "type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.draft.CanSubmit()
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		draft       Draft
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "complete email",
			draft:       Draft{Title: "Reply", Type: "email", Priority: "high"},
			wantAllowed: true,
		},
		{
			name:        "priority required for email too",
			draft:       Draft{Title: "Reply", Type: "email"},
			wantAllowed: false,
			wantReason:  "priority is required",
		},
		{
			name:        "unknown type",
			draft:       Draft{Title: "Reply", Type: "memo", Priority: "low"},
			wantAllowed: false,
			wantReason:  `invalid type "memo" (must be email or task)`,
		},
		{
			name:        "unknown priority",
			draft:       Draft{Title: "Reply", Type: "email", Priority: "urgent"},
			wantAllowed: false,
			wantReason:  `invalid priority "urgent" (must be high, medium or low)`,
		},
		{
			name:        "case-insensitive enums",
			draft:       Draft{Title: "File", Type: "Task", Priority: "LOW", CaseID: "case_1"},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.draft.Validate()
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if !tt.wantAllowed && result.Reason != tt.wantReason {
				t.Errorf("Reason = %q, want %q", result.Reason, tt.wantReason)
			}
		})
	}
}

func TestPayloadCaseAbsentVsPresent(t *testing.T) {
	p := Draft{Title: " Reply ", Type: "email", Priority: "medium"}.Payload()
	if p.CaseID != nil {
		t.Errorf("CaseID = %q, want nil", *p.CaseID)
	}
	if p.DoableTitle != "Reply" || p.DoableType != models.DoableTypeEmail || p.DoablePriority != models.PriorityMedium {
		t.Errorf("Payload() = %+v", p)
	}

	p = Draft{Title: "File", Type: "task", Priority: "low", CaseID: "case_2"}.Payload()
	if p.CaseID == nil || *p.CaseID != "case_2" {
		t.Errorf("CaseID = %v, want case_2", p.CaseID)
	}
}

func TestReset(t *testing.T) {
	d := Draft{Title: "x", Type: "task", Priority: "low", CaseID: "c"}
	d.Reset()
	if d != (Draft{}) {
		t.Errorf("Reset() left %+v", d)
	}
}
