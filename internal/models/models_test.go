package models

import "testing"

func TestBillResponsibility(t *testing.T) {
	tests := []struct {
		name string
		bill Bill
		want string
	}{
		{"assigned partner wins", Bill{ResponsiblePartner: PartnerTag2, Shared: true}, PartnerTag2},
		{"shared without assignee", Bill{Shared: true}, SharedTag},
		{"neither is unassigned", Bill{}, UnassignedTag},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bill.Responsibility(); got != tt.want {
				t.Errorf("Responsibility() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOwnershipSlots(t *testing.T) {
	var o Ownership
	for _, slot := range OwnershipSlots {
		if got := o.Slot(slot); got != "" {
			t.Errorf("Fresh ownership slot %s = %q, want empty", slot, got)
		}
		o.SetSlot(slot, PartnerTag1)
		if got := o.Slot(slot); got != PartnerTag1 {
			t.Errorf("Slot %s = %q after SetSlot, want %q", slot, got, PartnerTag1)
		}
	}
	if o.Slot("execute") != "" {
		t.Error("Unknown slot name should read empty")
	}
}

func TestValidPartnerTag(t *testing.T) {
	for tag, want := range map[string]bool{
		PartnerTag1:   true,
		PartnerTag2:   true,
		SharedTag:     false,
		UnassignedTag: false,
		"":            false,
	} {
		if got := ValidPartnerTag(tag); got != want {
			t.Errorf("ValidPartnerTag(%q) = %v, want %v", tag, got, want)
		}
	}
}

func TestSessionHelpers(t *testing.T) {
	s := &CollaborativeSession{
		Conflicts: []Conflict{
			{ID: "conflict-a-ownership"},
			{ID: "conflict-b-amount", Resolution: &Resolution{Kind: ResolveShared}},
		},
	}

	if s.BothResponded() {
		t.Error("BothResponded should be false with no responses")
	}
	s.Partner1Response = &PartnerResponse{PartnerID: PartnerTag1}
	s.Partner2Response = &PartnerResponse{PartnerID: PartnerTag2}
	if !s.BothResponded() {
		t.Error("BothResponded should be true with both responses")
	}

	if c := s.ConflictByID("conflict-a-ownership"); c == nil {
		t.Error("Expected to find conflict by id")
	}
	if c := s.ConflictByID("conflict-c"); c != nil {
		t.Error("Expected nil for unknown conflict id")
	}
	if n := s.UnresolvedConflicts(); n != 1 {
		t.Errorf("UnresolvedConflicts = %d, want 1", n)
	}
}
