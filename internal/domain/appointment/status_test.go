package appointment

import "testing"

func TestParseStatus_Accepted(t *testing.T) {
	for _, in := range []string{"pending", "confirmed", "completed", "cancelled"} {
		got, err := ParseStatus(in)
		if err != nil {
			t.Fatalf("expected %q to parse, got %v", in, err)
		}
		if string(got) != in {
			t.Fatalf("expected %q, got %q", in, got)
		}
	}
}

func TestParseStatus_Rejected(t *testing.T) {
	for _, in := range []string{"", "PENDING", "done", "scheduled", "cancelled ", "anything"} {
		if _, err := ParseStatus(in); err == nil {
			t.Fatalf("expected %q to be rejected", in)
		}
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("expected initial status pending, got %q", InitialStatus())
	}
}
