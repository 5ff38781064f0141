package fixture

import "testing"

func TestNormalizeStatus(t *testing.T) {
	t.Parallel()

	if got := NormalizeStatus(""); got != StatusNotStarted {
		t.Fatalf("empty status should default to NS, got %s", got)
	}
	if got := NormalizeStatus(" ft "); got != StatusFullTime {
		t.Fatalf("expected FT, got %s", got)
	}
}

func TestStatusClassification(t *testing.T) {
	t.Parallel()

	live := []string{"1H", "HT", "2H", "ET", "BT", "P", "SUSP", "INT", "LIVE"}
	for _, s := range live {
		if !IsLiveStatus(s) {
			t.Errorf("expected %s to be live", s)
		}
		if IsFinishedStatus(s) || IsCancelledLikeStatus(s) {
			t.Errorf("status %s classified in more than one bucket", s)
		}
	}

	finished := []string{"FT", "AET", "PEN"}
	for _, s := range finished {
		if !IsFinishedStatus(s) {
			t.Errorf("expected %s to be finished", s)
		}
		if IsLiveStatus(s) || IsCancelledLikeStatus(s) {
			t.Errorf("status %s classified in more than one bucket", s)
		}
	}

	cancelled := []string{"PST", "CANC", "ABD", "AWD", "WO"}
	for _, s := range cancelled {
		if !IsCancelledLikeStatus(s) {
			t.Errorf("expected %s to be cancelled-like", s)
		}
	}

	for _, s := range []string{"NS", "TBD"} {
		if IsLiveStatus(s) || IsFinishedStatus(s) || IsCancelledLikeStatus(s) {
			t.Errorf("expected %s to be in no bucket", s)
		}
	}
}
