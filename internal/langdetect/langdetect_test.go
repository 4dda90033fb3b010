package langdetect

import "testing"

func TestDetect_English(t *testing.T) {
	d := New()
	got := d.Detect("This is a perfectly ordinary English sentence about search engines and blogs.")
	if got != "English" {
		t.Fatalf("expected English, got %q", got)
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	d := New()
	if got := d.Detect("   "); got != Unknown {
		t.Fatalf("expected %q, got %q", Unknown, got)
	}
}

func TestDetect_NilDetector(t *testing.T) {
	var d *Detector
	if got := d.Detect("text"); got != Unknown {
		t.Fatalf("expected %q, got %q", Unknown, got)
	}
}
