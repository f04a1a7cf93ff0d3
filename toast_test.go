package drift

import "testing"

func TestToastStartsHidden(t *testing.T) {
	toast := NewToast()
	if toast.Visible() {
		t.Fatal("new toast should be hidden")
	}
	toast.Update(1) // no-op while hidden
	if toast.Visible() {
		t.Fatal("updating a hidden toast should not show it")
	}
}

func TestToastLifecycle(t *testing.T) {
	toast := NewToast()
	toast.Show("message sent", ToastSuccess, 0.5)

	if !toast.Visible() {
		t.Fatal("toast should be visible after Show")
	}

	// Fade-in completes.
	for i := 0; i < 30; i++ {
		toast.Update(1.0 / 60.0)
	}
	assertNear(t, "alpha after fade-in", toast.alpha, 1)
	if toast.phase != toastHold {
		t.Fatalf("phase = %d, want hold", toast.phase)
	}

	// Hold elapses, fade-out starts and completes.
	for i := 0; i < 90; i++ {
		toast.Update(1.0 / 60.0)
	}
	if toast.Visible() {
		t.Error("toast should be hidden after hold and fade-out")
	}
	assertNear(t, "alpha after fade-out", toast.alpha, 0)
}

func TestToastShowRestarts(t *testing.T) {
	toast := NewToast()
	toast.Show("first", ToastInfo, 0.1)
	for i := 0; i < 30; i++ {
		toast.Update(1.0 / 60.0)
	}

	toast.Show("second", ToastError, 1)
	if toast.message != "second" || toast.severity != ToastError {
		t.Error("Show should replace message and severity")
	}
	if toast.phase != toastFadeIn {
		t.Error("Show should restart the fade-in")
	}

	// The restarted toast still runs a full lifecycle.
	for i := 0; i < 120; i++ {
		toast.Update(1.0 / 60.0)
	}
	if toast.Visible() {
		t.Error("restarted toast should eventually hide")
	}
}

func TestToastSeverityPalette(t *testing.T) {
	for _, sev := range []ToastSeverity{ToastInfo, ToastSuccess, ToastWarning, ToastError} {
		c, ok := toastColors[sev]
		if !ok {
			t.Fatalf("severity %d missing from palette", sev)
		}
		if c.Fg.A == 0 || c.Bg.A == 0 || c.Accent.A == 0 {
			t.Errorf("severity %d has a fully transparent palette entry", sev)
		}
	}
}
