package httpapi

import "testing"

func TestFdrLabel_TrafficLights(t *testing.T) {
	cases := []struct {
		fdr  float64
		want string
	}{
		{1.0, "🟢 1.0"},
		{2.33, "🟢 2.3"},
		{2.5, "🟢 2.5"},
		{3.0, "🟡 3.0"},
		{3.5, "🔴 3.5"},
		{4.67, "🔴 4.7"},
		{0.0, "⚪ 0.0"},
	}

	for _, tc := range cases {
		if got := fdrLabel(tc.fdr); got != tc.want {
			t.Fatalf("fdrLabel(%v) = %q, want %q", tc.fdr, got, tc.want)
		}
	}
}

func TestCostLabel_PoundsFromTenths(t *testing.T) {
	if got := costLabel(105); got != "£10.5m" {
		t.Fatalf("costLabel(105) = %q", got)
	}
	if got := costLabel(0); got != "£0.0m" {
		t.Fatalf("costLabel(0) = %q", got)
	}
}
