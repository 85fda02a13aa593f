package service

import "testing"

func TestParseDecision(t *testing.T) {
	cases := []struct {
		in   string
		want Decision
	}{
		{"Hire", DecisionHire},
		{"hire", DecisionHire},
		{"Strong Hire", DecisionHire},
		{"Don't Hire", DecisionNoHire},
		{"dont hire", DecisionNoHire},
		{"No Hire", DecisionNoHire},
		{"reject", DecisionNoHire},
		{"Maybe", DecisionMaybe},
		{"", DecisionMaybe},
		{"something unexpected", DecisionMaybe},
		{"  Hire  ", DecisionHire},
	}
	for _, tc := range cases {
		if got := ParseDecision(tc.in); got != tc.want {
			t.Errorf("ParseDecision(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBannerTreatments(t *testing.T) {
	if b := Banner(DecisionHire); b.Color != "green" || b.Decision != "Hire" {
		t.Errorf("hire banner = %+v", b)
	}
	if b := Banner(DecisionNoHire); b.Color != "red" {
		t.Errorf("no-hire banner = %+v", b)
	}
	if b := Banner(DecisionMaybe); b.Color != "amber" {
		t.Errorf("maybe banner = %+v", b)
	}
}
