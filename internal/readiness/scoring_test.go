package readiness

import "testing"

func TestLevelScore(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{"low", 1},
		{"medium", 2},
		{"high", 3},
		{"HIGH", 3},
		{"Medium", 2},
		{"severe", 2},
		{"", 2},
	}
	for _, tt := range tests {
		if got := LevelScore(tt.level); got != tt.want {
			t.Errorf("LevelScore(%q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		likelihood, impact string
		want               int
	}{
		{"low", "low", 1},
		{"high", "high", 9},
		{"medium", "high", 6},
		{"low", "high", 3},
	}
	for _, tt := range tests {
		if got := Score(tt.likelihood, tt.impact); got != tt.want {
			t.Errorf("Score(%q, %q) = %d, want %d", tt.likelihood, tt.impact, got, tt.want)
		}
	}
}

func TestSuggestTreatment(t *testing.T) {
	if got := SuggestTreatment(4, TreatmentThreshold); got != TreatmentReduce {
		t.Errorf("score at threshold = %s, want Reduce", got)
	}
	if got := SuggestTreatment(3, TreatmentThreshold); got != TreatmentAccept {
		t.Errorf("score below threshold = %s, want Accept", got)
	}
	if got := SuggestTreatment(9, TreatmentThreshold); got != TreatmentReduce {
		t.Errorf("max score = %s, want Reduce", got)
	}
}
