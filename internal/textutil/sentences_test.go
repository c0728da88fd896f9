package textutil

import (
	"reflect"
	"testing"
)

func TestSentences_Empty(t *testing.T) {
	if got := Sentences(""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := Sentences("   \t\n "); got != nil {
		t.Errorf("expected nil for whitespace-only input, got %v", got)
	}
}

func TestSentences_NoTerminalPunctuation(t *testing.T) {
	got := Sentences("  just one fragment without punctuation  ")
	want := []string{"just one fragment without punctuation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSentences_Split(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "periods",
			text: "First sentence. Second sentence. Third sentence.",
			want: []string{"First sentence.", "Second sentence.", "Third sentence."},
		},
		{
			name: "mixed terminators",
			text: "Really? Yes! Good.",
			want: []string{"Really?", "Yes!", "Good."},
		},
		{
			name: "no split without following whitespace",
			text: "Version 1.2 shipped. It works",
			want: []string{"Version 1.2 shipped.", "It works"},
		},
		{
			name: "trailing punctuation kept on last sentence",
			text: "One. Two!",
			want: []string{"One.", "Two!"},
		},
		{
			name: "newlines count as whitespace",
			text: "One.\nTwo.\n",
			want: []string{"One.", "Two."},
		},
		{
			name: "terminator run stays together",
			text: "What?! Next",
			want: []string{"What?!", "Next"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sentences(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Sentences(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSentences_Deterministic(t *testing.T) {
	text := "Alpha beta. Gamma delta! Epsilon?"
	first := Sentences(text)
	for i := 0; i < 5; i++ {
		if got := Sentences(text); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}
