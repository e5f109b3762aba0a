package language

import "testing"

func TestDetectName(t *testing.T) {
	texts := []string{
		"The quick brown fox jumps over the lazy dog.",
		"It was the best of times, it was the worst of times.",
		"Call me Ishmael. Some years ago, never mind how long precisely.",
	}
	name, ok := DetectName(texts)
	if !ok {
		t.Fatal("expected a confident detection for plain English prose")
	}
	if name != "English" {
		t.Errorf("DetectName = %q, want English", name)
	}
}

func TestDetectNameChinese(t *testing.T) {
	texts := []string{
		"今天天气很好，我们去公园散步吧。",
		"这部电影的字幕已经翻译完成了。",
	}
	name, ok := DetectName(texts)
	if !ok {
		t.Fatal("expected a confident detection for Chinese text")
	}
	if name != "Mandarin" {
		t.Errorf("DetectName = %q, want Mandarin", name)
	}
}

func TestDetectNameEmpty(t *testing.T) {
	if _, ok := DetectName(nil); ok {
		t.Error("expected no detection for empty input")
	}
	if _, ok := DetectName([]string{"", "  "}); ok {
		t.Error("expected no detection for blank input")
	}
}

func TestMatches(t *testing.T) {
	cases := []struct {
		detected, target string
		want             bool
	}{
		{"English", "English", true},
		{"English", "english", true},
		{"Mandarin", "Chinese", true},
		{"Mandarin", "Chinese (Simplified)", true},
		{"Portuguese", "Brazilian Portuguese", true},
		{"English", "Chinese", false},
		{"", "Chinese", false},
		{"English", "", false},
	}
	for _, tc := range cases {
		if got := Matches(tc.detected, tc.target); got != tc.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tc.detected, tc.target, got, tc.want)
		}
	}
}
