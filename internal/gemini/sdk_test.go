package gemini

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/kinosub/kinosub/internal/apperrors"
)

func TestSDKResponseText(t *testing.T) {
	assertMalformed := func(t *testing.T, err error) {
		t.Helper()
		if err == nil {
			t.Fatal("expected an error")
		}
		if kind, _ := apperrors.KindOf(err); kind != apperrors.KindMalformed {
			t.Fatalf("kind = %v, want %v", kind, apperrors.KindMalformed)
		}
	}

	t.Run("NilResponse", func(t *testing.T) {
		_, err := sdkResponseText(nil)
		assertMalformed(t, err)
	})

	t.Run("EmptyCandidates", func(t *testing.T) {
		_, err := sdkResponseText(&genai.GenerateContentResponse{})
		assertMalformed(t, err)
	})

	t.Run("NonTextParts", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{
					genai.Blob{MIMEType: "application/octet-stream", Data: []byte{0x01}},
				}}},
			},
		}
		_, err := sdkResponseText(resp)
		assertMalformed(t, err)
	})

	t.Run("MultiPartText", func(t *testing.T) {
		resp := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{
					genai.Text("one "),
					genai.Text("two"),
				}}},
			},
		}
		text, err := sdkResponseText(resp)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text != "one two" {
			t.Errorf("text = %q, want concatenated parts", text)
		}
	})
}
