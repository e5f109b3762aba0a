package srt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// OutputPath builds the default output path for a translated subtitle:
// <base>.<language>.srt next to the input, avoiding collisions with a
// numbered suffix and finally a UUID suffix.
func OutputPath(inputPath, targetLang string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(inputPath, ext)
	lang := strings.ReplaceAll(strings.TrimSpace(targetLang), " ", "_")

	primary := fmt.Sprintf("%s.%s%s", base, lang, ext)
	if _, err := os.Stat(primary); os.IsNotExist(err) {
		return primary
	}

	for i := 1; i <= 9; i++ {
		candidate := fmt.Sprintf("%s.%s_%d%s", base, lang, i, ext)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}

	return fmt.Sprintf("%s.%s_%s%s", base, lang, uuid.NewString()[:8], ext)
}
