package generation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordListPrompt(t *testing.T) {
	t.Parallel()

	prompt := WordListPrompt("Animais")

	assert.Contains(t, prompt, "Animais")
	assert.Contains(t, prompt, `"palavras_pt"`)
	assert.Contains(t, prompt, `"palavras_en"`)
	assert.Contains(t, prompt, "até 5 palavras")
	assert.Contains(t, prompt, "APENAS o JSON")
}

func TestSentencePrompt(t *testing.T) {
	t.Parallel()

	prompt := SentencePrompt([]string{"gato", "cão"}, []string{"cat", "dog"})

	assert.Contains(t, prompt, "gato, cão")
	assert.Contains(t, prompt, "cat, dog")
	assert.Contains(t, prompt, `"frases_pt"`)
	assert.Contains(t, prompt, `"frases_en"`)
	assert.Contains(t, prompt, "NO MAXIMO 3 PALAVRAS")
	assert.Contains(t, prompt, "APENAS o JSON")
}

func TestRoadmapPrompts(t *testing.T) {
	t.Parallel()

	student := StudentRoadmapPrompt("idade 8, iniciante, interesse animais")
	parent := ParentRoadmapPrompt("responsável, 30 minutos por dia")

	for _, prompt := range []string{student, parent} {
		assert.Contains(t, prompt, `"topics"`)
		assert.Contains(t, prompt, "NO MAXIMO 2 palavras")
		assert.Contains(t, prompt, "APENAS o JSON")
	}
	assert.Contains(t, student, "iniciante")
	assert.Contains(t, parent, "mediar o aprendizado")
}

func TestIntroductionPrompt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		fase     string
		fragment string
	}{
		{PhaseWords, "palavras/sinais básicos"},
		{PhaseSentences, "formar frases"},
		{PhaseGames, "jogo da memória"},
	}

	for _, tt := range tests {
		t.Run(tt.fase, func(t *testing.T) {
			prompt, ok := IntroductionPrompt("Animais", tt.fase)
			assert.True(t, ok)
			assert.Contains(t, prompt, "Animais")
			assert.True(t, strings.Contains(prompt, tt.fragment),
				"prompt for %q should mention %q", tt.fase, tt.fragment)
		})
	}

	_, ok := IntroductionPrompt("Animais", "musica")
	assert.False(t, ok, "unknown phase must be rejected")
}
