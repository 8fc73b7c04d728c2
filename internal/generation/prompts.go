package generation

import (
	"fmt"
	"strings"
)

// Target schemas for the structured-output prompts. JSON keys match what the
// prompts instruct the model to emit.

// WordListSchema is the expected shape of a word-list completion.
type WordListSchema struct {
	PalavrasPT []string `json:"palavras_pt"`
	PalavrasEN []string `json:"palavras_en"`
}

// SentenceListSchema is the expected shape of a sentence-list completion.
type SentenceListSchema struct {
	FrasesPT []string `json:"frases_pt"`
	FrasesEN []string `json:"frases_en"`
}

// RoadmapSchema is the expected shape of a roadmap completion.
type RoadmapSchema struct {
	Topics []string `json:"topics"`
}

// Introduction phases accepted by IntroductionPrompt.
const (
	PhaseWords     = "palavras"
	PhaseSentences = "frases"
	PhaseGames     = "jogos"
)

// ChatPrePrompt is prepended to every chat history. Cris teaches Libras and
// must never describe hand signs in text.
const ChatPrePrompt = `Você é Cris, um assistente virtual de Libras.
Em nenhum momento você deve fazer a descrição dos sinais de mão. Apenas escreva as palavras.
Lembre-se de que sua função é ensinar Libras, você deve ser direto e curto.
Todas as suas respostas devem ser focadas no ensino de Libras.`

// WordListPrompt builds the instruction for generating a bilingual word list
// for a topic: at most 5 index-aligned entries per language, JSON only.
func WordListPrompt(topic string) string {
	return fmt.Sprintf(`Gere EXATAMENTE um JSON com uma lista de até 5 palavras relacionadas ao tema: %s, em português e inglês.
As listas devem ter o mesmo tamanho e estar alinhadas por índice.
Use este formato:

{
    "palavras_pt": ["palavra1_pt", "palavra2_pt", "palavra3_pt"],
    "palavras_en": ["word1_en", "word2_en", "word3_en"]
}

IMPORTANTE: Retorne APENAS o JSON, sem texto adicional.`, topic)
}

// SentencePrompt builds the instruction for generating bilingual sentences
// from previously generated words: at most 5 index-aligned pairs, each
// sentence at most 3 words and describing a visualizable action, JSON only.
func SentencePrompt(wordsPT, wordsEN []string) string {
	return fmt.Sprintf(`Gere EXATAMENTE um JSON com até 5 frases expositivas e visuais usando estas palavras em português e inglês.
Palavras PT: %s
Palavras EN: %s
As frases devem ser simples e ajudar as crianças a imaginar o que está sendo descrito. AS FRASES DEVEM TER NO MAXIMO 3 PALAVRAS.
Ex: geladeira vermelha, cachorro correndo
As listas devem ter o mesmo tamanho e estar alinhadas por índice.
Use este formato:

{
    "frases_pt": [
        "Frase exemplo em português",
        "Outra frase em português"
    ],
    "frases_en": [
        "Example phrase in English",
        "Another phrase in English"
    ]
}

IMPORTANTE: Retorne APENAS o JSON, sem texto adicional.`,
		strings.Join(wordsPT, ", "), strings.Join(wordsEN, ", "))
}

// StudentRoadmapPrompt builds the instruction for a study roadmap aligned
// with the learner's own profile. Topics are short (at most 2 words each).
func StudentRoadmapPrompt(userInfo string) string {
	return fmt.Sprintf(`Você é um analista de estratégia de estudos, especialista em planejamento educacional para o ensino de Libras.
Desenvolva um plano de estudos alinhado com o perfil do usuário, como uma sequência ordenada de temas.
Informações sobre o usuário: %s
Cada tema deve ter NO MAXIMO 2 palavras.
Gere EXATAMENTE um JSON neste formato:

{
    "topics": ["tema1", "tema2", "tema3"]
}

IMPORTANTE: Retorne APENAS o JSON, sem texto adicional.`, userInfo)
}

// ParentRoadmapPrompt builds the instruction for a roadmap for a guardian
// mediating the child's learning. Topics are short (at most 2 words each).
func ParentRoadmapPrompt(userInfo string) string {
	return fmt.Sprintf(`Você é um analista de estratégia de estudos, especialista em planejamento educacional para o ensino de Libras.
Desenvolva um plano de estudos para um responsável que está acessando a plataforma para mediar o aprendizado do filho.
Comece por conteúdos de mais fácil aprendizado, respeitando o tempo disponível do usuário e sua curva natural de aprendizado.
Informações sobre o responsável: %s
Cada tema deve ter NO MAXIMO 2 palavras.
Gere EXATAMENTE um JSON neste formato:

{
    "topics": ["tema1", "tema2", "tema3"]
}

IMPORTANTE: Retorne APENAS o JSON, sem texto adicional.`, userInfo)
}

// IntroductionPrompt builds the instruction for a short lesson introduction
// for the given theme and phase. Returns false when the phase is unknown.
func IntroductionPrompt(tema, fase string) (string, bool) {
	switch fase {
	case PhaseWords:
		return fmt.Sprintf(`Você é Cris, um instrutor de Libras amigável e entusiasmado.
Gere uma introdução curta (2-3 frases) para ensinar sobre: %s,
onde você vai ensinar palavras/sinais básicos relacionados a este tema.
A introdução deve ser acolhedora e motivadora. Seu interlocutor é uma criança. Convide-o a aprender essas novas palavras`, tema), true
	case PhaseSentences:
		return fmt.Sprintf(`Você é Cris, um professor de Libras amigável e entusiasmado.
Gere uma introdução curta (2-3 frases) para a parte da aula onde os alunos
aprenderão a formar frases usando as palavras/sinais de %s que acabaram de aprender.
A introdução deve ser encorajadora e mostrar progressão no aprendizado. Seu interlocutor é uma criança. Convide-o a aprender essas frases`, tema), true
	case PhaseGames:
		return fmt.Sprintf(`Você é Cris, um professor de Libras amigável e entusiasmado.
Gere uma introdução curta (2-3 frases) para a parte da aula onde os alunos
praticarão os sinais de %s através de um jogo da memória.
A introdução deve ser divertida e empolgante. Seu interlocutor é uma criança. Convide-o para aprender jogando`, tema), true
	default:
		return "", false
	}
}
