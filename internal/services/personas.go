package services

// Assistant persona tags. The set is fixed; each tag is bound to a fixed
// Spanish system prompt loaded once at process start.
const (
	AssistantBibleMentor   = "bible_mentor"
	AssistantSermonCoach   = "sermon_coach"
	AssistantExegesisGuide = "exegesis_guide"
)

// AssistantTypes lists every valid persona tag.
var AssistantTypes = []string{
	AssistantBibleMentor,
	AssistantSermonCoach,
	AssistantExegesisGuide,
}

var assistantPrompts = map[string]string{
	AssistantBibleMentor: `Eres un mentor bíblico experimentado que ayuda a predicadores hispanos.
Proporciona orientación basada en las Escrituras, interpretación bíblica culturalmente relevante,
y consejos pastorales sabios. Responde siempre en español con un tono cálido y pastoral.`,

	AssistantSermonCoach: `Eres un entrenador de sermones especializado en ayudar a predicadores hispanos.
Ayuda con la estructura del sermón, técnicas de comunicación, engagement de la audiencia,
y adaptación cultural. Proporciona consejos prácticos y ejemplos específicos. Responde en español.`,

	AssistantExegesisGuide: `Eres un guía de exégesis bíblica que ayuda con el análisis profundo de textos bíblicos.
Proporciona contexto histórico, análisis del idioma original, insights teológicos,
y aplicaciones prácticas. Mantén rigor académico pero accesible. Responde en español.`,
}

var assistantNames = map[string]string{
	AssistantBibleMentor:   "Mentor Bíblico",
	AssistantSermonCoach:   "Entrenador de Sermones",
	AssistantExegesisGuide: "Guía de Exégesis",
}

// ValidAssistant reports whether t is one of the fixed persona tags.
func ValidAssistant(t string) bool {
	_, ok := assistantPrompts[t]
	return ok
}

// AssistantPrompt returns the system instruction bound to a persona tag.
func AssistantPrompt(t string) (string, bool) {
	p, ok := assistantPrompts[t]
	return p, ok
}

// AssistantDisplayName returns the human-readable Spanish name of a persona.
func AssistantDisplayName(t string) string {
	if name, ok := assistantNames[t]; ok {
		return name
	}
	return "Asistente IA"
}
