// ABOUTME: Free-text contact phrase parser and contact-type classifier
// ABOUTME: Extracts (client, date, reason) via ordered trigger patterns
package parse

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/amauta/contactos/models"
)

// Patterns run against the normalized sentence, in priority order so the
// specific triggers are not shadowed by the generic guided-form one.
// Groups: 1 = client, 2 = date, 3 = reason.
var phrasePatterns = []*regexp.Regexp{
	regexp.MustCompile(`SE CONTACTO CON (.*?) EL (\d{1,2}/\d{1,2}/\d{4}) POR (.*)`),
	regexp.MustCompile(`(?:HABLE CON|LLAME A|ME COMUNIQUE CON|CHATEE CON|LE ESCRIBI A|ME REUNI CON|VISITE A|ESTUVE CON|TUVE UN ZOOM CON|TUVE UN MEET CON) (.*?) EL (\d{1,2}/\d{1,2}/\d{4}) POR (.*)`),
	// Guided-form sentences assembled by BuildSentence.
	regexp.MustCompile(`SE REALIZO UNA? .*? CON (.*?) EL (\d{1,2}/\d{1,2}/\d{4}) POR (.*)`),
}

// ExtractContactInfo parses a contact sentence into (client, date, reason).
// The client comes back normalized; the date is validated and reformatted to
// DD/MM/YYYY; the reason is trimmed but keeps the sentence's original casing
// and accents. Returns a ParseError when no pattern matches or the date
// portion is not a real date.
func ExtractContactInfo(sentence string) (client, date, reason string, err error) {
	normalized := Normalize(sentence)

	for _, pattern := range phrasePatterns {
		m := pattern.FindStringSubmatch(normalized)
		if m == nil {
			continue
		}

		rawDate := strings.TrimSpace(m[2])
		parsed, perr := time.Parse(models.ParseDateLayout, rawDate)
		if perr != nil {
			return "", "", "", &models.ParseError{Sentence: sentence}
		}

		client = Normalize(m[1])
		date = parsed.Format(models.DateLayout)
		reason = literalReason(sentence, rawDate, strings.TrimSpace(m[3]))
		return client, date, reason, nil
	}

	return "", "", "", &models.ParseError{Sentence: sentence}
}

// literalReason recovers the reason text from the original sentence so the
// user's casing and accents survive (normalization runs uppercase and
// accent-stripped). The reason is whatever follows the first " por " after
// the date literal. Falls back to the normalized capture.
func literalReason(sentence, rawDate, fallback string) string {
	i := strings.Index(sentence, rawDate)
	if i < 0 {
		return fallback
	}
	rest := sentence[i+len(rawDate):]
	j := strings.Index(strings.ToLower(rest), " por ")
	if j < 0 {
		return fallback
	}
	return strings.TrimSpace(rest[j+len(" por "):])
}

// Trigger-phrase families for type detection, checked in precedence order
// call > message > meeting. Accented variants are listed because detection
// runs on the lower-cased sentence, not the normalized one.
var (
	callPhrases = []string{
		"llamé a", "llame a", "me comuniqué con", "me comunique con", "se llamó a", "se llamo a",
		"hablé con", "hable con", "hable a", "se habló con", "se hablo con",
	}
	messagePhrases = []string{
		"le escribí a", "le escribi a", "chateé con", "chatee con", "envié un whatsapp a", "envie un whatsapp a",
	}
	meetingPhrases = []string{
		"me reuní con", "me reuni con", "me junté con", "me junte con", "estuve con",
		"tuve un zoom con", "visité a", "visite a", "tuve un meet con",
	}
)

// ClassifyType scans the sentence for trigger-phrase families and returns the
// detected contact type, or TypeContacto when nothing matches. Detection is
// independent of any type the user picked on a guided form; callers may
// override it.
func ClassifyType(sentence string) string {
	s := strings.ToLower(sentence)

	// Guided-form sentences name their type explicitly.
	switch {
	case containsAny(s, "se realizo una llamada", "se realizó una llamada"):
		return models.TypeLlamada
	case containsAny(s, "se realizo un mensaje", "se realizó un mensaje"):
		return models.TypeMensajes
	case containsAny(s, "se realizo una reunion", "se realizó una reunión"):
		return models.TypeReunion
	}

	switch {
	case containsAny(s, callPhrases...):
		return models.TypeLlamada
	case containsAny(s, messagePhrases...):
		return models.TypeMensajes
	case containsAny(s, meetingPhrases...):
		return models.TypeReunion
	}
	return models.TypeContacto
}

func containsAny(s string, phrases ...string) bool {
	for _, p := range phrases {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// BuildSentence assembles the guided-form sentence for a contact so that it
// round-trips through ExtractContactInfo and ClassifyType.
func BuildSentence(contactType, client, date, reason string) string {
	noun := "un contacto"
	switch contactType {
	case models.TypeLlamada:
		noun = "una llamada"
	case models.TypeMensajes:
		noun = "un mensaje"
	case models.TypeReunion:
		noun = "una reunión"
	}
	return fmt.Sprintf("Se realizó %s con %s el %s por %s", noun, client, date, strings.TrimSpace(reason))
}
