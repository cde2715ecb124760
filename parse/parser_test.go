// ABOUTME: Tests for the phrase parser and contact-type classifier
// ABOUTME: Validates extraction, date validation, precedence, and round-trips
package parse

import (
	"errors"
	"testing"

	"github.com/amauta/contactos/models"
)

func TestExtractContactInfo(t *testing.T) {
	client, date, reason, err := ExtractContactInfo(
		"Se realizó una llamada con Juan Pérez el 10/07/2025 por revisión de cartera")
	if err != nil {
		t.Fatalf("ExtractContactInfo failed: %v", err)
	}

	if client != "JUAN PEREZ" {
		t.Errorf("expected client JUAN PEREZ, got %q", client)
	}
	if date != "10/07/2025" {
		t.Errorf("expected date 10/07/2025, got %q", date)
	}
	// The reason keeps the sentence's original casing and accents.
	if reason != "revisión de cartera" {
		t.Errorf("expected literal reason, got %q", reason)
	}
}

func TestExtractContactInfoVerbTriggers(t *testing.T) {
	tests := []struct {
		sentence string
		client   string
	}{
		{"Hablé con María García el 01/07/2025 por cobranza", "MARIA GARCIA"},
		{"Llamé a Pedro Gómez el 2/7/2025 por documentación", "PEDRO GOMEZ"},
		{"Se contactó con Ana López el 15/08/2025 por propuesta enviada", "ANA LOPEZ"},
		{"Tuve un zoom con Carlos Ruiz el 20/08/2025 por rotación de cartera", "CARLOS RUIZ"},
	}

	for _, tt := range tests {
		client, _, _, err := ExtractContactInfo(tt.sentence)
		if err != nil {
			t.Errorf("ExtractContactInfo(%q) failed: %v", tt.sentence, err)
			continue
		}
		if client != tt.client {
			t.Errorf("ExtractContactInfo(%q) client = %q, want %q", tt.sentence, client, tt.client)
		}
	}
}

func TestExtractContactInfoPadsDates(t *testing.T) {
	_, date, _, err := ExtractContactInfo("Llamé a Pedro el 1/7/2025 por seguimiento")
	if err != nil {
		t.Fatalf("ExtractContactInfo failed: %v", err)
	}
	if date != "01/07/2025" {
		t.Errorf("expected padded date 01/07/2025, got %q", date)
	}
}

func TestExtractContactInfoUnintelligible(t *testing.T) {
	_, _, _, err := ExtractContactInfo("asdf qwerty")
	var parseErr *models.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestExtractContactInfoBadDateIsFatal(t *testing.T) {
	_, _, _, err := ExtractContactInfo("Llamé a Pedro el 45/99/2025 por seguimiento")
	var parseErr *models.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError for impossible date, got %v", err)
	}
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		sentence string
		want     string
	}{
		{"Llamé a Juan por seguimiento", models.TypeLlamada},
		{"Me comuniqué con Ana por cobranza", models.TypeLlamada},
		{"Le escribí a Pedro por documentación", models.TypeMensajes},
		{"Chateé con María por propuesta", models.TypeMensajes},
		{"Me reuní con Carlos por cierre", models.TypeReunion},
		{"Visité a Laura por firma", models.TypeReunion},
		{"Se contactó con Juan el 10/07/2025 por varios", models.TypeContacto},
	}

	for _, tt := range tests {
		if got := ClassifyType(tt.sentence); got != tt.want {
			t.Errorf("ClassifyType(%q) = %q, want %q", tt.sentence, got, tt.want)
		}
	}
}

func TestClassifyTypePrecedenceCallBeatsMeeting(t *testing.T) {
	// A sentence with both a call and a meeting trigger classifies as a call.
	got := ClassifyType("Llamé a Juan y estuve con él por seguimiento")
	if got != models.TypeLlamada {
		t.Errorf("expected call precedence, got %q", got)
	}
}

func TestBuildSentenceRoundTrip(t *testing.T) {
	for _, contactType := range []string{models.TypeLlamada, models.TypeMensajes, models.TypeReunion} {
		sentence := BuildSentence(contactType, "Juan Pérez", "10/07/2025", "revisión de cartera")

		if got := ClassifyType(sentence); got != contactType {
			t.Errorf("ClassifyType(%q) = %q, want %q", sentence, got, contactType)
		}

		client, date, reason, err := ExtractContactInfo(sentence)
		if err != nil {
			t.Fatalf("ExtractContactInfo(%q) failed: %v", sentence, err)
		}
		if client != "JUAN PEREZ" || date != "10/07/2025" || reason != "revisión de cartera" {
			t.Errorf("round-trip mismatch: %q %q %q", client, date, reason)
		}
	}
}
