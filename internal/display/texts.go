package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/BrunoBarreto-USP/esp32-for-digit-recognition/internal/domain"
)

const (
	msgDraw       = "Draw"
	msgHere       = "here"
	msgWaiting1   = "Waiting for a"
	msgWaiting2   = "digit..."
	msgDigit      = "Digit: %d"
	msgNoDecision = "No decision"
)

func init() {
	for _, tag := range []language.Tag{language.Portuguese, language.BrazilianPortuguese} {
		message.SetString(tag, msgDraw, "Desenhe")
		message.SetString(tag, msgHere, "aqui")
		message.SetString(tag, msgWaiting1, "Aguardando um")
		message.SetString(tag, msgWaiting2, "digito...")
		message.SetString(tag, msgDigit, "Digito: %d")
		message.SetString(tag, msgNoDecision, "Sem decisao")
	}
}

// Texts renders status strings in one language.
type Texts struct {
	p *message.Printer
}

// NewTexts returns texts for locale, falling back to English for unknown tags.
func NewTexts(locale string) *Texts {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Texts{p: message.NewPrinter(tag)}
}

// Prompt is the two-line invitation shown beside the canvas.
func (t *Texts) Prompt() [2]string {
	return [2]string{t.p.Sprintf(msgDraw), t.p.Sprintf(msgHere)}
}

// Idle is the two-line status shown while waiting.
func (t *Texts) Idle() [2]string {
	return [2]string{t.p.Sprintf(msgWaiting1), t.p.Sprintf(msgWaiting2)}
}

func (t *Texts) Waiting() string {
	l := t.Idle()
	return l[0] + " " + l[1]
}

func (t *Texts) Prediction(class int) string {
	if class == domain.NoDecision {
		return t.p.Sprintf(msgNoDecision)
	}
	return t.p.Sprintf(msgDigit, class)
}
