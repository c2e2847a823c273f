package domain

import "unicode/utf16"

// DefaultMessageText es el texto del mensaje centinela devuelto cuando ningún mensaje cumple un filtro.
const DefaultMessageText = "Default message"

// Message es la única entidad persistida: un par (id, texto).
// ID es nil mientras el mensaje no fue guardado y se serializa como null.
type Message struct {
	ID   *string `json:"id"`
	Text string  `json:"text"`
}

// DefaultMessage construye el mensaje centinela {id: null, text: "Default message"}.
func DefaultMessage() Message {
	return Message{Text: DefaultMessageText}
}

// Length devuelve la longitud del texto en unidades UTF-16.
func (m Message) Length() int {
	return len(utf16.Encode([]rune(m.Text)))
}

// LastUnit devuelve la última unidad UTF-16 del texto. El texto no debe estar vacío.
func (m Message) LastUnit() uint16 {
	units := utf16.Encode([]rune(m.Text))
	return units[len(units)-1]
}

// IDString devuelve el id o "null" si no tiene.
func (m Message) IDString() string {
	if m.ID == nil {
		return "null"
	}
	return *m.ID
}
