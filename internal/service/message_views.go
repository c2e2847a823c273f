package service

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"messages-api/internal/domain"
)

// LongMessageThreshold es la longitud a partir de la cual (exclusiva) un mensaje es "largo".
const LongMessageThreshold = 10

// OtherGroup agrupa los mensajes que no contienen ninguna palabra clave.
const OtherGroup = "other"

// GroupKeywords se evalúa en orden: un texto con "hello" y "bye" cae en "hello".
var GroupKeywords = []string{"hello", "bye"}

// FirstAndLast devuelve [primero, último].
func FirstAndLast(messages []domain.Message) ([]domain.Message, error) {
	if len(messages) == 0 {
		return nil, domain.ErrEmptyCollection
	}
	return []domain.Message{messages[0], messages[len(messages)-1]}, nil
}

func FirstLongerThan(messages []domain.Message, n int) (domain.Message, error) {
	msg, ok := lo.Find(messages, longerThan(n))
	if !ok {
		return domain.Message{}, domain.ErrNoMatch
	}
	return msg, nil
}

// FirstLongerThanOrDefault nunca falla: sin coincidencias devuelve domain.DefaultMessage().
func FirstLongerThanOrDefault(messages []domain.Message, n int) domain.Message {
	return lo.FindOrElse(messages, domain.DefaultMessage(), longerThan(n))
}

func FilterLongerThan(messages []domain.Message, n int) []domain.Message {
	pred := longerThan(n)
	return lo.Filter(messages, func(m domain.Message, _ int) bool {
		return pred(m)
	})
}

// SortByLastLetter ordena de forma estable por la última unidad UTF-16 del texto.
// Un texto vacío no tiene última letra y la operación falla con ErrIndexOutOfRange.
func SortByLastLetter(messages []domain.Message) ([]domain.Message, error) {
	if lo.ContainsBy(messages, func(m domain.Message) bool { return m.Text == "" }) {
		return nil, domain.ErrIndexOutOfRange
	}
	sorted := slices.Clone(messages)
	if sorted == nil {
		sorted = []domain.Message{}
	}
	slices.SortStableFunc(sorted, func(a, b domain.Message) int {
		return cmp.Compare(a.LastUnit(), b.LastUnit())
	})
	return sorted, nil
}

// GroupByKeyword parte los mensajes por la primera palabra clave contenida (sin distinguir
// mayúsculas). Solo aparecen los grupos con al menos un mensaje.
func GroupByKeyword(messages []domain.Message) map[string][]domain.Message {
	return lo.GroupBy(messages, keywordOf)
}

// ToStrings formatea cada mensaje como "<id> <texto>".
func ToStrings(messages []domain.Message) []string {
	return lo.Map(messages, func(m domain.Message, _ int) string {
		return m.IDString() + " " + m.Text
	})
}

func AverageLength(messages []domain.Message) (float64, error) {
	if len(messages) == 0 {
		return 0, domain.ErrEmptyCollection
	}
	total := lo.SumBy(messages, domain.Message.Length)
	return float64(total) / float64(len(messages)), nil
}

// Longest devuelve el mensaje más largo; ante empate gana el primero.
func Longest(messages []domain.Message) (domain.Message, error) {
	if len(messages) == 0 {
		return domain.Message{}, domain.ErrEmptyCollection
	}
	return lo.MaxBy(messages, func(a, b domain.Message) bool {
		return a.Length() > b.Length()
	}), nil
}

func longerThan(n int) func(domain.Message) bool {
	return func(m domain.Message) bool {
		return m.Length() > n
	}
}

func keywordOf(m domain.Message) string {
	text := strings.ToLower(m.Text)
	return lo.FindOrElse(GroupKeywords, OtherGroup, func(keyword string) bool {
		return strings.Contains(text, keyword)
	})
}
