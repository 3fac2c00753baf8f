// nonce - пакет для генерации одноразовых идентификаторов запросов аутентификации.
// Идентификатор нужен для уникальности запроса, а не для криптостойкости.
package nonce

import (
	"math/rand/v2"
	"strings"
)

// KeySpace - алфавит, из которого выбираются символы nonce.
const KeySpace = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-_"

// Length - длина, с которой формы генерируют nonce для каждой попытки отправки.
const Length = 12

// Generate - возвращает строку из length+1 символов алфавита KeySpace.
// Граница цикла включительная, поэтому Generate(0) возвращает один символ, а Generate(Length) - 13.
func Generate(length int) string {
	n := length + 1
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(KeySpace[rand.IntN(len(KeySpace))])
	}
	return b.String()
}
