// Package credentials aísla el manejo del secreto de los usuarios detrás de
// una interfaz, de modo que el esquema de almacenamiento pueda sustituirse sin
// tocar el resto del store.
//
// El esquema por defecto es "plain": el sistema legado guarda las contraseñas
// en texto plano dentro de la colección de usuarios, y los snapshots
// importados desde él deben seguir funcionando. Es una debilidad heredada y
// documentada, no un descuido; "bcrypt" está disponible para instalaciones
// nuevas.
package credentials

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Hasher transforma y verifica el secreto de un usuario.
type Hasher interface {
	// Hash devuelve la representación a persistir del secreto.
	Hash(secret string) (string, error)
	// Verify compara el valor persistido contra el candidato en claro.
	Verify(stored, candidate string) bool
}

// Plain guarda el secreto tal cual (compatibilidad con el sistema legado).
type Plain struct{}

// Hash devuelve el secreto sin transformar.
func (Plain) Hash(secret string) (string, error) { return secret, nil }

// Verify compara en tiempo constante.
func (Plain) Verify(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// Bcrypt hashea con bcrypt. Verify acepta también valores en texto plano para
// que los usuarios importados de un snapshot legado puedan seguir entrando.
type Bcrypt struct {
	Cost int // 0 → bcrypt.DefaultCost
}

// Hash genera el hash bcrypt del secreto.
func (b Bcrypt) Hash(secret string) (string, error) {
	cost := b.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara con bcrypt si el valor almacenado parece un hash bcrypt;
// si no, cae a la comparación en claro (usuario legado aún no migrado).
func (b Bcrypt) Verify(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return Plain{}.Verify(stored, candidate)
}

// ForScheme devuelve el Hasher para el esquema configurado.
// Cualquier valor desconocido cae a "plain" (el comportamiento legado).
func ForScheme(scheme string) Hasher {
	if scheme == "bcrypt" {
		return Bcrypt{}
	}
	return Plain{}
}
