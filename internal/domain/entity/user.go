package entity

// User usuario del sistema. Se crea en el registro y después no se actualiza
// ni se borra. Username es único (comparación exacta, sensible a mayúsculas).
//
// Password guarda el secreto según el esquema configurado (pkg/credentials);
// con el esquema "plain" heredado queda en claro dentro de la colección, igual
// que en el sistema legado. Los tags JSON replican el snapshot legado.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

// SessionUser proyección del usuario autenticado: nunca incluye el secreto.
type SessionUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`
}

// Projection devuelve la proyección de sesión del usuario.
func (u User) Projection() SessionUser {
	return SessionUser{ID: u.ID, Username: u.Username, FullName: u.FullName}
}
