package auth

import "github.com/jhoicas/pos-api/internal/domain/entity"

// PlaceholderToken token fijo devuelto por login; no existe verificación de tokens.
const PlaceholderToken = "temporary-token"

// TokenIssuer emite el token que acompaña a un login exitoso.
type TokenIssuer interface {
	Issue(u *entity.User) (string, error)
}

// StaticTokenIssuer devuelve siempre el mismo token.
type StaticTokenIssuer struct {
	Token string
}

// NewStaticTokenIssuer construye el issuer; token vacío usa PlaceholderToken.
func NewStaticTokenIssuer(token string) StaticTokenIssuer {
	if token == "" {
		token = PlaceholderToken
	}
	return StaticTokenIssuer{Token: token}
}

func (s StaticTokenIssuer) Issue(*entity.User) (string, error) { return s.Token, nil }
