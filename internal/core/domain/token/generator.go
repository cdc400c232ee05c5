package token

type Generator interface {
	GenerateToken() Value
}
