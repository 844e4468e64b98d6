package config

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

type SolverClaims struct {
	SolverId int64  `json:"solver_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewSolverClaims(solverId int64, username string, lifetime time.Duration) *SolverClaims {
	now := time.Now()
	return &SolverClaims{
		SolverId: solverId,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
}

func NewJWT() (*JWT, error) {
	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok {
		return nil, fmt.Errorf("no JWT_SECRET env variable set")
	}

	return &JWT{
		secret:        []byte(secret),
		signingMethod: jwt.GetSigningMethod("HS256"),
		tokenLifetime: time.Hour * 24 * 30,
	}, nil
}

func (j *JWT) TokenLifetime() time.Duration {
	return j.tokenLifetime
}

func (j *JWT) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(j.signingMethod, claims).SignedString(j.secret)
}

func (j *JWT) ParseSolverClaims(tokenString string) (*SolverClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&SolverClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return j.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*SolverClaims)
	if !ok {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}
