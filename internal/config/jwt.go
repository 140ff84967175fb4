package config

import (
	"crypto/rsa"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	// ssh-keygen -t rsa -m pem -f jwt-private-key.pem
	PrivateKeyPEM  string `env:"JWT_PRIVATE_KEY"`
	PrivateKeyFile string `env:"JWT_PRIVATE_KEY_FILE"`
	// openssl rsa -in jwt-private-key.pem -pubout -out jwt-public-key.pem
	PublicKeyPEM  string        `env:"JWT_PUBLIC_KEY"`
	PublicKeyFile string        `env:"JWT_PUBLIC_KEY_FILE"`
	TokenLifetime time.Duration `env:"JWT_TOKEN_LIFETIME" envDefault:"720h"`

	privateKey    *rsa.PrivateKey
	publicKey     *rsa.PublicKey
	signingMethod jwt.SigningMethod
}

func (j *JWT) loadKeys() error {
	privatePEM := []byte(j.PrivateKeyPEM)
	if len(privatePEM) == 0 {
		if j.PrivateKeyFile == "" {
			return fmt.Errorf("no JWT_PRIVATE_KEY or JWT_PRIVATE_KEY_FILE env variable set")
		}
		data, err := os.ReadFile(j.PrivateKeyFile)
		if err != nil {
			return fmt.Errorf("unable to read JWT private key: %w", err)
		}
		privatePEM = data
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return fmt.Errorf("unable to parse JWT private key: %w", err)
	}

	publicPEM := []byte(j.PublicKeyPEM)
	if len(publicPEM) == 0 {
		if j.PublicKeyFile == "" {
			return fmt.Errorf("no JWT_PUBLIC_KEY or JWT_PUBLIC_KEY_FILE env variable set")
		}
		data, err := os.ReadFile(j.PublicKeyFile)
		if err != nil {
			return fmt.Errorf("unable to read JWT public key: %w", err)
		}
		publicPEM = data
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return fmt.Errorf("unable to parse JWT public key: %w", err)
	}

	j.privateKey = privateKey
	j.publicKey = publicKey
	j.signingMethod = jwt.GetSigningMethod("RS256")
	return nil
}

func (j *JWT) Lifetime() time.Duration {
	return j.TokenLifetime
}

func (j *JWT) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(j.signingMethod, claims).SignedString(j.privateKey)
}

func (j *JWT) ParseWithClaims(tokenString string, claims jwt.Claims) (*jwt.Token, error) {
	return jwt.ParseWithClaims(
		tokenString,
		claims,
		func(t *jwt.Token) (interface{}, error) {
			return j.publicKey, nil
		},
	)
}
