package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type PlayerClaims struct {
	PlayerId int    `json:"player_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func createPlayerToken(playerId int, username string) (string, error) {
	now := time.Now()
	claims := PlayerClaims{
		playerId,
		username,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.JWT.Lifetime())),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	return cfg.JWT.Sign(claims)
}

func setPlayerCookies(w http.ResponseWriter, token string) {
	if err := cfg.Cookies.Refresh(w, token, cfg.JWT.Lifetime()); err != nil {
		log.Error("unable to set player cookies: ", err)
	}
}

func refreshPlayerCookies(w http.ResponseWriter, claims PlayerClaims) {
	token, err := createPlayerToken(claims.PlayerId, claims.Username)
	if err != nil {
		log.Error("unable to refresh player token: ", err)
		return
	}
	setPlayerCookies(w, token)
}

func clearPlayerCookies(w http.ResponseWriter) {
	cfg.Cookies.Clear(w)
}

func parsePlayerClaims(r *http.Request) (*PlayerClaims, error) {
	tokenString, err := cfg.Cookies.Token(r)
	if err != nil {
		return nil, err
	}
	token, err := cfg.JWT.ParseWithClaims(tokenString, &PlayerClaims{})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*PlayerClaims)
	if !ok {
		return nil, errors.New("unknown claims type")
	}
	return claims, nil
}
