package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rentfold/rentfold/pkg/http"
	"github.com/rentfold/rentfold/pkg/log"
)

// AuthClaims is the verified identity carried by a bearer token: the stable
// external subject plus the claimed email and display name.
type AuthClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

const defaultIssuer = "rentfold"

// GenToken issues an access_token and a refresh_token for the given identity.
func GenToken(subject, email, name string, auth *http.Auth) (aToken, rToken string, err error) {
	issuer := auth.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}

	aClaims := &AuthClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(auth.AccessExpire * time.Minute)),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}
	aToken, aErr := jwt.NewWithClaims(jwt.SigningMethodHS256, aClaims).SignedString([]byte(auth.SecretKey))
	if aErr != nil {
		log.Errorw("jwt.NewWithClaims err", "error", aErr)
		return "", "", aErr
	}

	rClaims := &AuthClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(auth.RefreshExpire * time.Minute)),
		},
	}
	rToken, rErr := jwt.NewWithClaims(jwt.SigningMethodHS256, rClaims).SignedString([]byte(auth.SecretKey))
	if rErr != nil {
		log.Errorw("jwt.NewWithClaims err", "error", rErr)
		return "", "", rErr
	}

	return aToken, rToken, nil
}

// ParseToken verifies an access_token and returns its claims.
func ParseToken(aToken, secretKey string) (*AuthClaims, error) {
	claims := new(AuthClaims)
	token, err := jwt.ParseWithClaims(aToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, jwt.ErrTokenExpired
		}
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// RefreshToken validates a refresh_token and issues a fresh token pair for
// the identity it carries.
func RefreshToken(auth *http.Auth, rToken string) (map[string]string, error) {
	newToken := make(map[string]string)

	claims, err := ParseToken(rToken, auth.SecretKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return newToken, errors.New(http.TokenExpired.Msg)
		}
		return newToken, errors.New(http.InvalidToken.Msg)
	}

	newAToken, newRToken, err := GenToken(claims.Subject, claims.Email, claims.Name, auth)
	if err != nil {
		return newToken, err
	}

	newToken["accessToken"] = newAToken
	newToken["refreshToken"] = newRToken

	return newToken, nil
}
