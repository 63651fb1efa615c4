package utils

import (
    "os"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/google/uuid"
)

// GenerateJWT issues an HS256 session token. The jti claim makes the
// token individually revocable at logout.
func GenerateJWT(userID uint, username string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "userId":   userID,
        "username": username,
        "jti":      uuid.NewString(),
        "exp":      time.Now().Add(time.Hour * 72).Unix(),
    })

    return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
