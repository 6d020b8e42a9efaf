package utils // package utils provides helper functions for token creation and hashing

import (
    "time" // time utilities for generating expirations

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Access tokens identify the customer session and
// are sent in the Authorization header when calling protected endpoints.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a customer.  It takes the
// signing secret, the member ID, the customer's first name, whether the
// account holds the admin grant, and a TTL in minutes.  It returns an
// AccessToken structure containing the signed token and its expiration time.
// The JWT includes the subject (sub), display name (name), admin flag
// (admin), expiration (exp) and issued at (iat) claims.
func NewAccessToken(secret string, memberID uint64, name string, admin bool, ttlMin int) (AccessToken, error) {
    // Calculate the expiration time by adding the TTL to the current UTC time.
    exp := time.Now().UTC().Add(time.Duration(ttlMin) * time.Minute)
    // Construct the JWT claims.  Using MapClaims allows arbitrary key/value
    // pairs.  We set sub to the member ID, name to the first name, admin to
    // the capability flag, exp to the expiration Unix timestamp, and iat to
    // the issued at time.
    claims := jwt.MapClaims{
        "sub":   memberID,
        "name":  name,
        "admin": admin,
        "exp":   exp.Unix(),
        "iat":   time.Now().UTC().Unix(),
    }
    // Create a new token object specifying the signing method (HS256) and
    // include the claims.
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    // Sign the token with the provided secret and obtain the string form.  If
    // signing fails, return the error and a zero AccessToken.
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}
