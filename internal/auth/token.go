package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// IssueToken mints a self-verifying session token of the form
// "<userID>.<issuedAtUnix>.<hexSignature>". The token carries no expiry and
// no nonce: two tokens issued in the same second for the same user are
// byte-identical, which is fine for a capability-style credential.
func IssueToken(userID int64, secret string) string {
	payload := strconv.FormatInt(userID, 10) + "." + strconv.FormatInt(time.Now().Unix(), 10)
	return payload + "." + signToken(payload, secret)
}

// VerifyToken validates a session token and recovers the bound user id. It
// fails closed on a malformed token, an unparsable user id or a signature
// mismatch. No expiry check is performed: a token stays valid for as long as
// its signature matches.
func VerifyToken(token, secret string) (int64, bool) {
	parts := strings.SplitN(token, ".", 3)
	if len(parts) != 3 {
		return 0, false
	}

	payload := parts[0] + "." + parts[1]
	expected := signToken(payload, secret)
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return 0, false
	}

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return userID, true
}

func signToken(payload, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}
