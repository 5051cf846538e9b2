package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// webAppDataKey is the fixed domain-separation constant Telegram prescribes
// for deriving the initData signing key from a bot token.
const webAppDataKey = "WebAppData"

// ParseQuery splits a raw initData string into key/value pairs. Values are
// kept exactly as received: no URL decoding happens here because signature
// verification must run over the raw encoded bytes. Segments without '=' and
// empty segments are skipped; a repeated key keeps the last occurrence.
func ParseQuery(raw string) map[string]string {
	params := make(map[string]string)
	for _, part := range strings.Split(raw, "&") {
		if part == "" {
			continue
		}
		k, v, found := strings.Cut(part, "=")
		if !found {
			continue
		}
		params[k] = v
	}
	return params
}

// VerifyInitData checks the Telegram Web App signature over a raw initData
// string. It fails closed on any missing input, absent hash field or digest
// mismatch, and never returns an error: the outcome is a plain yes/no.
func VerifyInitData(raw, botToken string) bool {
	if raw == "" || botToken == "" {
		return false
	}

	params := ParseQuery(raw)
	receivedHash := params["hash"]
	if receivedHash == "" {
		return false
	}

	// The check-string is every key=value line except hash, sorted as whole
	// lines and joined with newlines. Sorting the formatted lines (not the
	// keys) is what Telegram's scheme does; replicate it bit for bit.
	lines := make([]string, 0, len(params)-1)
	for k, v := range params {
		if k == "hash" {
			continue
		}
		lines = append(lines, k+"="+v)
	}
	sort.Strings(lines)
	checkString := strings.Join(lines, "\n")

	keyMAC := hmac.New(sha256.New, []byte(webAppDataKey))
	keyMAC.Write([]byte(botToken))
	secretKey := keyMAC.Sum(nil)

	mac := hmac.New(sha256.New, secretKey)
	mac.Write([]byte(checkString))
	calculated := hex.EncodeToString(mac.Sum(nil))

	// hmac.Equal does not short-circuit on the first mismatching byte.
	return hmac.Equal([]byte(calculated), []byte(receivedHash))
}

// ExtractUserID pulls the numeric user id out of the JSON "user" field of an
// initData string. The result is only trustworthy after VerifyInitData has
// accepted the same raw string; callers must sequence verify-then-extract.
func ExtractUserID(raw string) (int64, bool) {
	params := ParseQuery(raw)
	userRaw := params["user"]
	if userRaw == "" {
		return 0, false
	}

	id, ok := userIDFromJSON(userRaw)
	if ok {
		return id, true
	}
	// Telegram delivers the user field percent-encoded inside initData. The
	// raw value is tried first so already-decoded input keeps working.
	decoded, err := url.QueryUnescape(userRaw)
	if err != nil {
		return 0, false
	}
	return userIDFromJSON(decoded)
}

func userIDFromJSON(s string) (int64, bool) {
	var user map[string]any
	if err := json.Unmarshal([]byte(s), &user); err != nil {
		return 0, false
	}
	switch id := user["id"].(type) {
	case float64:
		return int64(id), true
	case string:
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
