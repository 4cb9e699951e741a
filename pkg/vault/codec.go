package vault

import (
	"encoding/base64"
	"encoding/json"
	"time"
)

// Version marks the envelope layout. Payloads written with another
// version are discarded on read.
const Version = "1.0"

// envelope wraps every stored value with enough metadata to validate
// and expire it later. Timestamp is the absolute expiry in Unix
// milliseconds; zero means the value never expires.
type envelope struct {
	Version   string          `json:"version"`
	Timestamp int64           `json:"timestamp"`
	Data      json.RawMessage `json:"data"`
}

func (e envelope) expired(now time.Time) bool {
	return e.Timestamp != 0 && now.UnixMilli() > e.Timestamp
}

// Printable ASCII range the rotation cipher operates on.
const (
	alphabetLow  = 32
	alphabetHigh = 126
	alphabetSize = alphabetHigh - alphabetLow + 1
)

// rotate shifts every printable ASCII byte by a secret-derived offset,
// wrapping inside the printable range. Bytes outside the range pass
// through untouched, which keeps multi-byte UTF-8 sequences intact.
// The transform is its own inverse with negated offsets.
func rotate(in []byte, secret string, decode bool) []byte {
	out := make([]byte, len(in))
	if secret == "" {
		copy(out, in)
		return out
	}
	for i, b := range in {
		if b < alphabetLow || b > alphabetHigh {
			out[i] = b
			continue
		}
		offset := int(secret[i%len(secret)]) % alphabetSize
		if decode {
			offset = -offset
		}
		shifted := (int(b) - alphabetLow + offset + alphabetSize) % alphabetSize
		out[i] = byte(shifted + alphabetLow)
	}
	return out
}

// encode turns an envelope into the stored string form: JSON, rotated,
// then base64. This is obfuscation against casual inspection, not
// encryption; anyone with the binary can reverse it.
func (v *Vault) encode(env envelope) (string, error) {
	raw, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(rotate(raw, v.secret, false)), nil
}

// decode reverses encode.
func (v *Vault) decode(stored string) (envelope, error) {
	var env envelope
	raw, err := base64.StdEncoding.DecodeString(stored)
	if err != nil {
		return env, err
	}
	if err := json.Unmarshal(rotate(raw, v.secret, true), &env); err != nil {
		return env, err
	}
	return env, nil
}
