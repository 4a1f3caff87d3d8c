package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Header names used by the identity provider's delivery service (svix).
const (
	HeaderID        = "svix-id"
	HeaderTimestamp = "svix-timestamp"
	HeaderSignature = "svix-signature"
)

// Tolerance bounds how far a delivery timestamp may drift from now before
// the event is rejected as a possible replay.
const Tolerance = 5 * time.Minute

const secretPrefix = "whsec_"

var (
	ErrMissingHeaders    = errors.New("missing webhook signature headers")
	ErrInvalidTimestamp  = errors.New("webhook timestamp outside tolerance")
	ErrSignatureMismatch = errors.New("webhook signature mismatch")
)

// Verifier checks svix-style signatures: HMAC-SHA256 over
// "{id}.{timestamp}.{body}" keyed by the base64-decoded shared secret.
type Verifier struct {
	key []byte
	now func() time.Time
}

func NewVerifier(secret string) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("webhook secret is empty")
	}

	encoded := strings.TrimPrefix(secret, secretPrefix)
	key, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decode webhook secret: %w", err)
	}

	return &Verifier{key: key, now: time.Now}, nil
}

// Verify validates the payload against the three delivery headers. All
// three must be present; the timestamp must be within Tolerance; at least
// one "v1," candidate in the signature header must match.
func (v *Verifier) Verify(payload []byte, msgID, timestamp, signature string) error {
	if msgID == "" || timestamp == "" || signature == "" {
		return ErrMissingHeaders
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrInvalidTimestamp
	}
	sent := time.Unix(ts, 0)
	now := v.now()
	if sent.Before(now.Add(-Tolerance)) || sent.After(now.Add(Tolerance)) {
		return ErrInvalidTimestamp
	}

	expected := v.Sign(msgID, timestamp, payload)

	// The header may carry several space-delimited versioned signatures
	// (key rotation); any matching v1 entry passes.
	for _, candidate := range strings.Split(signature, " ") {
		parts := strings.SplitN(candidate, ",", 2)
		if len(parts) != 2 || parts[0] != "v1" {
			continue
		}
		if hmac.Equal([]byte(parts[1]), []byte(expected)) {
			return nil
		}
	}

	return ErrSignatureMismatch
}

// Sign computes the v1 signature for the given message. Exposed so tests
// and delivery simulators can produce valid headers.
func (v *Verifier) Sign(msgID, timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, v.key)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(payload)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}
