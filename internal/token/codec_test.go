package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/gatherly/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fakeClock is a settable clock for deterministic expiry tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCodec(t *testing.T, secret string, clock *fakeClock) *Codec {
	t.Helper()
	c, err := NewCodec(secret, 2*time.Hour, WithClock(clock.Now))
	require.NoError(t, err)
	return c
}

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 500, time.UTC)}
}

// signRaw builds a token the way the legacy backend did, independent of Codec.
func signRaw(secret, payload string) string {
	enc := base64.RawURLEncoding
	signing := enc.EncodeToString([]byte(header)) + "." + enc.EncodeToString([]byte(payload))
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(signing))
	return signing + "." + enc.EncodeToString(mac.Sum(nil))
}

func TestNewCodec_EmptySecret(t *testing.T) {
	c, err := NewCodec("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)
	assert.Nil(t, c)
}

func TestNewCodec_NonPositiveTTL(t *testing.T) {
	_, err := NewCodec(testSecret, 0)
	assert.Error(t, err)
}

func TestIssue_HeaderSegmentIsStable(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tok, err := c.Issue(models.NewClaims(1, nil), 0)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(tok.SignedString, "eyJ0eXAiOiJKV1QiLCJhbGciOiJIUzI1NiJ9."))
	assert.Len(t, strings.Split(tok.SignedString, "."), 3)
	assert.NotContains(t, tok.SignedString, "=")
}

func TestIssue_OverwritesTimestamps(t *testing.T) {
	clock := newClock()
	c := newTestCodec(t, testSecret, clock)

	claims := models.NewClaims(7, map[string]any{"role": "organizer"})
	claims.IssuedAt = time.Unix(1, 0)
	claims.ExpiresAt = time.Unix(2, 0)

	tok, err := c.Issue(claims, 30*time.Second)
	require.NoError(t, err)

	wantIat := time.Unix(clock.Now().Unix(), 0).UTC()
	assert.Equal(t, wantIat, tok.Claims.IssuedAt)
	assert.Equal(t, wantIat.Add(30*time.Second), tok.Claims.ExpiresAt)
}

func TestIssue_DefaultTTL(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tok, err := c.Issue(models.NewClaims(7, nil), 0)
	require.NoError(t, err)

	assert.Equal(t, c.DefaultTTL(), tok.Claims.ExpiresAt.Sub(tok.Claims.IssuedAt))
}

func TestVerify_RoundTrip(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tests := []struct {
		name  string
		extra map[string]any
	}{
		{name: "no extra claims", extra: map[string]any{}},
		{name: "email and role", extra: map[string]any{"email": "a@b.c", "role": "venue_manager"}},
		{name: "nested values", extra: map[string]any{"flags": []any{"x", true}, "meta": map[string]any{"k": "v"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := models.NewClaims(42, tt.extra)

			tok, err := c.Issue(claims, time.Minute)
			require.NoError(t, err)

			got, err := c.Verify(tok.SignedString)
			require.NoError(t, err)

			assert.Equal(t, int64(42), got.Subject)
			assert.Equal(t, tok.Claims.IssuedAt, got.IssuedAt)
			assert.Equal(t, tok.Claims.ExpiresAt, got.ExpiresAt)
			assert.Equal(t, tt.extra, got.Extra)
		})
	}
}

func TestVerify_SignatureBitFlips(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tok, err := c.Issue(models.NewClaims(1, map[string]any{"role": "admin"}), time.Minute)
	require.NoError(t, err)

	parts := strings.Split(tok.SignedString, ".")
	sig, err := base64.RawURLEncoding.DecodeString(parts[2])
	require.NoError(t, err)

	for bit := 0; bit < len(sig)*8; bit++ {
		mutated := make([]byte, len(sig))
		copy(mutated, sig)
		mutated[bit/8] ^= 1 << (bit % 8)

		forged := parts[0] + "." + parts[1] + "." + base64.RawURLEncoding.EncodeToString(mutated)
		_, err := c.Verify(forged)
		require.ErrorIs(t, err, ErrBadSignature, "bit %d", bit)
	}
}

func TestVerify_TamperedPayload(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tok, err := c.Issue(models.NewClaims(1, map[string]any{"role": "organizer"}), time.Minute)
	require.NoError(t, err)

	parts := strings.Split(tok.SignedString, ".")
	forgedPayload := base64.RawURLEncoding.EncodeToString([]byte(`{"user_id":1,"role":"admin","iat":0,"exp":9999999999}`))

	_, err = c.Verify(parts[0] + "." + forgedPayload + "." + parts[2])
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_DifferentSecret(t *testing.T) {
	clock := newClock()
	issuer := newTestCodec(t, testSecret, clock)
	verifier := newTestCodec(t, "another-secret", clock)

	for i := int64(1); i <= 20; i++ {
		tok, err := issuer.Issue(models.NewClaims(i, nil), time.Minute)
		require.NoError(t, err)

		_, err = verifier.Verify(tok.SignedString)
		assert.ErrorIs(t, err, ErrBadSignature)
	}
}

func TestVerify_Expired(t *testing.T) {
	clock := newClock()
	c := newTestCodec(t, testSecret, clock)

	tok, err := c.Issue(models.NewClaims(1, nil), time.Minute)
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)

	_, err = c.Verify(tok.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_ExpiryBoundaryIsRejected(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0).UTC()}
	c := newTestCodec(t, testSecret, clock)

	tok, err := c.Issue(models.NewClaims(1, nil), 10*time.Second)
	require.NoError(t, err)

	clock.Advance(10 * time.Second)

	_, err = c.Verify(tok.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_IssueThenExpireAfterTTL(t *testing.T) {
	clock := newClock()
	c := newTestCodec(t, testSecret, clock)

	tok, err := c.Issue(models.NewClaims(42, map[string]any{"role": "organizer"}), time.Second)
	require.NoError(t, err)

	got, err := c.Verify(tok.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), got.Subject)
	assert.Equal(t, models.RoleOrganizer, got.Role())

	clock.Advance(time.Second)

	_, err = c.Verify(tok.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerify_Malformed(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "one segment", token: "abc"},
		{name: "two segments", token: "abc.def"},
		{name: "four segments", token: "a.b.c.d"},
		{name: "empty middle segment", token: "abc..def"},
		{name: "empty signature", token: "abc.def."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Verify(tt.token)
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestVerify_UndecodableSignature(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	_, err := c.Verify("abc.def.!!!")
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerify_SignedButInvalidClaims(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tests := []struct {
		name    string
		payload string
	}{
		{name: "missing exp", payload: `{"user_id":1,"iat":1}`},
		{name: "not json", payload: `not-json`},
		{name: "json array", payload: `[1,2,3]`},
		{name: "json null", payload: `null`},
		{name: "exp is not a number", payload: `{"user_id":1,"exp":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Verify(signRaw(testSecret, tt.payload))
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestVerify_LegacyTokenWithStringSubject(t *testing.T) {
	clock := newClock()
	c := newTestCodec(t, testSecret, clock)

	exp := clock.Now().Add(time.Hour).Unix()
	payload := fmt.Sprintf(`{"user_id":"42","email":"jo@example.com","role":"organizer","iat":1700000000,"exp":%d}`, exp)

	got, err := c.Verify(signRaw(testSecret, payload))
	require.NoError(t, err)

	assert.Equal(t, int64(42), got.Subject)
	assert.Equal(t, "jo@example.com", got.Email())
	assert.Equal(t, models.RoleOrganizer, got.Role())
}

func TestVerify_ConcurrentUse(t *testing.T) {
	c := newTestCodec(t, testSecret, newClock())

	tok, err := c.Issue(models.NewClaims(5, nil), time.Minute)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Verify(tok.SignedString)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
