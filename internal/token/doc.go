// Package token mints and verifies compact HMAC-SHA256 bearer tokens.
//
// A token is three base64url segments (no padding) joined by dots:
//
//	base64url({"typ":"JWT","alg":"HS256"}).base64url(claims).base64url(signature)
//
// The signature is HMAC-SHA256 over the first two segments keyed with the
// shared secret. No state is kept per token: a token is valid when its
// signature matches and its expiry is still in the future.
//
// A [Codec] is immutable after construction and safe for concurrent use.
package token
