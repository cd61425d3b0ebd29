package placetopay

import (
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"hash"
	"io"
	"math/big"
	"time"
)

// DefaultAlgorithm is the digest algorithm used when none is configured.
const DefaultAlgorithm = "sha256"

// digestAlgorithms are the hash functions the gateway accepts for the
// tranKey digest.
var digestAlgorithms = map[string]func() hash.Hash{
	"md5":    md5.New,
	"sha1":   sha1.New,
	"sha256": sha256.New,
	"sha512": sha512.New,
}

// seedFormat matches the gateway's expected ISO-8601 timestamp with
// microseconds and a numeric UTC offset.
const seedFormat = "2006-01-02T15:04:05.000000-07:00"

// AuthenticationConfig configures an Authentication signer.
type AuthenticationConfig struct {
	Login      string
	TranKey    string
	Algorithm  string         // digest algorithm, DefaultAlgorithm when empty
	Additional map[string]any // extra data echoed in the auth block

	// Nonce and Seed pin the generated values. Only tests and replay
	// scenarios should set them.
	Nonce string
	Seed  string
}

// Authentication produces the per-request auth block: a nonce/seed pair and
// the digest proving possession of the transaction key. One instance
// represents one request's credentials; build a fresh one per call.
type Authentication struct {
	login      string
	tranKey    string
	algorithm  string
	additional map[string]any
	nonce      string
	seed       string
}

// AuthBlock is the wire form of the authentication data attached to every
// outgoing request under the "auth" key.
type AuthBlock struct {
	Login      string         `json:"login"`
	TranKey    string         `json:"tranKey"`
	Nonce      string         `json:"nonce"`
	Seed       string         `json:"seed"`
	Additional map[string]any `json:"additional"`
}

// NewAuthentication validates the credentials and generates the nonce and
// seed unless overrides are supplied.
func NewAuthentication(cfg AuthenticationConfig) (*Authentication, error) {
	if cfg.Login == "" || cfg.TranKey == "" {
		return nil, newDataNotProvidedError("No login or tranKey provided for authentication")
	}

	algorithm := cfg.Algorithm
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	if _, ok := digestAlgorithms[algorithm]; !ok {
		return nil, newConfigurationError("unsupported digest algorithm %q", algorithm)
	}

	a := &Authentication{
		login:      cfg.Login,
		tranKey:    cfg.TranKey,
		algorithm:  algorithm,
		additional: cfg.Additional,
		nonce:      cfg.Nonce,
		seed:       cfg.Seed,
	}
	if a.additional == nil {
		a.additional = map[string]any{}
	}
	if a.nonce == "" {
		nonce, err := generateNonce()
		if err != nil {
			return nil, fmt.Errorf("failed to generate nonce: %w", err)
		}
		a.nonce = nonce
	}
	if a.seed == "" {
		a.seed = time.Now().UTC().Format(seedFormat)
	}
	return a, nil
}

// generateNonce draws a random integer in [1,000,000, 10,000,000), lays it
// out big-endian in 16 bytes, and base64-encodes the result.
func generateNonce() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9_000_000))
	if err != nil {
		return "", err
	}
	return encodeNonce(n.Int64() + 1_000_000), nil
}

func encodeNonce(v int64) string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[8:], uint64(v))
	return base64.StdEncoding.EncodeToString(buf[:])
}

// Login returns the site login.
func (a *Authentication) Login() string { return a.login }

// Nonce returns the base64-encoded nonce for this request.
func (a *Authentication) Nonce() string { return a.nonce }

// Seed returns the ISO-8601 seed timestamp for this request.
func (a *Authentication) Seed() string { return a.seed }

// Digest computes base64(hash(nonce + seed + tranKey)). The nonce enters the
// hash in its base64 text form, not as raw bytes; the gateway expects this
// exact construction.
func (a *Authentication) Digest() string {
	h := digestAlgorithms[a.algorithm]()
	io.WriteString(h, a.nonce)
	io.WriteString(h, a.seed)
	io.WriteString(h, a.tranKey)
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

// Block assembles the auth object sent with every request. The digest is
// computed fresh on every call.
func (a *Authentication) Block() AuthBlock {
	return AuthBlock{
		Login:      a.login,
		TranKey:    a.Digest(),
		Nonce:      a.nonce,
		Seed:       a.seed,
		Additional: a.additional,
	}
}
