package common

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/bwmarrin/snowflake"
)

const (
	ENABLED  = "enabled"
	DISABLED = "disabled"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a snowflake-derived int64 identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns a snowflake-derived string identifier.
func UUID() string {
	return snowflakeNode.Generate().String()
}

// Sha256HashWithSalt hashes src with the given salt, hex encoded.
func Sha256HashWithSalt(src string, salt string) string {
	h := sha256.New()
	h.Write([]byte(src + salt))
	return hex.EncodeToString(h.Sum(nil))
}

// GetSecretSalt reads the instance salt from env, falling back to a fixed value.
func GetSecretSalt() string {
	salt := os.Getenv("MENUBOARD_SECRET_SALT")
	if salt == "" {
		salt = "menuboard-default-salt"
	}
	return salt
}

// RandomToken returns a url-safe random hex token of n bytes.
func RandomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return UUID()
	}
	return hex.EncodeToString(buf)
}

// SplitAndTrim splits a comma separated string, dropping empty segments.
func SplitAndTrim(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// JoinNonEmpty joins non-empty trimmed segments with commas.
func JoinNonEmpty(parts []string) string {
	var out []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, ",")
}

func MustMkdir(dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(fmt.Sprintf("mkdir %s: %v", dir, err))
	}
}
