package access

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fernet/fernet-go"
)

// noExpiry disables the token age check in fernet.VerifyAndDecrypt.
const noExpiry = time.Duration(-1)

// PassphraseGate approves an operation when Token, decrypted with the Fernet
// key stored in KeyFile, equals Phrase.
type PassphraseGate struct {
	KeyFile string
	Token   string
	Phrase  string
}

func (g PassphraseGate) Authorize(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key, err := LoadKey(g.KeyFile)
	if err != nil {
		return deny("missing key", err)
	}

	msg := fernet.VerifyAndDecrypt([]byte(g.Token), noExpiry, []*fernet.Key{key})
	if msg == nil {
		return deny(fmt.Sprintf("token cannot be opened with key from %q", g.KeyFile), nil)
	}
	if !bytes.Equal(msg, []byte(g.Phrase)) {
		return deny(fmt.Sprintf("key from %q is invalid", g.KeyFile), nil)
	}

	slog.Info("access key is correct", "file", g.KeyFile)
	return nil
}

// LoadKey reads a base64 encoded Fernet key from path.
func LoadKey(path string) (*fernet.Key, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read key file %q: %w", path, err)
	}

	key, err := fernet.DecodeKey(string(bytes.TrimSpace(data)))
	if err != nil {
		return nil, fmt.Errorf("could not decode key file %q: %w", path, err)
	}
	return key, nil
}

// Seal generates a new key, stores it in keyFile and returns the token that
// PassphraseGate accepts for phrase.
func Seal(keyFile, phrase string) (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("could not generate key: %w", err)
	}

	tok, err := fernet.EncryptAndSign([]byte(phrase), &key)
	if err != nil {
		return "", fmt.Errorf("could not encrypt access phrase: %w", err)
	}

	f, err := os.OpenFile(keyFile, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return "", fmt.Errorf("could not create key file %q: %w", keyFile, err)
	}
	if _, err = f.WriteString(key.Encode()); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("could not write key file %q: %w", keyFile, err)
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("could not close key file %q: %w", keyFile, err)
	}
	return string(tok), nil
}
