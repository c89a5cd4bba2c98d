package infra

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// Cipher implements the OpenSSL passphrase scheme web clients use for the
// privileged-user blob: base64 of "Salted__" + 8-byte salt + AES-256-CBC
// ciphertext, key and IV derived via EVP_BytesToKey over MD5, PKCS#7 padding.
type Cipher struct {
	passphrase []byte
}

func NewCipher(secretKey string) *Cipher {
	return &Cipher{passphrase: []byte(secretKey)}
}

var errCipherText = errors.New("texto cifrado inválido")

// evpKDF derives 32 key bytes plus 16 IV bytes by chaining MD5 digests of
// (previous digest || passphrase || salt).
func (c *Cipher) evpKDF(salt []byte) (key, iv []byte) {
	var derived []byte
	var block []byte
	for len(derived) < 48 {
		h := md5.New()
		h.Write(block)
		h.Write(c.passphrase)
		h.Write(salt)
		block = h.Sum(nil)
		derived = append(derived, block...)
	}
	return derived[:32], derived[32:48]
}

// Decrypt recovers the plaintext of a client-produced blob.
func (c *Cipher) Decrypt(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("decodificar base64: %w", err)
	}
	if len(raw) < 16 || !bytes.HasPrefix(raw, []byte("Salted__")) {
		return nil, errCipherText
	}
	salt := raw[8:16]
	ciphertext := raw[16:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, errCipherText
	}

	key, iv := c.evpKDF(salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	pad := int(plain[len(plain)-1])
	if pad == 0 || pad > aes.BlockSize || pad > len(plain) {
		return nil, errCipherText
	}
	for _, b := range plain[len(plain)-pad:] {
		if int(b) != pad {
			return nil, errCipherText
		}
	}
	return plain[:len(plain)-pad], nil
}

// Encrypt produces a blob the client-side decryptor accepts. Used by tests and
// by endpoints that hand opaque session material back to the browser.
func (c *Cipher) Encrypt(plain []byte) (string, error) {
	salt := make([]byte, 8)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key, iv := c.evpKDF(salt)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}

	pad := aes.BlockSize - len(plain)%aes.BlockSize
	padded := append(append([]byte{}, plain...), bytes.Repeat([]byte{byte(pad)}, pad)...)

	out := make([]byte, 16+len(padded))
	copy(out, "Salted__")
	copy(out[8:], salt)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[16:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}
