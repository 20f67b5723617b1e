package services

import (
	"crypto/rand"
	"math/big"
)

const (
	otpLength  = 6
	otpCharset = "23456789"
)

// GenerateOTP draws a 6 digit code without the look-alike digits 0 and 1.
func GenerateOTP() (string, error) {
	code := make([]byte, otpLength)
	max := big.NewInt(int64(len(otpCharset)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = otpCharset[n.Int64()]
	}
	return string(code), nil
}

const passwordCharset = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// GeneratePassword returns an 8 character password for accounts created on someone's behalf.
func GeneratePassword() (string, error) {
	out := make([]byte, 8)
	max := big.NewInt(int64(len(passwordCharset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordCharset[n.Int64()]
	}
	return string(out), nil
}
