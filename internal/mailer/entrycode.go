package mailer

import "math/rand/v2"

// Alphabet excludes visually ambiguous characters (0/O, 1/I) so codes
// survive being read aloud at the gate. The code is a human-presentable
// token, not a credential, so math/rand is fine.
const entryCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const entryCodePrefix = "KAP-"

const entryCodeLen = 6

// NewEntryCode returns a fresh pass code of the form KAP-XXXXXX.
func NewEntryCode() string {
	b := make([]byte, 0, len(entryCodePrefix)+entryCodeLen)
	b = append(b, entryCodePrefix...)
	for range entryCodeLen {
		b = append(b, entryCodeAlphabet[rand.IntN(len(entryCodeAlphabet))])
	}
	return string(b)
}
