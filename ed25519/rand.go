package ed25519

import "crypto/rand"

func readRandom(b []byte) error {
	_, err := rand.Read(b)
	return err
}
