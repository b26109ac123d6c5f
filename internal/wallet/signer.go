package wallet

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Signer hands out the key of a signing wallet.
type Signer struct {
	wallet *Wallet
	ks     KeystoreBackend
}

// NewSigner creates a signer for the given wallet.
func NewSigner(w *Wallet, ks KeystoreBackend) *Signer {
	return &Signer{wallet: w, ks: ks}
}

// Wallet returns the wallet being signed for.
func (s *Signer) Wallet() *Wallet { return s.wallet }

// Address returns the wallet's address.
func (s *Signer) Address() string {
	return s.wallet.Address
}

// PrivateKey loads the wallet's key from the keystore and checks it still
// matches the recorded address.
func (s *Signer) PrivateKey() (*ecdsa.PrivateKey, error) {
	if s.wallet.Type != TypeSigning {
		return nil, fmt.Errorf("wallet %q is watch-only and cannot sign", s.wallet.Name)
	}

	hexKey, err := s.ks.Retrieve(s.wallet.KeyRef)
	if err != nil {
		return nil, fmt.Errorf("retrieving key: %w", err)
	}

	privKey, err := crypto.HexToECDSA(normaliseHexKey(hexKey))
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	if got := crypto.PubkeyToAddress(privKey.PublicKey); got != s.wallet.CommonAddress() {
		return nil, fmt.Errorf("key for wallet %q belongs to %s, expected %s", s.wallet.Name, got.Hex(), s.wallet.Address)
	}
	return privKey, nil
}
